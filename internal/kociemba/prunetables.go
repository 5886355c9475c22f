package kociemba

import "github.com/corvidtools/cube3/internal/cube"

// Pruning tables hold, for every reachable combination of two coordinates,
// the exact distance (in moves) back to solved — found once by a
// breadth-first search outward from solved using the move tables, rather
// than inward from an arbitrary scrambled state. Since every move is its
// own group inverse's mirror, "moves from solved to X" equals "moves from
// X to solved", so the search doubles as the admissible heuristic phase-1
// and phase-2 IDA* need (§4.4, §4.5): the true remaining distance in the
// full state space is never less than the distance in any coordinate
// projection of it.
var (
	twistSliceDist   []int8
	flipSliceDist    []int8
	cornerSliceDist  []int8
	udEdgeSliceDist  []int8
)

const (
	phase1Size = TwistCount * SliceCount
	phase2Size = CornerPermCount * SlicePermCount
)

func bfsDistance(size int, moves []int, transition func(idx, move int) int) []int8 {
	dist := make([]int8, size)
	for i := range dist {
		dist[i] = -1
	}
	dist[0] = 0
	queue := make([]int, 1, size/4)
	queue[0] = 0
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := dist[cur]
		for _, m := range moves {
			nxt := transition(cur, m)
			if dist[nxt] == -1 {
				dist[nxt] = d + 1
				queue = append(queue, nxt)
			}
		}
	}
	return dist
}

func allMoves() []int {
	moves := make([]int, cube.NumMoves)
	for i := range moves {
		moves[i] = i
	}
	return moves
}

func phase2MoveIndices() []int {
	moves := make([]int, len(cube.Phase2Moves))
	for i, m := range cube.Phase2Moves {
		moves[i] = int(m)
	}
	return moves
}

func buildPhase1PruneTables() {
	moves := allMoves()
	twistSliceDist = bfsDistance(phase1Size, moves, func(idx, m int) int {
		twist, slice := idx/SliceCount, idx%SliceCount
		nt := int(TwistMove[twist][m])
		ns := int(SliceMove[slice][m])
		return nt*SliceCount + ns
	})
	flipSliceDist = bfsDistance(phase1Size, moves, func(idx, m int) int {
		// reuses the TwistCount*SliceCount shape; flip and twist have the
		// same cardinality-independent layout since both are paired with
		// the same slice coordinate.
		flip, slice := idx/SliceCount, idx%SliceCount
		nf := int(FlipMove[flip][m])
		ns := int(SliceMove[slice][m])
		return nf*SliceCount + ns
	})
}

func buildPhase2PruneTables() {
	moves := phase2MoveIndices()
	cornerSliceDist = bfsDistance(phase2Size, moves, func(idx, m int) int {
		cp, sp := idx/SlicePermCount, idx%SlicePermCount
		ncp := int(CornerPermMove[cp][m])
		nsp := int(SlicePermMove[sp][m])
		return ncp*SlicePermCount + nsp
	})
	udEdgeSliceDist = bfsDistance(phase2Size, moves, func(idx, m int) int {
		ep, sp := idx/SlicePermCount, idx%SlicePermCount
		nep := int(UDEdgePermMove[ep][m])
		nsp := int(SlicePermMove[sp][m])
		return nep*SlicePermCount + nsp
	})
}

// phase1Heuristic lower-bounds the remaining phase-1 move count from a
// (twist, flip, slice) coordinate triple.
func phase1Heuristic(twist, flip, slice int) int {
	a := int(twistSliceDist[twist*SliceCount+slice])
	b := int(flipSliceDist[flip*SliceCount+slice])
	if a > b {
		return a
	}
	return b
}

// phase2Heuristic lower-bounds the remaining phase-2 move count from a
// (cornerPerm, udEdgePerm, slicePerm) coordinate triple.
func phase2Heuristic(cornerPerm, udEdgePerm, slicePerm int) int {
	a := int(cornerSliceDist[cornerPerm*SlicePermCount+slicePerm])
	b := int(udEdgeSliceDist[udEdgePerm*SlicePermCount+slicePerm])
	if a > b {
		return a
	}
	return b
}
