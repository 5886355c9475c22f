package kociemba

import "github.com/corvidtools/cube3/internal/cube"

// moveEffect is the structural, cubie-identity-independent effect of one
// move: content at position i moves to cornerPos[i] gaining cornerDelta[i]
// twist (mod 3), and similarly for edges. It is derived once per move by
// applying the move to a solved grid and reading off where each named
// cubie ends up — reusing cube.Grid.Apply (already cross-checked against
// this grid's real adjacency in move.go) instead of re-deriving
// permutation and orientation deltas by hand for L/R/F/B, which is the
// error-prone part of hand-rolling a cubie-level model.
type moveEffect struct {
	cornerPos   [8]int
	cornerDelta [8]int
	edgePos     [12]int
	edgeDelta   [12]int
}

func computeMoveEffect(m cube.Move) moveEffect {
	g := cube.NewSolvedGrid()
	g.Apply(m)
	var eff moveEffect
	for i := 0; i < 8; i++ {
		id, o, err := identifyCorner(g, i)
		if err != nil {
			panic(err)
		}
		eff.cornerPos[int(id)] = i
		eff.cornerDelta[int(id)] = o
	}
	for i := 0; i < 12; i++ {
		id, o, err := identifyEdge(g, i)
		if err != nil {
			panic(err)
		}
		eff.edgePos[int(id)] = i
		eff.edgeDelta[int(id)] = o
	}
	return eff
}

var moveEffects [cube.NumMoves]moveEffect

func buildMoveEffects() {
	for m := 0; m < cube.NumMoves; m++ {
		moveEffects[m] = computeMoveEffect(cube.Move(m))
	}
}

// --- coordinate (de)composition ---

func decodeTwist(twist int) [8]int {
	var co [8]int
	sum := 0
	for i := 6; i >= 0; i-- {
		co[i] = twist % 3
		twist /= 3
		sum += co[i]
	}
	co[7] = (3 - sum%3) % 3
	return co
}

func encodeTwist(co [8]int) int {
	n := 0
	for i := 0; i < 7; i++ {
		n = n*3 + co[i]
	}
	return n
}

func decodeFlip(flip int) [12]int {
	var eo [12]int
	sum := 0
	for i := 10; i >= 0; i-- {
		eo[i] = flip % 2
		flip /= 2
		sum += eo[i]
	}
	eo[11] = (2 - sum%2) % 2
	return eo
}

func encodeFlip(eo [12]int) int {
	n := 0
	for i := 0; i < 11; i++ {
		n = n*2 + eo[i]
	}
	return n
}

func decodeSlice(slice int) []bool {
	return combinationUnrank(slice, 12, 4)
}

func decodePerm(rank, n int) []int {
	return permUnrank(rank, n)
}

// --- coordinate move tables ---

// TwistMove[twist][move] is the twist coordinate reached by applying move
// from twist. Only orientation bookkeeping is needed here: twist never
// depends on which specific cubie sits where, only on each position's
// orientation, so the table is built from the orientation array alone.
var TwistMove [TwistCount][cube.NumMoves]uint16

// FlipMove is the edge-orientation analogue of TwistMove.
var FlipMove [FlipCount][cube.NumMoves]uint16

// SliceMove[slice][move] is the UDSlice coordinate reached by applying
// move. Built from the 12-position present/absent array, since slice only
// tracks which positions hold a UDSlice edge, not which one.
var SliceMove [SliceCount][cube.NumMoves]uint16

// CornerPermMove and UDEdgePermMove are full permutation transitions (§4.3)
// used by phase 2. SlicePermMove is its 4-element analogue.
var CornerPermMove [CornerPermCount][cube.NumMoves]uint16
var UDEdgePermMove [UDEdgePermCount][cube.NumMoves]uint16
var SlicePermMove [SlicePermCount][cube.NumMoves]uint16

func buildTwistMove() {
	for t := 0; t < TwistCount; t++ {
		co := decodeTwist(t)
		for m := 0; m < cube.NumMoves; m++ {
			eff := moveEffects[m]
			var newCo [8]int
			for pos := 0; pos < 8; pos++ {
				newCo[eff.cornerPos[pos]] = (co[pos] + eff.cornerDelta[pos]) % 3
			}
			TwistMove[t][m] = uint16(encodeTwist(newCo))
		}
	}
}

func buildFlipMove() {
	for f := 0; f < FlipCount; f++ {
		eo := decodeFlip(f)
		for m := 0; m < cube.NumMoves; m++ {
			eff := moveEffects[m]
			var newEo [12]int
			for pos := 0; pos < 12; pos++ {
				newEo[eff.edgePos[pos]] = (eo[pos] + eff.edgeDelta[pos]) % 2
			}
			FlipMove[f][m] = uint16(encodeFlip(newEo))
		}
	}
}

func buildSliceMove() {
	for s := 0; s < SliceCount; s++ {
		present := decodeSlice(s)
		for m := 0; m < cube.NumMoves; m++ {
			eff := moveEffects[m]
			newPresent := make([]bool, 12)
			for pos := 0; pos < 12; pos++ {
				newPresent[eff.edgePos[pos]] = present[pos]
			}
			SliceMove[s][m] = uint16(combinationIndex(newPresent))
		}
	}
}

func buildCornerPermMove() {
	for r := 0; r < CornerPermCount; r++ {
		perm := decodePerm(r, 8)
		for m := 0; m < cube.NumMoves; m++ {
			eff := moveEffects[m]
			newPerm := make([]int, 8)
			for pos := 0; pos < 8; pos++ {
				newPerm[eff.cornerPos[pos]] = perm[pos]
			}
			CornerPermMove[r][m] = uint16(permIndex(newPerm))
		}
	}
}

func buildUDEdgePermMove() {
	for r := 0; r < UDEdgePermCount; r++ {
		perm := decodePerm(r, 8)
		for m := 0; m < cube.NumMoves; m++ {
			eff := moveEffects[m]
			newPerm := make([]int, 8)
			valid := true
			for pos := 0; pos < 8; pos++ {
				np := eff.edgePos[pos]
				if np >= 8 {
					valid = false
					break
				}
				newPerm[np] = perm[pos]
			}
			if !valid {
				// move doesn't preserve the UD/slice split; only phase-2
				// moves (Phase2Moves) are ever looked up against this
				// table by search.go.
				UDEdgePermMove[r][m] = uint16(r)
				continue
			}
			UDEdgePermMove[r][m] = uint16(permIndex(newPerm))
		}
	}
}

func buildSlicePermMove() {
	for r := 0; r < SlicePermCount; r++ {
		perm := decodePerm(r, 4)
		for m := 0; m < cube.NumMoves; m++ {
			eff := moveEffects[m]
			newPerm := make([]int, 4)
			valid := true
			for i := 0; i < 4; i++ {
				pos := 8 + i
				np := eff.edgePos[pos]
				if np < 8 {
					valid = false
					break
				}
				newPerm[np-8] = perm[i]
			}
			if !valid {
				SlicePermMove[r][m] = uint16(r)
				continue
			}
			SlicePermMove[r][m] = uint16(permIndex(newPerm))
		}
	}
}
