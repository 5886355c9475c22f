package kociemba

import "github.com/corvidtools/cube3/internal/cube"

const infinity = 1 << 30

// moveFaces maps a move's index divided by 3 to the face it turns, following
// the U, R, F, D, L, B grouping of the move alphabet.
var moveFaces = [6]cube.Face{cube.Up, cube.Right, cube.Front, cube.Down, cube.Left, cube.Back}

// oppositeFace exploits the Up,Down,Front,Back,Left,Right enumeration
// order in cube.go: each opposite pair is adjacent (0,1), (2,3), (4,5), so
// XOR-ing the low bit gives the opposite face without a lookup table.
func oppositeFace(f cube.Face) cube.Face {
	return cube.Face(int(f) ^ 1)
}

// moveAllowedAfter applies the standard redundancy pruning (§4.5, §4.6):
// never turn the same face twice in a row (two consecutive turns of one
// face always collapse into a single turn, or cancel), and never turn a
// face immediately after its opposite in the "wrong" order, since opposite
// faces commute and both orderings reach the same state.
func moveAllowedAfter(face, lastFace cube.Face) bool {
	if lastFace == face {
		return false
	}
	if face == oppositeFace(lastFace) && face < lastFace {
		return false
	}
	return true
}

func (s cubieState) applyEffect(eff moveEffect) cubieState {
	var out cubieState
	for pos := 0; pos < 8; pos++ {
		np := eff.cornerPos[pos]
		out.cp[np] = s.cp[pos]
		out.co[np] = (s.co[pos] + eff.cornerDelta[pos]) % 3
	}
	for pos := 0; pos < 12; pos++ {
		np := eff.edgePos[pos]
		out.ep[np] = s.ep[pos]
		out.eo[np] = (s.eo[pos] + eff.edgeDelta[pos]) % 2
	}
	return out
}

func (s cubieState) applyMove(m cube.Move) cubieState {
	return s.applyEffect(moveEffects[m])
}

// phase1Search finds a move sequence (any 18-move sequence, not
// necessarily optimal — optimal move length is out of scope, §2) taking
// start into the G1 subgroup (twist=flip=slice=0), via IDA*, and returns
// it along with the resulting cubie state so phase 2 can continue from it.
func phase1Search(start cubieState) ([]cube.Move, cubieState, bool) {
	c := coordinatesOf(start)
	threshold := phase1Heuristic(c.Twist, c.Flip, c.Slice)
	const maxThreshold = 13
	for threshold <= maxThreshold {
		path := make([]cube.Move, 0, threshold)
		next, found, final := phase1DFS(start, c.Twist, c.Flip, c.Slice, 0, threshold, -1, &path)
		if found {
			return path, final, true
		}
		if next == infinity {
			return nil, cubieState{}, false
		}
		threshold = next
	}
	return nil, cubieState{}, false
}

func phase1DFS(state cubieState, twist, flip, slice, g, threshold int, lastFace cube.Face, path *[]cube.Move) (int, bool, cubieState) {
	h := phase1Heuristic(twist, flip, slice)
	f := g + h
	if f > threshold {
		return f, false, cubieState{}
	}
	if twist == 0 && flip == 0 && slice == 0 {
		return f, true, state
	}
	min := infinity
	for mi := 0; mi < cube.NumMoves; mi++ {
		m := cube.Move(mi)
		face := moveFaces[m/3]
		if !moveAllowedAfter(face, lastFace) {
			continue
		}
		nt := int(TwistMove[twist][m])
		nf := int(FlipMove[flip][m])
		ns := int(SliceMove[slice][m])
		*path = append(*path, m)
		next, found, final := phase1DFS(state.applyMove(m), nt, nf, ns, g+1, threshold, face, path)
		if found {
			return next, true, final
		}
		*path = (*path)[:len(*path)-1]
		if next < min {
			min = next
		}
	}
	return min, false, cubieState{}
}

// phase2Search finds a move sequence restricted to cube.Phase2Moves that
// takes a G1 state to solved.
func phase2Search(start cubieState) ([]cube.Move, bool) {
	cp := cornerPermOf(start)
	up := udEdgePermOf(start)
	sp := slicePermOf(start)
	threshold := phase2Heuristic(cp, up, sp)
	const maxThreshold = 18
	for threshold <= maxThreshold {
		path := make([]cube.Move, 0, threshold)
		next, found := phase2DFS(cp, up, sp, 0, threshold, -1, &path)
		if found {
			return path, true
		}
		if next == infinity {
			return nil, false
		}
		threshold = next
	}
	return nil, false
}

func phase2DFS(cornerPerm, udEdgePerm, slicePerm, g, threshold int, lastFace cube.Face, path *[]cube.Move) (int, bool) {
	h := phase2Heuristic(cornerPerm, udEdgePerm, slicePerm)
	f := g + h
	if f > threshold {
		return f, false
	}
	if cornerPerm == 0 && udEdgePerm == 0 && slicePerm == 0 {
		return f, true
	}
	min := infinity
	for _, m := range cube.Phase2Moves {
		face := moveFaces[m/3]
		if !moveAllowedAfter(face, lastFace) {
			continue
		}
		ncp := int(CornerPermMove[cornerPerm][m])
		nup := int(UDEdgePermMove[udEdgePerm][m])
		nsp := int(SlicePermMove[slicePerm][m])
		*path = append(*path, m)
		next, found := phase2DFS(ncp, nup, nsp, g+1, threshold, face, path)
		if found {
			return next, true
		}
		*path = (*path)[:len(*path)-1]
		if next < min {
			min = next
		}
	}
	return min, false
}
