package kociemba

import "github.com/corvidtools/cube3/internal/cube"

// cubieState is the cubie-level representation coordinates are computed
// from: for each of the 8 corner and 12 edge positions, which cubie
// occupies it and at what orientation. It is an intermediate the search
// never touches directly — movetables.go advances it move by move and
// coords.go packs/unpacks it into the six numeric coordinates search.go
// actually indexes tables with.
type cubieState struct {
	cp [8]Corner
	co [8]int
	ep [12]Edge
	eo [12]int
}

func solvedCubieState() cubieState {
	var s cubieState
	for i := 0; i < 8; i++ {
		s.cp[i] = Corner(i)
	}
	for i := 0; i < 12; i++ {
		s.ep[i] = Edge(i)
	}
	return s
}

// cubieStateFromGrid reads a cubieState off a sticker grid by identifying
// the occupant and orientation at every corner and edge position.
func cubieStateFromGrid(g *cube.Grid) (cubieState, error) {
	var s cubieState
	for i := 0; i < 8; i++ {
		id, o, err := identifyCorner(g, i)
		if err != nil {
			return cubieState{}, err
		}
		s.cp[i] = id
		s.co[i] = o
	}
	for i := 0; i < 12; i++ {
		id, o, err := identifyEdge(g, i)
		if err != nil {
			return cubieState{}, err
		}
		s.ep[i] = id
		s.eo[i] = o
	}
	return s, nil
}

// Coordinates bundles the six numeric coordinates the two-phase search
// indexes (§4.2): twist and flip are corner/edge orientation, slice is the
// position of the 4 UDSlice edges among all 12 — these three alone drive
// phase 1. cornerPerm, udEdgePerm and slicePerm refine the remaining
// permutation freedom and drive phase 2.
type Coordinates struct {
	Twist       int
	Flip        int
	Slice       int
	CornerPerm  int
	UDEdgePerm  int
	SlicePerm   int
}

const (
	TwistCount      = 2187 // 3^7
	FlipCount       = 2048 // 2^11
	SliceCount      = 495  // C(12,4)
	CornerPermCount = 40320
	UDEdgePermCount = 40320
	SlicePermCount  = 24
)

func twistOf(s cubieState) int {
	n := 0
	for i := 0; i < 7; i++ {
		n = n*3 + s.co[i]
	}
	return n
}

func flipOf(s cubieState) int {
	n := 0
	for i := 0; i < 11; i++ {
		n = n*2 + s.eo[i]
	}
	return n
}

func sliceOf(s cubieState) int {
	present := make([]bool, 12)
	for i := 0; i < 12; i++ {
		present[i] = s.ep[i] >= FR
	}
	return combinationIndex(present)
}

func cornerPermOf(s cubieState) int {
	perm := make([]int, 8)
	for i := range perm {
		perm[i] = int(s.cp[i])
	}
	return permIndex(perm)
}

// udEdgePermOf and slicePermOf are only meaningful once Slice==0, i.e. the
// four slice edges already occupy positions FR..BR (§4.2's phase-2
// precondition); callers that need them outside phase 2 must check Slice
// first.
func udEdgePermOf(s cubieState) int {
	perm := make([]int, 8)
	for i := 0; i < 8; i++ {
		perm[i] = int(s.ep[i])
	}
	return permIndex(perm)
}

func slicePermOf(s cubieState) int {
	perm := make([]int, 4)
	for i := 0; i < 4; i++ {
		perm[i] = int(s.ep[8+i]) - int(FR)
	}
	return permIndex(perm)
}

func coordinatesOf(s cubieState) Coordinates {
	return Coordinates{
		Twist:      twistOf(s),
		Flip:       flipOf(s),
		Slice:      sliceOf(s),
		CornerPerm: cornerPermOf(s),
		UDEdgePerm: udEdgePermOf(s),
		SlicePerm:  slicePermOf(s),
	}
}

// ExtractCoordinates reads a grid's full coordinate set. The grid must
// already be known structurally valid (ParseGrid guarantees the color
// counts); it can still be an unreachable permutation, which Solve reports
// as ErrUnsolvable rather than this function, since detecting it requires
// the parity checks in solve.go, not just sticker identification.
func ExtractCoordinates(g *cube.Grid) (Coordinates, error) {
	s, err := cubieStateFromGrid(g)
	if err != nil {
		return Coordinates{}, err
	}
	return coordinatesOf(s), nil
}
