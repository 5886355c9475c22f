package kociemba

import (
	"fmt"

	"github.com/corvidtools/cube3/internal/cube"
)

// Solution is the result of a successful Solve: a move sequence that
// returns the grid it was computed from to solved. Move count and
// cancellation cleanup are left to cube.GetMoveCount/OptimizeMoves rather
// than duplicated here. Phase1Moves/Phase2Moves record each phase's raw
// (pre-optimization) move count, for callers that want to report the
// phase split (the history store, the HTTP API).
type Solution struct {
	Moves       []cube.Move
	Phase1Moves int
	Phase2Moves int
}

// Solve runs the two-phase algorithm (§4.5, §4.6) on grid: phase 1 search
// finds any sequence reaching the G1 subgroup (corners and edges
// correctly oriented, UDSlice edges confined to the middle layer); phase 2
// search, restricted to cube.Phase2Moves, finishes from there to solved.
// Optimal move length is explicitly out of scope (§2) — the first
// sequence IDA* finds at the minimal satisfying threshold is returned.
func Solve(g *cube.Grid) (Solution, error) {
	ensureTables()

	state, err := cubieStateFromGrid(g)
	if err != nil {
		return Solution{}, err
	}
	if err := checkSolvable(state); err != nil {
		return Solution{}, err
	}

	phase1Moves, mid, ok := phase1Search(state)
	if !ok {
		return Solution{}, fmt.Errorf("%w: phase 1 search exhausted its depth bound", ErrUnsolvable)
	}
	phase2Moves, ok := phase2Search(mid)
	if !ok {
		return Solution{}, fmt.Errorf("%w: phase 2 search exhausted its depth bound", ErrUnsolvable)
	}

	all := make([]cube.Move, 0, len(phase1Moves)+len(phase2Moves))
	all = append(all, phase1Moves...)
	all = append(all, phase2Moves...)
	return Solution{
		Moves:       cube.OptimizeMoves(all),
		Phase1Moves: len(phase1Moves),
		Phase2Moves: len(phase2Moves),
	}, nil
}

// checkSolvable applies the three standard reachability invariants (§7,
// §8): total corner twist is a multiple of 3, total edge flip is even, and
// corner permutation parity matches edge permutation parity. A grid can
// pass ParseGrid's color-count check and still fail these — it would mean
// the cube was physically disassembled and reassembled incorrectly.
func checkSolvable(s cubieState) error {
	twistSum := 0
	for _, o := range s.co {
		twistSum += o
	}
	if twistSum%3 != 0 {
		return fmt.Errorf("%w: corner orientations do not sum to a multiple of 3", ErrUnsolvable)
	}

	flipSum := 0
	for _, o := range s.eo {
		flipSum += o
	}
	if flipSum%2 != 0 {
		return fmt.Errorf("%w: edge orientations do not sum to an even number", ErrUnsolvable)
	}

	cp := make([]int, 8)
	for i, c := range s.cp {
		cp[i] = int(c)
	}
	ep := make([]int, 12)
	for i, e := range s.ep {
		ep[i] = int(e)
	}
	if permParity(cp) != permParity(ep) {
		return fmt.Errorf("%w: corner and edge permutations have different parity", ErrUnsolvable)
	}
	return nil
}

func permParity(perm []int) int {
	visited := make([]bool, len(perm))
	parity := 0
	for i := range perm {
		if visited[i] {
			continue
		}
		cycleLen := 0
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
			cycleLen++
		}
		parity += cycleLen - 1
	}
	return parity % 2
}
