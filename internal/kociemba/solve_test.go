package kociemba

import (
	"errors"
	"testing"

	"github.com/corvidtools/cube3/internal/cube"
)

func TestSolveAlreadySolved(t *testing.T) {
	g := cube.NewSolvedGrid()
	sol, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve(solved): %v", err)
	}
	if len(sol.Moves) != 0 {
		t.Errorf("Solve(solved).Moves = %v, want empty", sol.Moves)
	}
}

func TestSolveScrambledReachesSolved(t *testing.T) {
	scramble, err := cube.ParseMoves("R U2 F' D L B2 R' U F2 D' L2 B")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	g := cube.NewSolvedGrid()
	g.ApplyMoves(scramble)

	sol, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve(scrambled): %v", err)
	}
	g.ApplyMoves(sol.Moves)
	if !g.IsSolved() {
		t.Errorf("applying Solve's moves did not reach solved; got:\n%s", g.String())
	}
	if sol.Phase1Moves == 0 && sol.Phase2Moves == 0 {
		t.Errorf("Solve(scrambled) reported no moves in either phase")
	}
}

func TestSolveRejectsUnsolvableParity(t *testing.T) {
	g := cube.NewSolvedGrid()

	idUR, flipUR, err := identifyEdge(g, int(UR))
	if err != nil {
		t.Fatalf("identifyEdge(UR): %v", err)
	}
	idUF, flipUF, err := identifyEdge(g, int(UF))
	if err != nil {
		t.Fatalf("identifyEdge(UF): %v", err)
	}
	placeEdge(g, int(UR), idUF, flipUF)
	placeEdge(g, int(UF), idUR, flipUR)

	_, err = Solve(g)
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("Solve(single edge transposition) = %v, want ErrUnsolvable", err)
	}
}

func TestSolveRejectsUnsolvableOrientation(t *testing.T) {
	g := cube.NewSolvedGrid()
	placeCorner(g, int(URF), URF, 1)

	_, err := Solve(g)
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("Solve(single corner twist) = %v, want ErrUnsolvable", err)
	}
}
