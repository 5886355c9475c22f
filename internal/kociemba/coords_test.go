package kociemba

import (
	"testing"

	"github.com/corvidtools/cube3/internal/cube"
)

func TestExtractCoordinatesSolved(t *testing.T) {
	g := cube.NewSolvedGrid()
	c, err := ExtractCoordinates(g)
	if err != nil {
		t.Fatalf("ExtractCoordinates: %v", err)
	}
	if c.Twist != 0 || c.Flip != 0 || c.CornerPerm != 0 || c.UDEdgePerm != 0 || c.SlicePerm != 0 {
		t.Errorf("ExtractCoordinates(solved) = %+v, want all zero", c)
	}
	if c.Slice != 0 {
		t.Errorf("ExtractCoordinates(solved).Slice = %d, want 0", c.Slice)
	}
}

func TestExtractCoordinatesChangeAfterMove(t *testing.T) {
	g := cube.NewSolvedGrid()
	g.Apply(cube.MoveR)
	c, err := ExtractCoordinates(g)
	if err != nil {
		t.Fatalf("ExtractCoordinates: %v", err)
	}
	if c.Twist == 0 && c.Flip == 0 && c.CornerPerm == 0 {
		t.Errorf("ExtractCoordinates after R should differ from solved, got %+v", c)
	}
}

func TestExtractCoordinatesReturnToSolved(t *testing.T) {
	moves, err := cube.ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	g := cube.NewSolvedGrid()
	for i := 0; i < 6; i++ {
		g.ApplyMoves(moves)
	}
	c, err := ExtractCoordinates(g)
	if err != nil {
		t.Fatalf("ExtractCoordinates: %v", err)
	}
	if c.Twist != 0 || c.Flip != 0 || c.Slice != 0 || c.CornerPerm != 0 || c.UDEdgePerm != 0 || c.SlicePerm != 0 {
		t.Errorf("ExtractCoordinates after 6x sexy move = %+v, want all zero", c)
	}
}

func TestSlicePermInRangeWhenSliceEdgesInPlace(t *testing.T) {
	g := cube.NewSolvedGrid()
	c, err := ExtractCoordinates(g)
	if err != nil {
		t.Fatalf("ExtractCoordinates: %v", err)
	}
	if c.SlicePerm < 0 || c.SlicePerm >= SlicePermCount {
		t.Errorf("SlicePerm = %d out of range [0, %d)", c.SlicePerm, SlicePermCount)
	}
}
