package kociemba

import (
	"testing"

	"github.com/corvidtools/cube3/internal/cube"
)

func TestIdentifyCornerSolved(t *testing.T) {
	g := cube.NewSolvedGrid()
	for pos := 0; pos < 8; pos++ {
		id, twist, err := identifyCorner(g, pos)
		if err != nil {
			t.Fatalf("identifyCorner(%d): %v", pos, err)
		}
		if id != Corner(pos) {
			t.Errorf("identifyCorner(%d) = %v, want %v", pos, id, Corner(pos))
		}
		if twist != 0 {
			t.Errorf("identifyCorner(%d) twist = %d, want 0", pos, twist)
		}
	}
}

func TestIdentifyEdgeSolved(t *testing.T) {
	g := cube.NewSolvedGrid()
	for pos := 0; pos < 12; pos++ {
		id, flip, err := identifyEdge(g, pos)
		if err != nil {
			t.Fatalf("identifyEdge(%d): %v", pos, err)
		}
		if id != Edge(pos) {
			t.Errorf("identifyEdge(%d) = %v, want %v", pos, id, Edge(pos))
		}
		if flip != 0 {
			t.Errorf("identifyEdge(%d) flip = %d, want 0", pos, flip)
		}
	}
}

func TestPlaceCornerRoundTrip(t *testing.T) {
	g := cube.NewSolvedGrid()
	for pos := 0; pos < 8; pos++ {
		for twist := 0; twist < 3; twist++ {
			placeCorner(g, pos, Corner((pos+1)%8), twist)
			id, gotTwist, err := identifyCorner(g, pos)
			if err != nil {
				t.Fatalf("identifyCorner after placeCorner(%d, %d): %v", pos, twist, err)
			}
			if id != Corner((pos+1)%8) || gotTwist != twist {
				t.Errorf("placeCorner(%d, %d, %d) -> identify = (%v, %d)", pos, (pos+1)%8, twist, id, gotTwist)
			}
		}
	}
}

func TestPlaceEdgeRoundTrip(t *testing.T) {
	g := cube.NewSolvedGrid()
	for pos := 0; pos < 12; pos++ {
		for flip := 0; flip < 2; flip++ {
			placeEdge(g, pos, Edge((pos+1)%12), flip)
			id, gotFlip, err := identifyEdge(g, pos)
			if err != nil {
				t.Fatalf("identifyEdge after placeEdge(%d, %d): %v", pos, flip, err)
			}
			if id != Edge((pos+1)%12) || gotFlip != flip {
				t.Errorf("placeEdge(%d, %d, %d) -> identify = (%v, %d)", pos, (pos+1)%12, flip, id, gotFlip)
			}
		}
	}
}

func TestCubieStateFromSolvedGrid(t *testing.T) {
	g := cube.NewSolvedGrid()
	s, err := cubieStateFromGrid(g)
	if err != nil {
		t.Fatalf("cubieStateFromGrid: %v", err)
	}
	want := solvedCubieState()
	if s != want {
		t.Errorf("cubieStateFromGrid(solved) = %+v, want %+v", s, want)
	}
}
