package cube

import "testing"

func TestMoveAppliedFourTimesIsIdentity(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		g := NewSolvedGrid()
		for i := 0; i < 4; i++ {
			g.Apply(m)
		}
		if !g.IsSolved() {
			t.Errorf("applying %s four times did not return to solved", m)
		}
	}
}

func TestHalfTurnEqualsTwoQuarterTurns(t *testing.T) {
	pairs := []struct{ half, quarter Move }{
		{MoveU2, MoveU}, {MoveR2, MoveR}, {MoveF2, MoveF},
		{MoveD2, MoveD}, {MoveL2, MoveL}, {MoveB2, MoveB},
	}
	for _, p := range pairs {
		g1 := NewSolvedGrid()
		g1.Apply(p.half)

		g2 := NewSolvedGrid()
		g2.Apply(p.quarter)
		g2.Apply(p.quarter)

		if g1.String() != g2.String() {
			t.Errorf("%s != %s twice", p.half, p.quarter)
		}
	}
}

func TestPrimeUndoesQuarterTurn(t *testing.T) {
	pairs := []struct{ m, inverse Move }{
		{MoveU, MoveUPrime}, {MoveR, MoveRPrime}, {MoveF, MoveFPrime},
		{MoveD, MoveDPrime}, {MoveL, MoveLPrime}, {MoveB, MoveBPrime},
	}
	for _, p := range pairs {
		g := NewSolvedGrid()
		g.Apply(p.m)
		g.Apply(p.inverse)
		if !g.IsSolved() {
			t.Errorf("%s then %s did not return to solved", p.m, p.inverse)
		}
	}
}

func TestOppositeFacesCommute(t *testing.T) {
	pairs := []struct{ a, b Move }{
		{MoveU, MoveD}, {MoveR, MoveL}, {MoveF, MoveB},
	}
	for _, p := range pairs {
		g1 := NewSolvedGrid()
		g1.Apply(p.a)
		g1.Apply(p.b)

		g2 := NewSolvedGrid()
		g2.Apply(p.b)
		g2.Apply(p.a)

		if g1.String() != g2.String() {
			t.Errorf("%s then %s != %s then %s", p.a, p.b, p.b, p.a)
		}
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	g := NewSolvedGrid()
	for i := 0; i < 6; i++ {
		g.ApplyMoves(moves)
	}
	if !g.IsSolved() {
		t.Errorf("sexy move applied 6 times did not return to solved")
	}
}

func TestColorMultiplicityPreservedAfterMoves(t *testing.T) {
	moves, err := ParseMoves("R U F' D2 L B R2 U' F D L2")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	g := NewSolvedGrid()
	g.ApplyMoves(moves)

	counts := map[Color]int{}
	for _, f := range faceOrder {
		ro, co := faceBlock(f)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				counts[g.cells[ro+r][co+c]]++
			}
		}
	}
	for _, c := range []Color{ColorO, ColorR, ColorW, ColorY, ColorG, ColorB} {
		if counts[c] != 9 {
			t.Errorf("color %q appears %d times after scramble, want 9", c, counts[c])
		}
	}
}
