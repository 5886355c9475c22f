package cube

import "testing"

func TestParseMoves(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []Move
	}{
		{"compact tokens", "U2 R'", []Move{MoveU2, MoveRPrime}},
		{"expanded single", "U U", []Move{MoveU2}},
		{"expanded triple", "R R R", []Move{MoveRPrime}},
		{"mixed", "U R2 F F F", []Move{MoveU, MoveR2, MoveFPrime}},
		{"empty", "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMoves(tc.input)
			if err != nil {
				t.Fatalf("ParseMoves(%q): %v", tc.input, err)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("ParseMoves(%q) = %v, want %v", tc.input, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("ParseMoves(%q)[%d] = %v, want %v", tc.input, i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestParseMovesRejectsUnknownToken(t *testing.T) {
	if _, err := ParseMoves("X"); err == nil {
		t.Error("expected error for unrecognized face letter")
	}
	if _, err := ParseMoves("U U U U"); err == nil {
		t.Error("expected error for a face repeated more than 3 times")
	}
}

func TestFormatSolution(t *testing.T) {
	moves := []Move{MoveU, MoveR2, MoveFPrime}

	if got, want := FormatSolution(moves, false), "U R2 F'"; got != want {
		t.Errorf("FormatSolution(compact) = %q, want %q", got, want)
	}
	if got, want := FormatSolution(moves, true), "U R R F F F"; got != want {
		t.Errorf("FormatSolution(expanded) = %q, want %q", got, want)
	}
	if got := FormatSolution(nil, true); got != "" {
		t.Errorf("FormatSolution(nil) = %q, want empty", got)
	}
}

func TestFormatSolutionParsesBack(t *testing.T) {
	moves := []Move{MoveU, MoveR2, MoveFPrime, MoveD2}
	expanded := FormatSolution(moves, true)

	reparsed, err := ParseMoves(expanded)
	if err != nil {
		t.Fatalf("ParseMoves(%q): %v", expanded, err)
	}
	if len(reparsed) != len(moves) {
		t.Fatalf("reparsed %v, want %v", reparsed, moves)
	}
	for i := range moves {
		if reparsed[i] != moves[i] {
			t.Errorf("reparsed[%d] = %v, want %v", i, reparsed[i], moves[i])
		}
	}
}
