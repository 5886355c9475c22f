package cube

import "testing"

func TestOptimizeMoves(t *testing.T) {
	testCases := []struct {
		name     string
		input    []Move
		expected []Move
	}{
		{"doubling", []Move{MoveR, MoveR}, []Move{MoveR2}},
		{"triple", []Move{MoveR, MoveR, MoveR}, []Move{MoveRPrime}},
		{"quadruple cancels", []Move{MoveR, MoveR, MoveR, MoveR}, nil},
		{"canceling pair", []Move{MoveR, MoveRPrime}, nil},
		{"canceling pair reverse", []Move{MoveRPrime, MoveR}, nil},
		{"double canceling", []Move{MoveR2, MoveR2}, nil},
		{"double plus single", []Move{MoveR2, MoveR}, []Move{MoveRPrime}},
		{"no optimization possible", []Move{MoveR, MoveU, MoveRPrime, MoveUPrime}, []Move{MoveR, MoveU, MoveRPrime, MoveUPrime}},
		{"mixed optimization", []Move{MoveR, MoveR, MoveU, MoveUPrime, MoveF, MoveF, MoveF}, []Move{MoveR2, MoveFPrime}},
		{"empty sequence", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := OptimizeMoves(tc.input)
			if len(result) != len(tc.expected) {
				t.Fatalf("OptimizeMoves(%v) = %v, want %v", tc.input, result, tc.expected)
			}
			for i := range result {
				if result[i] != tc.expected[i] {
					t.Errorf("OptimizeMoves(%v) = %v, want %v", tc.input, result, tc.expected)
				}
			}
		})
	}
}

func TestIsCancellingSequence(t *testing.T) {
	testCases := []struct {
		name     string
		sequence []Move
		expected bool
	}{
		{"canceling pair", []Move{MoveR, MoveRPrime}, true},
		{"canceling quadruple", []Move{MoveR, MoveR, MoveR, MoveR}, true},
		{"double canceling", []Move{MoveR2, MoveR2}, true},
		{"non-canceling", []Move{MoveR, MoveU, MoveRPrime, MoveUPrime}, false},
		{"empty sequence", nil, true},
		{"single move", []Move{MoveR}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCancellingSequence(tc.sequence); got != tc.expected {
				t.Errorf("IsCancellingSequence(%v) = %v, want %v", tc.sequence, got, tc.expected)
			}
		})
	}
}

func TestGetMoveCount(t *testing.T) {
	testCases := []struct {
		name     string
		sequence []Move
		expected int
	}{
		{"simple", []Move{MoveR, MoveU}, 2},
		{"half turn counts twice", []Move{MoveR2}, 2},
		{"quarter turns", []Move{MoveR, MoveRPrime}, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetMoveCount(tc.sequence); got != tc.expected {
				t.Errorf("GetMoveCount(%v) = %d, want %d", tc.sequence, got, tc.expected)
			}
		})
	}
}
