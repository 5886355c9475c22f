package cube

// OptimizeMoves collapses redundant consecutive same-face moves into a
// single quarter-turn count (mod 4), dropping any that cancel out
// entirely. Adapted from the teacher's optimizer.go, generalized from its
// NxN move struct to the fixed 18-move alphabet.
func OptimizeMoves(moves []Move) []Move {
	var out []Move
	i := 0
	for i < len(moves) {
		f := moves[i].faceOf()
		total := moves[i].quarterTurns()
		j := i + 1
		for j < len(moves) && moves[j].faceOf() == f {
			total += moves[j].quarterTurns()
			j++
		}
		total %= 4
		if total != 0 {
			out = append(out, moveOf(f, total))
		}
		i = j
	}
	return out
}

// GetMoveCount returns the number of quarter turns a move sequence
// represents, counting half turns as 2.
func GetMoveCount(moves []Move) int {
	n := 0
	for _, m := range moves {
		qt := m.quarterTurns()
		if qt == 2 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// IsCancellingSequence reports whether OptimizeMoves reduces moves to the
// empty sequence, i.e. every run of consecutive same-face moves totals a
// multiple of 4 quarter-turns. Sequences that return to the identity in
// any other way (such as R U U' R', where the R turns only meet after the
// U run is dropped) are reported as not cancelling.
func IsCancellingSequence(moves []Move) bool {
	return len(OptimizeMoves(moves)) == 0
}
