package cube

import (
	"fmt"
	"strings"
)

var moveByName = map[string]Move{
	"U": MoveU, "U2": MoveU2, "U'": MoveUPrime,
	"R": MoveR, "R2": MoveR2, "R'": MoveRPrime,
	"F": MoveF, "F2": MoveF2, "F'": MoveFPrime,
	"D": MoveD, "D2": MoveD2, "D'": MoveDPrime,
	"L": MoveL, "L2": MoveL2, "L'": MoveLPrime,
	"B": MoveB, "B2": MoveB2, "B'": MoveBPrime,
}

// ParseMove parses a single move token, compact ("U2", "U'") or the
// expanded repeated-letter form used by the output formatter ("U", "U U",
// "U U U" are each handled one token at a time by the caller — this parses
// one already-split token).
func ParseMove(token string) (Move, error) {
	if m, ok := moveByName[token]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: unrecognized move %q", ErrMalformedInput, token)
}

// ParseMoves parses a whitespace-separated move string. It accepts both
// compact tokens ("U2", "U'") and the expanded form (a face letter
// repeated 2 or 3 times in a row collapses to the half-turn/CCW move of
// that face), so it can read back either output format §6/§9 produces.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	var moves []Move
	i := 0
	for i < len(fields) {
		tok := fields[i]
		if len(tok) == 1 {
			repeat := 1
			for i+repeat < len(fields) && fields[i+repeat] == tok {
				repeat++
			}
			f, err := faceLetter(tok)
			if err != nil {
				return nil, err
			}
			if repeat < 1 || repeat > 3 {
				return nil, fmt.Errorf("%w: %q repeated %d times", ErrMalformedInput, tok, repeat)
			}
			moves = append(moves, moveOf(f, repeat))
			i += repeat
			continue
		}
		if m, ok := moveByName[tok]; ok {
			moves = append(moves, m)
			i++
			continue
		}
		return nil, fmt.Errorf("%w: unrecognized move token %q", ErrMalformedInput, tok)
	}
	return moves, nil
}

func faceLetter(s string) (Face, error) {
	switch s {
	case "U":
		return Up, nil
	case "D":
		return Down, nil
	case "F":
		return Front, nil
	case "B":
		return Back, nil
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized face %q", ErrMalformedInput, s)
	}
}

// FormatSolution renders a move sequence. In expanded form (the canonical
// boundary format, §6) half-turns are emitted as two repetitions of the CW
// quarter-turn and CCW turns as three, e.g. U2 -> "U U", U' -> "U U U". In
// compact form each move is a single token, e.g. "U2", "U'" — resolving
// the interoperability ambiguity spec.md §9 flags, via cube3's --compact
// flag.
func FormatSolution(moves []Move, expanded bool) string {
	var sb strings.Builder
	first := true
	for _, m := range moves {
		if expanded {
			letter := m.faceOf().String()
			for i := 0; i < m.quarterTurns(); i++ {
				if !first {
					sb.WriteByte(' ')
				}
				sb.WriteString(letter)
				first = false
			}
		} else {
			if !first {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.String())
			first = false
		}
	}
	return sb.String()
}
