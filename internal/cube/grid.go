package cube

import (
	"bufio"
	"fmt"
	"io"
)

// ParseGrid reads the 9-line sticker grid text format (§6): rows 0-2 and
// 6-8 are 3 spaces followed by 3 color characters, rows 3-5 are 12 color
// characters with no spaces. Any deviation in line count, row width,
// prefix spacing, character set, or color multiplicity is reported as
// ErrMalformedInput.
func ParseGrid(r io.Reader) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cube: read grid: %w", err)
	}
	if len(lines) != 9 {
		return nil, fmt.Errorf("%w: expected 9 lines, got %d", ErrMalformedInput, len(lines))
	}

	g := &Grid{}
	for row, line := range lines {
		switch {
		case row <= 2 || row >= 6:
			if len(line) != 6 || line[0] != ' ' || line[1] != ' ' || line[2] != ' ' {
				return nil, fmt.Errorf("%w: row %d must be 3 spaces + 3 colors", ErrMalformedInput, row)
			}
			for i := 0; i < 3; i++ {
				c := Color(line[3+i])
				if !colorIsValid(c) {
					return nil, fmt.Errorf("%w: row %d has invalid color %q", ErrMalformedInput, row, line[3+i])
				}
				g.cells[row][3+i] = c
			}
		default:
			if len(line) != 12 {
				return nil, fmt.Errorf("%w: row %d must be exactly 12 colors", ErrMalformedInput, row)
			}
			for col := 0; col < 12; col++ {
				c := Color(line[col])
				if !colorIsValid(c) {
					return nil, fmt.Errorf("%w: row %d has invalid color %q", ErrMalformedInput, row, line[col])
				}
				g.cells[row][col] = c
			}
		}
	}

	var counts [256]int
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
			return nil, fmt.Errorf("%w: color %q appears %d times, want 9", ErrMalformedInput, c, counts[c])
		}
	}

	return g, nil
}

// WriteTo writes the grid in the §6 text format.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for row := 0; row < 9; row++ {
		var line []byte
		if row <= 2 || row >= 6 {
			line = []byte{' ', ' ', ' ', byte(g.cells[row][3]), byte(g.cells[row][4]), byte(g.cells[row][5])}
		} else {
			line = make([]byte, 12)
			for col := 0; col < 12; col++ {
				line[col] = byte(g.cells[row][col])
			}
		}
		line = append(line, '\n')
		n, err := w.Write(line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
