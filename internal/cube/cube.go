package cube

// Face identifies one of the six faces of the cube.
type Face int

const (
	Up Face = iota
	Down
	Front
	Back
	Left
	Right
)

func (f Face) String() string {
	return []string{"U", "D", "F", "B", "L", "R"}[f]
}

// faceOrder fixes the enumeration order used by the move alphabet (§3):
// U, R, F, D, L, B.
var faceOrder = [6]Face{Up, Right, Front, Down, Left, Back}

// Color is a sticker color. The letters follow the canonical grid mapping
// in spec.md §6: O=U-face, R=D-face, W=F-face, Y=B-face, G=L-face, B=R-face.
type Color byte

const (
	ColorO Color = 'O' // U-face color
	ColorR Color = 'R' // D-face color
	ColorW Color = 'W' // F-face color
	ColorY Color = 'Y' // B-face color
	ColorG Color = 'G' // L-face color
	ColorB Color = 'B' // R-face color
	empty  Color = 0
)

func (c Color) String() string {
	if c == empty {
		return " "
	}
	return string(rune(c))
}

// homeColor is the center (and home) color of each face.
var homeColor = map[Face]Color{
	Up:    ColorO,
	Down:  ColorR,
	Front: ColorW,
	Back:  ColorY,
	Left:  ColorG,
	Right: ColorB,
}

func colorOf(f Face) Color { return homeColor[f] }

func colorIsValid(c Color) bool {
	switch c {
	case ColorO, ColorR, ColorW, ColorY, ColorG, ColorB:
		return true
	default:
		return false
	}
}

// Grid is the sticker-grid cube representation (C1): a 9x12 cross-shaped
// unfolding of the six faces. Rows 0-2 and 6-8 hold U and D at columns 3-5;
// rows 3-5 hold L, F, R, B side by side at columns 0-2, 3-5, 6-8, 9-11.
type Grid struct {
	cells [9][12]Color
}

// faceBlock returns the (rowOffset, colOffset) of a face's 3x3 block in
// the grid.
func faceBlock(f Face) (int, int) {
	switch f {
	case Up:
		return 0, 3
	case Left:
		return 3, 0
	case Front:
		return 3, 3
	case Right:
		return 3, 6
	case Back:
		return 3, 9
	case Down:
		return 6, 3
	}
	panic("cube: invalid face")
}

// NewSolvedGrid returns the canonical solved layout: every sticker matches
// its face's center color, and the four corner cells of the cross are left
// empty.
func NewSolvedGrid() *Grid {
	g := &Grid{}
	for _, f := range faceOrder {
		ro, co := faceBlock(f)
		c := colorOf(f)
		for r := 0; r < 3; r++ {
			for cc := 0; cc < 3; cc++ {
				g.cells[ro+r][co+cc] = c
			}
		}
	}
	return g
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	clone := *g
	return &clone
}

// Sticker returns the color at a grid cell, or 0 (empty) for an unused
// corner of the cross.
func (g *Grid) Sticker(row, col int) Color {
	return g.cells[row][col]
}

// SetSticker writes the color at a grid cell. Used by kociemba's cubie
// placement when building a Grid from coordinates.
func (g *Grid) SetSticker(row, col int, c Color) {
	g.cells[row][col] = c
}

// IsSolved reports whether every sticker matches its face's center color.
func (g *Grid) IsSolved() bool {
	for _, f := range faceOrder {
		ro, co := faceBlock(f)
		want := colorOf(f)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if g.cells[ro+r][co+c] != want {
					return false
				}
			}
		}
	}
	return true
}

// faceSticker reads a sticker using a face's own local (row, col) in 0..2.
func (g *Grid) faceSticker(f Face, row, col int) Color {
	ro, co := faceBlock(f)
	return g.cells[ro+row][co+col]
}

func (g *Grid) setFaceSticker(f Face, row, col int, c Color) {
	ro, co := faceBlock(f)
	g.cells[ro+row][co+col] = c
}

func (g *Grid) String() string {
	var out [9]string
	for r := 0; r < 9; r++ {
		var b []byte
		for c := 0; c < 12; c++ {
			ch := g.cells[r][c]
			if ch == empty {
				b = append(b, ' ')
			} else {
				b = append(b, byte(ch))
			}
		}
		out[r] = string(b)
	}
	s := ""
	for _, line := range out {
		s += line + "\n"
	}
	return s
}
