package kociemba

import "github.com/corvidtools/cube3/internal/cube"

// Corner identifies one of the 8 corner cubies by its solved-position name.
type Corner int

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge identifies one of the 12 edge cubies by its solved-position name.
// FR, FL, BL, BR (indices 8-11) are the four UDSlice edges (§4.2).
type Edge int

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

type cellPos struct{ row, col int }

// cornerCells lists, for each of the 8 corner positions (in the order
// above), its 3 grid cells in a fixed slot order: slot 0 is always the
// U-or-D-facing cell (every corner touches U or D), slots 1 and 2 are the
// other two faces, listed in the same rotational sense around every corner
// (U, F, R for URF). Coordinates are global (row, col) into cube.Grid.
var cornerCells = [8][3]cellPos{
	URF: {{2, 5}, {3, 5}, {3, 6}},
	UFL: {{2, 3}, {3, 2}, {3, 3}},
	ULB: {{0, 3}, {3, 11}, {3, 0}},
	UBR: {{0, 5}, {3, 8}, {3, 9}},
	DFR: {{6, 5}, {5, 6}, {5, 5}},
	DLF: {{6, 3}, {5, 3}, {5, 2}},
	DBL: {{8, 3}, {5, 0}, {5, 11}},
	DRB: {{8, 5}, {5, 9}, {5, 8}},
}

// cornerHomeColors gives the 3 colors a solved cube shows at each slot of
// cornerCells.
var cornerHomeColors = [8][3]cube.Color{
	URF: {cube.ColorO, cube.ColorW, cube.ColorB},
	UFL: {cube.ColorO, cube.ColorG, cube.ColorW},
	ULB: {cube.ColorO, cube.ColorY, cube.ColorG},
	UBR: {cube.ColorO, cube.ColorB, cube.ColorY},
	DFR: {cube.ColorR, cube.ColorB, cube.ColorW},
	DLF: {cube.ColorR, cube.ColorW, cube.ColorG},
	DBL: {cube.ColorR, cube.ColorG, cube.ColorY},
	DRB: {cube.ColorR, cube.ColorY, cube.ColorB},
}

// edgeCells lists, for each of the 12 edge positions, its 2 grid cells.
// Slot 0 is the higher-priority axis face under the U/D > F/B > L/R
// ordering used for the flip coordinate; slot 1 is the other.
var edgeCells = [12][2]cellPos{
	UR: {{1, 5}, {3, 7}},
	UF: {{2, 4}, {3, 4}},
	UL: {{1, 3}, {3, 1}},
	UB: {{0, 4}, {3, 10}},
	DR: {{7, 5}, {5, 7}},
	DF: {{6, 4}, {5, 4}},
	DL: {{7, 3}, {5, 1}},
	DB: {{8, 4}, {5, 10}},
	FR: {{4, 5}, {4, 6}},
	FL: {{4, 3}, {4, 2}},
	BL: {{4, 11}, {4, 0}},
	BR: {{4, 9}, {4, 8}},
}

var edgeHomeColors = [12][2]cube.Color{
	UR: {cube.ColorO, cube.ColorB},
	UF: {cube.ColorO, cube.ColorW},
	UL: {cube.ColorO, cube.ColorG},
	UB: {cube.ColorO, cube.ColorY},
	DR: {cube.ColorR, cube.ColorB},
	DF: {cube.ColorR, cube.ColorW},
	DL: {cube.ColorR, cube.ColorG},
	DB: {cube.ColorR, cube.ColorY},
	FR: {cube.ColorW, cube.ColorB},
	FL: {cube.ColorW, cube.ColorG},
	BL: {cube.ColorY, cube.ColorG},
	BR: {cube.ColorY, cube.ColorB},
}

// axis groups the three pairs of opposite colors so corner twist and edge
// flip can be read off without caring which specific cubie occupies a
// position.
type axis int

const (
	axisUD axis = iota
	axisFB
	axisLR
)

func axisOf(c cube.Color) axis {
	switch c {
	case cube.ColorO, cube.ColorR:
		return axisUD
	case cube.ColorW, cube.ColorY:
		return axisFB
	default:
		return axisLR
	}
}

var cornerColorKey = buildCornerColorKey()
var edgeColorKey = buildEdgeColorKey()

func colorSetKey3(a, b, c cube.Color) [3]cube.Color {
	s := [3]cube.Color{a, b, c}
	// insertion sort; 3 elements, not worth a library.
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
	return s
}

func colorSetKey2(a, b cube.Color) [2]cube.Color {
	if a > b {
		a, b = b, a
	}
	return [2]cube.Color{a, b}
}

func buildCornerColorKey() map[[3]cube.Color]Corner {
	m := make(map[[3]cube.Color]Corner, 8)
	for i, hc := range cornerHomeColors {
		m[colorSetKey3(hc[0], hc[1], hc[2])] = Corner(i)
	}
	return m
}

func buildEdgeColorKey() map[[2]cube.Color]Edge {
	m := make(map[[2]cube.Color]Edge, 12)
	for i, hc := range edgeHomeColors {
		m[colorSetKey2(hc[0], hc[1])] = Edge(i)
	}
	return m
}

// identifyCorner reads the 3 actual stickers at a corner position and
// reports which cubie is there and its orientation: the slot (0, 1 or 2)
// of cornerCells that holds its U/D-colored sticker.
func identifyCorner(g *cube.Grid, pos int) (Corner, int, error) {
	cells := cornerCells[pos]
	var c [3]cube.Color
	for i, cp := range cells {
		c[i] = g.Sticker(cp.row, cp.col)
	}
	id, ok := cornerColorKey[colorSetKey3(c[0], c[1], c[2])]
	if !ok {
		return 0, 0, errInvalidCube
	}
	twist := -1
	for i, col := range c {
		if axisOf(col) == axisUD {
			twist = i
			break
		}
	}
	if twist < 0 {
		return 0, 0, errInvalidCube
	}
	return id, twist, nil
}

// identifyEdge reads the 2 actual stickers at an edge position and reports
// which cubie is there and its orientation (0 = the cubie's own slot-0 color
// sits in the position's slot-0 cell, 1 = flipped).
func identifyEdge(g *cube.Grid, pos int) (Edge, int, error) {
	cells := edgeCells[pos]
	c0 := g.Sticker(cells[0].row, cells[0].col)
	c1 := g.Sticker(cells[1].row, cells[1].col)
	id, ok := edgeColorKey[colorSetKey2(c0, c1)]
	if !ok {
		return 0, 0, errInvalidCube
	}
	if c0 == edgeHomeColors[id][0] {
		return id, 0, nil
	}
	return id, 1, nil
}

// placeCorner writes a corner cubie's 3 stickers at a position, applying
// the requested orientation.
func placeCorner(g *cube.Grid, pos int, id Corner, twist int) {
	cells := cornerCells[pos]
	home := cornerHomeColors[id]
	for slot := 0; slot < 3; slot++ {
		src := (slot - twist + 3) % 3
		cp := cells[slot]
		g.SetSticker(cp.row, cp.col, home[src])
	}
}

// placeEdge writes an edge cubie's 2 stickers at a position, applying the
// requested orientation.
func placeEdge(g *cube.Grid, pos int, id Edge, flip int) {
	cells := edgeCells[pos]
	home := edgeHomeColors[id]
	if flip == 0 {
		g.SetSticker(cells[0].row, cells[0].col, home[0])
		g.SetSticker(cells[1].row, cells[1].col, home[1])
	} else {
		g.SetSticker(cells[0].row, cells[0].col, home[1])
		g.SetSticker(cells[1].row, cells[1].col, home[0])
	}
}
