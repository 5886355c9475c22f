package cube

// Move is one of the 18 named quarter/half/counter-turns (§3: "Move
// alphabet"), grouped by face in the order U, R, F, D, L, B, each
// contributing {CW, half, CCW} in that order. A flat int enum replaces the
// teacher's NxN-generalized Move struct: this system is 3x3-only and the
// move space is small and fixed.
type Move int

const (
	MoveU Move = iota
	MoveU2
	MoveUPrime
	MoveR
	MoveR2
	MoveRPrime
	MoveF
	MoveF2
	MoveFPrime
	MoveD
	MoveD2
	MoveDPrime
	MoveL
	MoveL2
	MoveLPrime
	MoveB
	MoveB2
	MoveBPrime
)

// NumMoves is the size of the full move alphabet.
const NumMoves = 18

// Phase2Moves lists the 10 G1-preserving moves in enumeration order, used
// by phase-2 search (§4.6).
var Phase2Moves = [10]Move{MoveU, MoveU2, MoveUPrime, MoveD, MoveD2, MoveDPrime, MoveR2, MoveL2, MoveF2, MoveB2}

var moveNames = [18]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

func (m Move) String() string {
	return moveNames[m]
}

// faceOf returns the face a move turns.
func (m Move) faceOf() Face {
	switch m / 3 {
	case 0:
		return Up
	case 1:
		return Right
	case 2:
		return Front
	case 3:
		return Down
	case 4:
		return Left
	default:
		return Back
	}
}

// quarterTurns returns how many clockwise quarter turns the move applies:
// 1 for CW, 2 for a half turn, 3 for CCW.
func (m Move) quarterTurns() int {
	return int(m%3) + 1
}

// moveOf builds the Move for a face and a quarter-turn count (1..3).
func moveOf(f Face, qt int) Move {
	var base Move
	switch f {
	case Up:
		base = MoveU
	case Right:
		base = MoveR
	case Front:
		base = MoveF
	case Down:
		base = MoveD
	case Left:
		base = MoveL
	case Back:
		base = MoveB
	}
	return base + Move(qt-1)
}

// gridCell addresses a sticker by its global (row, col) in the 9x12 grid.
type gridCell struct{ row, col int }

// band is the 12-cell ring of neighbor-face stickers that cycle when a
// face turns, followed for rotation purposes by the 8-cell ring of the
// turning face's own stickers. The teacher's ring_generators.go
// (ringU/ringD/ringL/ringR/ringF/ringB) stores each face as an independent
// array with no enforced adjacency to its neighbors, so its row/col
// traversal directions don't carry over to this grid, where L/F/R/B really
// do share physical edges. The shape of the approach is still the
// teacher's — express a face turn as two cyclic shifts over fixed cell
// lists — but each list below was worked out directly from this grid's
// own cross-shaped adjacency (which sticker pairs sit at the same cube
// corner or edge) rather than copied from the teacher's per-face arrays.
type band struct {
	neighbors [12]gridCell
	own       [8]gridCell
}

func cell(f Face, localRow, localCol int) gridCell {
	ro, co := faceBlock(f)
	return gridCell{ro + localRow, co + localCol}
}

// ownRing is the 8-cell outer ring of any face's own 3x3 block, visited in
// the same order the teacher's generateFaceRing(face, N=3, layer=0)
// produces: top row left-to-right, right column top-to-bottom, bottom row
// right-to-left, left column bottom-to-top (excluding corners already
// listed), i.e. clockwise starting from the top-left corner.
func ownRing(f Face) [8]gridCell {
	return [8]gridCell{
		cell(f, 0, 0), cell(f, 0, 1), cell(f, 0, 2),
		cell(f, 1, 2),
		cell(f, 2, 2), cell(f, 2, 1), cell(f, 2, 0),
		cell(f, 1, 0),
	}
}

var bands = map[Face]band{
	// U turn cycles the top row of B, R, F, L, straight across (no reversal):
	// each face's own top-row stickers move to the next face's top row.
	Up: {neighbors: [12]gridCell{
		cell(Back, 0, 0), cell(Back, 0, 1), cell(Back, 0, 2),
		cell(Right, 0, 0), cell(Right, 0, 1), cell(Right, 0, 2),
		cell(Front, 0, 0), cell(Front, 0, 1), cell(Front, 0, 2),
		cell(Left, 0, 0), cell(Left, 0, 1), cell(Left, 0, 2),
	}, own: ownRing(Up)},

	// D turn cycles the bottom row of F, R, B, L, straight across.
	Down: {neighbors: [12]gridCell{
		cell(Front, 2, 0), cell(Front, 2, 1), cell(Front, 2, 2),
		cell(Right, 2, 0), cell(Right, 2, 1), cell(Right, 2, 2),
		cell(Back, 2, 0), cell(Back, 2, 1), cell(Back, 2, 2),
		cell(Left, 2, 0), cell(Left, 2, 1), cell(Left, 2, 2),
	}, own: ownRing(Down)},

	// F turn cycles U's bottom row, R's left column, D's top row (reversed),
	// L's right column (reversed).
	Front: {neighbors: [12]gridCell{
		cell(Up, 2, 0), cell(Up, 2, 1), cell(Up, 2, 2),
		cell(Right, 0, 0), cell(Right, 1, 0), cell(Right, 2, 0),
		cell(Down, 0, 2), cell(Down, 0, 1), cell(Down, 0, 0),
		cell(Left, 2, 2), cell(Left, 1, 2), cell(Left, 0, 2),
	}, own: ownRing(Front)},

	// B turn cycles U's top row (reversed), L's left column, D's bottom
	// row, R's right column (reversed). B sits at the far end of the
	// cross, so U and D are met along their top and bottom rows
	// respectively, and L and R along their outer columns.
	Back: {neighbors: [12]gridCell{
		cell(Up, 0, 2), cell(Up, 0, 1), cell(Up, 0, 0),
		cell(Left, 0, 0), cell(Left, 1, 0), cell(Left, 2, 0),
		cell(Down, 2, 0), cell(Down, 2, 1), cell(Down, 2, 2),
		cell(Right, 2, 2), cell(Right, 1, 2), cell(Right, 0, 2),
	}, own: ownRing(Back)},

	// L turn cycles U's left column, F's left column, D's left column
	// (all straight), then B's right column, which wraps with rows
	// reversed since B is attached to the cross at its far edge.
	Left: {neighbors: [12]gridCell{
		cell(Up, 0, 0), cell(Up, 1, 0), cell(Up, 2, 0),
		cell(Front, 0, 0), cell(Front, 1, 0), cell(Front, 2, 0),
		cell(Down, 0, 0), cell(Down, 1, 0), cell(Down, 2, 0),
		cell(Back, 2, 2), cell(Back, 1, 2), cell(Back, 0, 2),
	}, own: ownRing(Left)},

	// R turn cycles U's right column (reversed), B's left column
	// (straight, B's near edge), D's right column (reversed), F's right
	// column (reversed). U/D appear reversed here because R's cycle runs
	// the opposite rotational sense through U and D compared to L's.
	Right: {neighbors: [12]gridCell{
		cell(Up, 2, 2), cell(Up, 1, 2), cell(Up, 0, 2),
		cell(Back, 0, 0), cell(Back, 1, 0), cell(Back, 2, 0),
		cell(Down, 2, 2), cell(Down, 1, 2), cell(Down, 0, 2),
		cell(Front, 2, 2), cell(Front, 1, 2), cell(Front, 0, 2),
	}, own: ownRing(Right)},
}

// rotateCells cyclically shifts the colors living at cells by shift
// positions: the color at cells[i] moves to cells[(i+shift)%n], matching
// the teacher's rotateSlice convention in permutations.go.
func rotateCells(g *Grid, cells []gridCell, shift int) {
	n := len(cells)
	shift = ((shift % n) + n) % n
	if shift == 0 {
		return
	}
	old := make([]Color, n)
	for i, c := range cells {
		old[i] = g.cells[c.row][c.col]
	}
	for i, c := range cells {
		g.cells[c.row][c.col] = old[(i-shift+n)%n]
	}
}

// Apply rotates one face by the move's quarter-turn count, in place.
func (g *Grid) Apply(m Move) {
	f := m.faceOf()
	qt := m.quarterTurns()
	b := bands[f]

	neighbors := b.neighbors[:]
	rotateCells(g, neighbors, 3*qt)

	own := b.own[:]
	rotateCells(g, own, 2*qt)
}

// ApplyMoves applies a sequence of moves in order.
func (g *Grid) ApplyMoves(moves []Move) {
	for _, m := range moves {
		g.Apply(m)
	}
}
