package kociemba

import "errors"

// errInvalidCube is returned when a grid's stickers don't form a physically
// possible cube: a sticker triple/pair at some position doesn't match any
// cubie's home color set. ParseGrid's color-count check does not rule this
// out: it counts colors per grid, not which colors meet at a corner or edge.
var errInvalidCube = errors.New("kociemba: grid does not correspond to a valid cube")

// ErrUnsolvable is returned by Solve when a structurally valid grid is not
// actually reachable from a solved cube (wrong permutation or orientation
// parity — see §7 and §8's reachability property).
var ErrUnsolvable = errors.New("kociemba: cube state is not solvable")
