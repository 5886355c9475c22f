package cube

import "errors"

// ErrMalformedInput is returned when a sticker grid or move string fails
// structural or character-set validation (§7).
var ErrMalformedInput = errors.New("cube: malformed input")
