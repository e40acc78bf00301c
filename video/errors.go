package video

import "errors"

// ErrShortPROM is returned when a colour PROM is smaller than its layout.
var ErrShortPROM = errors.New("colour PROM too short")

// ErrMissingGfx is returned when a board is configured without one of its
// graphics elements.
var ErrMissingGfx = errors.New("missing graphics element")
