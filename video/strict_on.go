//go:build videodebug

package video

// strictAddressing turns out-of-range layer addressing into a panic.
const strictAddressing = true
