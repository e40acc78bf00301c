package main

import (
	libretro "github.com/user-none/eblitui/libretro"
	"github.com/user-none/emarc/adapter"
)

// board picks the machine the core runs. Set it at link time with
// -ldflags "-X main.board=fcombat".
var board = "dogfgt"

func init() {
	m, ok := adapter.Lookup(board)
	if !ok {
		m = adapter.DogFight
	}
	// the cores take no input
	libretro.RegisterFactory(adapter.NewFactory(m), nil)
}

func main() {}
