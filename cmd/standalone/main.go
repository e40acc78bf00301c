//go:build !libretro && !ios

package main

import (
	"flag"
	"log"

	"github.com/user-none/eblitui/standalone"
	"github.com/user-none/emarc/adapter"
)

func main() {
	boardName := flag.String("board", "dogfgt", "board: dogfgt, bogeyman, or fcombat")
	romPath := flag.String("rom", "", "path to the board's ROM regions joined in order (opens UI if not provided)")
	flag.Parse()

	m, ok := adapter.Lookup(*boardName)
	if !ok {
		log.Fatalf("Invalid board: %s (use dogfgt, bogeyman, or fcombat)", *boardName)
	}
	factory := adapter.NewFactory(m)

	if *romPath != "" {
		if err := standalone.RunDirect(factory, *romPath, "auto", map[string]string{}); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := standalone.Run(factory); err != nil {
		log.Fatal(err)
	}
}
