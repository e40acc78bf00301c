package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
	emucore "github.com/user-none/eblitui/api"
	"github.com/user-none/emarc/adapter"
	emubridge "github.com/user-none/emarc/bridge/ebiten"
	"github.com/user-none/emarc/logger"
	"github.com/user-none/emarc/romset"
)

func main() {
	boardName := flag.String("board", "dogfgt", "board: dogfgt, bogeyman, or fcombat")
	romDir := flag.String("roms", "", "directory holding one file per ROM region (required)")
	scale := flag.Int("scale", 2, "window scale")
	shot := flag.String("screenshot", "", "draw one frame, write it to this PNG file and exit")
	verbose := flag.Bool("v", false, "echo log entries to stderr")
	flag.Parse()

	if *romDir == "" {
		log.Fatal("ROM directory is required. Usage: emarc -board <name> -roms <dir>")
	}
	if *verbose {
		logger.SetEcho(os.Stderr)
	}

	m, ok := adapter.Lookup(*boardName)
	if !ok {
		log.Fatalf("Invalid board: %s (use dogfgt, bogeyman, or fcombat)", *boardName)
	}

	set, err := romset.Load(afero.NewOsFs(), *romDir, m.Regions)
	if err != nil {
		log.Fatalf("Failed to load ROMs: %v", err)
	}

	core, err := adapter.NewCoreFromSet(m, set, emucore.RegionNTSC)
	if err != nil {
		log.Fatalf("Failed to initialize board: %v", err)
	}
	defer core.Close()

	if *shot != "" {
		core.RunFrame()
		if err := writePNG(*shot, core, *scale); err != nil {
			log.Fatalf("Failed to write screenshot: %v", err)
		}
		return
	}

	ebiten.SetWindowSize(m.Width()**scale, m.Height()**scale)
	ebiten.SetWindowTitle(adapter.Name + " - " + m.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(m.FPS)

	viewer := emubridge.NewViewer(core, m.Width(), m.Height())
	defer viewer.Close()

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}

func writePNG(path string, core *adapter.Core, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, core.Screenshot(scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
