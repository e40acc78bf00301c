package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	emucore "github.com/user-none/eblitui/api"
	"github.com/user-none/emarc/logger"
	"github.com/user-none/emarc/ui"
)

// Viewer runs an emulator on a dedicated goroutine and shows its frames.
// The goroutine paces itself to the emulator's timing. The Ebiten thread
// only reads the latest finished frame.
type Viewer struct {
	emulator  emucore.Emulator
	presenter *Presenter

	control *ui.RunControl
	handoff *ui.FrameHandoff
	done    chan struct{}
}

// NewViewer creates a Viewer for e, whose frames are width x height, and
// starts the frame goroutine.
func NewViewer(e emucore.Emulator, width, height int) *Viewer {
	v := &Viewer{
		emulator:  e,
		presenter: NewPresenter(width),
		control:   ui.NewRunControl(),
		handoff:   ui.NewFrameHandoff(width * height * 4),
		done:      make(chan struct{}),
	}

	go v.frameLoop()

	return v
}

// Close stops the frame goroutine and waits for it to exit.
func (v *Viewer) Close() {
	if v.control != nil {
		v.control.Stop()
		<-v.done
		v.control = nil
	}
}

// frameLoop runs on a dedicated goroutine.
func (v *Viewer) frameLoop() {
	defer close(v.done)
	defer v.control.Exited()

	timing := v.emulator.GetTiming()
	frameTime := time.Duration(float64(time.Second) / float64(max(timing.FPS, 1)))
	lastFrameTime := time.Now()

	for {
		if !v.control.CheckPause() {
			return
		}

		v.emulator.RunFrame()

		v.handoff.Update(
			v.emulator.GetFramebuffer(),
			v.emulator.GetFramebufferStride(),
			v.emulator.GetActiveHeight(),
		)

		sleepTime := frameTime - time.Since(lastFrameTime)
		if sleepTime > time.Millisecond {
			time.Sleep(sleepTime)
		}

		lastFrameTime = time.Now()
	}
}

// Update implements ebiten.Game. P toggles pause.
func (v *Viewer) Update() error {
	if !ebiten.IsFocused() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if v.control.IsPaused() {
			v.control.RequestResume()
			logger.Log("viewer", "resumed")
		} else {
			v.control.RequestPause()
			logger.Log("viewer", "paused")
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	pixels, stride, height := v.handoff.Read()
	if height == 0 {
		return
	}
	v.presenter.Draw(screen, pixels, stride, height)
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.presenter.Layout(outsideWidth, outsideHeight)
}
