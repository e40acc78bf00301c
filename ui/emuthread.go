// Package ui holds the pieces shared between the frame goroutine and the
// display thread.
package ui

import "sync"

// FrameHandoff holds pixel data written by the frame goroutine and read by
// the display thread. Uses separate write and read buffers so the frame
// goroutine can write new data while the display uses the read copy.
type FrameHandoff struct {
	mu          sync.Mutex
	writePixels []byte // Written by frame goroutine under lock
	readPixels  []byte // Snapshot copied on Read for safe external use
	stride      int
	height      int
	frames      uint64
}

// NewFrameHandoff creates a hand-off sized for frames of up to size bytes.
func NewFrameHandoff(size int) *FrameHandoff {
	return &FrameHandoff{
		writePixels: make([]byte, size),
		readPixels:  make([]byte, size),
	}
}

// Update copies a finished frame from the frame goroutine.
func (h *FrameHandoff) Update(pixels []byte, stride, height int) {
	h.mu.Lock()
	n := min(stride*height, len(h.writePixels), len(pixels))
	copy(h.writePixels[:n], pixels[:n])
	h.stride = stride
	h.height = height
	h.frames++
	h.mu.Unlock()
}

// Read returns a snapshot of the latest frame. The returned slice stays
// valid until the next Read.
func (h *FrameHandoff) Read() (pixels []byte, stride, height int) {
	h.mu.Lock()
	stride = h.stride
	height = h.height
	n := min(stride*height, len(h.writePixels))
	if n > 0 {
		copy(h.readPixels[:n], h.writePixels[:n])
	}
	pixels = h.readPixels[:n]
	h.mu.Unlock()
	return
}

// Frames returns the number of frames handed off so far.
func (h *FrameHandoff) Frames() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// RunControl coordinates pausing and stopping the frame goroutine from the
// display thread. The frame goroutine calls CheckPause between frames and
// Exited when it returns.
type RunControl struct {
	mu   sync.Mutex
	cond *sync.Cond

	pauseReq bool
	paused   bool
	stopped  bool
	exited   bool
}

// NewRunControl creates a run control for a running goroutine.
func NewRunControl() *RunControl {
	rc := &RunControl{}
	rc.cond = sync.NewCond(&rc.mu)
	return rc
}

// RequestPause blocks until the frame goroutine has parked in CheckPause.
// It returns early if the goroutine is stopped or has already exited.
func (rc *RunControl) RequestPause() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.pauseReq = true
	for !rc.paused && !rc.stopped && !rc.exited {
		rc.cond.Wait()
	}
}

// RequestResume releases a paused frame goroutine.
func (rc *RunControl) RequestResume() {
	rc.mu.Lock()
	rc.pauseReq = false
	rc.paused = false
	rc.cond.Broadcast()
	rc.mu.Unlock()
}

// CheckPause parks the frame goroutine while a pause is requested. It
// returns false once the goroutine should exit.
func (rc *RunControl) CheckPause() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	for rc.pauseReq && !rc.stopped {
		if !rc.paused {
			rc.paused = true
			rc.cond.Broadcast()
		}
		rc.cond.Wait()
	}
	rc.paused = false
	return !rc.stopped
}

// Stop tells the frame goroutine to exit, waking it if paused.
func (rc *RunControl) Stop() {
	rc.mu.Lock()
	rc.stopped = true
	rc.pauseReq = false
	rc.cond.Broadcast()
	rc.mu.Unlock()
}

// Exited is called by the frame goroutine as it returns, for whatever
// reason, so a pending RequestPause does not wait for an acknowledgement
// that will never come.
func (rc *RunControl) Exited() {
	rc.mu.Lock()
	rc.exited = true
	rc.cond.Broadcast()
	rc.mu.Unlock()
}

// ShouldRun reports whether the frame goroutine has not been stopped.
func (rc *RunControl) ShouldRun() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return !rc.stopped
}

// IsPaused reports whether the frame goroutine is parked.
func (rc *RunControl) IsPaused() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.paused
}

// Fit returns the largest uniform scale that fits a width x height image
// inside a screenW x screenH area, and the offsets that centre it.
func Fit(screenW, screenH, width, height int) (scale, offsetX, offsetY float64) {
	if width <= 0 || height <= 0 {
		return 0, 0, 0
	}
	nativeW := float64(width)
	nativeH := float64(height)

	scale = min(float64(screenW)/nativeW, float64(screenH)/nativeH)
	offsetX = (float64(screenW) - nativeW*scale) / 2
	offsetY = (float64(screenH) - nativeH*scale) / 2
	return scale, offsetX, offsetY
}
