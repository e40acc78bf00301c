package ui

import (
	"sync"
	"testing"
	"time"
)

func TestFrameHandoff_UpdateRead(t *testing.T) {
	h := NewFrameHandoff(16)

	pixels, stride, height := h.Read()
	if len(pixels) != 0 || stride != 0 || height != 0 {
		t.Fatalf("expected empty frame, got %d bytes %d/%d", len(pixels), stride, height)
	}

	frame := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	h.Update(frame, 4, 2)
	frame[0] = 99

	pixels, stride, height = h.Read()
	if stride != 4 || height != 2 {
		t.Errorf("expected 4/2, got %d/%d", stride, height)
	}
	if len(pixels) != 8 || pixels[0] != 1 || pixels[7] != 8 {
		t.Errorf("unexpected pixels %v", pixels)
	}
	if h.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", h.Frames())
	}
}

func TestFrameHandoff_Truncates(t *testing.T) {
	h := NewFrameHandoff(4)
	h.Update([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 4, 2)

	pixels, _, _ := h.Read()
	if len(pixels) != 4 {
		t.Errorf("expected 4 bytes, got %d", len(pixels))
	}
}

func TestFrameHandoff_Concurrent(t *testing.T) {
	h := NewFrameHandoff(64)
	frame := make([]byte, 64)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			for j := range frame {
				frame[j] = byte(i)
			}
			h.Update(frame, 8, 8)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			pixels, _, _ := h.Read()
			// a frame is never torn
			for j := 1; j < len(pixels); j++ {
				if pixels[j] != pixels[0] {
					t.Errorf("torn frame at read %d", i)
					return
				}
			}
		}
	}()
	wg.Wait()
}

func TestRunControl_PauseResumeStop(t *testing.T) {
	rc := NewRunControl()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for rc.CheckPause() {
			time.Sleep(time.Millisecond)
		}
	}()

	rc.RequestPause()
	if !rc.IsPaused() {
		t.Error("expected paused after RequestPause")
	}
	rc.RequestResume()
	rc.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("frame goroutine did not stop")
	}
	if rc.ShouldRun() {
		t.Error("expected ShouldRun false after Stop")
	}
}

func TestRunControl_PauseAfterExit(t *testing.T) {
	rc := NewRunControl()
	done := make(chan struct{})

	// the goroutine leaves without ever calling CheckPause
	go func() {
		time.Sleep(10 * time.Millisecond)
		rc.Exited()
	}()
	go func() {
		defer close(done)
		rc.RequestPause()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RequestPause blocked after the frame goroutine exited")
	}
	if rc.IsPaused() {
		t.Error("expected not paused")
	}
}

func TestRunControl_PauseAfterStop(t *testing.T) {
	rc := NewRunControl()
	rc.Stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		rc.RequestPause()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RequestPause blocked after Stop")
	}
	if rc.CheckPause() {
		t.Error("expected CheckPause false after Stop")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name              string
		screenW, screenH  int
		width, height     int
		scale, offX, offY float64
	}{
		{"exact", 256, 240, 256, 240, 1, 0, 0},
		{"pillarbox", 1024, 480, 256, 240, 2, 256, 0},
		{"letterbox", 512, 600, 256, 240, 2, 0, 60},
		{"empty", 100, 100, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		scale, offX, offY := Fit(tt.screenW, tt.screenH, tt.width, tt.height)
		if scale != tt.scale || offX != tt.offX || offY != tt.offY {
			t.Errorf("%s: expected %v/%v/%v, got %v/%v/%v", tt.name, tt.scale, tt.offX, tt.offY, scale, offX, offY)
		}
	}
}
