package server

import (
	"image"
	"image/color"
	"reflect"
	"strings"
	"sync"
	"testing"

	"tile-curses/internal/game"
	"tile-curses/internal/render"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Command
	}{
		{"quit", "q", []Command{CmdQuit}},
		{"ctrl-c", "\x03", []Command{CmdQuit}},
		{"redraw", "r\x0c", []Command{CmdRedraw, CmdRedraw}},
		{"arrows ignored", "\x1b[A\x1b[Dq", []Command{CmdQuit}},
		{"other keys", "xyz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseInput([]byte(tt.in)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseInput(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// syncBuffer is a strings.Builder safe for the test goroutine to read.
type syncBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	render.Fill(img, c)
	return img
}

func TestStreamFrames(t *testing.T) {
	out := &syncBuffer{}
	frames := make(chan game.Frame, 3)
	size := &termSize{}
	size.set(4, 2)
	quit := make(chan struct{})

	frames <- game.Frame{Image: solid(color.RGBA{255, 0, 0, 255}), Seq: 1}
	frames <- game.Frame{Image: solid(color.RGBA{255, 0, 0, 255}), Seq: 2}
	frames <- game.Frame{Image: solid(color.RGBA{0, 0, 255, 255}), Seq: 3}
	close(frames)

	streamFrames(out, frames, size, quit, nil)

	s := out.String()
	// identical second frame adds nothing, third repaints all 8 cells
	if n := strings.Count(s, string(render.HalfBlock)); n != 16 {
		t.Errorf("wrote %d half blocks, want 16", n)
	}
	if !strings.Contains(s, "38;2;0;0;255") {
		t.Error("blue frame not written")
	}
}

func TestStreamFramesRedraw(t *testing.T) {
	out := &syncBuffer{}
	frames := make(chan game.Frame)
	size := &termSize{}
	size.set(4, 2)
	quit := make(chan struct{})
	redraw := make(chan struct{})
	done := make(chan struct{})

	go func() {
		streamFrames(out, frames, size, quit, redraw)
		close(done)
	}()

	frames <- game.Frame{Image: solid(color.RGBA{0, 255, 0, 255}), Seq: 1}
	redraw <- struct{}{}
	close(quit)
	<-done

	if n := strings.Count(out.String(), string(render.HalfBlock)); n != 16 {
		t.Errorf("wrote %d half blocks, want 16 after a redraw", n)
	}
}
