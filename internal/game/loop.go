package game

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"tile-curses/internal/grid"
	"tile-curses/internal/render"
)

// EditChanSize bounds the number of queued grid edits.
const EditChanSize = 256

// Frame is one composited display image. Viewers must not modify Image.
type Frame struct {
	Image *image.RGBA
	Seq   uint64
}

// FrameChan is the per-viewer channel that receives composited frames.
type FrameChan chan Frame

// EditFunc mutates the grid on the loop goroutine.
type EditFunc func(g *grid.Grid) error

type blinkSpot struct {
	x, y int
	b    *Blinker
}

// FrameLoop owns a grid and its compositor. Every grid mutation runs on
// the goroutine calling Step, so the grid itself needs no locking.
type FrameLoop struct {
	fps        int
	grid       *grid.Grid
	comp       *render.Compositor
	background string

	editCh   chan EditFunc
	blinkers []blinkSpot
	seq      uint64

	mu      sync.RWMutex
	viewers map[string]FrameChan
	last    Frame
	nextID  int

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewFrameLoop creates a loop that composes g with comp over the named
// background colour fps times per second.
func NewFrameLoop(g *grid.Grid, comp *render.Compositor, background string, fps int) *FrameLoop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &FrameLoop{
		fps:        fps,
		grid:       g,
		comp:       comp,
		background: background,
		editCh:     make(chan EditFunc, EditChanSize),
		viewers:    make(map[string]FrameChan),
		stopCh:     make(chan struct{}),
	}
}

// FPS returns the frame rate the loop runs at.
func (fl *FrameLoop) FPS() int { return fl.fps }

// Grid returns the loop's grid. Only touch it from the loop goroutine or
// before Run starts; use Edit otherwise.
func (fl *FrameLoop) Grid() *grid.Grid { return fl.grid }

// Edit queues fn to run before the next frame. It reports false when the
// queue is full and fn was dropped.
func (fl *FrameLoop) Edit(fn EditFunc) bool {
	select {
	case fl.editCh <- fn:
		return true
	default:
		return false
	}
}

// AddBlinker makes the cell at (x, y) blink.
func (fl *FrameLoop) AddBlinker(x, y int, mode BlinkMode, intervalMillis int) error {
	if !fl.grid.InBounds(x, y) {
		return &grid.OutOfBoundsError{X: x, Y: y, Width: fl.grid.Width(), Height: fl.grid.Height()}
	}
	b, err := NewBlinker(fl.grid, BlinkConfig{Mode: mode, IntervalMillis: intervalMillis, FPS: fl.fps})
	if err != nil {
		return err
	}
	fl.blinkers = append(fl.blinkers, blinkSpot{x: x, y: y, b: b})
	return nil
}

// AddViewer registers a viewer and returns its id and frame channel. The
// latest frame, if any, is delivered right away.
func (fl *FrameLoop) AddViewer(name string) (string, FrameChan) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	fl.nextID++
	id := fmt.Sprintf("%s#%d", name, fl.nextID)
	ch := make(FrameChan, 2)
	if fl.last.Image != nil {
		ch <- fl.last
	}
	fl.viewers[id] = ch
	log.Printf("viewer %s connected (%d watching)", id, len(fl.viewers))
	return id, ch
}

// RemoveViewer unregisters a viewer and closes its channel.
func (fl *FrameLoop) RemoveViewer(id string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if ch, ok := fl.viewers[id]; ok {
		close(ch)
		delete(fl.viewers, id)
		log.Printf("viewer %s disconnected (%d watching)", id, len(fl.viewers))
	}
}

// Viewers returns the number of registered viewers.
func (fl *FrameLoop) Viewers() int {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	return len(fl.viewers)
}

// Latest returns the most recent frame. Its Image is nil before the first
// Step.
func (fl *FrameLoop) Latest() Frame {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	return fl.last
}

// Step applies queued edits, advances blinkers, composes a frame and
// broadcasts it. Slow viewers miss frames instead of blocking the loop.
func (fl *FrameLoop) Step() (Frame, error) {
	var editErr error
	for {
		select {
		case fn := <-fl.editCh:
			if err := fn(fl.grid); err != nil && editErr == nil {
				editErr = fmt.Errorf("grid edit: %w", err)
			}
		default:
			goto drained
		}
	}
drained:

	for _, s := range fl.blinkers {
		s.b.Update()
		if err := s.b.Refresh(s.x, s.y); err != nil && editErr == nil {
			editErr = fmt.Errorf("blinker at (%d,%d): %w", s.x, s.y, err)
		}
	}

	img, err := fl.comp.Frame(fl.grid, fl.background)
	if err != nil {
		return Frame{}, fmt.Errorf("compose frame: %w", err)
	}

	fl.seq++
	frame := Frame{Image: img, Seq: fl.seq}

	fl.mu.Lock()
	fl.last = frame
	for _, ch := range fl.viewers {
		select {
		case ch <- frame:
		default:
		}
	}
	fl.mu.Unlock()

	return frame, editErr
}

// Run steps the loop at its frame rate until Stop is called. Errors are
// logged and the loop keeps going.
func (fl *FrameLoop) Run() {
	ticker := time.NewTicker(FrameInterval(fl.fps))
	defer ticker.Stop()

	log.Printf("frame loop running at %d fps", fl.fps)
	for {
		select {
		case <-fl.stopCh:
			log.Printf("frame loop stopped after %d frames", fl.seq)
			return
		case <-ticker.C:
			if _, err := fl.Step(); err != nil {
				log.Printf("frame %d: %v", fl.seq, err)
			}
		}
	}
}

// Stop shuts the loop down. It is safe to call more than once.
func (fl *FrameLoop) Stop() {
	fl.stopOnce.Do(func() { close(fl.stopCh) })
}
