package game

import "time"

// DefaultFPS is used when a loop is created with a non-positive rate.
const DefaultFPS = 30

// FramesFor converts a duration in milliseconds to frames at fps, rounding
// a fractional frame count up. The result is never less than one frame.
func FramesFor(millis, fps int) int {
	t := (fps*millis + 999) / 1000
	if t < 1 {
		t = 1
	}
	return t
}

// FrameInterval is the ticker period for fps.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
