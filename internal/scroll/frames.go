package scroll

import "time"

// FrameLoop is a Scheduler with a simulated display clock. Callbacks
// requested during a frame run on the next one.
type FrameLoop struct {
	Interval time.Duration

	now     time.Duration
	pending []func(time.Duration)
}

func (l *FrameLoop) RequestFrame(fn func(now time.Duration)) {
	l.pending = append(l.pending, fn)
}

// Step advances one frame and runs the callbacks queued for it. It
// reports false when nothing was queued.
func (l *FrameLoop) Step() bool {
	if len(l.pending) == 0 {
		return false
	}
	batch := l.pending
	l.pending = nil
	l.now += l.Interval
	for _, fn := range batch {
		fn(l.now)
	}
	return true
}

// Drain steps until no callbacks remain or max frames ran, returning the
// number of frames run.
func (l *FrameLoop) Drain(max int) int {
	n := 0
	for n < max && l.Step() {
		n++
	}
	return n
}

// Recorder is a Viewport that remembers every offset written to it.
type Recorder struct {
	Y     float64
	Trace []float64
}

func (r *Recorder) Offset() float64 { return r.Y }

func (r *Recorder) ScrollTo(y float64) {
	r.Y = y
	r.Trace = append(r.Trace, y)
}

// maxFrames bounds Plan against a zero or tiny interval.
const maxFrames = 10000

// Plan returns the offset written on each frame when animating from one
// offset to another, sampled every interval.
func Plan(from, to float64, duration, interval time.Duration) []float64 {
	if interval <= 0 {
		interval = FrameInterval
	}
	vp := &Recorder{Y: from}
	loop := &FrameLoop{Interval: interval}
	a := &Animator{Duration: duration, Scheduler: loop, Viewport: vp}
	a.Animate(to)
	loop.Drain(maxFrames)
	return vp.Trace
}
