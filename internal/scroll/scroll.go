// Package scroll animates the page's vertical scroll offset towards a
// section with a cubic ease-out.
package scroll

import (
	"math"
	"time"
)

const (
	DefaultDuration = 500 * time.Millisecond
	// FrameInterval approximates one display refresh at 60 Hz.
	FrameInterval = time.Second / 60
	// HomeSection scrolls to the very top instead of to its offset.
	HomeSection = "aboutme"
)

// EaseOutCubic maps elapsed fraction t to eased progress. t is clamped to
// [0,1].
func EaseOutCubic(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Pow(1-t, 3)
}

// TargetOffset is where the viewport should end up to show section id
// whose document offset is sectionTop.
func TargetOffset(id string, sectionTop, headerHeight, gap float64) float64 {
	if id == HomeSection {
		return 0
	}
	return sectionTop - headerHeight - gap
}

// Viewport is the scrollable document.
type Viewport interface {
	Offset() float64
	ScrollTo(y float64)
}

// Scheduler runs a callback on the next display frame, passing the frame
// timestamp.
type Scheduler interface {
	RequestFrame(fn func(now time.Duration))
}

// Animator drives a Viewport through a Scheduler.
//
// Animations cannot be cancelled. Starting a second one while the first is
// still running leaves both writing the offset each frame until they end.
type Animator struct {
	Duration     time.Duration
	HeaderHeight float64
	Gap          float64
	Scheduler    Scheduler
	Viewport     Viewport
}

// ScrollTo animates from the current offset to section id.
func (a *Animator) ScrollTo(id string, sectionTop float64) {
	a.Animate(TargetOffset(id, sectionTop, a.HeaderHeight, a.Gap))
}

// Animate eases the viewport from its current offset to target.
func (a *Animator) Animate(target float64) {
	duration := a.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	start := a.Viewport.Offset()
	distance := target - start

	var (
		started   bool
		startTime time.Duration
		frame     func(now time.Duration)
	)
	frame = func(now time.Duration) {
		if !started {
			started, startTime = true, now
		}
		elapsed := now - startTime
		progress := math.Min(float64(elapsed)/float64(duration), 1)
		a.Viewport.ScrollTo(start + distance*EaseOutCubic(progress))
		if elapsed < duration {
			a.Scheduler.RequestFrame(frame)
		}
	}
	a.Scheduler.RequestFrame(frame)
}
