package carousel

import (
	"context"
	"errors"
	"time"
)

// DefaultInterval is the autoplay period.
const DefaultInterval = 5 * time.Second

// Run advances the carousel once per interval while it is not paused,
// until ctx is done. Pausing cancels the pending tick; resuming schedules
// a fresh one a full interval out. Run one loop per carousel at most.
func (c *Carousel) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.New("carousel: autoplay interval must be positive")
	}

	var timer *time.Timer
	var tick <-chan time.Time
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer, tick = nil, nil
		if !c.Paused() {
			timer = time.NewTimer(interval)
			tick = timer.C
		}
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	schedule()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.pauseChanged:
			schedule()
		case <-tick:
			if !c.Paused() {
				c.Advance()
			}
			schedule()
		}
	}
}
