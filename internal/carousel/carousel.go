// Package carousel implements the photo carousel: a current index over a
// fixed photo list, stepped by autoplay, swipes, buttons and thumbnails.
//
// The list is shown newest-last, so "advance" walks the index down and
// "retreat" walks it up. A new carousel starts on the last photo.
package carousel

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrEmpty      = errors.New("carousel: no photos")
	ErrOutOfRange = errors.New("carousel: index out of range")
)

// State is a snapshot of a carousel.
type State struct {
	Index  int  `json:"index"`
	Len    int  `json:"len"`
	Paused bool `json:"paused"`
}

// Carousel is safe for concurrent use.
type Carousel struct {
	mu     sync.Mutex
	n      int
	index  int
	paused bool

	// pauseChanged wakes the autoplay loop so it can reschedule.
	pauseChanged chan struct{}

	subs    map[int]chan State
	nextSub int
	closed  bool
}

// New returns a carousel over n photos positioned on the last one.
func New(n int) (*Carousel, error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	return &Carousel{
		n:            n,
		index:        n - 1,
		pauseChanged: make(chan struct{}, 1),
		subs:         make(map[int]chan State),
	}, nil
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *Carousel) Len() int { return c.n }

func (c *Carousel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Advance steps to the previous index, wrapping from 0 to n-1.
func (c *Carousel) Advance() State {
	return c.update(func() { c.index = (c.index - 1 + c.n) % c.n })
}

// Retreat steps to the next index, wrapping from n-1 to 0.
func (c *Carousel) Retreat() State {
	return c.update(func() { c.index = (c.index + 1) % c.n })
}

// Jump moves directly to index i.
func (c *Carousel) Jump(i int) (State, error) {
	if i < 0 || i >= c.n {
		return c.State(), fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, c.n)
	}
	return c.update(func() { c.index = i }), nil
}

// SetPaused starts or stops autoplay. A change takes effect on the next
// scheduling cycle of Run.
func (c *Carousel) SetPaused(paused bool) State {
	c.mu.Lock()
	changed := c.paused != paused
	c.paused = paused
	s := c.stateLocked()
	if changed {
		c.publishLocked(s)
	}
	c.mu.Unlock()

	if changed {
		select {
		case c.pauseChanged <- struct{}{}:
		default:
		}
	}
	return s
}

func (c *Carousel) TogglePause() State {
	return c.SetPaused(!c.Paused())
}

// Subscribe returns a channel receiving every state change. Slow readers
// only see the latest state. The returned func unsubscribes and closes
// the channel. After Close the channel is returned already closed.
func (c *Carousel) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan State, 1)
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if ch, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(ch)
		}
	}
}

// Close closes every subscriber channel. State changes after Close are
// still applied but no longer published.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}

func (c *Carousel) update(fn func()) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
	s := c.stateLocked()
	c.publishLocked(s)
	return s
}

func (c *Carousel) stateLocked() State {
	return State{Index: c.index, Len: c.n, Paused: c.paused}
}

func (c *Carousel) publishLocked(s State) {
	for _, ch := range c.subs {
		select {
		case ch <- s:
			continue
		default:
		}
		// drop the stale value so the latest one fits
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
}
