// Package scrollspy decides which page section is the most visible one,
// from the intersection reports the browser sends in batches.
package scrollspy

import (
	"fmt"
	"slices"
	"sync"
)

const (
	// DefaultThreshold is the minimum intersection ratio reported by the
	// browser observer.
	DefaultThreshold = 0.1
	// DefaultSection is active before any report arrives.
	DefaultSection = "aboutme"
)

// Entry is one section's intersection report.
type Entry struct {
	ID             string  `json:"id"`
	IsIntersecting bool    `json:"isIntersecting"`
	Ratio          float64 `json:"ratio"`
}

type Options struct {
	// HeaderHeight is trimmed from the top of the observed viewport.
	HeaderHeight int
	Threshold    float64
	Initial      string
}

// Observer tracks the latest entry per observed section and publishes the
// most visible one. Safe for concurrent use.
type Observer struct {
	opts Options

	mu      sync.Mutex
	order   []string
	entries map[string]Entry
	active  string
	closed  bool
}

func New(opts Options) *Observer {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Initial == "" {
		opts.Initial = DefaultSection
	}
	return &Observer{
		opts:    opts,
		entries: make(map[string]Entry),
		active:  opts.Initial,
	}
}

// RootMargin is the observation margin for the browser observer: the
// header is cut from the top and the lower half of the viewport ignored.
func (o *Observer) RootMargin() string {
	return fmt.Sprintf("-%dpx 0px -50%% 0px", o.opts.HeaderHeight)
}

func (o *Observer) Threshold() float64 { return o.opts.Threshold }

// Observe starts tracking the given section ids. Already tracked ids keep
// their position in the scan order.
func (o *Observer) Observe(ids ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = false
	for _, id := range ids {
		if !slices.Contains(o.order, id) {
			o.order = append(o.order, id)
		}
	}
}

func (o *Observer) Unobserve(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.order = slices.DeleteFunc(o.order, func(s string) bool { return s == id })
	delete(o.entries, id)
}

// Close unobserves every section. Later updates are ignored.
func (o *Observer) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.order = nil
	clear(o.entries)
	o.closed = true
}

// Sections returns the tracked ids in scan order.
func (o *Observer) Sections() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.order)
}

func (o *Observer) Active() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

// Update records a batch of entries, then rescans every tracked section
// for the highest ratio among the intersecting ones. Ties go to the section
// observed first. When nothing intersects the active section is left alone
// and changed is false.
func (o *Observer) Update(batch []Entry) (active string, changed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	active, _, changed = o.updateLocked(batch)
	return active, changed
}

// Move is Update reporting moved only when the active section differs
// from the one before the batch. Concurrent batches see each change once.
func (o *Observer) Move(batch []Entry) (active string, moved bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	active, prev, found := o.updateLocked(batch)
	return active, found && active != prev
}

func (o *Observer) updateLocked(batch []Entry) (active, prev string, found bool) {
	prev = o.active
	if o.closed {
		return o.active, prev, false
	}

	for _, e := range batch {
		if slices.Contains(o.order, e.ID) {
			o.entries[e.ID] = e
		}
	}

	best, highest := "", 0.0
	for _, id := range o.order {
		e, ok := o.entries[id]
		if !ok || !e.IsIntersecting || e.Ratio < o.opts.Threshold {
			continue
		}
		if e.Ratio > highest {
			best, highest = id, e.Ratio
		}
	}
	if best == "" {
		return o.active, prev, false
	}
	o.active = best
	return best, prev, true
}
