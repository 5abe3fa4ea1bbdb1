// Package session keeps the per-viewer UI state of the homepage: one
// photo carousel and one scroll-spy observer per rendered page, from page
// load until the page is closed or left idle.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yetobasi/homepage/internal/carousel"
	"github.com/yetobasi/homepage/internal/scrollspy"
)

var ErrNotFound = errors.New("session: not found")

// Session is one viewer's page state.
type Session struct {
	ID       string
	Carousel *carousel.Carousel
	Spy      *scrollspy.Observer
	Created  time.Time

	now func() time.Time

	mu           sync.Mutex
	lastSeen     time.Time
	stopAutoplay context.CancelFunc
	autoplayDone chan struct{}
}

// StartAutoplay runs the carousel's autoplay loop until the returned stop
// func is called, parent is done, or the session is released. Starting
// again replaces the previous loop. The session is busy, and never swept
// as idle, until the loop is stopped.
func (s *Session) StartAutoplay(parent context.Context, interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	s.mu.Lock()
	if s.stopAutoplay != nil {
		s.stopAutoplay()
	}
	prev := s.autoplayDone
	s.stopAutoplay, s.autoplayDone = cancel, done
	s.mu.Unlock()

	go func() {
		defer close(done)
		if prev != nil {
			<-prev
		}
		if err := s.Carousel.Run(ctx, interval); err != nil && !errors.Is(err, context.Canceled) {
			slog.Warn("autoplay stopped", "session", s.ID, "error", err)
		}
	}()

	return func() {
		cancel()
		<-done
		s.mu.Lock()
		if s.autoplayDone == done {
			s.stopAutoplay, s.autoplayDone = nil, nil
		}
		s.lastSeen = s.now()
		s.mu.Unlock()
	}
}

// Busy reports whether an autoplay loop is running.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopAutoplay != nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) close() {
	s.mu.Lock()
	cancel, done := s.stopAutoplay, s.autoplayDone
	s.stopAutoplay, s.autoplayDone = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	s.Carousel.Close()
	s.Spy.Close()
}

type Options struct {
	// Photos is the carousel length.
	Photos int
	// Sections are the page section ids the observer tracks, in page order.
	Sections     []string
	HeaderHeight int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Registry owns every live session.
type Registry struct {
	opts Options

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(opts Options) *Registry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{opts: opts, sessions: make(map[string]*Session)}
}

// Acquire creates a session positioned on the last photo with every
// section observed.
func (r *Registry) Acquire() (*Session, error) {
	c, err := carousel.New(r.opts.Photos)
	if err != nil {
		return nil, fmt.Errorf("creating carousel: %w", err)
	}
	spy := scrollspy.New(scrollspy.Options{HeaderHeight: r.opts.HeaderHeight})
	spy.Observe(r.opts.Sections...)

	now := r.opts.Now()
	s := &Session{
		ID:       uuid.NewString(),
		Carousel: c,
		Spy:      spy,
		Created:  now,
		now:      r.opts.Now,
		lastSeen: now,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s, nil
}

// Get returns the session and marks it as seen.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.touch(r.opts.Now())
	return s, nil
}

// Release stops the session's autoplay, unobserves its sections and
// forgets it.
func (r *Registry) Release(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.close()
	return nil
}

// Sweep releases sessions not seen for longer than maxIdle and returns how
// many it released. Busy sessions are kept.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.opts.Now().Add(-maxIdle)

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		if !s.Busy() && s.LastSeen().Before(cutoff) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.close()
	}
	return len(stale)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Run sweeps idle sessions every interval until ctx is done, then
// releases everything left.
func (r *Registry) Run(ctx context.Context, every, maxIdle time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		case <-ticker.C:
			if n := r.Sweep(maxIdle); n > 0 {
				slog.Debug("released idle sessions", "count", n, "live", r.Len())
			}
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()
	for _, s := range all {
		s.close()
	}
}
