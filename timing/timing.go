// Package timing measures elapsed time of a phase with the monotonic clock.
//
// time.Now carries a monotonic reading and time.Since uses it, so spans are
// not affected by wall clock adjustments while they are open.
package timing

import (
	"sync"
	"time"
)

type Span struct {
	mutex   sync.Mutex
	start   time.Time
	elapsed time.Duration
	stopped bool
}

func Start() *Span {
	return &Span{
		start: time.Now(),
	}
}

// Stop closes the span and returns its duration. Further calls return the
// same duration.
func (s *Span) Stop() time.Duration {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.stopped {
		s.elapsed = time.Since(s.start)
		s.stopped = true
	}

	return s.elapsed
}

// Elapsed returns the final duration of a stopped span or the running
// duration of an open one.
func (s *Span) Elapsed() time.Duration {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.stopped {
		return s.elapsed
	}
	return time.Since(s.start)
}

func (s *Span) Stopped() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.stopped
}

// Measure runs f inside a span that is closed on every exit path. A panic in
// f closes the span and keeps unwinding.
func Measure(f func() error) (elapsed time.Duration, err error) {
	span := Start()
	defer func() {
		elapsed = span.Stop()
	}()

	err = f()
	return
}
