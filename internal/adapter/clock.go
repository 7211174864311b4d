package adapter

import (
	"time"
)

//go:generate mockgen -source=clock.go -destination=../mocks/mock_clock.go -package=mocks -mock_names=Clock=MockClock

// Clock abstracts time operations so that services depending on the
// current time can be tested deterministically.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

// NewClock returns a Clock backed by the time package.
func NewClock() Clock {
	return &realClock{}
}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func (c *realClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (c *realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (c *realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
