package httpscribe

//go:generate $MOCKGEN -source=clock.go -destination=mocks/clock_mock.go

import "time"

// Clock is an interface that defines a method for reading the current
// time. Injecting it keeps timestamp and elapsed-time computation
// deterministic in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock is the wall-clock implementation of the Clock interface.
type SystemClock struct{}

// NewSystemClock creates and returns a new instance of SystemClock.
func NewSystemClock() Clock {
	return SystemClock{}
}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
