package ports

import "time"

type Clock interface {
	Now() time.Time
	// AfterFunc runs f once after d elapses, on its own goroutine.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle on a pending delayed action.
type Timer interface {
	// Stop prevents the action from running. Calling it after the action fired is a no-op
	// that returns false.
	Stop() bool
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
