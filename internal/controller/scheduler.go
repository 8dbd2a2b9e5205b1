package controller

import "time"

// Task is a pending deferred call.
type Task interface {
	// Stop prevents the call from running. It returns false if the call already started or was
	// stopped before.
	Stop() bool
}

// Scheduler runs fn once after delay on its own goroutine.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Task
}

type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) Task {
	return time.AfterFunc(delay, fn)
}
