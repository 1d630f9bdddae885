package domain

import (
	"sort"
	"time"
)

type WarningState string

const (
	WarningIdle   WarningState = "idle"
	WarningWarned WarningState = "warned"
)

// Countdown is the display estimate of the time left before a tab is closed.
type Countdown struct {
	TabID     TabID
	Title     string
	URL       string
	Remaining time.Duration
	Warned    bool
	// ComputedAt is the tick time the estimate was computed at.
	ComputedAt time.Time
}

// Warning is the user-visible notice emitted when a tab enters its warning window.
type Warning struct {
	TabID   TabID
	Title   string
	Message string
	// ClosesAt is when the pending close fires.
	ClosesAt time.Time
}

const WarningMessage = "This tab will close in 10 seconds."

// SortCountdowns orders countdowns soonest first, ties broken by tab id.
func SortCountdowns(countdowns []Countdown) {
	sort.SliceStable(countdowns, func(i, j int) bool {
		if countdowns[i].Remaining == countdowns[j].Remaining {
			return countdowns[i].TabID < countdowns[j].TabID
		}
		return countdowns[i].Remaining < countdowns[j].Remaining
	})
}
