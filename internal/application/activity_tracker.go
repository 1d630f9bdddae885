package application

import (
	"sync"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
)

// ActivityTracker records when each open tab was last active. Records live only as long as
// the process; a restart resets every tab to "just became active".
type ActivityTracker struct {
	mu       sync.RWMutex
	activity map[domain.TabID]time.Time
}

func NewActivityTracker() *ActivityTracker {
	return &ActivityTracker{
		activity: make(map[domain.TabID]time.Time),
	}
}

func (a *ActivityTracker) Touch(id domain.TabID, now time.Time) {
	a.mu.Lock()
	a.activity[id] = now
	a.mu.Unlock()
}

// LastActiveAt returns false when the tab was never observed.
func (a *ActivityTracker) LastActiveAt(id domain.TabID) (time.Time, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	at, ok := a.activity[id]
	return at, ok
}

// Observe returns the recorded activity time, recording now on first observation so that a
// tab is never evicted just because it has no history yet.
func (a *ActivityTracker) Observe(id domain.TabID, now time.Time) time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()

	if at, ok := a.activity[id]; ok {
		return at
	}
	a.activity[id] = now
	return now
}

func (a *ActivityTracker) Forget(id domain.TabID) {
	a.mu.Lock()
	delete(a.activity, id)
	a.mu.Unlock()
}

func (a *ActivityTracker) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.activity)
}
