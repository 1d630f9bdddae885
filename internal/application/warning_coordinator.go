package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

// dueFunc is invoked when an armed warning's window elapses. The episode identifies the
// arming it belongs to so that a superseded timer can be told apart from the live one.
type dueFunc func(ctx context.Context, id domain.TabID, episode uint64)

type armedWarning struct {
	timer    ports.Timer
	episode  uint64
	closesAt time.Time
}

// WarningCoordinator owns the Idle/Warned state of every targeted tab and the pending close
// timer that goes with it. At most one timer is armed per tab.
type WarningCoordinator struct {
	mu       sync.Mutex
	clock    ports.Clock
	notifier ports.Notifier
	window   time.Duration
	armed    map[domain.TabID]armedWarning
	episode  uint64
	due      dueFunc
}

func NewWarningCoordinator(clock ports.Clock, notifier ports.Notifier) *WarningCoordinator {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &WarningCoordinator{
		clock:    clock,
		notifier: notifier,
		window:   domain.WarningWindow,
		armed:    make(map[domain.TabID]armedWarning),
	}
}

func (c *WarningCoordinator) setDueHandler(fn dueFunc) {
	c.mu.Lock()
	c.due = fn
	c.mu.Unlock()
}

// Arm moves the tab to Warned, emits the warning and schedules the close. It returns false
// without doing anything when the tab is already armed. A notifier failure is returned but
// the timer stays armed.
func (c *WarningCoordinator) Arm(ctx context.Context, tab domain.Tab, now time.Time) (bool, error) {
	c.mu.Lock()
	if _, ok := c.armed[tab.ID]; ok {
		c.mu.Unlock()
		return false, nil
	}

	c.episode++
	episode := c.episode
	closesAt := now.Add(c.window)
	timerCtx := context.WithoutCancel(ctx)
	id := tab.ID
	timer := c.clock.AfterFunc(c.window, func() {
		c.fire(timerCtx, id, episode)
	})
	c.armed[id] = armedWarning{timer: timer, episode: episode, closesAt: closesAt}
	c.mu.Unlock()

	warning := domain.Warning{
		TabID:    id,
		Title:    tab.DisplayTitle(),
		Message:  domain.WarningMessage,
		ClosesAt: closesAt,
	}
	if err := c.notifier.Warn(ctx, warning); err != nil {
		return true, err
	}

	return true, nil
}

// Cancel stops the pending close and returns the tab to Idle. It reports whether a warning
// was armed.
func (c *WarningCoordinator) Cancel(id domain.TabID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.armed[id]
	if !ok {
		return false
	}
	entry.timer.Stop()
	delete(c.armed, id)
	return true
}

// CancelAll stops every pending close.
func (c *WarningCoordinator) CancelAll() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := len(c.armed)
	for id, entry := range c.armed {
		entry.timer.Stop()
		delete(c.armed, id)
	}
	return count
}

// claim consumes the armed warning if episode still matches it.
func (c *WarningCoordinator) claim(id domain.TabID, episode uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.armed[id]
	if !ok || entry.episode != episode {
		return false
	}
	delete(c.armed, id)
	return true
}

func (c *WarningCoordinator) IsArmed(id domain.TabID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.armed[id]
	return ok
}

func (c *WarningCoordinator) State(id domain.TabID) domain.WarningState {
	if c.IsArmed(id) {
		return domain.WarningWarned
	}
	return domain.WarningIdle
}

// ClosesAt returns when the pending close of id fires.
func (c *WarningCoordinator) ClosesAt(id domain.TabID) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.armed[id]
	return entry.closesAt, ok
}

func (c *WarningCoordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.armed)
}

func (c *WarningCoordinator) fire(ctx context.Context, id domain.TabID, episode uint64) {
	c.mu.Lock()
	due := c.due
	c.mu.Unlock()

	if due == nil {
		c.claim(id, episode)
		return
	}
	due(ctx, id, episode)
}
