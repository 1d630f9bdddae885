package application

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

type TabStatus struct {
	Tab          domain.Tab
	Pinned       bool
	LastActiveAt time.Time
	Observed     bool
	Warning      domain.WarningState
	ClosesAt     time.Time
	// Countdown is set only while the pool is over its limit and the tab is targeted.
	Countdown *domain.Countdown
}

// Snapshot is a point-in-time view of the pool as the scheduler sees it.
type Snapshot struct {
	TakenAt   time.Time
	Settings  domain.Settings
	OpenTabs  int
	OverLimit bool
	Tabs      []TabStatus
}

func (s *Scheduler) Snapshot(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.pool.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list tabs: %w", err)
	}

	settings := s.settings.Get()
	snapshot := Snapshot{
		TakenAt:   s.clock.Now(),
		Settings:  settings,
		OpenTabs:  len(tabs),
		OverLimit: len(tabs) > settings.MaxTabs,
		Tabs:      make([]TabStatus, 0, len(tabs)),
	}

	for _, tab := range tabs {
		status := TabStatus{
			Tab:     tab,
			Pinned:  s.pins.IsPinned(tab.ID),
			Warning: s.warnings.State(tab.ID),
		}
		status.LastActiveAt, status.Observed = s.activity.LastActiveAt(tab.ID)
		if closesAt, ok := s.warnings.ClosesAt(tab.ID); ok {
			status.ClosesAt = closesAt
		}
		if snapshot.OverLimit {
			if countdown, ok := s.countdown[tab.ID]; ok {
				countdown := countdown
				status.Countdown = &countdown
			}
		}
		snapshot.Tabs = append(snapshot.Tabs, status)
	}

	return snapshot, nil
}

// Countdowns returns the estimates of the last tick, soonest first.
func (s *Scheduler) Countdowns() []domain.Countdown {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.countdownListLocked()
}

// PersistedStatus is what an out-of-process client can learn from the state store.
type PersistedStatus struct {
	Settings   domain.Settings
	Pins       []domain.TabID
	Countdowns []domain.Countdown
}

// StatusReader reads the persisted state without a running scheduler.
type StatusReader struct {
	settings   ports.SettingsRepository
	pins       ports.PinRepository
	countdowns ports.CountdownRepository
	defaults   domain.Settings
}

func NewStatusReader(settings ports.SettingsRepository, pins ports.PinRepository, countdowns ports.CountdownRepository, defaults domain.Settings) *StatusReader {
	return &StatusReader{settings: settings, pins: pins, countdowns: countdowns, defaults: defaults}
}

func (r *StatusReader) Read(ctx context.Context) (PersistedStatus, error) {
	status := PersistedStatus{Settings: r.defaults}

	settings, ok, err := r.settings.LoadSettings(ctx)
	if err != nil {
		return status, fmt.Errorf("load settings: %w", err)
	}
	if ok {
		status.Settings = settings
	}

	pins, err := r.pins.LoadPins(ctx)
	if err != nil {
		return status, fmt.Errorf("load pins: %w", err)
	}
	for id, pinned := range pins {
		if pinned {
			status.Pins = append(status.Pins, id)
		}
	}
	slices.Sort(status.Pins)

	countdowns, err := r.countdowns.LoadCountdowns(ctx)
	if err != nil {
		return status, fmt.Errorf("load countdowns: %w", err)
	}
	domain.SortCountdowns(countdowns)
	status.Countdowns = countdowns

	return status, nil
}
