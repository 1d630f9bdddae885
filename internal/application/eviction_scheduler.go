package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/logging"
	"github.com/bnema/tabsweep/internal/ports"
	"github.com/google/uuid"
)

const (
	TickInactiveTabs      = "inactive-tabs"
	TickClosedTabsCleanup = "closed-tabs-cleanup"
)

// Components groups the stateful collaborators of a Scheduler.
type Components struct {
	Activity *ActivityTracker
	Pins     *PinRegistry
	Settings *SettingsStore
	Archive  *ClosedArchive
	Warnings *WarningCoordinator
	// Countdowns is optional. When set, every tick persists its countdowns for out-of-process
	// status queries.
	Countdowns ports.CountdownRepository
	Observer   ports.EvictionObserver
}

// Dispatcher runs fn on the goroutine that owns the scheduler.
type Dispatcher func(ctx context.Context, fn func(ctx context.Context))

func inlineDispatch(ctx context.Context, fn func(ctx context.Context)) {
	fn(ctx)
}

// RunReport summarizes one eviction tick.
type RunReport struct {
	OpenTabs   int
	Candidates int
	Closed     []domain.TabID
	Warned     []domain.TabID
	Waiting    []domain.TabID
	Stale      []domain.TabID
}

type candidate struct {
	tab        domain.Tab
	lastActive time.Time
}

// Scheduler decides, on every tick, which idle tabs to warn about and close so that the pool
// converges back to its limit.
type Scheduler struct {
	mu         sync.Mutex
	pool       ports.ResourcePool
	activity   *ActivityTracker
	pins       *PinRegistry
	settings   *SettingsStore
	archive    *ClosedArchive
	warnings   *WarningCoordinator
	countdowns ports.CountdownRepository
	observer   ports.EvictionObserver
	clock      ports.Clock
	newID      func() string

	dispatchMu sync.Mutex
	dispatch   Dispatcher

	// countdown holds the estimates of the last tick.
	countdown map[domain.TabID]domain.Countdown
}

func NewScheduler(pool ports.ResourcePool, components Components, clock ports.Clock) *Scheduler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	observer := components.Observer
	if observer == nil {
		observer = ports.NopObserver{}
	}

	s := &Scheduler{
		pool:       pool,
		activity:   components.Activity,
		pins:       components.Pins,
		settings:   components.Settings,
		archive:    components.Archive,
		warnings:   components.Warnings,
		countdowns: components.Countdowns,
		observer:   observer,
		clock:      clock,
		dispatch:   inlineDispatch,
		newID:      uuid.NewString,
		countdown:  make(map[domain.TabID]domain.Countdown),
	}
	s.warnings.setDueHandler(func(ctx context.Context, id domain.TabID, episode uint64) {
		s.dispatchMu.Lock()
		dispatch := s.dispatch
		s.dispatchMu.Unlock()

		dispatch(ctx, func(ctx context.Context) {
			s.CloseDue(ctx, id, episode)
		})
	})

	return s
}

// SetDispatcher routes timer callbacks through dispatch instead of running them inline.
func (s *Scheduler) SetDispatcher(dispatch Dispatcher) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	if dispatch == nil {
		dispatch = inlineDispatch
	}
	s.dispatch = dispatch
}

func (s *Scheduler) Clock() ports.Clock {
	return s.clock
}

// Run performs one eviction tick at now.
func (s *Scheduler) Run(ctx context.Context, now time.Time) (RunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.FromContext(ctx)
	var report RunReport

	if err := s.flushLocked(ctx); err != nil {
		log.Warn().Err(err).Msg("retrying pending writes failed")
	}

	tabs, err := s.pool.List(ctx)
	if err != nil {
		return report, fmt.Errorf("list tabs: %w", err)
	}

	settings := s.settings.Get()
	report.OpenTabs = len(tabs)
	if len(tabs) <= settings.MaxTabs {
		if len(s.countdown) > 0 {
			s.countdown = make(map[domain.TabID]domain.Countdown)
			s.saveCountdownsLocked(ctx)
		}
		return report, nil
	}

	excess := len(tabs) - settings.MaxTabs
	candidates := make([]candidate, 0, len(tabs))
	for _, tab := range tabs {
		if tab.Focused || s.pins.IsPinned(tab.ID) {
			continue
		}
		candidates = append(candidates, candidate{
			tab:        tab,
			lastActive: s.activity.Observe(tab.ID, now),
		})
	}
	report.Candidates = len(candidates)

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].lastActive.Equal(candidates[j].lastActive) {
			return candidates[i].tab.ID < candidates[j].tab.ID
		}
		return candidates[i].lastActive.Before(candidates[j].lastActive)
	})

	targets := candidates[:min(excess, len(candidates))]
	countdown := make(map[domain.TabID]domain.Countdown, len(targets))
	for _, target := range targets {
		tab := target.tab
		remaining := settings.InactivityLimit - now.Sub(target.lastActive)
		entry := domain.Countdown{
			TabID:      tab.ID,
			Title:      tab.DisplayTitle(),
			URL:        tab.URL,
			Remaining:  remaining,
			ComputedAt: now,
		}

		switch {
		case s.warnings.IsArmed(tab.ID):
			entry.Warned = true
			countdown[tab.ID] = entry
			report.Waiting = append(report.Waiting, tab.ID)

		case remaining <= 0:
			closed, err := s.evictLocked(ctx, tab, now)
			if err != nil {
				log.Warn().Err(err).Str("tab_id", string(tab.ID)).Msg("evicting tab failed")
				countdown[tab.ID] = entry
				continue
			}
			if closed {
				report.Closed = append(report.Closed, tab.ID)
			} else {
				report.Stale = append(report.Stale, tab.ID)
			}

		case remaining <= domain.WarningWindow:
			armed, err := s.warnings.Arm(ctx, tab, now)
			if err != nil {
				log.Warn().Err(err).Str("tab_id", string(tab.ID)).Msg("emitting warning failed")
			}
			if armed {
				s.observer.TabWarned(tab.ID)
				report.Warned = append(report.Warned, tab.ID)
				log.Info().Str("tab_id", string(tab.ID)).Dur("remaining", remaining).Msg("tab warned")
			}
			entry.Warned = true
			countdown[tab.ID] = entry

		default:
			countdown[tab.ID] = entry
		}
	}

	s.countdown = countdown
	s.saveCountdownsLocked(ctx)
	s.observer.TickCompleted(len(tabs), len(candidates))

	log.Debug().
		Int("open", len(tabs)).
		Int("max", settings.MaxTabs).
		Int("candidates", len(candidates)).
		Int("closed", len(report.Closed)).
		Int("warned", len(report.Warned)).
		Msg("eviction tick completed")

	return report, nil
}

// CloseDue is the action of an elapsed warning. It re-validates the target before closing:
// the warning must still be the live one, the tab must still be open, unfocused, unpinned,
// over the limit and out of time.
func (s *Scheduler) CloseDue(ctx context.Context, id domain.TabID, episode uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.FromContext(ctx).With().Str("tab_id", string(id)).Logger()

	if !s.warnings.claim(id, episode) {
		log.Debug().Uint64("episode", episode).Msg("superseded close timer ignored")
		return
	}

	now := s.clock.Now()
	tabs, err := s.pool.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("listing tabs for pending close failed")
		return
	}

	tab, ok := findTab(tabs, id)
	if !ok {
		s.observer.StaleTarget(id)
		s.forgetLocked(ctx, id)
		log.Debug().Msg("pending close target already gone")
		return
	}

	settings := s.settings.Get()
	if tab.Focused || s.pins.IsPinned(id) || len(tabs) <= settings.MaxTabs {
		s.dropCountdownLocked(ctx, id)
		return
	}

	lastActive := s.activity.Observe(id, now)
	if settings.InactivityLimit-now.Sub(lastActive) > 0 {
		return
	}

	if _, err := s.evictLocked(ctx, tab, now); err != nil {
		log.Warn().Err(err).Msg("evicting tab failed")
	}
}

// Touch records activity for id and cancels its pending close.
func (s *Scheduler) Touch(ctx context.Context, id domain.TabID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activity.Touch(id, s.clock.Now())
	s.cancelLocked(ctx, id)
}

// TabClosed drops every record of a tab the host closed.
func (s *Scheduler) TabClosed(ctx context.Context, id domain.TabID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forgetLocked(ctx, id)
}

// SetPinned updates the exemption flag. A pinned tab's pending close is cancelled. The flag is
// effective even when the returned error wraps domain.ErrStoreUnavailable.
func (s *Scheduler) SetPinned(ctx context.Context, id domain.TabID, pinned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.pins.SetPinned(ctx, id, pinned)
	if err != nil && !errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	if pinned {
		s.cancelLocked(ctx, id)
	}
	return err
}

// UpdateSettings applies patch. New values are picked up by the next tick.
func (s *Scheduler) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings.Update(ctx, patch)
}

func (s *Scheduler) Settings() domain.Settings {
	return s.settings.Get()
}

// Cleanup sweeps the archive at now using the configured retention.
func (s *Scheduler) Cleanup(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.archive.Sweep(ctx, now, s.archive.Retention())
	if err != nil {
		return removed, err
	}

	remaining := 0
	if entries, err := s.archive.List(ctx); err == nil {
		remaining = len(entries)
	}
	s.observer.ArchiveSwept(removed, remaining)

	logging.FromContext(ctx).Debug().Int("removed", removed).Int("remaining", remaining).Msg("archive swept")
	return removed, nil
}

// HandleTick dispatches a named periodic trigger.
func (s *Scheduler) HandleTick(ctx context.Context, name string) error {
	now := s.clock.Now()

	switch name {
	case TickInactiveTabs:
		_, err := s.Run(ctx, now)
		return err
	case TickClosedTabsCleanup:
		_, err := s.Cleanup(ctx, now)
		return err
	default:
		return fmt.Errorf("%w: tick %q", domain.ErrUnknownEvent, name)
	}
}

// Reload re-reads persisted pins and settings.
func (s *Scheduler) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.Join(s.settings.Load(ctx), s.pins.Load(ctx))
}

// Flush retries every write that failed earlier.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.flushLocked(ctx)
}

// Shutdown stops every pending close and flushes state.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cancelled := s.warnings.CancelAll(); cancelled > 0 {
		logging.FromContext(ctx).Debug().Int("cancelled", cancelled).Msg("pending closes dropped on shutdown")
	}
	return s.flushLocked(ctx)
}

func (s *Scheduler) flushLocked(ctx context.Context) error {
	return errors.Join(
		s.pins.Flush(ctx),
		s.settings.Flush(ctx),
		s.archive.Flush(ctx),
	)
}

// evictLocked closes the tab and archives it. It returns false when the host no longer had
// the tab.
func (s *Scheduler) evictLocked(ctx context.Context, tab domain.Tab, now time.Time) (bool, error) {
	log := logging.FromContext(ctx)

	err := s.pool.Close(ctx, tab.ID)
	if errors.Is(err, domain.ErrTabNotFound) {
		s.observer.StaleTarget(tab.ID)
		s.forgetLocked(ctx, tab.ID)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("close tab %s: %w", tab.ID, err)
	}

	entry := domain.ClosedEntry{
		ID:         s.newID(),
		TabID:      tab.ID,
		Title:      tab.Title,
		URL:        tab.URL,
		FavIconURL: tab.FavIconURL,
		TimeClosed: now,
	}
	if err := s.archive.Record(ctx, entry); err != nil {
		log.Warn().Err(err).Str("tab_id", string(tab.ID)).Msg("archive write deferred")
	}

	s.forgetLocked(ctx, tab.ID)
	s.observer.TabEvicted(tab.ID)
	log.Info().Str("tab_id", string(tab.ID)).Str("url", tab.URL).Msg("tab evicted")

	return true, nil
}

func (s *Scheduler) cancelLocked(ctx context.Context, id domain.TabID) {
	s.dropCountdownLocked(ctx, id)
	if s.warnings.Cancel(id) {
		s.observer.WarningCancelled(id)
		logging.FromContext(ctx).Info().Str("tab_id", string(id)).Msg("pending close cancelled")
	}
}

func (s *Scheduler) forgetLocked(ctx context.Context, id domain.TabID) {
	s.activity.Forget(id)
	s.warnings.Cancel(id)
	s.dropCountdownLocked(ctx, id)
	if err := s.pins.Forget(ctx, id); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("tab_id", string(id)).Msg("pin purge deferred")
	}
}

// dropCountdownLocked removes id from the countdown cache and rewrites the persisted copy when
// it held an entry.
func (s *Scheduler) dropCountdownLocked(ctx context.Context, id domain.TabID) {
	if _, ok := s.countdown[id]; !ok {
		return
	}
	delete(s.countdown, id)
	s.saveCountdownsLocked(ctx)
}

func (s *Scheduler) saveCountdownsLocked(ctx context.Context) {
	if s.countdowns == nil {
		return
	}
	if err := s.countdowns.SaveCountdowns(ctx, s.countdownListLocked()); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("saving countdowns failed")
	}
}

func (s *Scheduler) countdownListLocked() []domain.Countdown {
	list := make([]domain.Countdown, 0, len(s.countdown))
	for _, entry := range s.countdown {
		list = append(list, entry)
	}
	domain.SortCountdowns(list)
	return list
}

func findTab(tabs []domain.Tab, id domain.TabID) (domain.Tab, bool) {
	for _, tab := range tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return domain.Tab{}, false
}
