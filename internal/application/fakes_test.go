package application

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
)

var errStoreDown = errors.New("disk full")

type inMemoryPool struct {
	mu      sync.Mutex
	tabs    []domain.Tab
	closed  []domain.TabID
	listErr error
	// vanish makes Close report the tab as already gone.
	vanish map[domain.TabID]bool
}

func newInMemoryPool(tabs ...domain.Tab) *inMemoryPool {
	return &inMemoryPool{tabs: tabs, vanish: map[domain.TabID]bool{}}
}

func (p *inMemoryPool) List(_ context.Context) ([]domain.Tab, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.listErr != nil {
		return nil, p.listErr
	}
	tabs := make([]domain.Tab, len(p.tabs))
	copy(tabs, p.tabs)
	return tabs, nil
}

func (p *inMemoryPool) Close(_ context.Context, id domain.TabID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.vanish[id] {
		p.removeLocked(id)
		return domain.ErrTabNotFound
	}
	for _, tab := range p.tabs {
		if tab.ID == id {
			p.removeLocked(id)
			p.closed = append(p.closed, id)
			return nil
		}
	}
	return domain.ErrTabNotFound
}

func (p *inMemoryPool) remove(id domain.TabID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.removeLocked(id)
}

func (p *inMemoryPool) setFocused(id domain.TabID, focused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.tabs {
		if p.tabs[i].ID == id {
			p.tabs[i].Focused = focused
		}
	}
}

func (p *inMemoryPool) closedIDs() []domain.TabID {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]domain.TabID(nil), p.closed...)
}

func (p *inMemoryPool) removeLocked(id domain.TabID) {
	kept := p.tabs[:0]
	for _, tab := range p.tabs {
		if tab.ID != id {
			kept = append(kept, tab)
		}
	}
	p.tabs = kept
}

// inMemoryState backs the settings, pin and countdown repositories with one document.
type inMemoryState struct {
	mu         sync.Mutex
	settings   *domain.Settings
	pins       map[domain.TabID]bool
	countdowns []domain.Countdown
	saveErr    error
	saves      int
}

func newInMemoryState() *inMemoryState {
	return &inMemoryState{pins: map[domain.TabID]bool{}}
}

func (s *inMemoryState) LoadSettings(_ context.Context) (domain.Settings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		return domain.Settings{}, false, nil
	}
	return *s.settings, true, nil
}

func (s *inMemoryState) SaveSettings(_ context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.settings = &settings
	return nil
}

func (s *inMemoryState) LoadPins(_ context.Context) (map[domain.TabID]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pins := make(map[domain.TabID]bool, len(s.pins))
	for id, pinned := range s.pins {
		pins[id] = pinned
	}
	return pins, nil
}

func (s *inMemoryState) SavePins(_ context.Context, pins map[domain.TabID]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.pins = pins
	return nil
}

func (s *inMemoryState) LoadCountdowns(_ context.Context) ([]domain.Countdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Countdown(nil), s.countdowns...), nil
}

func (s *inMemoryState) SaveCountdowns(_ context.Context, countdowns []domain.Countdown) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	s.countdowns = countdowns
	return nil
}

func (s *inMemoryState) failSaves(err error) {
	s.mu.Lock()
	s.saveErr = err
	s.mu.Unlock()
}

type inMemoryArchive struct {
	mu        sync.Mutex
	entries   []domain.ClosedEntry
	appendErr error
}

func (a *inMemoryArchive) Append(_ context.Context, entries []domain.ClosedEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.appendErr != nil {
		return a.appendErr
	}
	a.entries = append(a.entries, entries...)
	return nil
}

func (a *inMemoryArchive) List(_ context.Context) ([]domain.ClosedEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]domain.ClosedEntry(nil), a.entries...), nil
}

func (a *inMemoryArchive) Prune(_ context.Context, cutoff time.Time) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept := a.entries[:0]
	removed := 0
	for _, entry := range a.entries {
		if entry.TimeClosed.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	a.entries = kept
	return removed, nil
}

func (a *inMemoryArchive) Clear(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = nil
	return nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	warnings []domain.Warning
	err      error
}

func (n *recordingNotifier) Warn(_ context.Context, warning domain.Warning) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.warnings = append(n.warnings, warning)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.warnings)
}

type recordingObserver struct {
	mu        sync.Mutex
	warned    []domain.TabID
	evicted   []domain.TabID
	cancelled []domain.TabID
	stale     []domain.TabID
	ticks     int
	swept     int
}

func (o *recordingObserver) TickCompleted(int, int) {
	o.mu.Lock()
	o.ticks++
	o.mu.Unlock()
}

func (o *recordingObserver) TabWarned(id domain.TabID) {
	o.mu.Lock()
	o.warned = append(o.warned, id)
	o.mu.Unlock()
}

func (o *recordingObserver) TabEvicted(id domain.TabID) {
	o.mu.Lock()
	o.evicted = append(o.evicted, id)
	o.mu.Unlock()
}

func (o *recordingObserver) WarningCancelled(id domain.TabID) {
	o.mu.Lock()
	o.cancelled = append(o.cancelled, id)
	o.mu.Unlock()
}

func (o *recordingObserver) StaleTarget(id domain.TabID) {
	o.mu.Lock()
	o.stale = append(o.stale, id)
	o.mu.Unlock()
}

func (o *recordingObserver) ArchiveSwept(removed, _ int) {
	o.mu.Lock()
	o.swept += removed
	o.mu.Unlock()
}

func tabIDs(entries []domain.ClosedEntry) []domain.TabID {
	ids := make([]domain.TabID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.TabID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
