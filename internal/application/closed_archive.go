package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

// ClosedArchive is the TTL-pruned log of evicted tabs. Entries that could not be written yet
// stay pending in memory and are retried on Flush.
type ClosedArchive struct {
	mu        sync.Mutex
	repo      ports.ArchiveRepository
	retention time.Duration
	pending   []domain.ClosedEntry
}

func NewClosedArchive(repo ports.ArchiveRepository, retention time.Duration) *ClosedArchive {
	if retention <= 0 {
		retention = domain.DefaultRetention
	}

	return &ClosedArchive{repo: repo, retention: retention}
}

func (a *ClosedArchive) Retention() time.Duration {
	return a.retention
}

func (a *ClosedArchive) Record(ctx context.Context, entry domain.ClosedEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = append(a.pending, entry)
	return a.flushLocked(ctx)
}

func (a *ClosedArchive) Flush(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.flushLocked(ctx)
}

// List returns every entry, newest first.
func (a *ClosedArchive) List(ctx context.Context) ([]domain.ClosedEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_ = a.flushLocked(ctx)

	stored, err := a.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list archive: %w", domain.ErrStoreUnavailable, err)
	}

	entries := make([]domain.ClosedEntry, 0, len(stored)+len(a.pending))
	entries = append(entries, stored...)
	entries = append(entries, a.pending...)
	domain.SortClosedEntries(entries)

	return entries, nil
}

// Sweep drops entries with now - timeClosed > retention and returns how many were removed.
func (a *ClosedArchive) Sweep(ctx context.Context, now time.Time, retention time.Duration) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	removed := 0
	kept := a.pending[:0]
	for _, entry := range a.pending {
		if entry.Expired(now, retention) {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	a.pending = kept

	pruned, err := a.repo.Prune(ctx, now.Add(-retention))
	if err != nil {
		return removed, fmt.Errorf("%w: prune archive: %w", domain.ErrStoreUnavailable, err)
	}

	return removed + pruned, nil
}

func (a *ClosedArchive) Clear(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = nil
	if err := a.repo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: clear archive: %w", domain.ErrStoreUnavailable, err)
	}

	return nil
}

func (a *ClosedArchive) flushLocked(ctx context.Context) error {
	if len(a.pending) == 0 {
		return nil
	}

	batch := make([]domain.ClosedEntry, len(a.pending))
	copy(batch, a.pending)
	if err := a.repo.Append(ctx, batch); err != nil {
		return fmt.Errorf("%w: append archive: %w", domain.ErrStoreUnavailable, err)
	}

	a.pending = nil
	return nil
}
