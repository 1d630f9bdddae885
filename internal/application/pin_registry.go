package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

// PinRegistry holds the per-tab exemption flag. Unknown ids are unpinned.
type PinRegistry struct {
	mu    sync.RWMutex
	repo  ports.PinRepository
	pins  map[domain.TabID]bool
	dirty bool
}

func NewPinRegistry(repo ports.PinRepository) *PinRegistry {
	return &PinRegistry{
		repo: repo,
		pins: make(map[domain.TabID]bool),
	}
}

// Load replaces the in-memory pins with the persisted ones. Unflushed local changes win.
func (r *PinRegistry) Load(ctx context.Context) error {
	pins, err := r.repo.LoadPins(ctx)
	if err != nil {
		return fmt.Errorf("%w: load pins: %w", domain.ErrStoreUnavailable, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dirty {
		return nil
	}

	r.pins = make(map[domain.TabID]bool, len(pins))
	for id, pinned := range pins {
		if pinned {
			r.pins[id] = true
		}
	}

	return nil
}

// SetPinned applies the flag immediately. A persistence failure leaves the change in effect
// and marks the registry for the next Flush.
func (r *PinRegistry) SetPinned(ctx context.Context, id domain.TabID, pinned bool) error {
	if !id.Valid() {
		return fmt.Errorf("pin tab: empty tab id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if pinned {
		r.pins[id] = true
	} else {
		delete(r.pins, id)
	}

	return r.persistLocked(ctx)
}

func (r *PinRegistry) IsPinned(id domain.TabID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.pins[id]
}

// Forget purges the entry of a closed tab.
func (r *PinRegistry) Forget(ctx context.Context, id domain.TabID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pins[id]; !ok {
		return nil
	}
	delete(r.pins, id)

	return r.persistLocked(ctx)
}

func (r *PinRegistry) All() map[domain.TabID]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.copyLocked()
}

func (r *PinRegistry) Flush(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.dirty {
		return nil
	}

	return r.persistLocked(ctx)
}

func (r *PinRegistry) persistLocked(ctx context.Context) error {
	if err := r.repo.SavePins(ctx, r.copyLocked()); err != nil {
		r.dirty = true
		return fmt.Errorf("%w: save pins: %w", domain.ErrStoreUnavailable, err)
	}

	r.dirty = false
	return nil
}

func (r *PinRegistry) copyLocked() map[domain.TabID]bool {
	pins := make(map[domain.TabID]bool, len(r.pins))
	for id, pinned := range r.pins {
		pins[id] = pinned
	}
	return pins
}
