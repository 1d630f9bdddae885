package stream

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

// Table mirrors the host's open tabs from the events it reports. Closing a tab asks the host
// to close it and removes it locally.
type Table struct {
	mu      sync.RWMutex
	tabs    map[domain.TabID]domain.Tab
	order   []domain.TabID
	emitter *Emitter
}

var _ ports.ResourcePool = (*Table)(nil)

func NewTable(emitter *Emitter) *Table {
	return &Table{
		tabs:    make(map[domain.TabID]domain.Tab),
		emitter: emitter,
	}
}

// Upsert records a new tab or refreshes an existing one. A focused tab takes the focus of its
// window.
func (t *Table) Upsert(tab domain.Tab) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.tabs[tab.ID]; !ok {
		t.order = append(t.order, tab.ID)
	}
	t.tabs[tab.ID] = tab
	if tab.Focused {
		t.focusLocked(tab.ID)
	}
}

// Activate marks id as the focused tab of its window. It returns false for an unknown id.
func (t *Table) Activate(id domain.TabID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.tabs[id]; !ok {
		return false
	}
	t.focusLocked(id)
	return true
}

func (t *Table) Remove(id domain.TabID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.removeLocked(id)
}

func (t *Table) List(_ context.Context) ([]domain.Tab, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tabs := make([]domain.Tab, 0, len(t.order))
	for _, id := range t.order {
		tabs = append(tabs, t.tabs[id])
	}
	return tabs, nil
}

// Close asks the host to close id and drops it once the request is written. A failed write
// leaves the tab in place so the next tick retries it.
func (t *Table) Close(_ context.Context, id domain.TabID) error {
	t.mu.RLock()
	_, ok := t.tabs[id]
	t.mu.RUnlock()

	if !ok {
		return fmt.Errorf("close tab %s: %w", id, domain.ErrTabNotFound)
	}

	if err := t.emitter.emit(outboundMessage{Type: TypeClose, ID: string(id)}); err != nil {
		return fmt.Errorf("close tab %s: %w", id, err)
	}

	t.mu.Lock()
	t.removeLocked(id)
	t.mu.Unlock()

	return nil
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.tabs)
}

func (t *Table) focusLocked(id domain.TabID) {
	window := t.tabs[id].WindowID
	for otherID, tab := range t.tabs {
		if tab.WindowID != window {
			continue
		}
		tab.Focused = otherID == id
		t.tabs[otherID] = tab
	}
}

func (t *Table) removeLocked(id domain.TabID) bool {
	if _, ok := t.tabs[id]; !ok {
		return false
	}
	delete(t.tabs, id)
	for i, ordered := range t.order {
		if ordered == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}
