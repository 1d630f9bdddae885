package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

// SettingsStore holds the process-wide settings. Updates are last-write-wins.
type SettingsStore struct {
	mu      sync.RWMutex
	repo    ports.SettingsRepository
	current domain.Settings
	dirty   bool
}

func NewSettingsStore(repo ports.SettingsRepository, defaults domain.Settings) *SettingsStore {
	return &SettingsStore{repo: repo, current: defaults}
}

// Load adopts the persisted settings when present and valid.
func (s *SettingsStore) Load(ctx context.Context) error {
	settings, ok, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return fmt.Errorf("%w: load settings: %w", domain.ErrStoreUnavailable, err)
	}
	if !ok {
		return nil
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		s.current = settings
	}

	return nil
}

func (s *SettingsStore) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Update merges patch into the current settings. An invalid result is rejected as a whole.
// The returned settings are the ones in effect after the call.
func (s *SettingsStore) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.current.Merge(patch)
	if err := merged.Validate(); err != nil {
		return s.current, err
	}

	s.current = merged
	return s.current, s.persistLocked(ctx)
}

func (s *SettingsStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	return s.persistLocked(ctx)
}

func (s *SettingsStore) persistLocked(ctx context.Context) error {
	if err := s.repo.SaveSettings(ctx, s.current); err != nil {
		s.dirty = true
		return fmt.Errorf("%w: save settings: %w", domain.ErrStoreUnavailable, err)
	}

	s.dirty = false
	return nil
}
