package domain

import (
	"fmt"
	"time"
)

// WarningWindow is the fixed lead time between the warning and the close.
const WarningWindow = 10 * time.Second

const (
	DefaultInactivityLimit = 30 * time.Minute
	DefaultMaxTabs         = 8
	DefaultRetention       = 48 * time.Hour
)

type Settings struct {
	InactivityLimit time.Duration
	MaxTabs         int
}

// SettingsPatch carries a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	InactivityLimit *time.Duration
	MaxTabs         *int
}

func DefaultSettings() Settings {
	return Settings{
		InactivityLimit: DefaultInactivityLimit,
		MaxTabs:         DefaultMaxTabs,
	}
}

func (s Settings) Validate() error {
	if s.MaxTabs < 1 {
		return fmt.Errorf("%w: max tabs must be at least 1, got %d", ErrInvalidSettings, s.MaxTabs)
	}
	if s.InactivityLimit < WarningWindow {
		return fmt.Errorf("%w: inactivity limit must be at least %s, got %s", ErrInvalidSettings, WarningWindow, s.InactivityLimit)
	}

	return nil
}

// Merge applies the patch on top of s without validating the result.
func (s Settings) Merge(patch SettingsPatch) Settings {
	merged := s
	if patch.InactivityLimit != nil {
		merged.InactivityLimit = *patch.InactivityLimit
	}
	if patch.MaxTabs != nil {
		merged.MaxTabs = *patch.MaxTabs
	}

	return merged
}

func (p SettingsPatch) Empty() bool {
	return p.InactivityLimit == nil && p.MaxTabs == nil
}
