package ports

import (
	"context"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
)

type SettingsRepository interface {
	// LoadSettings returns false when no settings were ever saved.
	LoadSettings(ctx context.Context) (domain.Settings, bool, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

type PinRepository interface {
	LoadPins(ctx context.Context) (map[domain.TabID]bool, error)
	SavePins(ctx context.Context, pins map[domain.TabID]bool) error
}

type CountdownRepository interface {
	LoadCountdowns(ctx context.Context) ([]domain.Countdown, error)
	SaveCountdowns(ctx context.Context, countdowns []domain.Countdown) error
}

type ArchiveRepository interface {
	Append(ctx context.Context, entries []domain.ClosedEntry) error
	List(ctx context.Context) ([]domain.ClosedEntry, error)
	// Prune deletes entries closed strictly before cutoff and returns how many were removed.
	Prune(ctx context.Context, cutoff time.Time) (int, error)
	Clear(ctx context.Context) error
}
