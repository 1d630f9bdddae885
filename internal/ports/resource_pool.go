package ports

import (
	"context"

	"github.com/bnema/tabsweep/internal/domain"
)

// ResourcePool is the host's set of open tabs.
type ResourcePool interface {
	List(ctx context.Context) ([]domain.Tab, error)
	// Close instructs the host to close the tab. It returns domain.ErrTabNotFound when the tab
	// is already gone.
	Close(ctx context.Context, id domain.TabID) error
}
