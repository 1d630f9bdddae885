package ports

import (
	"context"

	"github.com/bnema/tabsweep/internal/domain"
)

type Notifier interface {
	Warn(ctx context.Context, warning domain.Warning) error
}
