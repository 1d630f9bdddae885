// Package logged records warnings in the structured log. It is the last-resort notifier.
package logged

import (
	"context"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/logging"
	"github.com/bnema/tabsweep/internal/ports"
)

type Notifier struct{}

var _ ports.Notifier = Notifier{}

func (Notifier) Warn(ctx context.Context, warning domain.Warning) error {
	logging.FromContext(ctx).Warn().
		Str("tab_id", string(warning.TabID)).
		Str("title", warning.Title).
		Time("closes_at", warning.ClosesAt).
		Msg(warning.Message)
	return nil
}
