package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

// Notifier delivers through the primary backend and falls back to the secondary one when the
// primary fails.
type Notifier struct {
	primary  ports.Notifier
	fallback ports.Notifier
}

var _ ports.Notifier = (*Notifier)(nil)

var (
	errNilPrimaryNotifier  = errors.New("primary notifier is nil")
	errNilFallbackNotifier = errors.New("fallback notifier is nil")
)

func NewNotifier(primary ports.Notifier, fallback ports.Notifier) *Notifier {
	notifier, err := NewNotifierChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return notifier
}

func NewNotifierChecked(primary ports.Notifier, fallback ports.Notifier) (*Notifier, error) {
	if primary == nil {
		return nil, errNilPrimaryNotifier
	}
	if fallback == nil {
		return nil, errNilFallbackNotifier
	}

	return &Notifier{primary: primary, fallback: fallback}, nil
}

func (n *Notifier) Warn(ctx context.Context, warning domain.Warning) error {
	err := n.primary.Warn(ctx, warning)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := n.fallback.Warn(ctx, warning)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary notifier failed: %w; fallback notifier failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
