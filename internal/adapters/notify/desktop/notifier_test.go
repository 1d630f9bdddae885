package desktop

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierWarnUsesNotifySend(t *testing.T) {
	t.Parallel()

	called := false
	notifier := &Notifier{
		run: func(ctx context.Context, args ...string) (string, error) {
			called = true
			assert.Equal(t, context.Background(), ctx)
			assert.Equal(t, []string{
				"--app-name", "tabsweep",
				"--urgency", "normal",
				"--expire-time", "10000",
				"Tab Closing Soon",
				"Docs\nThis tab will close in 10 seconds.",
			}, args)
			return "", nil
		},
	}

	err := notifier.Warn(context.Background(), domain.Warning{TabID: "4", Title: "Docs", Message: domain.WarningMessage})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestNotifierWarnIncludesStderrInError(t *testing.T) {
	t.Parallel()

	notifier := &Notifier{
		run: func(context.Context, ...string) (string, error) {
			return "no notification daemon", errors.New("exit status 1")
		},
	}

	err := notifier.Warn(context.Background(), domain.Warning{TabID: "4", Message: domain.WarningMessage})
	require.Error(t, err)
	assert.ErrorContains(t, err, "notify-send warning for tab \"4\"")
	assert.ErrorContains(t, err, "no notification daemon")
}

func TestNotifierWarnHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	called := false
	notifier := &Notifier{
		run: func(context.Context, ...string) (string, error) {
			called = true
			return "", nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Warn(ctx, domain.Warning{TabID: "4"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
