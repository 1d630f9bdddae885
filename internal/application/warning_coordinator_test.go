package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports/mocks"
	"github.com/bnema/tabsweep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWarningCoordinatorArmEmitsOnceAndFires(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clock := testutil.NewFakeClock(now)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Warn(mock.Anything, domain.Warning{
		TabID:    "a",
		Title:    "https://a.example",
		Message:  domain.WarningMessage,
		ClosesAt: now.Add(domain.WarningWindow),
	}).Return(nil).Once()

	coordinator := NewWarningCoordinator(clock, notifier)
	var fired []uint64
	coordinator.setDueHandler(func(_ context.Context, id domain.TabID, episode uint64) {
		assert.Equal(t, domain.TabID("a"), id)
		fired = append(fired, episode)
	})

	tab := domain.Tab{ID: "a", URL: "https://a.example"}
	armed, err := coordinator.Arm(context.Background(), tab, now)
	require.NoError(t, err)
	assert.True(t, armed)

	armed, err = coordinator.Arm(context.Background(), tab, now)
	require.NoError(t, err)
	assert.False(t, armed)

	closesAt, ok := coordinator.ClosesAt("a")
	require.True(t, ok)
	assert.Equal(t, now.Add(domain.WarningWindow), closesAt)

	clock.Advance(domain.WarningWindow - time.Millisecond)
	assert.Empty(t, fired)

	clock.Advance(time.Millisecond)
	require.Len(t, fired, 1)
	assert.True(t, coordinator.claim("a", fired[0]))
	assert.False(t, coordinator.claim("a", fired[0]))
	assert.Equal(t, domain.WarningIdle, coordinator.State("a"))
}

func TestWarningCoordinatorCancelIsSafeAfterFire(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clock := testutil.NewFakeClock(now)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Warn(mock.Anything, mock.Anything).Return(nil)

	coordinator := NewWarningCoordinator(clock, notifier)

	_, err := coordinator.Arm(context.Background(), domain.Tab{ID: "a"}, now)
	require.NoError(t, err)
	clock.Advance(domain.WarningWindow)

	assert.False(t, coordinator.Cancel("a"))
	assert.False(t, coordinator.Cancel("a"))
	assert.Zero(t, coordinator.Len())
}

func TestWarningCoordinatorStaysArmedWhenNotifierFails(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clock := testutil.NewFakeClock(now)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Warn(mock.Anything, mock.Anything).Return(assert.AnError)

	coordinator := NewWarningCoordinator(clock, notifier)

	armed, err := coordinator.Arm(context.Background(), domain.Tab{ID: "a"}, now)
	require.ErrorIs(t, err, assert.AnError)
	assert.True(t, armed)
	assert.True(t, coordinator.IsArmed("a"))

	assert.True(t, coordinator.Cancel("a"))
	assert.Zero(t, clock.Pending())
}

func TestWarningCoordinatorCancelAll(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clock := testutil.NewFakeClock(now)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Warn(mock.Anything, mock.Anything).Return(nil).Times(2)

	coordinator := NewWarningCoordinator(clock, notifier)
	for _, id := range []domain.TabID{"a", "b"} {
		_, err := coordinator.Arm(context.Background(), domain.Tab{ID: id}, now)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, coordinator.CancelAll())
	assert.Zero(t, clock.Pending())
	assert.Zero(t, coordinator.CancelAll())
}
