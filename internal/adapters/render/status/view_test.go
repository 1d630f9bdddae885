package status

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/tabsweep/internal/application"
	"github.com/bnema/tabsweep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStatusWithCountdowns(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	output, err := RenderStatus(application.PersistedStatus{
		Settings: domain.Settings{InactivityLimit: 30 * time.Minute, MaxTabs: 8},
		Pins:     []domain.TabID{"docs", "mail"},
		Countdowns: []domain.Countdown{
			{TabID: "a", Title: "Release notes", Remaining: 8 * time.Second, Warned: true, ComputedAt: now},
			{TabID: "b", URL: "https://example.com/b", Remaining: 5 * time.Minute, ComputedAt: now},
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Tab Sweep")
	assert.Contains(t, output, "close after 30 minutes idle, keep at most 8 tabs")
	assert.Contains(t, output, "pinned: docs, mail")
	assert.Contains(t, output, "Release notes (a)")
	assert.Contains(t, output, "closes in 8s")
	assert.Contains(t, output, "[warned]")
	assert.Contains(t, output, "https://example.com/b (b)")
	assert.Contains(t, output, "closes in 5 minutes")
	assert.Contains(t, output, "[")
	assert.Contains(t, output, "]")
}

func TestRenderStatusAgesCountdownsToNow(t *testing.T) {
	computed := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	output, err := RenderStatus(application.PersistedStatus{
		Settings: domain.Settings{InactivityLimit: time.Minute, MaxTabs: 1},
		Countdowns: []domain.Countdown{
			{TabID: "a", Title: "Old", Remaining: 20 * time.Second, ComputedAt: computed},
		},
	}, RenderOptions{Now: computed.Add(30 * time.Second)})

	require.NoError(t, err)
	assert.Contains(t, output, "closing now")
	assert.NotContains(t, output, "closes in")
}

func TestRenderStatusWithoutCountdowns(t *testing.T) {
	output, err := RenderStatus(application.PersistedStatus{
		Settings: domain.DefaultSettings(),
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "No tabs scheduled for closing.")
	assert.NotContains(t, output, "pinned:")
}

func TestRenderArchive(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	output, err := RenderArchive([]domain.ClosedEntry{
		{ID: "e2", TabID: "b", Title: "Design doc", URL: "https://example.com/doc", TimeClosed: now.Add(-5 * time.Minute)},
		{ID: "e1", TabID: "a", URL: "https://example.com/a", TimeClosed: now.Add(-2 * time.Hour)},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Closed Tabs")
	assert.Contains(t, output, "entries: 2")
	assert.Contains(t, output, "Design doc")
	assert.Contains(t, output, "closed 5 minutes ago")
	assert.Contains(t, output, "closed 2 hours ago")
	assert.Less(t, strings.Index(output, "Design doc"), strings.Index(output, "https://example.com/a"))
}

func TestRenderEmptyArchive(t *testing.T) {
	output, err := RenderArchive(nil, RenderOptions{Now: time.Now()})

	require.NoError(t, err)
	assert.Contains(t, output, "entries: 0")
	assert.Contains(t, output, "No closed tabs.")
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "seconds", in: 10 * time.Second, want: "10s"},
		{name: "rounds sub-second", in: 1500 * time.Millisecond, want: "2s"},
		{name: "minutes", in: 30 * time.Minute, want: "30 minutes"},
		{name: "hours", in: 3 * time.Hour, want: "3 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatDuration(tt.in))
		})
	}
}
