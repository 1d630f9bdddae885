package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, statePath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(StatePathKey, statePath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositorySettingsRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))

	_, found, err := repo.LoadSettings(context.Background())
	require.NoError(t, err)
	assert.False(t, found)

	want := domain.Settings{InactivityLimit: 90 * time.Second, MaxTabs: 3}
	require.NoError(t, repo.SaveSettings(context.Background(), want))

	got, found, err := repo.LoadSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestRepositoryPinsDropUnpinnedEntries(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))

	require.NoError(t, repo.SavePins(context.Background(), map[domain.TabID]bool{"12": true, "13": false}))

	pins, err := repo.LoadPins(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[domain.TabID]bool{"12": true}, pins)
}

func TestRepositoryCountdownsRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))
	computedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	want := []domain.Countdown{
		{TabID: "1", Title: "Docs", URL: "https://go.dev", Remaining: 8 * time.Second, Warned: true, ComputedAt: computedAt},
		{TabID: "2", Remaining: 40 * time.Second, ComputedAt: computedAt},
	}

	require.NoError(t, repo.SaveCountdowns(context.Background(), want))

	got, err := repo.LoadCountdowns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepositoryArchiveAppendListPrune(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	cutoff := now.Add(-48 * time.Hour)

	old := domain.ClosedEntry{ID: "old", TabID: "1", Title: "Old", URL: "https://old.example", TimeClosed: cutoff.Add(-time.Second)}
	boundary := domain.ClosedEntry{ID: "boundary", TabID: "2", Title: "Boundary", URL: "https://b.example", TimeClosed: cutoff}
	fresh := domain.ClosedEntry{ID: "fresh", TabID: "3", Title: "Fresh", URL: "https://fresh.example", FavIconURL: "https://fresh.example/favicon.ico", TimeClosed: now}

	require.NoError(t, repo.Append(context.Background(), []domain.ClosedEntry{old, boundary}))
	require.NoError(t, repo.Append(context.Background(), []domain.ClosedEntry{fresh, boundary}))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ClosedEntry{fresh, boundary, old}, entries)

	removed, err := repo.Prune(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	entries, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ClosedEntry{fresh, boundary}, entries)

	require.NoError(t, repo.Clear(context.Background()))
	entries, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRepositorySectionsSurviveEachOthersWrites(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	settingsWriter := newTestRepository(t, statePath)
	archiveWriter := newTestRepository(t, statePath)

	settings := domain.Settings{InactivityLimit: time.Hour, MaxTabs: 5}
	require.NoError(t, settingsWriter.SaveSettings(context.Background(), settings))
	require.NoError(t, archiveWriter.Append(context.Background(), []domain.ClosedEntry{{ID: "e1", TabID: "1", TimeClosed: time.Now()}}))
	require.NoError(t, settingsWriter.SavePins(context.Background(), map[domain.TabID]bool{"7": true}))

	got, found, err := archiveWriter.LoadSettings(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, settings, got)

	entries, err := settingsWriter.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.SaveSettings(context.Background(), domain.DefaultSettings()))

	statePath := filepath.Join(homeDir, ".tabsweep", "state.toml")
	assert.Equal(t, statePath, repo.Path())
	info, err := os.Stat(statePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "state.toml"))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	pins, err := repo.LoadPins(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pins)

	countdowns, err := repo.LoadCountdowns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, countdowns)
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(statePath, []byte("archive = ["), 0o600))

	repo := newTestRepository(t, statePath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode state file")
}

func TestRepositoryMalformedDurationReturnsError(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(statePath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[settings]",
		"inactivity_limit = \"soon\"",
		"max_tabs = 4",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, statePath)

	_, _, err := repo.LoadSettings(context.Background())
	assert.ErrorContains(t, err, "decode inactivity limit")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.SavePins(ctx, map[domain.TabID]bool{"1": true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentAppendsAcrossInstancesPreserveAllEntries(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	repoA := newTestRepository(t, statePath)
	repoB := newTestRepository(t, statePath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			entry := domain.ClosedEntry{ID: prefix + strconv.Itoa(i), TabID: domain.TabID(prefix), TimeClosed: time.Now()}
			errCh <- repo.Append(context.Background(), []domain.ClosedEntry{entry})
		}
	}
	go write(repoA, "a-")
	go write(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	entries, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	repo := newTestRepository(t, statePath)

	require.NoError(t, repo.SaveSettings(context.Background(), domain.DefaultSettings()))

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[settings]")
	assert.Contains(t, string(data), "30m0s")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(statePath, []byte("version = 999\n"), 0o600))

	repo := newTestRepository(t, statePath)

	_, err := repo.LoadPins(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported state schema version")
}

func TestRepositoryIsOwnWriteTracksLastSave(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	repo := newTestRepository(t, statePath)

	own, err := repo.IsOwnWrite()
	require.NoError(t, err)
	assert.False(t, own, "missing file")

	require.NoError(t, repo.SaveSettings(context.Background(), domain.Settings{InactivityLimit: time.Minute, MaxTabs: 5}))

	own, err = repo.IsOwnWrite()
	require.NoError(t, err)
	assert.True(t, own)

	other := newTestRepository(t, statePath)
	own, err = other.IsOwnWrite()
	require.NoError(t, err)
	assert.True(t, own, "instances on the same path share the record")

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(statePath, append(data, []byte("\n# edited\n")...), 0o600))

	own, err = repo.IsOwnWrite()
	require.NoError(t, err)
	assert.False(t, own)
}
