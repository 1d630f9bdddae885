package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/tabsweep/internal/adapters/repo/sqlite"
	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archiveTestCtx(t *testing.T) context.Context {
	t.Helper()

	logger, err := logging.NewFromConfigValues("debug", "console")
	require.NoError(t, err)
	return logging.WithContext(context.Background(), logger)
}

func newTestArchive(t *testing.T) (*sqlite.ArchiveRepository, context.Context) {
	t.Helper()

	ctx := archiveTestCtx(t)
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlite.NewArchiveRepository(db), ctx
}

func TestArchiveRepository_AppendAndListNewestFirst(t *testing.T) {
	repo, ctx := newTestArchive(t)
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	older := domain.ClosedEntry{ID: "1", TabID: "10", Title: "Older", URL: "https://older.example", TimeClosed: now.Add(-time.Hour)}
	newer := domain.ClosedEntry{ID: "2", TabID: "11", Title: "Newer", URL: "https://newer.example", FavIconURL: "https://newer.example/icon.png", TimeClosed: now}

	require.NoError(t, repo.Append(ctx, []domain.ClosedEntry{older, newer}))
	require.NoError(t, repo.Append(ctx, []domain.ClosedEntry{older}))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ClosedEntry{newer, older}, entries)
}

func TestArchiveRepository_PruneKeepsBoundary(t *testing.T) {
	repo, ctx := newTestArchive(t)
	cutoff := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, []domain.ClosedEntry{
		{ID: "old", TabID: "1", TimeClosed: cutoff.Add(-time.Nanosecond)},
		{ID: "edge", TabID: "2", TimeClosed: cutoff},
	}))

	removed, err := repo.Prune(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "edge", entries[0].ID)
}

func TestArchiveRepository_Clear(t *testing.T) {
	repo, ctx := newTestArchive(t)

	require.NoError(t, repo.Append(ctx, []domain.ClosedEntry{{ID: "1", TabID: "1", TimeClosed: time.Now()}}))
	require.NoError(t, repo.Clear(ctx))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewConnection_RejectsEmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(archiveTestCtx(t), "")
	assert.Error(t, err)
}
