package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClosedArchiveListMergesPendingNewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	stored := domain.ClosedEntry{ID: "1", TabID: "a", TimeClosed: now.Add(-time.Hour)}
	pending := domain.ClosedEntry{ID: "2", TabID: "b", TimeClosed: now}

	repo := mocks.NewMockArchiveRepository(t)
	repo.EXPECT().Append(mock.Anything, []domain.ClosedEntry{pending}).Return(assert.AnError).Twice()
	repo.EXPECT().List(mock.Anything).Return([]domain.ClosedEntry{stored}, nil).Once()

	archive := NewClosedArchive(repo, 0)
	assert.Equal(t, domain.DefaultRetention, archive.Retention())

	err := archive.Record(context.Background(), pending)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	entries, err := archive.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ClosedEntry{pending, stored}, entries)
}

func TestClosedArchiveSweepPrunesPendingAndStored(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	retention := 48 * time.Hour
	expired := domain.ClosedEntry{ID: "old", TimeClosed: now.Add(-retention - time.Minute)}

	repo := mocks.NewMockArchiveRepository(t)
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	repo.EXPECT().Prune(mock.Anything, now.Add(-retention)).Return(2, nil).Once()

	archive := NewClosedArchive(repo, retention)
	_ = archive.Record(context.Background(), expired)

	removed, err := archive.Sweep(context.Background(), now, retention)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	require.NoError(t, archive.Flush(context.Background()))
}

func TestClosedArchiveClearDropsPending(t *testing.T) {
	repo := mocks.NewMockArchiveRepository(t)
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	repo.EXPECT().Clear(mock.Anything).Return(nil).Once()

	archive := NewClosedArchive(repo, time.Hour)
	_ = archive.Record(context.Background(), domain.ClosedEntry{ID: "1"})

	require.NoError(t, archive.Clear(context.Background()))
	require.NoError(t, archive.Flush(context.Background()))
}
