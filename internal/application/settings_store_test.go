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

func TestSettingsStoreUpdateMergesAndPersists(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	want := domain.Settings{InactivityLimit: time.Hour, MaxTabs: domain.DefaultMaxTabs}
	repo.EXPECT().SaveSettings(mock.Anything, want).Return(nil).Once()

	store := NewSettingsStore(repo, domain.DefaultSettings())
	limit := time.Hour

	settings, err := store.Update(context.Background(), domain.SettingsPatch{InactivityLimit: &limit})
	require.NoError(t, err)
	assert.Equal(t, want, settings)
	assert.Equal(t, want, store.Get())
}

func TestSettingsStoreRejectsInvalidUpdateWithoutPartialApply(t *testing.T) {
	store := NewSettingsStore(mocks.NewMockSettingsRepository(t), domain.DefaultSettings())
	limit := time.Hour
	maxTabs := 0

	settings, err := store.Update(context.Background(), domain.SettingsPatch{InactivityLimit: &limit, MaxTabs: &maxTabs})
	require.ErrorIs(t, err, domain.ErrInvalidSettings)
	assert.Equal(t, domain.DefaultSettings(), settings)
	assert.Equal(t, domain.DefaultSettings(), store.Get())
}

func TestSettingsStoreKeepsUpdateWhenSaveFails(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().SaveSettings(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	repo.EXPECT().SaveSettings(mock.Anything, mock.Anything).Return(nil).Once()

	store := NewSettingsStore(repo, domain.DefaultSettings())
	maxTabs := 3

	settings, err := store.Update(context.Background(), domain.SettingsPatch{MaxTabs: &maxTabs})
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 3, settings.MaxTabs)
	assert.Equal(t, 3, store.Get().MaxTabs)

	require.NoError(t, store.Flush(context.Background()))
}

func TestSettingsStoreLoad(t *testing.T) {
	tests := []struct {
		name    string
		stored  domain.Settings
		found   bool
		loadErr error
		want    domain.Settings
		wantErr error
	}{
		{name: "nothing stored", want: domain.DefaultSettings()},
		{name: "stored settings", stored: domain.Settings{InactivityLimit: time.Minute, MaxTabs: 2}, found: true, want: domain.Settings{InactivityLimit: time.Minute, MaxTabs: 2}},
		{name: "invalid stored settings", stored: domain.Settings{InactivityLimit: time.Minute}, found: true, want: domain.DefaultSettings(), wantErr: domain.ErrInvalidSettings},
		{name: "store down", loadErr: assert.AnError, want: domain.DefaultSettings(), wantErr: domain.ErrStoreUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockSettingsRepository(t)
			repo.EXPECT().LoadSettings(mock.Anything).Return(tc.stored, tc.found, tc.loadErr).Once()

			store := NewSettingsStore(repo, domain.DefaultSettings())
			err := store.Load(context.Background())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, store.Get())
		})
	}
}
