package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	statusadapter "github.com/bnema/tabsweep/internal/adapters/render/status"
	sqliterepo "github.com/bnema/tabsweep/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/tabsweep/internal/adapters/repo/toml"
	"github.com/bnema/tabsweep/internal/application"
	"github.com/bnema/tabsweep/internal/config"
	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg             *config.Config
	repo            *tomlrepo.Repository
	statusRenderer  func(application.PersistedStatus, statusadapter.RenderOptions) (string, error)
	archiveRenderer func([]domain.ClosedEntry, statusadapter.RenderOptions) (string, error)
	now             func() time.Time
}

func wireApp() (*app, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.NewViper(dir))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	repoConfig := viper.New()
	repoConfig.Set(tomlrepo.StatePathKey, cfg.State.Path)
	repo, err := tomlrepo.NewRepository(repoConfig)
	if err != nil {
		return nil, fmt.Errorf("wire state repository: %w", err)
	}

	return &app{
		cfg:             cfg,
		repo:            repo,
		statusRenderer:  statusadapter.RenderStatus,
		archiveRenderer: statusadapter.RenderArchive,
		now:             time.Now,
	}, nil
}

// openArchive returns the configured archive backend. The returned close func is never nil.
func (a *app) openArchive(ctx context.Context) (ports.ArchiveRepository, func() error, error) {
	if a.cfg.Archive.Backend != config.ArchiveBackendSQLite {
		return a.repo, func() error { return nil }, nil
	}

	db, err := sqliterepo.NewConnection(ctx, a.cfg.Archive.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open archive database: %w", err)
	}
	if err := sqliterepo.RunMigrations(ctx, db); err != nil {
		return nil, nil, errors.Join(fmt.Errorf("migrate archive database: %w", err), db.Close())
	}

	return sqliterepo.NewArchiveRepository(db), db.Close, nil
}

func (a *app) closedArchive(ctx context.Context) (*application.ClosedArchive, func() error, error) {
	repo, closeFn, err := a.openArchive(ctx)
	if err != nil {
		return nil, nil, err
	}
	return application.NewClosedArchive(repo, a.cfg.Archive.Retention), closeFn, nil
}
