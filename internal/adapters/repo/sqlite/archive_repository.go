package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

type ArchiveRepository struct {
	db *sql.DB
}

var _ ports.ArchiveRepository = (*ArchiveRepository)(nil)

func NewArchiveRepository(db *sql.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

func (r *ArchiveRepository) Append(ctx context.Context, entries []domain.ClosedEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive append: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO closed_tabs (id, tab_id, title, url, fav_icon_url, closed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("prepare archive append: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, entry := range entries {
		if _, err := stmt.ExecContext(ctx,
			entry.ID,
			string(entry.TabID),
			entry.Title,
			entry.URL,
			entry.FavIconURL,
			entry.TimeClosed.UnixNano(),
		); err != nil {
			return fmt.Errorf("insert closed tab %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive append: %w", err)
	}
	return nil
}

func (r *ArchiveRepository) List(ctx context.Context) ([]domain.ClosedEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, tab_id, title, url, fav_icon_url, closed_at
		FROM closed_tabs
		ORDER BY closed_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query archive: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.ClosedEntry
	for rows.Next() {
		var (
			entry    domain.ClosedEntry
			tabID    string
			closedAt int64
		)
		if err := rows.Scan(&entry.ID, &tabID, &entry.Title, &entry.URL, &entry.FavIconURL, &closedAt); err != nil {
			return nil, fmt.Errorf("scan closed tab: %w", err)
		}
		entry.TabID = domain.TabID(tabID)
		entry.TimeClosed = time.Unix(0, closedAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archive: %w", err)
	}

	return entries, nil
}

func (r *ArchiveRepository) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM closed_tabs WHERE closed_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("prune archive: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count pruned entries: %w", err)
	}
	return int(removed), nil
}

func (r *ArchiveRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM closed_tabs`); err != nil {
		return fmt.Errorf("clear archive: %w", err)
	}
	return nil
}
