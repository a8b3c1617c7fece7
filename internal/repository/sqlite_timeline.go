package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lifemap/internal/db"
	"github.com/alexanderramin/lifemap/internal/domain"
)

const timelineColumns = `id, name, created_at, updated_at`

// SQLiteTimelineRepo implements TimelineRepo using a SQLite database.
type SQLiteTimelineRepo struct {
	db db.DBTX
}

// NewSQLiteTimelineRepo creates a new SQLiteTimelineRepo.
func NewSQLiteTimelineRepo(conn db.DBTX) *SQLiteTimelineRepo {
	return &SQLiteTimelineRepo{db: conn}
}

func (r *SQLiteTimelineRepo) Create(ctx context.Context, t *domain.Timeline) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO timelines (`+timelineColumns+`) VALUES (?, ?, ?, ?)`,
		t.ID, t.Name,
		t.CreatedAt.UTC().Format(time.RFC3339Nano),
		t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("timeline %q: %w", t.Name, ErrConflict)
		}
		return fmt.Errorf("inserting timeline: %w", err)
	}
	return nil
}

func (r *SQLiteTimelineRepo) GetByName(ctx context.Context, name string) (*domain.Timeline, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+timelineColumns+` FROM timelines WHERE name = ?`, name)
	t, err := scanTimeline(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("timeline %q: %w", name, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTimelineRepo) List(ctx context.Context) ([]*domain.Timeline, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+timelineColumns+` FROM timelines ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing timelines: %w", err)
	}
	defer rows.Close()

	var out []*domain.Timeline
	for rows.Next() {
		t, err := scanTimeline(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Touch bumps updated_at.
func (r *SQLiteTimelineRepo) Touch(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE timelines SET updated_at = ? WHERE id = ?`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("touching timeline: %w", err)
	}
	return rowsAffected(res, "timeline")
}

func (r *SQLiteTimelineRepo) Rename(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE timelines SET name = ?, updated_at = ? WHERE id = ?`, name, nowUTC(), id)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("timeline %q: %w", name, ErrConflict)
		}
		return fmt.Errorf("renaming timeline: %w", err)
	}
	return rowsAffected(res, "timeline")
}

// Delete removes the timeline; its goals go with it through the cascade.
func (r *SQLiteTimelineRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM timelines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting timeline: %w", err)
	}
	return rowsAffected(res, "timeline")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTimeline(row rowScanner) (*domain.Timeline, error) {
	var t domain.Timeline
	var createdAt, updatedAt string
	if err := row.Scan(&t.ID, &t.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning timeline: %w", err)
	}
	var err error
	if t.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
