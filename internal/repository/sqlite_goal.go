package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/lifemap/internal/db"
	"github.com/alexanderramin/lifemap/internal/domain"
)

const goalColumns = `id, timeline_id, parent_id, name, description, url, date,
		progress, order_index`

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

// ReplaceTree is several statements; run it inside a UnitOfWork so a failed
// write keeps the previous tree.
func (r *SQLiteGoalRepo) ReplaceTree(ctx context.Context, timelineID string, tree *domain.Tree) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE timeline_id = ?`, timelineID); err != nil {
		return fmt.Errorf("clearing goals: %w", err)
	}

	now := nowUTC()
	query := `INSERT INTO goals (` + goalColumns + `, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var insertErr error
	order := make(map[string]int)
	tree.Walk(func(g *domain.Goal, _ int) bool {
		parentID := g.ParentID()
		if g == tree.Root() {
			parentID = ""
		}
		idx := order[parentID]
		order[parentID] = idx + 1

		_, err := r.db.ExecContext(ctx, query,
			g.ID,
			timelineID,
			nullableString(parentID),
			g.Name,
			g.Description,
			g.URL,
			g.Date,
			g.Progress(),
			idx,
			now,
			now,
		)
		if err != nil {
			insertErr = fmt.Errorf("inserting goal %q: %w", g.Name, err)
			return false
		}
		return true
	})
	return insertErr
}

func (r *SQLiteGoalRepo) ListByTimeline(ctx context.Context, timelineID string) ([]GoalRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE timeline_id = ? ORDER BY order_index, rowid`,
		timelineID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var out []GoalRow
	for rows.Next() {
		var g GoalRow
		var parentID sql.NullString
		err := rows.Scan(
			&g.ID, &g.TimelineID, &parentID, &g.Name, &g.Description, &g.URL, &g.Date,
			&g.Progress, &g.OrderIndex,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		g.ParentID = stringFromNull(parentID)
		out = append(out, g)
	}
	return out, rows.Err()
}

// CountByTimeline returns the number of stored goals and their mean progress.
func (r *SQLiteGoalRepo) CountByTimeline(ctx context.Context, timelineID string) (int, float64, error) {
	var count int
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), AVG(progress) FROM goals WHERE timeline_id = ?`, timelineID,
	).Scan(&count, &avg)
	if err != nil {
		return 0, 0, fmt.Errorf("counting goals: %w", err)
	}
	return count, avg.Float64, nil
}
