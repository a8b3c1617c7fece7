package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"timelines", "goals"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
	for _, idx := range []string{"idx_goals_timeline", "idx_goals_parent", "idx_goals_single_root"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func insertTimeline(t *testing.T, db *sql.DB, id, name string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO timelines (id, name, created_at, updated_at) VALUES (?, ?, 'now', 'now')`, id, name)
	require.NoError(t, err)
}

func insertGoal(db *sql.DB, id, timelineID string, parentID any, progress int) error {
	_, err := db.Exec(`INSERT INTO goals (id, timeline_id, parent_id, name, progress, created_at, updated_at)
		VALUES (?, ?, ?, 'g', ?, 'now', 'now')`, id, timelineID, parentID, progress)
	return err
}

func TestSchema_ProgressCheck(t *testing.T) {
	db := openTestDB(t)
	insertTimeline(t, db, "t1", "default")

	assert.NoError(t, insertGoal(db, "g1", "t1", nil, 100))
	assert.Error(t, insertGoal(db, "g2", "t1", "g1", 101))
	assert.Error(t, insertGoal(db, "g3", "t1", "g1", -1))
}

func TestSchema_SingleRootPerTimeline(t *testing.T) {
	db := openTestDB(t)
	insertTimeline(t, db, "t1", "default")

	require.NoError(t, insertGoal(db, "root", "t1", nil, 0))
	assert.Error(t, insertGoal(db, "root2", "t1", nil, 0))
}

func TestSchema_UniqueTimelineName(t *testing.T) {
	db := openTestDB(t)
	insertTimeline(t, db, "t1", "default")

	_, err := db.Exec(`INSERT INTO timelines (id, name, created_at, updated_at) VALUES ('t2', 'default', 'now', 'now')`)
	assert.Error(t, err)
}

func TestSchema_CascadeDelete(t *testing.T) {
	db := openTestDB(t)
	insertTimeline(t, db, "t1", "default")
	require.NoError(t, insertGoal(db, "root", "t1", nil, 0))
	require.NoError(t, insertGoal(db, "child", "t1", "root", 0))
	require.NoError(t, insertGoal(db, "grandchild", "t1", "child", 0))

	_, err := db.Exec(`DELETE FROM goals WHERE id = 'child'`)
	require.NoError(t, err)
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM goals`).Scan(&n))
	assert.Equal(t, 1, n, "deleting a goal removes its subtree")

	_, err = db.Exec(`DELETE FROM timelines WHERE id = 't1'`)
	require.NoError(t, err)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM goals`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestSchema_ForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)
	assert.Error(t, insertGoal(db, "orphan", "missing", nil, 0))
}
