package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildUpsertSessionQuery verifies the session upsert targets the
// username conflict and refreshes saved_at.
func TestBuildUpsertSessionQuery(t *testing.T) {
	query, args, err := buildUpsertSessionQuery("alice", "issued.token")

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO sessions (username,token) VALUES (?,?) "+
			"ON CONFLICT(username) DO UPDATE SET token = excluded.token, saved_at = CURRENT_TIMESTAMP",
		query)
	assert.Equal(t, []any{"alice", "issued.token"}, args)
}

// TestBuildSelectLastSessionQuery verifies only the most recent session is
// selected.
func TestBuildSelectLastSessionQuery(t *testing.T) {
	query, args, err := buildSelectLastSessionQuery()

	require.NoError(t, err)
	assert.Equal(t, "SELECT username, token, saved_at FROM sessions ORDER BY saved_at DESC LIMIT 1", query)
	assert.Empty(t, args)
}

// TestBuildDeleteSessionsQuery verifies all sessions are wiped on logout.
func TestBuildDeleteSessionsQuery(t *testing.T) {
	query, args, err := buildDeleteSessionsQuery()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions", query)
	assert.Empty(t, args)
}

// TestBuildProjectCacheQueries verifies the snapshot-replacement queries for
// the projects cache.
func TestBuildProjectCacheQueries(t *testing.T) {
	query, args, err := buildDeleteProjectsQuery("alice")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM projects WHERE username = ?", query)
	assert.Equal(t, []any{"alice"}, args)

	query, args, err = buildInsertProjectQuery("alice", "p-uuid", "launch plan", "alice", 1700000000, 1700000100, `["bob"]`)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO projects (uuid,username,name,admin,created_at,updated_at,invitees) VALUES (?,?,?,?,?,?,?)",
		query)
	assert.Len(t, args, 7)

	query, args, err = buildSelectProjectsQuery("alice")
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT uuid, name, admin, created_at, updated_at, invitees FROM projects WHERE username = ?",
		query)
	assert.Equal(t, []any{"alice"}, args)
}

// TestBuildTaskCacheQueries verifies the snapshot-replacement queries for
// the tasks cache, including the row ordering on read.
func TestBuildTaskCacheQueries(t *testing.T) {
	query, args, err := buildDeleteTasksQuery("p-uuid")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM tasks WHERE project_uuid = ?", query)
	assert.Equal(t, []any{"p-uuid"}, args)

	query, args, err = buildInsertTaskQuery("t:p", "t-uuid", "p-uuid", "task", 0, "design", "", 1700000000, 1700259200, false, "#e07a5f", "[]")
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO tasks (id,task_uuid,project_uuid,task_type,row,name,description,start_date,end_date,completed,colour,dependencies) "+
			"VALUES (?,?,?,?,?,?,?,?,?,?,?,?)",
		query)
	assert.Len(t, args, 12)

	query, args, err = buildSelectTasksQuery("p-uuid")
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, task_uuid, task_type, row, name, description, start_date, end_date, completed, colour, dependencies "+
			"FROM tasks WHERE project_uuid = ? ORDER BY row ASC",
		query)
	assert.Equal(t, []any{"p-uuid"}, args)
}
