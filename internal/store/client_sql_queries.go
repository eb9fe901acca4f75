package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Query builders for the client cache. SQLite uses "?" placeholders, which
// is squirrel's default format.

func buildUpsertSessionQuery(username, token string) (string, []any, error) {
	return sq.Insert("sessions").
		Columns("username", "token").
		Values(username, token).
		Suffix("ON CONFLICT(username) DO UPDATE SET token = excluded.token, saved_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildSelectLastSessionQuery() (string, []any, error) {
	return sq.Select("username", "token", "saved_at").
		From("sessions").
		OrderBy("saved_at DESC").
		Limit(1).
		ToSql()
}

func buildDeleteSessionsQuery() (string, []any, error) {
	return sq.Delete("sessions").ToSql()
}

func buildDeleteProjectsQuery(username string) (string, []any, error) {
	return sq.Delete("projects").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertProjectQuery(username string, uuid, name, admin string, createdAt, updatedAt float64, inviteesJSON string) (string, []any, error) {
	return sq.Insert("projects").
		Columns("uuid", "username", "name", "admin", "created_at", "updated_at", "invitees").
		Values(uuid, username, name, admin, createdAt, updatedAt, inviteesJSON).
		ToSql()
}

func buildSelectProjectsQuery(username string) (string, []any, error) {
	return sq.Select("uuid", "name", "admin", "created_at", "updated_at", "invitees").
		From("projects").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildDeleteTasksQuery(projectUUID string) (string, []any, error) {
	return sq.Delete("tasks").
		Where(sq.Eq{"project_uuid": projectUUID}).
		ToSql()
}

func buildInsertTaskQuery(id, taskUUID, projectUUID, taskType string, row int, name, description string, startDate, endDate int64, completed bool, colour, dependenciesJSON string) (string, []any, error) {
	return sq.Insert("tasks").
		Columns("id", "task_uuid", "project_uuid", "task_type", "row", "name", "description", "start_date", "end_date", "completed", "colour", "dependencies").
		Values(id, taskUUID, projectUUID, taskType, row, name, description, startDate, endDate, completed, colour, dependenciesJSON).
		ToSql()
}

func buildSelectTasksQuery(projectUUID string) (string, []any, error) {
	return sq.Select("id", "task_uuid", "task_type", "row", "name", "description", "start_date", "end_date", "completed", "colour", "dependencies").
		From("tasks").
		Where(sq.Eq{"project_uuid": projectUUID}).
		OrderBy("row ASC").
		ToSql()
}
