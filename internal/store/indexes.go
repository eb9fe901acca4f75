package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. CreateMany is
// idempotent, so this runs unconditionally at every server start.
//
// Indexes:
//   - users/accounts: unique username (registration conflict detection)
//   - projects/project_data: admin, invitees (per-user project listing)
//   - projects/tasks: project_uuid (task fetch), project_uuid+row
//     (row re-packing after deletion)
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.accounts().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create accounts indexes: %w", err)
	}

	_, err = db.projectData().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "admin", Value: 1}}},
		{Keys: bson.D{{Key: "invitees", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create project_data indexes: %w", err)
	}

	_, err = db.projectTasks().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_uuid", Value: 1}}},
		{Keys: bson.D{{Key: "project_uuid", Value: 1}, {Key: "row", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create tasks indexes: %w", err)
	}

	return nil
}
