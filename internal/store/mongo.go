package store

import (
	"context"
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
)

// Database and collection names. Accounts live in their own database;
// project documents and their tasks share the projects database.
const (
	usersDatabase      = "users"
	accountsCollection = "accounts"

	projectsDatabase       = "projects"
	projectDataCollection  = "project_data"
	projectTasksCollection = "tasks"
)

// mongoURITemplate is the Atlas-style connection string. retryWrites and
// majority write concern keep whole-document task updates durable across
// replica set elections.
const mongoURITemplate = "mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority"

// DB wraps the MongoDB client handle shared by all server repositories.
type DB struct {
	client *mongo.Client
	logger *logger.Logger
}

// NewConnectMongo opens a connection to the configured MongoDB cluster and
// verifies it with a ping against the primary.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*DB, error) {
	uri := fmt.Sprintf(mongoURITemplate,
		url.QueryEscape(cfg.User),
		url.QueryEscape(cfg.Pass),
		cfg.Address,
	)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		return nil, err
	}

	log.Info().Str("address", cfg.Address).Msg("connected to mongodb")

	return &DB{client: client, logger: log}, nil
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *DB) accounts() *mongo.Collection {
	return db.client.Database(usersDatabase).Collection(accountsCollection)
}

func (db *DB) projectData() *mongo.Collection {
	return db.client.Database(projectsDatabase).Collection(projectDataCollection)
}

func (db *DB) projectTasks() *mongo.Collection {
	return db.client.Database(projectsDatabase).Collection(projectTasksCollection)
}
