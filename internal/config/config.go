package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for ganttrack.
// It aggregates all sub-configurations and is populated by merging values
// from a .env file, environment variables, command-line flags, and an
// optional JSON file.
type StructuredConfig struct {
	// App holds token lifecycle settings and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// server-side MongoDB cluster and the client-side cache database.
	Storage Storage

	// Server holds the listen address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side transport settings. The client reads
	// the server base URL from the same SERVER_ADDRESS variable the server
	// uses for its listen address; each process only consumes its own view.
	Adapter Adapter

	// Workers holds background job settings for the client refresh poller.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of the values loaded from environment and flags.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token lifecycle configuration.
type App struct {
	// TokenIssuer is the "iss" claim embedded in every issued JWT and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an access token stays valid after issue.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenRenewAhead is the window before expiry inside which the server
	// issues a fresh token alongside the response.
	// Env: APP_TOKEN_RENEW_AHEAD
	TokenRenewAhead time.Duration `env:"TOKEN_RENEW_AHEAD"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of all storage backends.
type Storage struct {
	// Mongo holds the server-side MongoDB connection settings.
	Mongo Mongo

	// Cache holds the client-side local cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// Mongo holds credentials and the cluster host for the document database.
// The variable names match the server's .env file contract.
type Mongo struct {
	// User is the database username.
	// Env: MONGO_USER
	User string `env:"MONGO_USER"`

	// Pass is the database password.
	// Env: MONGO_PASS
	Pass string `env:"MONGO_PASS"`

	// Address is the cluster host, e.g. "cluster123.123abc.mongodb.net".
	// Env: MONGO_ADDRESS
	Address string `env:"MONGO_ADDRESS"`
}

// Cache holds client-side local cache settings.
type Cache struct {
	// Path is the SQLite database file used to cache the last fetched
	// projects and tasks for offline viewing.
	// Env: CACHE_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound transport settings used by the client.
type Adapter struct {
	// BaseURL is the server base URL the client talks to,
	// e.g. "https://localhost:8080".
	// Env: SERVER_ADDRESS
	BaseURL string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"ADAPTER_REQUEST_TIMEOUT"`
}

// Workers holds background job configuration for the client.
type Workers struct {
	// RefreshInterval is how often the client re-fetches the open
	// project's tasks so collaborators' edits show up.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Environment variables (with .env applied first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
