package config

import "time"

// Fallback values applied after all sources are merged. The original
// deployment ran the server on port 8080 with one-hour tokens renewed
// inside the last ten minutes.
const (
	defaultHTTPAddress     = ":8080"
	defaultBaseURL         = "http://localhost:8080"
	defaultTokenIssuer     = "ganttrack"
	defaultTokenDuration   = time.Hour
	defaultTokenRenewAhead = 10 * time.Minute
	defaultRequestTimeout  = 15 * time.Second
	defaultCachePath       = "ganttrack-cache.db"
	defaultRefreshInterval = 10 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = defaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.TokenRenewAhead == 0 {
		cfg.App.TokenRenewAhead = defaultTokenRenewAhead
	}
	if cfg.Storage.Cache.Path == "" {
		cfg.Storage.Cache.Path = defaultCachePath
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
}

// validate checks invariants shared by both processes. Mongo credentials
// are deliberately not required here: only the server consumes them, and
// [StructuredConfig.RequireMongo] enforces their presence at server
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenRenewAhead >= cfg.App.TokenDuration {
		return ErrInvalidTokenConfigs
	}

	return nil
}

// RequireMongo verifies that all MongoDB connection settings are present.
// Called by the server entrypoint before opening the database connection.
func (cfg *StructuredConfig) RequireMongo() error {
	mongo := cfg.Storage.Mongo
	if mongo.User == "" || mongo.Pass == "" || mongo.Address == "" {
		return ErrInvalidMongoConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.Cache.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
