package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv verifies environment variables map onto the structured
// config via the env tags.
func TestParseEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "ganttrack-test")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("MONGO_USER", "dbuser")
	t.Setenv("MONGO_PASS", "dbpass")
	t.Setenv("MONGO_ADDRESS", "cluster0.abc123.mongodb.net")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("CACHE_PATH", "/tmp/cache.db")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "30s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "ganttrack-test", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "dbuser", cfg.Storage.Mongo.User)
	assert.Equal(t, "dbpass", cfg.Storage.Mongo.Pass)
	assert.Equal(t, "cluster0.abc123.mongodb.net", cfg.Storage.Mongo.Address)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	// the client reads its server URL from the same variable
	assert.Equal(t, "localhost:9090", cfg.Adapter.BaseURL)
	assert.Equal(t, "/tmp/cache.db", cfg.Storage.Cache.Path)
	assert.Equal(t, 30*time.Second, cfg.Workers.RefreshInterval)
}

// TestApplyDefaults verifies fallback values fill unset fields without
// clobbering explicit ones.
func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, "ganttrack", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Minute, cfg.App.TokenRenewAhead)
	assert.Equal(t, "ganttrack-cache.db", cfg.Storage.Cache.Path)
	assert.Equal(t, 10*time.Second, cfg.Workers.RefreshInterval)

	explicit := &StructuredConfig{
		App: App{TokenDuration: 2 * time.Hour},
	}
	explicit.applyDefaults()
	assert.Equal(t, 2*time.Hour, explicit.App.TokenDuration)
}

// TestValidate verifies the token lifecycle consistency check.
func TestValidate(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	assert.NoError(t, cfg.validate())

	cfg.App.TokenRenewAhead = cfg.App.TokenDuration
	assert.ErrorIs(t, cfg.validate(), ErrInvalidTokenConfigs)
}

// TestRequireMongo verifies the server-only credential check.
func TestRequireMongo(t *testing.T) {
	cfg := &StructuredConfig{}
	assert.ErrorIs(t, cfg.RequireMongo(), ErrInvalidMongoConfigs)

	cfg.Storage.Mongo = Mongo{User: "dbuser", Pass: "dbpass", Address: "cluster0.abc123.mongodb.net"}
	assert.NoError(t, cfg.RequireMongo())

	cfg.Storage.Mongo.Pass = ""
	assert.ErrorIs(t, cfg.RequireMongo(), ErrInvalidMongoConfigs)
}

// TestClientConfigValidate verifies the client view rejects incomplete
// settings.
func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://localhost:8080", RequestTimeout: 15 * time.Second},
		Storage: ClientStorage{Cache: ClientCache{Path: "cache.db"}},
		Workers: ClientWorkers{RefreshInterval: 10 * time.Second},
	}
	assert.NoError(t, valid.validate())

	noURL := *valid
	noURL.Adapter.BaseURL = ""
	assert.ErrorIs(t, noURL.validate(), ErrInvalidAdapterConfigs)

	noCache := *valid
	noCache.Storage.Cache.Path = ""
	assert.ErrorIs(t, noCache.validate(), ErrInvalidStorageConfigs)

	noInterval := *valid
	noInterval.Workers.RefreshInterval = 0
	assert.ErrorIs(t, noInterval.validate(), ErrInvalidWorkerConfigs)
}

// TestParseJSON verifies the JSON file source, including duration strings.
func TestParseJSON(t *testing.T) {
	raw := map[string]any{
		"app": map[string]any{
			"token_issuer":   "ganttrack-json",
			"token_duration": "45m",
		},
		"server": map[string]any{
			"http_address":    ":7070",
			"request_timeout": "20s",
		},
		"workers": map[string]any{
			"refresh_interval": "5s",
		},
	}
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "ganttrack-json", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, ":7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Workers.RefreshInterval)
}

// TestParseJSON_MissingFile verifies a bad path is reported.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

// TestDurationUnmarshal verifies both accepted JSON forms for durations.
func TestDurationUnmarshal(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
