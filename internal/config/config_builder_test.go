package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Token: "tok"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "client.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.App.Token)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
}

// TestBuild_SingleConfig verifies that a single config is returned as-is.
func TestBuild_SingleConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{Token: "single"},
		Adapter: Adapter{HTTPAddress: "localhost:8000"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "single", cfg.App.Token)
	assert.Equal(t, "localhost:8000", cfg.Adapter.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_TOKEN", "env-token")
	t.Setenv("ADAPTER_ADDRESS", "https://env.example.com")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-token", b.configs[0].App.Token)
	assert.Equal(t, "https://env.example.com", b.configs[0].Adapter.HTTPAddress)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Token = "json-token"
	payload.Storage.DB.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-token", b.configs[1].App.Token)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Token = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Token)
}

// TestWithJSON_DoesNotAppend_WhenErrorAlreadySet verifies that if b.err is
// already set before withJSON is called, the error is preserved and no new
// config is appended.
func TestWithJSON_DoesNotAppend_WhenErrorAlreadySet(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Token = "should-not-appear"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	// withJSON itself succeeds (file is valid), so it still appends and
	// the pre-existing error is preserved alongside.
	assert.ErrorIs(t, b.err, assert.AnError)
}

// TestBuild_RejectsNegativeRefreshInterval verifies structural validation of
// the merged config.
func TestBuild_RejectsNegativeRefreshInterval(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Workers: Workers{RefreshInterval: -time.Second},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// TestClientConfig_Validate checks the client view invariants.
func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "client.db"}},
			Adapter: Adapter{HTTPAddress: "localhost:8000"},
		})
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "blank address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "  " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = -1 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative refresh", mutate: func(c *ClientConfig) { c.Workers.RefreshInterval = -1 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestNewClientConfig_CopiesFields verifies the mapping from the structured
// view to the client view.
func TestNewClientConfig_CopiesFields(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{Token: "tok"},
		Storage: Storage{DB: DB{DSN: "client.db"}},
		Adapter: Adapter{HTTPAddress: "https://api.example.com", RequestTimeout: 5 * time.Second},
		Workers: Workers{RefreshInterval: 30 * time.Second},
	})

	assert.Equal(t, "tok", cfg.App.Token)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Workers.RefreshInterval)
}
