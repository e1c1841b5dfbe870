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

// minimalConfig carries every value validate() requires.
func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AccessTokenSecret:  "access",
			RefreshTokenSecret: "refresh",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/hub"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func builderWithoutArgs() *configBuilder {
	b := newConfigBuilder()
	b.args = nil
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without secrets is rejected.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := builderWithoutArgs().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := builderWithoutArgs()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "error collecting config sources")
}

// TestBuild_AppliesDefaults verifies that optional settings fall back to
// their defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := builderWithoutArgs()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, defaultAccessTokenDuration, cfg.App.AccessTokenDuration)
	assert.Equal(t, defaultRefreshTokenDuration, cfg.App.RefreshTokenDuration)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultVersion, cfg.App.Version)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.Server.MaxUploadSize)
	assert.Equal(t, os.TempDir(), cfg.Storage.Files.UploadDir)
	assert.Equal(t, defaultUploadTTL, cfg.Storage.Files.UploadTTL)
	assert.Equal(t, defaultMediaBaseURL, cfg.Adapter.Media.BaseURL)
	assert.Equal(t, defaultMediaTimeout, cfg.Adapter.Media.Timeout)
	assert.False(t, cfg.Server.InsecureCookies)
}

// TestBuild_MergesMultipleConfigs verifies that the first non-zero value wins.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := builderWithoutArgs()
	b.configs = append(b.configs,
		minimalConfig(),
		&StructuredConfig{App: App{Version: "1.0.0", AccessTokenSecret: "ignored"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "access", cfg.App.AccessTokenSecret)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing access secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AccessTokenSecret = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing refresh secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.RefreshTokenSecret = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "identical secrets",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.RefreshTokenSecret = cfg.App.AccessTokenSecret
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "refresh shorter than access",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.AccessTokenDuration = 2 * time.Hour
				cfg.App.RefreshTokenDuration = time.Hour
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "media cloud without credentials",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.Media.CloudName = "cloud" },
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.mutate(cfg)

			b := builderWithoutArgs()
			b.configs = append(b.configs, cfg)

			got, err := b.build()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := builderWithoutArgs().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":    "env-version",
		"SERVER_ADDRESS": "localhost:9000",
	})

	b := builderWithoutArgs().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "localhost:9000", b.configs[0].Server.HTTPAddress)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_MAX_UPLOAD_SIZE": "lots"})

	b := builderWithoutArgs().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReadsArgs(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-a", "localhost:8081", "-version", "flag-version"}

	b = b.withFlags()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:8081", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "flag-version", b.configs[0].App.Version)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-a", "nonsense"}

	b = b.withFlags()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := builderWithoutArgs()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "json-version"},
	})

	b := builderWithoutArgs()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b = b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := builderWithoutArgs()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b = b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := builderWithoutArgs()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b = b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

// TestFullChain verifies env over flags over JSON precedence.
func TestFullChain(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"access_token_secret":  "json-access",
			"refresh_token_secret": "json-refresh",
			"version":              "json-version",
			"token_issuer":         "json-issuer",
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://json/db"}},
	})

	setEnvVars(t, map[string]string{
		"APP_VERSION": "env-version",
		"CONFIG":      path,
	})

	b := newConfigBuilder()
	b.args = []string{"-a", "localhost:8082", "-version", "flag-version", "-token-issuer", "flag-issuer"}

	cfg, err := b.withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "json-access", cfg.App.AccessTokenSecret)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8082", cfg.Server.HTTPAddress)
}
