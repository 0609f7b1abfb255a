package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBase returns a StructuredConfig carrying the fields required to pass
// validation, for builder tests that are not about validation itself.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{Engine: EnginePostgres, DSN: "postgres://localhost/users"}},
	}
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
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
// are merged into a single result and that the first non-zero value wins.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&StructuredConfig{App: App{TokenIssuer: "issuer", TokenSignKey: "loses"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_ValidationFailures verifies the fatal startup conditions: a
// missing sign key, a missing DSN, and an unknown engine all abort the build.
func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "missing sign key",
			cfg:     &StructuredConfig{Storage: Storage{DB: DB{Engine: EnginePostgres, DSN: "dsn"}}},
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name:    "missing DSN",
			cfg:     &StructuredConfig{App: App{TokenSignKey: "secret"}, Storage: Storage{DB: DB{Engine: EnginePostgres}}},
			wantErr: ErrMissingDatabaseDSN,
		},
		{
			name:    "unknown engine",
			cfg:     &StructuredConfig{App: App{TokenSignKey: "secret"}, Storage: Storage{DB: DB{Engine: "oracle", DSN: "dsn"}}},
			wantErr: ErrUnsupportedDBEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestWithDefaults_FillsMissingFields verifies that defaults only apply to
// fields no earlier source has set.
func TestWithDefaults_FillsMissingFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "go-user-api", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, EnginePostgres, cfg.Storage.DB.Engine)
	// explicit value survives the defaults layer
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

// TestWithJSON_MergedAfterEnvAndFlags verifies that a JSON path discovered in
// an earlier layer causes the JSON file to be loaded and merged.
func TestWithJSON_MergedAfterEnvAndFlags(t *testing.T) {
	path := writeJSONFile(t, `{"app": {"token_sign_key": "from-json"}, "storage": {"db": {"engine": "postgres", "dsn": "postgres://localhost/users"}}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
}

// TestWithJSON_BadPath verifies that an unreadable JSON path surfaces as a
// builder error.
func TestWithJSON_BadPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nope.json"})
	b.withJSON()

	_, err := b.build()
	require.Error(t, err)
}
