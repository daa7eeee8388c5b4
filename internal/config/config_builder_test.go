package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "server-wins", cfg.Engine.ResolverPolicy)
	assert.Equal(t, "sqlite3", cfg.Storage.Driver)
	assert.Equal(t, "syncer.db", cfg.Storage.DSN)
}

func TestConfigBuilder_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ENGINE_RESOLVER_POLICY", "client-wins")
	t.Setenv("STORAGE_DRIVER", "pgx")
	t.Setenv("STORAGE_DSN", "postgres://localhost/syncer")

	cfg, err := GetEngineConfig()
	require.NoError(t, err)

	assert.Equal(t, "client-wins", cfg.Engine.ResolverPolicy)
	assert.Equal(t, "pgx", cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/syncer", cfg.Storage.DSN)
}

func TestConfigBuilder_EnvPartialOverride(t *testing.T) {
	t.Setenv("STORAGE_DSN", "/tmp/engine.db")

	cfg, err := GetEngineConfig()
	require.NoError(t, err)

	// env wins for DSN, defaults fill the rest
	assert.Equal(t, "/tmp/engine.db", cfg.Storage.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.Driver)
	assert.Equal(t, "server-wins", cfg.Engine.ResolverPolicy)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     EngineConfig
		wantErr error
	}{
		{
			name: "valid sqlite",
			cfg: EngineConfig{
				Engine:  Engine{ResolverPolicy: "server-wins"},
				Storage: Storage{Driver: "sqlite3", DSN: "x.db"},
			},
		},
		{
			name: "unknown driver",
			cfg: EngineConfig{
				Engine:  Engine{ResolverPolicy: "server-wins"},
				Storage: Storage{Driver: "mysql", DSN: "x"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "empty dsn",
			cfg: EngineConfig{
				Engine:  Engine{ResolverPolicy: "ignore"},
				Storage: Storage{Driver: "pgx"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown resolver policy",
			cfg: EngineConfig{
				Engine:  Engine{ResolverPolicy: "coin-flip"},
				Storage: Storage{Driver: "sqlite3", DSN: "x.db"},
			},
			wantErr: ErrInvalidEngineConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
