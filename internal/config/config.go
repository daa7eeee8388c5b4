package config

// EngineConfig is the top-level configuration container for the sync engine.
// It aggregates all sub-configurations and is populated by merging built-in
// defaults with values from environment variables.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type EngineConfig struct {
	// Engine holds pipeline-level settings such as the conflict-resolution
	// policy.
	Engine Engine `envPrefix:"ENGINE_"`

	// Storage holds configuration for the directory backing store.
	Storage Storage `envPrefix:"STORAGE_"`
}

// Engine holds settings that control the sync-cycle pipeline itself.
type Engine struct {
	// ResolverPolicy selects the automatic conflict-resolution strategy.
	// Recognized values: "server-wins", "client-wins", "ignore".
	ResolverPolicy string `env:"RESOLVER_POLICY"`

	// CacheGUID identifies this client instance in reflection detection
	// and commit attribution. Generated once and persisted by the caller.
	CacheGUID string `env:"CACHE_GUID"`
}

// Storage holds the directory backing store connection settings.
type Storage struct {
	// Driver selects the SQL driver backing the directory.
	// Recognized values: "sqlite3", "pgx".
	Driver string `env:"DRIVER"`

	// DSN is the data source name passed to the driver: a file path for
	// sqlite3, a connection URL for pgx.
	DSN string `env:"DSN"`
}
