package config

// validate checks that the final merged [EngineConfig] satisfies all engine
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *EngineConfig) validate() error {
	switch cfg.Storage.Driver {
	case "sqlite3", "pgx":
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Engine.ResolverPolicy {
	case "server-wins", "client-wins", "ignore":
	default:
		return ErrInvalidEngineConfigs
	}

	return nil
}
