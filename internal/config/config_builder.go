package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*EngineConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*EngineConfig, 0, 2),
	}
}

func (b *configBuilder) build() (*EngineConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(EngineConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &EngineConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &EngineConfig{
		Engine: Engine{
			ResolverPolicy: "server-wins",
		},
		Storage: Storage{
			Driver: "sqlite3",
			DSN:    "syncer.db",
		},
	})
	return b
}

// GetEngineConfig assembles the engine configuration. Environment variables
// take priority over built-in defaults (mergo keeps the first non-zero
// value, so env is merged first).
func GetEngineConfig() (*EngineConfig, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}
