package config

import (
	"github.com/caarlos0/env/v11"
)

// loadFromEnv overrides configuration with environment variables named by the env tags.
// Fields whose variable is unset keep their file or default value.
func loadFromEnv(config *Config) error {
	return env.Parse(config)
}
