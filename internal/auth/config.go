package auth

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SessionConfig controls token issuance
type SessionConfig struct {
	Issuer     string        `yaml:"issuer"`
	Audience   string        `yaml:"audience"`
	TokenTTL   time.Duration `yaml:"-"`
	TokenTTLMn int           `yaml:"token_ttl_minutes"`
}

// DefaultSessionConfig returns the configuration used when no policy file exists
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Issuer:     "okr-tracker-backend",
		Audience:   "okr-tracker",
		TokenTTL:   time.Hour,
		TokenTTLMn: 60,
	}
}

// LoadSessionConfig reads the session policy from a YAML file. A missing file
// is not an error; defaults apply.
func LoadSessionConfig(path string) (*SessionConfig, error) {
	cfg := DefaultSessionConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read session config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse session config: %w", err)
	}
	if cfg.TokenTTLMn <= 0 {
		cfg.TokenTTLMn = 60
	}
	cfg.TokenTTL = time.Duration(cfg.TokenTTLMn) * time.Minute
	if cfg.Issuer == "" {
		cfg.Issuer = "okr-tracker-backend"
	}

	return cfg, nil
}
