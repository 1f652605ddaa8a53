package edgeconnector

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables overriding settings, e.g. KNOWNUSER_SECRET_KEY.
const EnvPrefix = "KNOWNUSER_"

// Settings describe the customer and waiting room integration. The connector passes them to the
// enqueue token provider as they are.
type Settings struct {
	CustomerID    string `koanf:"customer_id"`
	SecretKey     string `koanf:"secret_key"`
	WaitingRoomID string `koanf:"waiting_room_id"`
	CookieDomain  string `koanf:"cookie_domain"`

	EnqueueTokenEnabled bool   `koanf:"enqueue_token_enabled"`
	EnqueueTokenKey     string `koanf:"enqueue_token_key"`

	// EnqueueTokenValidityTime is in milliseconds, NoExpiry for tokens that never expire
	EnqueueTokenValidityTime int64 `koanf:"enqueue_token_validity_time"`
}

// LoadSettings reads settings from a YAML file, then applies KNOWNUSER_* environment overrides.
// path may be empty to load from the environment only.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	k.Set("enqueue_token_validity_time", 240000)

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load settings %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load settings from environment: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the fields every integration needs.
func (s *Settings) Validate() error {
	if s.CustomerID == "" {
		return ErrMissingCustomerID
	}
	if s.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}
