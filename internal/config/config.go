package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const envPrefix = "MENUBOT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MENUBOT_*). A double underscore
// separates nested keys: MENUBOT_SESSION__BACKEND -> session.backend.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps MENUBOT_SERVER__PORT to server.port.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validBackends is the set of recognized session backends.
var validBackends = map[SessionBackend]bool{
	SessionMemory: true,
	SessionRedis:  true,
}

// validLogModes is the set of recognized log modes.
var validLogModes = map[string]bool{
	"development": true,
	"production":  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ContentFile == "" {
		return fmt.Errorf("content_file is required")
	}

	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}

	if c.Log.Mode != "" && !validLogModes[c.Log.Mode] {
		return fmt.Errorf("invalid log.mode %q: must be development or production", c.Log.Mode)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	if c.Telegram.WebhookPath != "" && !strings.HasPrefix(c.Telegram.WebhookPath, "/") {
		return fmt.Errorf("telegram.webhook_path must start with /")
	}

	if !validBackends[c.Session.Backend] {
		return fmt.Errorf("invalid session.backend %q: must be memory or redis", c.Session.Backend)
	}
	if c.Session.Backend == SessionRedis && c.Session.RedisAddr == "" {
		return fmt.Errorf("session.redis_addr is required for the redis backend")
	}
	if c.Session.TTLMinutes < 0 {
		return fmt.Errorf("session.ttl_minutes must be non-negative")
	}

	if c.Interactions.Enabled && c.Interactions.DBPath == "" {
		return fmt.Errorf("interactions.db_path is required when interactions are enabled")
	}
	if c.Interactions.RetentionDays < 0 {
		return fmt.Errorf("interactions.retention_days must be non-negative")
	}

	return nil
}
