package config

import "time"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".menubot.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentFile: "data/bot_data.json",
		PageSize:    5,
		Log: LogConfig{
			Mode: "development",
		},
		Server: ServerConfig{
			Port: 8000,
		},
		Telegram: TelegramConfig{
			WebhookPath: "/webhook",
		},
		Session: SessionConfig{
			Backend:    SessionMemory,
			TTLMinutes: 24 * 60,
			RedisAddr:  "localhost:6379",
		},
		Interactions: InteractionsConfig{
			Enabled:       true,
			DBPath:        "data/interactions.db",
			RetentionDays: 90,
		},
	}
}

// SessionTTL returns the idle lifetime of a session.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// Retention returns how long interaction rows are kept. Zero keeps them forever.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.Interactions.RetentionDays) * 24 * time.Hour
}
