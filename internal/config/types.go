package config

// SessionBackend selects where session modes are kept.
type SessionBackend string

const (
	SessionMemory SessionBackend = "memory"
	SessionRedis  SessionBackend = "redis"
)

// Config is the top-level menubot configuration, corresponding to .menubot.yml.
type Config struct {
	ContentFile  string             `yaml:"content_file" koanf:"content_file"`
	PageSize     int                `yaml:"page_size" koanf:"page_size"`
	AdminToken   string             `yaml:"admin_token,omitempty" koanf:"admin_token"`
	Log          LogConfig          `yaml:"log" koanf:"log"`
	Server       ServerConfig       `yaml:"server" koanf:"server"`
	Telegram     TelegramConfig     `yaml:"telegram" koanf:"telegram"`
	Session      SessionConfig      `yaml:"session" koanf:"session"`
	Interactions InteractionsConfig `yaml:"interactions" koanf:"interactions"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Mode string `yaml:"mode" koanf:"mode"` // development or production
	File string `yaml:"file,omitempty" koanf:"file"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// TelegramConfig holds webhook settings. BotToken enables direct Bot API
// calls; without it clicks are answered only through the webhook reply.
type TelegramConfig struct {
	WebhookPath string `yaml:"webhook_path" koanf:"webhook_path"`
	SecretToken string `yaml:"secret_token,omitempty" koanf:"secret_token"`
	BotToken    string `yaml:"bot_token,omitempty" koanf:"bot_token"`
}

// SessionConfig selects and configures the session store.
type SessionConfig struct {
	Backend       SessionBackend `yaml:"backend" koanf:"backend"`
	TTLMinutes    int            `yaml:"ttl_minutes" koanf:"ttl_minutes"`
	RedisAddr     string         `yaml:"redis_addr,omitempty" koanf:"redis_addr"`
	RedisPassword string         `yaml:"redis_password,omitempty" koanf:"redis_password"`
	RedisDB       int            `yaml:"redis_db,omitempty" koanf:"redis_db"`
}

// InteractionsConfig controls the durable interaction log.
type InteractionsConfig struct {
	Enabled       bool   `yaml:"enabled" koanf:"enabled"`
	DBPath        string `yaml:"db_path" koanf:"db_path"`
	RetentionDays int    `yaml:"retention_days" koanf:"retention_days"`
}
