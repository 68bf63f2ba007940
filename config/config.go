package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	API      CategoryAPIConfig
	Redis    RedisConfig
	Firebase FirebaseConfig
	Security SecurityConfig
}

type ServerConfig struct {
	AppEnv       string        `env:"APP_ENV" envDefault:"development"`
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	CORSOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type LoggerConfig struct {
	Level             string `env:"LOGGER_LEVEL" envDefault:"info"`
	Encoding          string `env:"LOGGER_ENCODING" envDefault:"json"`
	DisableCaller     bool   `env:"LOGGER_DISABLE_CALLER" envDefault:"false"`
	DisableStacktrace bool   `env:"LOGGER_DISABLE_STACKTRACE" envDefault:"true"`
}

type DatabaseConfig struct {
	Path            string        `env:"DATABASE_PATH" envDefault:"./database.db"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"5"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"5m"`
	Seed            bool          `env:"DATABASE_SEED" envDefault:"false"`
}

// CategoryAPIConfig points the dashboard at the category service. An empty
// BaseURL means the service mounted by this same process.
type CategoryAPIConfig struct {
	BaseURL  string        `env:"CATEGORY_API_URL"`
	Timeout  time.Duration `env:"CATEGORY_API_TIMEOUT" envDefault:"10s"`
	CacheTTL time.Duration `env:"CATEGORY_CACHE_TTL" envDefault:"60s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type FirebaseConfig struct {
	ProjectID          string `env:"FIREBASE_PROJECT_ID"`
	ServiceAccountJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	ServiceAccountB64  string `env:"FIREBASE_SERVICE_ACCOUNT_BASE64"`
}

type SecurityConfig struct {
	EncryptionKey string `env:"ENCRYPTION_KEY"`
}

// IsDevelopment reports whether the server runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv != "production"
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the environment into a Config without touching .env files.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
