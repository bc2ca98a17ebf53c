package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the service configuration loaded from config.toml. Secrets can
// be overridden through the environment (see applyEnvOverrides), so the TOML
// file stays checkable into the repo.
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Redis          RedisConfig          `toml:"redis"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	PaymentGateway PaymentGatewayConfig `toml:"payment_gateway"`
	Meetings       MeetingsConfig       `toml:"meetings"`
	Booking        BookingConfig        `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MigrationsDir   string `toml:"migrations_dir"`
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr           string `toml:"addr"`
	HoldTTLMinutes int    `toml:"hold_ttl_minutes"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type PaymentGatewayConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

type MeetingsConfig struct {
	URL           string `toml:"url"`
	ConnectorURL  string `toml:"connector_url"`
	IdentityToken string `toml:"identity_token"`
	Timeout       int    `toml:"timeout"`
	NotifyTimeout int    `toml:"notify_timeout"`
}

type BookingConfig struct {
	Currency    string `toml:"currency"`
	TokenSecret string `toml:"token_secret"`
}

// Load reads the configuration file and applies environment overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if cfg.Booking.TokenSecret == "" {
		return nil, fmt.Errorf("config: booking token secret is required (set BOOKING_TOKEN_SECRET)")
	}
	if cfg.Database.MigrationsDir == "" {
		cfg.Database.MigrationsDir = "migrations"
	}
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("BOOKING_TOKEN_SECRET"); v != "" {
		c.Booking.TokenSecret = v
	}
	if v := os.Getenv("PAYMENT_GATEWAY_API_KEY"); v != "" {
		c.PaymentGateway.APIKey = v
	}
	if v := os.Getenv("MEETINGS_IDENTITY_TOKEN"); v != "" {
		c.Meetings.IdentityToken = v
	}
}
