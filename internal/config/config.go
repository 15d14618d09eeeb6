package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config application configuration loaded from config.toml.
// Secrets (view PIN, database and SMTP passwords) can be overridden
// through environment variables, optionally loaded from a .env file.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Auth       AuthConfig       `toml:"auth"`
	Event      EventConfig      `toml:"event"`
	SMTP       SMTPConfig       `toml:"smtp"`
	RateLimit  RateLimitConfig  `toml:"ratelimit"`
	Restaurant RestaurantConfig `toml:"restaurant"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL connection settings
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
}

// DSN builds the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig Prometheus metrics settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig operator authentication settings
type AuthConfig struct {
	ViewPin string `toml:"view_pin"`
}

// EventConfig hard deadline after which new reservations are refused.
// The date is a civil date interpreted in the configured timezone.
type EventConfig struct {
	Date      string `toml:"date"`
	CloseHour int    `toml:"close_hour"`
	Timezone  string `toml:"timezone"`
}

// CutoffTime resolves the configured deadline to an absolute instant
func (e EventConfig) CutoffTime() (time.Time, error) {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", e.Timezone, err)
	}

	day, err := time.ParseInLocation("2006-01-02", e.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid event date %q: %w", e.Date, err)
	}

	return day.Add(time.Duration(e.CloseHour) * time.Hour), nil
}

// SMTPConfig mail delivery settings. Empty host disables delivery.
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// RateLimitConfig per-IP limit on the public submission endpoint
type RateLimitConfig struct {
	Enabled   bool `toml:"enabled"`
	PerMinute int  `toml:"per_minute"`
	Burst     int  `toml:"burst"`
}

// RestaurantConfig restaurant identity used in notification emails
type RestaurantConfig struct {
	Name              string `toml:"name"`
	Address           string `toml:"address"`
	NotificationEmail string `toml:"notification_email"`
}

// Load reads the TOML config file and applies environment overrides
func Load(path string) (*Config, error) {
	// .env is optional; absence is not an error
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BOOKING_VIEW_PIN"); v != "" {
		cfg.Auth.ViewPin = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Event.Date != "" {
		if _, err := c.Event.CutoffTime(); err != nil {
			return err
		}
	}
	return nil
}
