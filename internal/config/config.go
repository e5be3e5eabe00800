package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the full service configuration loaded from config.toml
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Booking BookingConfig `toml:"booking"`
	Auth    AuthConfig    `toml:"auth"`
}

// ServerConfig HTTP server settings (timeouts in seconds)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig logger output settings
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

// BookingConfig appointment slot generation settings
type BookingConfig struct {
	MorningStart        string `toml:"morning_start"`
	MorningEnd          string `toml:"morning_end"`
	AfternoonStart      string `toml:"afternoon_start"`
	AfternoonEnd        string `toml:"afternoon_end"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	SlotCapacity        int    `toml:"slot_capacity"`
	VisibleDays         int    `toml:"visible_days"`
}

// AuthConfig mock OTP login settings
type AuthConfig struct {
	AcceptedOTP   string `toml:"accepted_otp"`
	OTPLength     int    `toml:"otp_length"`
	ResendSeconds int    `toml:"resend_seconds"`
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Booking.SlotDurationMinutes <= 0 {
		return fmt.Errorf("config: slot_duration_minutes must be positive")
	}
	if c.Booking.SlotCapacity <= 0 {
		return fmt.Errorf("config: slot_capacity must be positive")
	}
	if c.Booking.VisibleDays <= 0 {
		return fmt.Errorf("config: visible_days must be positive")
	}
	if c.Auth.AcceptedOTP == "" {
		return fmt.Errorf("config: accepted_otp is required")
	}
	return nil
}
