package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the GORM driver. Driver "sqlite" uses Path and
// ignores the network fields.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type SessionConfig struct {
	ExpDays int `mapstructure:"exp_days"`
}

func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.ExpDays) * 24 * time.Hour
}

type CookieConfig struct {
	Domain string `mapstructure:"domain"`
	Path   string `mapstructure:"path"`
	Secure bool   `mapstructure:"secure"`
}

type AuthConfig struct {
	Password  PasswordConfig  `mapstructure:"password"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Session   SessionConfig   `mapstructure:"session"`
	Cookie    CookieConfig    `mapstructure:"cookie"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	// RequireEmailConfirmation rejects logins until the signup link is followed.
	RequireEmailConfirmation bool `mapstructure:"require_email_confirmation"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// QueryConfig tunes the query cache.
type QueryConfig struct {
	StaleSeconds        int    `mapstructure:"stale_seconds"`
	KeyPrefix           string `mapstructure:"key_prefix"`
	InvalidationChannel string `mapstructure:"invalidation_channel"`
}

func (q QueryConfig) StaleTime() time.Duration {
	return time.Duration(q.StaleSeconds) * time.Second
}

// RateLimitConfig caps requests per client IP on the auth endpoints. It
// takes effect only when Redis is enabled.
type RateLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

type PermissionConfig struct {
	ModelPath string `mapstructure:"model_path"`
}
