package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FLOWBOARD_SERVER_PORT.
const EnvPrefix = "FLOWBOARD"

// Config keeps runtime settings for the service.
type Config struct {
	Server   Server
	Database Database
	Log      Log
	Auth     Auth
	Digest   Digest
}

type Server struct {
	Host            string
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Addr is the listen address.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Database struct {
	DSN string
}

type Log struct {
	Level  string
	Format string
}

type Auth struct {
	JWTSecret     string
	DefaultUserID string
	TokenTTL      time.Duration
}

// Digest schedules the open-work summary. DailyAt ("HH:MM") wins over Interval.
type Digest struct {
	Interval time.Duration
	DailyAt  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.dsn", "flowboard.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.default_user_id", "user-alice")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("digest.interval_hours", "5")
	v.SetDefault("digest.daily_at", "")
}

// Load reads configuration from an optional file and FLOWBOARD_* environment
// variables. DATABASE_URL is honoured when FLOWBOARD_DATABASE_DSN is not set.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.dsn", EnvPrefix+"_DATABASE_DSN", "DATABASE_URL"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Server: Server{
			Host:            strings.TrimSpace(v.GetString("server.host")),
			Port:            v.GetInt("server.port"),
			Mode:            v.GetString("server.mode"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Database: Database{
			DSN: strings.TrimSpace(v.GetString("database.dsn")),
		},
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Auth: Auth{
			JWTSecret:     v.GetString("auth.jwt_secret"),
			DefaultUserID: strings.TrimSpace(v.GetString("auth.default_user_id")),
			TokenTTL:      v.GetDuration("auth.token_ttl"),
		},
		Digest: Digest{
			Interval: parseInterval(strings.TrimSpace(v.GetString("digest.interval_hours"))),
			DailyAt:  strings.TrimSpace(v.GetString("digest.daily_at")),
		},
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "flowboard.db"
	}

	if cfg.Digest.Interval == 0 {
		cfg.Digest.Interval = 5 * time.Hour
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return cfg, fmt.Errorf("server.port %d is out of range", cfg.Server.Port)
	}

	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return cfg, fmt.Errorf("server.mode %q must be debug, release or test", cfg.Server.Mode)
	}

	if cfg.Digest.DailyAt != "" {
		if _, err := time.Parse("15:04", cfg.Digest.DailyAt); err != nil {
			return cfg, errors.New("digest.daily_at must be HH:MM")
		}
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
