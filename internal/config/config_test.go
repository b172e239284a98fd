package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Addr() != ":8080" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Database.DSN != "flowboard.db" {
		t.Errorf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Digest.Interval != 5*time.Hour {
		t.Errorf("interval = %v", cfg.Digest.Interval)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl = %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FLOWBOARD_SERVER_PORT", "9090")
	t.Setenv("FLOWBOARD_LOG_LEVEL", "debug")
	t.Setenv("FLOWBOARD_DIGEST_INTERVAL_HOURS", "2")
	t.Setenv("DATABASE_URL", "data/test.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q", cfg.Log.Level)
	}
	if cfg.Digest.Interval != 2*time.Hour {
		t.Errorf("interval = %v", cfg.Digest.Interval)
	}
	if cfg.Database.DSN != "data/test.db" {
		t.Errorf("dsn = %q", cfg.Database.DSN)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	path := filepath.Join(t.TempDir(), "flowboard.yaml")
	body := "server:\n  port: 7000\ndigest:\n  daily_at: \"09:30\"\nauth:\n  jwt_secret: s3cret\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7000 || cfg.Digest.DailyAt != "09:30" || cfg.Auth.JWTSecret != "s3cret" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadDailyAt(t *testing.T) {
	t.Setenv("FLOWBOARD_DIGEST_DAILY_AT", "nine")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseInterval(t *testing.T) {
	tests := map[string]time.Duration{
		"":    0,
		"3":   3 * time.Hour,
		"1.5": 90 * time.Minute,
		"-1":  0,
		"abc": 0,
	}
	for raw, want := range tests {
		if got := parseInterval(raw); got != want {
			t.Errorf("parseInterval(%q) = %v, want %v", raw, got, want)
		}
	}
}
