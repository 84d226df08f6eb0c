package config

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_PORT", "3000")
	t.Setenv("DB_USER", "plantes")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "plantes_db")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()
	if cfg.AppPort != "3000" || cfg.DBName != "plantes_db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.JWTSecret != "supersecret" {
		t.Errorf("JWTSecret = %q, want supersecret", cfg.JWTSecret)
	}
	if cfg.JWTExpiresIn != 2*time.Hour {
		t.Errorf("JWTExpiresIn = %v, want 2h", cfg.JWTExpiresIn)
	}
	if !cfg.IsProd {
		t.Error("IsProd should be true")
	}
}

func TestLoadConfig_DefaultExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "")
	cfg := LoadConfig()
	if cfg.JWTExpiresIn != time.Hour {
		t.Errorf("JWTExpiresIn = %v, want the 1h default", cfg.JWTExpiresIn)
	}

	t.Setenv("JWT_EXPIRES_IN", "not-a-duration")
	cfg = LoadConfig()
	if cfg.JWTExpiresIn != time.Hour {
		t.Errorf("JWTExpiresIn = %v, want the 1h default on a bad value", cfg.JWTExpiresIn)
	}
}

func TestLoadConfig_IsProdFalse(t *testing.T) {
	t.Setenv("IS_PROD", "no")
	if LoadConfig().IsProd {
		t.Error("IsProd should be false for any value other than \"true\"")
	}
}
