package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BUDGET_DATABASE_HOST", "localhost")
	t.Setenv("BUDGET_DATABASE_USER", "budget")
	t.Setenv("BUDGET_DATABASE_NAME", "budget")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Database.Port != 5432 || cfg.Database.SSLMode != "disable" || cfg.Database.MaxConns != 10 {
		t.Errorf("unexpected database defaults %+v", cfg.Database)
	}
	if cfg.Server.ReadTimeout != 10*time.Second || cfg.Server.IdleTimeout != time.Minute {
		t.Errorf("unexpected timeouts %+v", cfg.Server)
	}
	if cfg.Cache.TTL != time.Minute {
		t.Errorf("cache ttl = %v", cfg.Cache.TTL)
	}
	if cfg.AMQP.URL != "" || cfg.AMQP.Exchange != "budget.events" {
		t.Errorf("unexpected amqp config %+v", cfg.AMQP)
	}
	if cfg.App.ReadOnly || cfg.App.IsLocal() {
		t.Errorf("unexpected app config %+v", cfg.App)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("BUDGET_APP_ENV", "local")
	t.Setenv("BUDGET_APP_READ_ONLY", "true")
	t.Setenv("BUDGET_SERVER_PORT", "9090")
	t.Setenv("BUDGET_SERVER_WRITE_TIMEOUT", "3s")
	t.Setenv("BUDGET_SERVER_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("BUDGET_DATABASE_PASSWORD", "p@ss:word")
	t.Setenv("BUDGET_DATABASE_MAX_CONNS", "4")
	t.Setenv("BUDGET_CACHE_TTL", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.App.IsLocal() || !cfg.App.ReadOnly {
		t.Errorf("unexpected app config %+v", cfg.App)
	}
	if cfg.Server.Port != "9090" || cfg.Server.WriteTimeout != 3*time.Second {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 2 || cfg.Server.CORSAllowedOrigins[1] != "http://b.test" {
		t.Errorf("origins = %v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.Database.Password != "p@ss:word" || cfg.Database.MaxConns != 4 {
		t.Errorf("unexpected database config %+v", cfg.Database)
	}
	if cfg.Cache.TTL != 0 {
		t.Errorf("cache ttl = %v", cfg.Cache.TTL)
	}
}

func TestLoadMissingDatabase(t *testing.T) {
	t.Setenv("BUDGET_DATABASE_HOST", "")
	t.Setenv("BUDGET_DATABASE_USER", "budget")
	t.Setenv("BUDGET_DATABASE_NAME", "budget")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for missing database host")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"BUDGET_DATABASE_HOST":               "database.host",
		"BUDGET_SERVER_CORS_ALLOWED_ORIGINS": "server.cors_allowed_origins",
		"BUDGET_APP_LOG_LEVEL":               "app.log_level",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
