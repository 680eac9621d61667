package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "SERVER_PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.DBHost != "localhost" {
		t.Errorf("expected default host localhost, got %q", cfg.DBHost)
	}
	if cfg.DBPort != "5432" {
		t.Errorf("expected default port 5432, got %q", cfg.DBPort)
	}
	if cfg.DBName != "trivia" {
		t.Errorf("expected default dbname trivia, got %q", cfg.DBName)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("expected default server port 8080, got %q", cfg.ServerPort)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("SERVER_PORT", "9090")

	cfg := Load()

	if cfg.DBHost != "db.internal" {
		t.Errorf("expected host db.internal, got %q", cfg.DBHost)
	}
	if cfg.DBPort != "5433" {
		t.Errorf("expected port 5433, got %q", cfg.DBPort)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("expected server port 9090, got %q", cfg.ServerPort)
	}
}
