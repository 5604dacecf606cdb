package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg, err := Load(t.TempDir(), log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Server.Addr)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Fatalf("expected default database config, got %+v", cfg.Database)
	}
}

func TestLoad_ReadsYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
database:
  host: db.internal
  port: 6432
  dbname: ug
server:
  addr: ":9090"
  cors_origins:
    - https://ug.example.org
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(dir, logrus.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 6432 || cfg.Database.DBName != "ug" {
		t.Fatalf("yaml overrides not applied: %+v", cfg.Database)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("server addr override not applied: %q", cfg.Server.Addr)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "https://ug.example.org" {
		t.Fatalf("cors origins override not applied: %v", cfg.Server.CORSOrigins)
	}
	// Untouched keys keep their defaults.
	if cfg.Database.User != "postgres" {
		t.Fatalf("default user should survive partial override, got %q", cfg.Database.User)
	}
}
