package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.SourceDriver != "sqlite" {
		t.Fatalf("expected sqlite driver default, got %q", cfg.SourceDriver)
	}
	if cfg.RecordsPerPage != 5 || cfg.IndexPerPage != 8 {
		t.Fatalf("unexpected page size defaults: records=%d index=%d",
			cfg.RecordsPerPage, cfg.IndexPerPage)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected 24h session TTL default, got %s", cfg.SessionTTL)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unihub.yaml")
	file := `
port: "9000"
source_driver: postgres
records_per_page: 10
session_ttl: 1h
export:
  bucket: uni-tables
  object: full.xlsx
`
	if err := os.WriteFile(path, []byte(file), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("UNIHUB_CONFIG", path)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected env PORT to win over file, got %q", cfg.Port)
	}
	if cfg.SourceDriver != "postgres" {
		t.Fatalf("expected file source_driver, got %q", cfg.SourceDriver)
	}
	if cfg.RecordsPerPage != 10 {
		t.Fatalf("expected file records_per_page, got %d", cfg.RecordsPerPage)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("expected file session_ttl, got %s", cfg.SessionTTL)
	}
	if cfg.ExportBucket != "uni-tables" || cfg.ExportObject != "full.xlsx" {
		t.Fatalf("expected export overlay, got bucket=%q object=%q",
			cfg.ExportBucket, cfg.ExportObject)
	}
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	os.Clearenv()
	t.Setenv("UNIHUB_RECORDS_PER_PAGE", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero page size")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	os.Clearenv()
	t.Setenv("UNIHUB_STORE_BACKEND", "etcd")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown store backend")
	}
}
