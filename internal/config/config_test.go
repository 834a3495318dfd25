package config

import "testing"

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := Config{MaxBodyBytes: 2048, DocumentDir: "storage/documents"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestValidateRejectsTinyBodyLimit(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://localhost/hrms", MaxBodyBytes: 10, DocumentDir: "storage/documents"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for MAX_BODY_BYTES below minimum")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.Addr)
	}
	if !cfg.RunMigrations {
		t.Fatal("expected migrations enabled by default")
	}
	if cfg.MaxBodyBytes != 1048576 {
		t.Fatalf("expected default body limit, got %d", cfg.MaxBodyBytes)
	}
}
