package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	return path
}

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	t.Setenv("A", "")
	t.Setenv("B", "")
	t.Setenv("C", "")

	path := writeDotEnv(t, `
# comment

A=one
export B=two
C="three"
`)

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("A"); got != "one" {
		t.Fatalf("A=%q, want %q", got, "one")
	}
	if got := os.Getenv("B"); got != "two" {
		t.Fatalf("B=%q, want %q", got, "two")
	}
	if got := os.Getenv("C"); got != "three" {
		t.Fatalf("C=%q, want %q", got, "three")
	}
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("KEEP", "already")

	if err := loadDotEnv(writeDotEnv(t, "KEEP=fromfile\n")); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("KEEP"); got != "already" {
		t.Fatalf("KEEP=%q, want %q", got, "already")
	}
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
}

func TestLoadFrom_DefaultsAndOverrides(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "DB_PATH", "LOG_LEVEL", "VAT_PERCENT"} {
		t.Setenv(k, "")
	}

	cfg := LoadFrom(writeDotEnv(t, "PORT=9090\nVAT_PERCENT=10\n"))

	if cfg.Port != "9090" || cfg.VATPercent != 10 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.DBPath != "./dev.db" || cfg.LogLevel != "info" || !cfg.IsDev() {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", cfg.Warnings)
	}
}

func TestLoadFrom_InvalidVATFallsBackWithWarning(t *testing.T) {
	t.Setenv("VAT_PERCENT", "tám")

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.VATPercent != 8 {
		t.Fatalf("VATPercent = %v, want 8", cfg.VATPercent)
	}
	if len(cfg.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", cfg.Warnings)
	}
}
