package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kingrea/tablero/internal/dataset"
	"github.com/kingrea/tablero/internal/kpi"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv(SeedEnv, "")
	cfg, err := Load(projectDir, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Seed() != dataset.DefaultSeed {
		t.Fatalf("expected default seed %d, got %d", dataset.DefaultSeed, cfg.Seed())
	}
	if len(cfg.Cards()) != 4 {
		t.Fatalf("expected 4 default cards, got %d", len(cfg.Cards()))
	}
	start, end := cfg.Range()
	if !start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected default range %s - %s", start, end)
	}
	if cfg.Footer().Email == "" {
		t.Fatalf("expected footer defaults")
	}
}

func TestInitDirWritesParsableDefaults(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv(SeedEnv, "")
	if err := InitDir(projectDir); err != nil {
		t.Fatalf("InitDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, Dir, "logs")); err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
	cfg, err := Load(projectDir, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cards := cfg.Cards()
	if cards[2].Title != "Índice Bienestar" || cards[2].Target != 85 {
		t.Fatalf("unexpected card %+v", cards[2])
	}
	if err := InitDir(projectDir); err != nil {
		t.Fatalf("second InitDir must be a no-op: %v", err)
	}
}

func TestLoadParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv(SeedEnv, "")
	stateDir := filepath.Join(projectDir, Dir)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
seed: 7
date_range:
  start: "2024-03-01"
  end: "2024-06-30"
kpis:
  - title: Cumplimiento NOM-035
    value: 70
  - title: "  Rotación  "
    value: 12
    target: 10
footer:
  contact: Mesa de ayuda
`)
	if err := os.WriteFile(filepath.Join(stateDir, "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(projectDir, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Seed() != 7 {
		t.Fatalf("seed = %d, want 7", cfg.Seed())
	}
	cards := cfg.Cards()
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Target != kpi.DefaultTarget {
		t.Fatalf("missing target should default to %v, got %v", kpi.DefaultTarget, cards[0].Target)
	}
	if cards[1].Title != "Rotación" {
		t.Fatalf("title not trimmed: %q", cards[1].Title)
	}
	if cfg.Footer().Contact != "Mesa de ayuda" {
		t.Fatalf("footer contact = %q", cfg.Footer().Contact)
	}
	start, _ := cfg.Range()
	if start.Month() != time.March {
		t.Fatalf("start = %s", start)
	}
}

func TestLoadValidation(t *testing.T) {
	projectDir := t.TempDir()
	path := filepath.Join(projectDir, "custom.yaml")
	configYAML := strings.TrimSpace(`
version: 1
date_range:
  start: "01/02/2024"
`)
	if err := os.WriteFile(path, []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(projectDir, path); err == nil {
		t.Fatalf("expected validation error but got none")
	}
}

func TestSeedFromEnvironment(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv(SeedEnv, "1234")
	cfg, err := Load(projectDir, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed() != 1234 {
		t.Fatalf("seed = %d, want 1234", cfg.Seed())
	}
	t.Setenv(SeedEnv, "not-a-number")
	if _, err := Load(projectDir, ""); err == nil {
		t.Fatalf("expected error for invalid seed")
	}
}

func TestSeedFromDotEnv(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv(SeedEnv, "")
	if err := os.Unsetenv(SeedEnv); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, ".env"), []byte("TABLERO_SEED=99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(projectDir, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed() != 99 {
		t.Fatalf("seed = %d, want 99", cfg.Seed())
	}
}

func TestExplicitZeroSeedIsKept(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv(SeedEnv, "")
	stateDir := filepath.Join(projectDir, Dir)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stateDir, "config.yaml"), []byte("version: 1\nseed: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(projectDir, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Seed() != 0 {
		t.Fatalf("seed = %d, want 0", cfg.Seed())
	}
}
