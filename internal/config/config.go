// internal/config/config.go
//
// This package handles configuration and the .tablero directory structure.
// The dashboard creates a .tablero/ folder in the directory it starts from.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/tablero/internal/dataset"
	"github.com/kingrea/tablero/internal/kpi"
)

const (
	// Dir is the name of the directory we create in the working directory
	Dir = ".tablero"

	// DateLayout is the on-disk and input format for calendar dates.
	DateLayout = "2006-01-02"

	// SeedEnv overrides the configured seed.
	SeedEnv = "TABLERO_SEED"
)

const defaultConfigYAML = `# tablero configuration
version: 1

# Seed for the synthetic dataset. The same seed always shows the same numbers.
seed: 42

# Initial values of the "Fecha de inicio" / "Fecha de fin" sidebar inputs.
date_range:
  start: "2024-01-01"
  end: "2024-12-31"

# Summary tiles. Targets default to 90 when omitted.
kpis:
  - title: Cumplimiento NOM-035
    value: 92
    target: 90
  - title: Adopción LEAN 2.0
    value: 85
    target: 80
  - title: Índice Bienestar
    value: 78
    target: 85
  - title: Eficiencia Operativa
    value: 65
    target: 75
`

// DateRange is the initial sidebar date selection.
type DateRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// FooterConfig holds the contact strings printed at the bottom of the page.
type FooterConfig struct {
	Organization string `yaml:"organization"`
	Contact      string `yaml:"contact"`
	Email        string `yaml:"email"`
}

// DashboardConfig models .tablero/config.yaml.
type DashboardConfig struct {
	Version   int          `yaml:"version"`
	Seed      *int64       `yaml:"seed"`
	DateRange DateRange    `yaml:"date_range"`
	KPIs      []kpi.Card   `yaml:"kpis"`
	Footer    FooterConfig `yaml:"footer"`
}

// Config holds the runtime configuration for the dashboard.
type Config struct {
	// ProjectDir is the directory the dashboard was started from
	ProjectDir string

	// StateDir is ProjectDir/.tablero
	StateDir string

	// Path is the config file in use
	Path string

	Dashboard DashboardConfig
}

// InitDir creates the .tablero directory structure in projectDir.
//
// Structure created:
// .tablero/
// ├── config.yaml
// └── logs/
func InitDir(projectDir string) error {
	stateDir := filepath.Join(projectDir, Dir)
	if err := os.MkdirAll(filepath.Join(stateDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureConfigFile(filepath.Join(stateDir, "config.yaml"))
}

// Load reads configuration for projectDir. path overrides the default
// .tablero/config.yaml location when non-empty. A .env file in projectDir is
// loaded first so TABLERO_SEED can be set there.
func Load(projectDir, path string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(projectDir, ".env"))

	cfg := &Config{
		ProjectDir: projectDir,
		StateDir:   filepath.Join(projectDir, Dir),
		Dashboard:  defaultDashboardConfig(),
	}
	cfg.Path = strings.TrimSpace(path)
	if cfg.Path == "" {
		cfg.Path = filepath.Join(cfg.StateDir, "config.yaml")
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.StateDir, "logs")
}

// Seed returns the dataset seed.
func (c *Config) Seed() int64 {
	if c.Dashboard.Seed == nil {
		return dataset.DefaultSeed
	}
	return *c.Dashboard.Seed
}

// SetSeed overrides the seed for this run without touching the file.
func (c *Config) SetSeed(seed int64) {
	c.Dashboard.Seed = &seed
}

// Range parses the configured date range.
func (c *Config) Range() (time.Time, time.Time) {
	start, _ := time.Parse(DateLayout, c.Dashboard.DateRange.Start)
	end, _ := time.Parse(DateLayout, c.Dashboard.DateRange.End)
	return start, end
}

// Cards returns the KPI tiles to render.
func (c *Config) Cards() []kpi.Card {
	return append([]kpi.Card(nil), c.Dashboard.KPIs...)
}

// Footer returns the footer contact strings.
func (c *Config) Footer() FooterConfig {
	return c.Dashboard.Footer
}

func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", c.Path, err)
	}

	parsed := DashboardConfig{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", c.Path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Dashboard = parsed
	return nil
}

func (c *Config) applyEnv() error {
	raw := strings.TrimSpace(os.Getenv(SeedEnv))
	if raw == "" {
		return nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", SeedEnv, err)
	}
	c.Dashboard.Seed = &seed
	return nil
}

func defaultDashboardConfig() DashboardConfig {
	dc := DashboardConfig{}
	dc.applyDefaults()
	return dc
}

func (dc *DashboardConfig) applyDefaults() {
	if dc.Version == 0 {
		dc.Version = 1
	}
	// An absent key means the default; an explicit 0 is a valid seed.
	if dc.Seed == nil {
		seed := dataset.DefaultSeed
		dc.Seed = &seed
	}
	if dc.DateRange.Start == "" {
		dc.DateRange.Start = "2024-01-01"
	}
	if dc.DateRange.End == "" {
		dc.DateRange.End = "2024-12-31"
	}
	if len(dc.KPIs) == 0 {
		dc.KPIs = kpi.Cards()
	}
	if dc.Footer.Organization == "" {
		dc.Footer.Organization = "Dashboard de Monitoreo Organizacional"
	}
	if dc.Footer.Contact == "" {
		dc.Footer.Contact = "Soporte: Área de Mejora Continua"
	}
	if dc.Footer.Email == "" {
		dc.Footer.Email = "soporte@empresa.com"
	}
}

func (dc *DashboardConfig) normalize() {
	dc.DateRange.Start = strings.TrimSpace(dc.DateRange.Start)
	dc.DateRange.End = strings.TrimSpace(dc.DateRange.End)
	for i := range dc.KPIs {
		dc.KPIs[i].Title = strings.TrimSpace(dc.KPIs[i].Title)
		if dc.KPIs[i].Target == 0 {
			dc.KPIs[i].Target = kpi.DefaultTarget
		}
	}
}

func (dc *DashboardConfig) validate() error {
	if dc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, err := time.Parse(DateLayout, dc.DateRange.Start); err != nil {
		return fmt.Errorf("date_range.start: %w", err)
	}
	if _, err := time.Parse(DateLayout, dc.DateRange.End); err != nil {
		return fmt.Errorf("date_range.end: %w", err)
	}
	for i, card := range dc.KPIs {
		if card.Title == "" {
			return fmt.Errorf("kpis[%d]: title is required", i)
		}
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
