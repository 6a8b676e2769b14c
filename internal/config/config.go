package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	AmmoPolicyTier   = "tier"
	AmmoPolicyStatic = "static"
)

type ProjectConfig struct {
	Version                  int            `yaml:"version"`
	PresetsDir               string         `yaml:"presets_dir"`
	Catalog                  string         `yaml:"catalog"`
	Bundles                  BundleWeights  `yaml:"bundles"`
	Ammo                     AmmoConfig     `yaml:"ammo"`
	Elite                    EliteConfig    `yaml:"elite"`
	Level                    LevelConfig    `yaml:"level"`
	Debug                    bool           `yaml:"debug"`
	LootingBotsCompatibility bool           `yaml:"looting_bots_compatibility"`
	Database                 DatabaseConfig `yaml:"database"`
	Logging                  LoggingConfig  `yaml:"logging"`
	Metrics                  MetricsConfig  `yaml:"metrics"`
}

type AmmoConfig struct {
	Policy     string `yaml:"policy"`
	StaticFile string `yaml:"static_file"`
}

type EliteConfig struct {
	Percentage        float64  `yaml:"percentage"`
	MinimumLevel      int      `yaml:"minimum_level"`
	RestrictLocations bool     `yaml:"restrict_locations"`
	Locations         []string `yaml:"locations"`
}

type LevelConfig struct {
	Delta int `yaml:"delta"`
	Max   int `yaml:"max"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// BundleWeight is one entry of the ordered bundle -> weight mapping.
type BundleWeight struct {
	Name   string
	Weight int
}

// BundleWeights keeps the declaration order of the bundles mapping.
type BundleWeights []BundleWeight

func (b *BundleWeights) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("bundles must be a mapping of name to weight")
	}
	weights := make(BundleWeights, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var weight int
		if err := node.Content[i+1].Decode(&weight); err != nil {
			return fmt.Errorf("bundle %s weight: %w", node.Content[i].Value, err)
		}
		weights = append(weights, BundleWeight{Name: node.Content[i].Value, Weight: weight})
	}
	*b = weights
	return nil
}

// Active returns the bundles with a positive weight, in declaration order.
func (b BundleWeights) Active() BundleWeights {
	var active BundleWeights
	for _, bundle := range b {
		if bundle.Weight > 0 {
			active = append(active, bundle)
		}
	}
	return active
}

func (b BundleWeights) Names() []string {
	names := make([]string, 0, len(b))
	for _, bundle := range b {
		names = append(names, bundle.Name)
	}
	return names
}

func Default() ProjectConfig {
	return ProjectConfig{
		Version:    1,
		PresetsDir: "./presets",
		Ammo:       AmmoConfig{Policy: AmmoPolicyTier},
		Elite: EliteConfig{
			Percentage:        3,
			MinimumLevel:      20,
			RestrictLocations: true,
			Locations:         []string{"factory4_day", "factory4_night", "laboratory"},
		},
		Level: LevelConfig{Delta: 10, Max: 71},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.PresetsDir) == "" {
		return fmt.Errorf("presets_dir is required")
	}
	if len(cfg.Bundles) == 0 {
		return fmt.Errorf("at least one bundle is required")
	}

	seen := make(map[string]struct{})
	for _, bundle := range cfg.Bundles {
		if strings.TrimSpace(bundle.Name) == "" {
			return fmt.Errorf("bundle name is required")
		}
		if bundle.Weight < 0 {
			return fmt.Errorf("bundle %s weight must not be negative", bundle.Name)
		}
		if _, exists := seen[bundle.Name]; exists {
			return fmt.Errorf("duplicate bundle name: %s", bundle.Name)
		}
		seen[bundle.Name] = struct{}{}
	}
	if len(cfg.Bundles.Active()) == 0 {
		return fmt.Errorf("at least one bundle must have a positive weight")
	}

	switch cfg.Ammo.Policy {
	case AmmoPolicyTier:
	case AmmoPolicyStatic:
		if strings.TrimSpace(cfg.Ammo.StaticFile) == "" {
			return fmt.Errorf("ammo static_file is required for the static policy")
		}
	default:
		return fmt.Errorf("unknown ammo policy: %s", cfg.Ammo.Policy)
	}

	if cfg.Elite.Percentage < 0 || cfg.Elite.Percentage > 100 {
		return fmt.Errorf("elite percentage must be within 0..100, got %v", cfg.Elite.Percentage)
	}
	if cfg.Level.Delta < 0 {
		return fmt.Errorf("level delta must not be negative")
	}
	if cfg.Level.Max < 1 {
		return fmt.Errorf("level max must be at least 1")
	}

	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown logging format: %s", cfg.Logging.Format)
	}

	return nil
}
