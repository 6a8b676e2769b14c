package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var bundle string
	var dir string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a loadout project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(bundle) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(dir, bundle)
		},
	}
	cmd.Flags().StringVar(&bundle, "name", "default", "Name of the first preset bundle")
	cmd.Flags().StringVar(&dir, "dir", ".", "Project directory")
	return cmd
}

func runInit(dir, bundle string) error {
	configFile := filepath.Join(dir, "loadout.yaml")
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%s already exists", configFile)
	}

	tierDir := filepath.Join(dir, "presets", bundle, "one")
	if err := os.MkdirAll(tierDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", tierDir, err)
	}

	files := map[string]string{
		configFile: fmt.Sprintf(configTemplate, bundle),
		filepath.Join(dir, "presets", bundle, "preset.yaml"): "one:\n  min: 1\n  max: 79\n",
		filepath.Join(tierDir, "gear.yaml"):                  gearTemplate,
		filepath.Join(tierDir, "ammo.yaml"):                  "{}\n",
	}
	for path, contents := range files {
		if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

const configTemplate = `version: 1
presets_dir: ./presets
catalog: ""

bundles:
  %s: 1

ammo:
  policy: tier

elite:
  percentage: 3
  minimum_level: 20
  restrict_locations: true
  locations: [factory4_day, factory4_night, laboratory]

level:
  delta: 10
  max: 71

database:
  dsn: sqlite://./loadout.db

logging:
  level: info
  format: console
`

const gearTemplate = `armor: []
armoredRigs: []
backpacks: []
eyewear: []
face: []
headsets: []
helmets: []
rigs: []
sheath: []
`
