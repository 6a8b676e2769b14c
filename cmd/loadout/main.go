package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath = "loadout.yaml"

func main() {
	root := &cobra.Command{
		Use:          "loadout",
		Short:        "Procedural bot loadout generator",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", configPath, "Project config file")
	root.AddCommand(initCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(tiersCmd())
	root.AddCommand(generateCmd())
	root.AddCommand(historyCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
