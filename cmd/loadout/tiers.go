package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"loadout/internal/preset"
)

func tiersCmd() *cobra.Command {
	var bundle string
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Print the level brackets of each bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTiers(bundle)
		},
	}
	cmd.Flags().StringVar(&bundle, "bundle", "", "Only show this bundle")
	return cmd
}

func runTiers(bundle string) error {
	a, err := loadApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	bundles := a.presets.Bundles()
	if bundle != "" {
		b, err := findBundle(a.presets, bundle)
		if err != nil {
			return err
		}
		bundles = []*preset.Bundle{b}
	}
	return printTiers(os.Stdout, bundles)
}

func findBundle(presets *preset.Store, name string) (*preset.Bundle, error) {
	if b, ok := presets.Bundle(name); ok {
		return b, nil
	}
	if suggestion := presets.Suggest(name); suggestion != "" {
		return nil, fmt.Errorf("%w: %s (did you mean %q?)", preset.ErrUnknownBundle, name, suggestion)
	}
	return nil, fmt.Errorf("%w: %s", preset.ErrUnknownBundle, name)
}

func printTiers(out io.Writer, bundles []*preset.Bundle) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUNDLE\tWEIGHT\tTIER\tMIN\tMAX\tWEAPONS")
	for _, b := range bundles {
		if len(b.Tiers) == 0 {
			fmt.Fprintf(w, "%s\t%d\t-\t-\t-\t-\n", b.Name, b.Weight)
			continue
		}
		for _, tier := range b.Tiers {
			weapons := 0
			if data, ok := b.Data[tier.Name]; ok && data != nil {
				weapons = len(data.Weapons)
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%d\n", b.Name, b.Weight, tier.Name, tier.Min, tier.Max, weapons)
		}
	}
	return w.Flush()
}
