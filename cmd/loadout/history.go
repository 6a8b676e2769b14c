package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"loadout/internal/config"
	"loadout/internal/store"
)

func historyCmd() *cobra.Command {
	var filter store.SpawnFilter
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded spawns, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(filter)
		},
	}
	cmd.Flags().StringVar(&filter.Bundle, "bundle", "", "Bundle filter")
	cmd.Flags().BoolVar(&filter.EliteOnly, "elite", false, "Only elite spawns")
	cmd.Flags().IntVar(&filter.Limit, "limit", store.DefaultLimit, "Maximum number of records")
	cmd.AddCommand(historyStatsCmd())
	cmd.AddCommand(historySQLCmd())
	return cmd
}

func withJournal(fn func(ctx context.Context, db store.Store) error) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	return fn(ctx, db)
}

func runHistory(filter store.SpawnFilter) error {
	return withJournal(func(ctx context.Context, db store.Store) error {
		records, err := db.ListSpawns(ctx, filter)
		if err != nil {
			return err
		}
		return printSpawns(os.Stdout, records)
	})
}

func printSpawns(out io.Writer, records []store.SpawnRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(out, "No spawns recorded.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tBUNDLE\tTIER\tLEVEL\tLOCATION\tNIGHT\tELITE\tWEAPON")
	for _, rec := range records {
		location := rec.Location
		if location == "" {
			location = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%t\t%t\t%s\n",
			rec.ID, rec.CreatedAt.Format(time.DateTime), rec.Bundle, rec.Tier, rec.Level,
			location, rec.Night, rec.Elite, rec.WeaponTpl)
	}
	return w.Flush()
}

func historyStatsCmd() *cobra.Command {
	var bundle string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count recorded spawns per bundle and tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withJournal(func(ctx context.Context, db store.Store) error {
				counts, err := db.CountByTier(ctx, bundle)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "BUNDLE\tTIER\tSPAWNS\tELITE")
				for _, tc := range counts {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", tc.Bundle, tc.Tier, tc.Count, tc.Elite)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&bundle, "bundle", "", "Bundle filter")
	return cmd
}

func historySQLCmd() *cobra.Command {
	var paramPairs []string
	cmd := &cobra.Command{
		Use:   "sql <query>",
		Short: "Execute a raw SQL query against the spawn journal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			params, err := parseParamPairs(paramPairs)
			if err != nil {
				return err
			}
			return withJournal(func(ctx context.Context, db store.Store) error {
				rows, err := db.RunSQL(ctx, query, params)
				if err != nil {
					return err
				}
				payload, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding result: %w", err)
				}
				fmt.Fprintln(os.Stdout, string(payload))
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&paramPairs, "param", nil, "Positional parameter as N=value (repeatable)")
	return cmd
}

// parseParamPairs turns repeated N=value flags into RunSQL params.
func parseParamPairs(pairs []string) (map[string]any, error) {
	params := make(map[string]any)
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid param %q: expected N=value", pair)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid param %q: empty key", pair)
		}
		params[key] = strings.TrimSpace(value)
	}
	return params, nil
}
