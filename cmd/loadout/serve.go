package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"loadout/internal/mcp"
	"loadout/internal/store"
)

func serveCmd() *cobra.Command {
	var journal bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(journal)
		},
	}
	cmd.Flags().BoolVar(&journal, "journal", true, "Connect the spawn journal when a database is configured")
	return cmd
}

func runServe(useJournal bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := loadApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	var db store.Store
	if useJournal && a.cfg.Database.DSN != "" {
		db, err = openStore(ctx, a.cfg)
		if err != nil {
			return err
		}
		defer db.Close(context.Background())
	}

	if a.cfg.Metrics.Addr != "" {
		srv := &http.Server{Addr: a.cfg.Metrics.Addr, Handler: metricsMux(a), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			a.logger.Info("serving metrics", zap.String("addr", a.cfg.Metrics.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	server := mcp.NewServer(mcp.Deps{
		Generator: a.gear,
		Presets:   a.presets,
		Helmets:   a.helmets,
		Journal:   db,
		Validate:  a.reload,
		Logger:    a.logger,
	}, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}

func metricsMux(a *app) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	return mux
}
