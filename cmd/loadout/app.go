package main

import (
	"fmt"

	"go.uber.org/zap"

	"loadout/internal/config"
	"loadout/internal/gear"
	"loadout/internal/helmet"
	"loadout/internal/item"
	"loadout/internal/logging"
	"loadout/internal/metrics"
	"loadout/internal/preset"
	"loadout/internal/rng"
	"loadout/internal/validate"
	"loadout/internal/weapon"
)

type appOptions struct {
	seed            int64
	seeded          bool
	pocketMagazines int
}

// app is every component of the generator wired from one project config.
type app struct {
	cfg     *config.ProjectConfig
	logger  *zap.Logger
	metrics *metrics.Metrics
	src     rng.Source
	catalog item.Catalog
	presets *preset.Store
	report  *validate.Report
	weapons *weapon.Assembler
	helmets *helmet.Rules
	gear    *gear.Assembler
}

func loadApp(opts appOptions) (*app, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging, cfg.Debug)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, metrics: metrics.New()}

	var ids item.IDGenerator = item.UUIDGenerator{}
	if opts.seeded {
		a.src = rng.New(uint64(opts.seed))
		ids = &item.SequenceGenerator{Prefix: fmt.Sprintf("%x", opts.seed)}
	} else {
		a.src = rng.NewTimeSeeded()
	}

	catalog := item.NewCatalog()
	if cfg.Catalog != "" {
		catalog, err = item.LoadCatalog(cfg.Catalog)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("no item catalog configured, weapons will not be loaded")
	}
	a.catalog = catalog

	a.presets, a.report = preset.Load(cfg.PresetsDir, cfg.Bundles,
		preset.WithRandom(a.src),
		preset.WithLogger(logger),
		preset.WithMetrics(a.metrics),
		preset.WithDebug(cfg.Debug))

	var ammo weapon.AmmoPolicy = weapon.TierAmmo{Store: a.presets}
	if cfg.Ammo.Policy == config.AmmoPolicyStatic {
		ammo, err = weapon.LoadStaticAmmo(cfg.Ammo.StaticFile)
		if err != nil {
			return nil, err
		}
	}

	a.weapons = weapon.New(a.presets, catalog, ammo,
		weapon.WithIDs(ids),
		weapon.WithLogger(logger),
		weapon.WithMetrics(a.metrics))
	a.helmets = helmet.New(a.src, logger)

	gearOpts := []gear.Option{
		gear.WithOptions(gear.OptionsFromConfig(cfg)),
		gear.WithRandom(a.src),
		gear.WithIDs(ids),
		gear.WithLogger(logger),
		gear.WithMetrics(a.metrics),
	}
	if opts.pocketMagazines > 0 {
		gearOpts = append(gearOpts, gear.WithStocker(gear.PocketMagazines{
			Count:   opts.pocketMagazines,
			Catalog: catalog,
			IDs:     ids,
			Logger:  logger,
		}))
	}
	a.gear = gear.New(a.presets, a.weapons, a.helmets, catalog, gearOpts...)
	return a, nil
}

// reload reads the preset directory again without touching the running store.
func (a *app) reload() *validate.Report {
	_, report := preset.Load(a.cfg.PresetsDir, a.cfg.Bundles, preset.WithLogger(zap.NewNop()))
	return report
}
