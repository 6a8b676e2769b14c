package weapon

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"loadout/internal/item"
	"loadout/internal/metrics"
	"loadout/internal/preset"
)

// SlotPrimary is the equipment slot a generated weapon is attached to.
const SlotPrimary = "FirstPrimaryWeapon"

var ErrNoWeaponPreset = errors.New("no weapon preset for tier")

type Assembler struct {
	presets *preset.Store
	catalog item.Catalog
	ammo    AmmoPolicy
	ids     item.IDGenerator
	logger  *zap.Logger
	metrics *metrics.Metrics
}

type Option func(*Assembler)

func WithIDs(ids item.IDGenerator) Option {
	return func(a *Assembler) { a.ids = ids }
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) { a.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Assembler) { a.metrics = m }
}

func New(presets *preset.Store, catalog item.Catalog, ammo AmmoPolicy, opts ...Option) *Assembler {
	a := &Assembler{presets: presets, catalog: catalog, ammo: ammo}
	for _, opt := range opts {
		opt(a)
	}
	if a.ammo == nil {
		a.ammo = TierAmmo{Store: presets}
	}
	if a.ids == nil {
		a.ids = item.UUIDGenerator{}
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// Result is an attached weapon graph plus what downstream steps need to top
// up magazines.
type Result struct {
	Preset   string
	Items    []item.Item
	Root     int
	Template item.Template
	AmmoTpl  string
}

// Loaded reports whether ammunition was resolved for the weapon.
func (r Result) Loaded() bool {
	return r.AmmoTpl != ""
}

// Generate builds a primary weapon for a bot and attaches it to parentID.
// Missing template, caliber or ammo data leave the weapon unloaded instead of
// failing; only a missing bundle or an empty tier is an error.
func (a *Assembler) Generate(bundle string, level int, parentID string) (Result, error) {
	if _, ok := a.presets.Bundle(bundle); !ok {
		return Result{}, fmt.Errorf("generating weapon: %w: %s", preset.ErrUnknownBundle, bundle)
	}
	picked, ok := a.presets.RandomWeaponPreset(bundle, level)
	if !ok {
		return Result{}, fmt.Errorf("generating weapon: %w (bundle %s, level %d)", ErrNoWeaponPreset, bundle, level)
	}

	items := picked.Items
	root, err := item.Root(items)
	if err != nil {
		return Result{}, fmt.Errorf("generating weapon %s: %w", picked.Name, err)
	}

	for i := range items {
		if i == root {
			continue
		}
		items[i].Tpl = a.presets.AlternativeModule(bundle, level, items[i].Tpl)
	}

	item.Rehome(items, root, parentID, SlotPrimary)
	items = item.Reidentify(items, a.ids)
	result := Result{Preset: picked.Name, Items: items, Root: root}

	logger := a.logger.With(zap.String("bundle", bundle), zap.Int("level", level), zap.String("preset", picked.Name))

	weaponTpl, ok := a.catalog.Template(items[root].Tpl)
	if !ok {
		logger.Error("weapon template not found", zap.String("tpl", items[root].Tpl))
		a.metrics.CountMiss(metrics.MissTemplate)
		return result, nil
	}
	result.Template = weaponTpl

	if weaponTpl.Caliber == "" {
		logger.Error("weapon template has no caliber", zap.String("tpl", weaponTpl.ID))
		a.metrics.CountMiss(metrics.MissCaliber)
		return result, nil
	}

	ammoTpl, ok := a.ammo.Ammo(bundle, level, weaponTpl.Caliber)
	if !ok {
		logger.Warn("weapon left unloaded", zap.String("caliber", weaponTpl.Caliber))
		a.metrics.CountMiss(metrics.MissAmmo)
		return result, nil
	}
	result.AmmoTpl = ammoTpl

	result.Items = loadChamber(result.Items, root, ammoTpl, a.ids)
	result.Items = a.fillMagazines(logger, result.Items, ammoTpl)
	if root, err := item.Root(result.Items); err == nil {
		result.Root = root
	}
	return result, nil
}

// loadChamber puts a single round of ammoTpl in the chamber, reusing an
// existing chamber node when there is one.
func loadChamber(items []item.Item, root int, ammoTpl string, ids item.IDGenerator) []item.Item {
	if i := item.FindSlot(items, item.SlotChamber); i >= 0 {
		items[i].Tpl = ammoTpl
		items[i].SetStackCount(1)
		return items
	}
	round := item.Item{
		ID:       ids.NewID(),
		Tpl:      ammoTpl,
		ParentID: items[root].ID,
		SlotID:   item.SlotChamber,
	}
	round.SetStackCount(1)
	return append(items, round)
}

// fillMagazines replaces every magazine node with the magazine followed by
// its cartridges, keeping the position of the magazine in the graph.
func (a *Assembler) fillMagazines(logger *zap.Logger, items []item.Item, ammoTpl string) []item.Item {
	ammo, ok := a.catalog.Template(ammoTpl)
	if !ok {
		logger.Warn("ammo template not found, using bare stacks", zap.String("ammo", ammoTpl))
		ammo = item.Template{ID: ammoTpl}
	}

	out := make([]item.Item, 0, len(items))
	for _, node := range items {
		if node.SlotID != item.SlotMagazine {
			out = append(out, node)
			continue
		}
		magazineTpl, ok := a.catalog.Template(node.Tpl)
		if !ok || magazineTpl.MagazineCapacity <= 0 {
			logger.Error("magazine template not found, magazine left empty", zap.String("tpl", node.Tpl))
			a.metrics.CountMiss(metrics.MissTemplate)
			out = append(out, node)
			continue
		}
		out = append(out, item.FillMagazine(node, magazineTpl, ammo, a.ids)...)
	}
	return out
}
