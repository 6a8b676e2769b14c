package gear

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"loadout/internal/config"
	"loadout/internal/helmet"
	"loadout/internal/item"
	"loadout/internal/metrics"
	"loadout/internal/preset"
	"loadout/internal/rng"
	"loadout/internal/weapon"
)

var ErrNoBundle = errors.New("no preset bundle available")

type RaidInfo struct {
	Location string `json:"location"`
	Night    bool   `json:"night"`
}

// Request describes one bot spawn. An empty Bundle draws one by weight.
type Request struct {
	SessionID string
	Bundle    string
	Role      string
	Level     int
	Raid      RaidInfo
}

// Loadout is a generated inventory and how it came about.
type Loadout struct {
	Inventory *Inventory
	Bundle    string
	Tier      string
	Level     int
	Role      string
	Raid      RaidInfo
	Elite     bool
	Helmet    string
	Weapon    weapon.Result
}

type Options struct {
	ElitePercentage          float64
	EliteMinimumLevel        int
	EliteRestrictLocations   bool
	EliteLocations           []string
	LootingBotsCompatibility bool
	Debug                    bool
}

func OptionsFromConfig(cfg *config.ProjectConfig) Options {
	return Options{
		ElitePercentage:          cfg.Elite.Percentage,
		EliteMinimumLevel:        cfg.Elite.MinimumLevel,
		EliteRestrictLocations:   cfg.Elite.RestrictLocations,
		EliteLocations:           cfg.Elite.Locations,
		LootingBotsCompatibility: cfg.LootingBotsCompatibility,
		Debug:                    cfg.Debug,
	}
}

type Assembler struct {
	presets *preset.Store
	weapons *weapon.Assembler
	helmets *helmet.Rules
	catalog item.Catalog
	props   PropertyGenerator
	stocker MagazineStocker
	loot    LootGenerator
	ids     item.IDGenerator
	src     rng.Source
	logger  *zap.Logger
	metrics *metrics.Metrics
	opts    Options
}

type Option func(*Assembler)

func WithOptions(opts Options) Option {
	return func(a *Assembler) { a.opts = opts }
}

func WithRandom(src rng.Source) Option {
	return func(a *Assembler) { a.src = src }
}

func WithIDs(ids item.IDGenerator) Option {
	return func(a *Assembler) { a.ids = ids }
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) { a.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Assembler) { a.metrics = m }
}

func WithProperties(props PropertyGenerator) Option {
	return func(a *Assembler) { a.props = props }
}

func WithStocker(stocker MagazineStocker) Option {
	return func(a *Assembler) { a.stocker = stocker }
}

func WithLoot(loot LootGenerator) Option {
	return func(a *Assembler) { a.loot = loot }
}

func New(presets *preset.Store, weapons *weapon.Assembler, helmets *helmet.Rules, catalog item.Catalog, opts ...Option) *Assembler {
	a := &Assembler{presets: presets, weapons: weapons, helmets: helmets, catalog: catalog}
	for _, opt := range opts {
		opt(a)
	}
	if a.props == nil {
		a.props = DurabilityProperties{}
	}
	if a.stocker == nil {
		a.stocker = NopStocker{}
	}
	if a.loot == nil {
		a.loot = NopLoot{}
	}
	if a.ids == nil {
		a.ids = item.UUIDGenerator{}
	}
	if a.src == nil {
		a.src = rng.NewTimeSeeded()
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// Generate builds the full inventory of one bot. Missing data only costs the
// affected slot; an error is returned when no bundle can be used at all.
func (a *Assembler) Generate(req Request) (*Loadout, error) {
	bundle := req.Bundle
	if bundle == "" {
		picked, ok := a.presets.PickBundle()
		if !ok {
			return nil, ErrNoBundle
		}
		bundle = picked
	} else if _, ok := a.presets.Bundle(bundle); !ok {
		return nil, fmt.Errorf("%w: %s", preset.ErrUnknownBundle, bundle)
	}

	tier, _ := a.presets.TierForLevel(bundle, req.Level)
	tables, ok := a.presets.Gear(bundle, req.Level)
	if !ok {
		a.logger.Error("no gear tables", zap.String("bundle", bundle), zap.String("tier", tier))
		a.metrics.CountMiss(metrics.MissGear)
	}

	b := &builder{
		a:      a,
		inv:    NewInventory(a.ids),
		role:   req.Role,
		tables: tables,
		logger: a.logger.With(zap.String("bundle", bundle), zap.String("tier", tier), zap.Int("level", req.Level)),
	}
	out := &Loadout{Inventory: b.inv, Bundle: bundle, Tier: tier, Level: req.Level, Role: req.Role, Raid: req.Raid}

	b.PutGear(SlotPockets, PocketsTpl)
	b.PutGear(SlotSecured, SecuredBossTpl)

	if a.rollElite(req) {
		out.Elite = true
		out.Helmet = b.elite(req.Level)
		a.metrics.CountElite()
	} else {
		out.Helmet = b.headwear(req.Level, req.Raid.Night)
		b.armor()
		b.draw(SlotEyewear, preset.SectionEyewear)
	}

	b.draw(SlotBackpack, preset.SectionBackpacks)
	b.draw(SlotFaceCover, preset.SectionFace)
	b.draw(SlotScabbard, preset.SectionSheath)

	primary, err := a.weapons.Generate(bundle, req.Level, b.inv.Equipment)
	if err != nil {
		b.logger.Error("bot spawns without a primary weapon", zap.Error(err))
	} else {
		out.Weapon = primary
		b.inv.Items = append(b.inv.Items, primary.Items...)
		a.stocker.AddMagazines(b.inv, primary, req.Role)
	}

	a.loot.GenerateLoot(b.inv, LootRequest{
		SessionID:            req.SessionID,
		Role:                 req.Role,
		Level:                req.Level,
		BackpackLootDisabled: a.opts.LootingBotsCompatibility,
	})

	a.metrics.CountGenerated(bundle, tier)
	if a.opts.Debug {
		b.logger.Debug("generated loadout",
			zap.Bool("elite", out.Elite),
			zap.Bool("night", req.Raid.Night),
			zap.String("helmet", out.Helmet),
			zap.String("weapon", primary.Preset),
			zap.Int("items", len(b.inv.Items)))
	}
	return out, nil
}

// rollElite reports whether the bot gets the fixed top tier kit.
func (a *Assembler) rollElite(req Request) bool {
	if req.Level < a.opts.EliteMinimumLevel {
		return false
	}
	if a.opts.EliteRestrictLocations && !lo.Contains(a.opts.EliteLocations, req.Raid.Location) {
		return false
	}
	return rng.Chance(a.src, a.opts.ElitePercentage)
}

// builder places items for one bot. It implements helmet.Putter.
type builder struct {
	a      *Assembler
	inv    *Inventory
	role   string
	tables preset.Gear
	logger *zap.Logger
}

func (b *builder) properties(tpl, slot string) map[string]any {
	t, ok := b.a.catalog.Template(tpl)
	if !ok {
		b.logger.Error("wrong template id", zap.String("tpl", tpl), zap.String("slot", slot))
		b.a.metrics.CountMiss(metrics.MissTemplate)
		return nil
	}
	return b.a.props.Properties(t, b.role)
}

func (b *builder) PutGear(slot, tpl string) string {
	it := item.Item{
		ID:       b.a.ids.NewID(),
		Tpl:      tpl,
		ParentID: b.inv.Equipment,
		SlotID:   slot,
		Upd:      b.properties(tpl, slot),
	}
	b.inv.Items = append(b.inv.Items, it)
	return it.ID
}

func (b *builder) PutMod(tpl, slot, parentID string) string {
	it := item.Item{
		ID:       b.a.ids.NewID(),
		Tpl:      tpl,
		ParentID: parentID,
		SlotID:   slot,
		Upd:      b.properties(tpl, slot),
	}
	it.SetToggled(true)
	b.inv.Items = append(b.inv.Items, it)
	return it.ID
}

func (b *builder) pick(section preset.Section) (preset.GearItem, bool) {
	picked, ok := rng.Weighted(b.a.src, b.tables.Section(section), preset.GearWeight)
	if !ok {
		b.logger.Warn("gear table has nothing to draw", zap.String("section", string(section)))
		b.a.metrics.CountMiss(metrics.MissGear)
	}
	return picked, ok
}

// draw puts one weighted pick of section into slot.
func (b *builder) draw(slot string, section preset.Section) (preset.GearItem, bool) {
	picked, ok := b.pick(section)
	if ok {
		b.PutGear(slot, picked.ID)
	}
	return picked, ok
}

// headwear places the helmet and hearing protection and returns the helmet
// template.
func (b *builder) headwear(level int, night bool) string {
	if night {
		tpl := b.a.helmets.Generate(b, "", level, true)
		b.draw(SlotEarpiece, preset.SectionHeadsets)
		return tpl
	}

	picked, ok := b.pick(preset.SectionHelmets)
	if !ok {
		b.draw(SlotEarpiece, preset.SectionHeadsets)
		return ""
	}
	b.a.helmets.Assemble(b, picked.ID, level, false)

	switch {
	case helmet.IsSSh68(picked.ID, picked.Name):
		b.PutGear(SlotEarpiece, helmet.GSSh01)
	case helmet.EarpieceIncompatible(picked.ID):
		// Fully headphone-incompatible headwear spawns without a headset,
		// where a plain draw would have added one.
	default:
		b.draw(SlotEarpiece, preset.SectionHeadsets)
	}
	return picked.ID
}

// armor is either a single armored rig or an armor vest plus a rig.
func (b *builder) armor() {
	if rng.Bool(b.a.src) {
		b.draw(SlotTacticalVest, preset.SectionArmoredRigs)
		return
	}
	b.draw(SlotArmorVest, preset.SectionArmor)
	b.draw(SlotTacticalVest, preset.SectionRigs)
}

// elite puts on the fixed top tier kit and returns the helmet template.
func (b *builder) elite(level int) string {
	b.draw(SlotTacticalVest, preset.SectionRigs)

	armor := ZabraloTpl
	if rng.Bool(b.a.src) {
		armor = ThorTpl
	}
	b.PutGear(SlotArmorVest, armor)

	tpl := helmet.Altyn
	if rng.Bool(b.a.src) {
		tpl = helmet.Rys
	}
	b.a.helmets.Assemble(b, tpl, level, false)
	return tpl
}
