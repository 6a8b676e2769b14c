package preset

import (
	"errors"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"loadout/internal/metrics"
	"loadout/internal/rng"
)

var ErrUnknownBundle = errors.New("unknown preset bundle")

// Store is the read-only preset database. It is populated once by Load or
// NewStore and never mutated afterwards.
type Store struct {
	bundles map[string]*Bundle
	order   []string
	src     rng.Source
	logger  *zap.Logger
	metrics *metrics.Metrics
	debug   bool
}

type Option func(*Store)

func WithRandom(src rng.Source) Option {
	return func(s *Store) { s.src = src }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithDebug logs every tier and weapon choice.
func WithDebug(debug bool) Option {
	return func(s *Store) { s.debug = debug }
}

func newStore(opts ...Option) *Store {
	s := &Store{bundles: make(map[string]*Bundle)}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rng.NewTimeSeeded()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// NewStore builds a store from bundles assembled in memory.
func NewStore(bundles []*Bundle, opts ...Option) *Store {
	s := newStore(opts...)
	for _, b := range bundles {
		s.add(b)
	}
	return s
}

func (s *Store) add(b *Bundle) {
	if b.Data == nil {
		b.Data = make(map[string]*TierData)
	}
	if _, exists := s.bundles[b.Name]; !exists {
		s.order = append(s.order, b.Name)
	}
	s.bundles[b.Name] = b
}

func (s *Store) Bundle(name string) (*Bundle, bool) {
	b, ok := s.bundles[name]
	return b, ok
}

// Bundles lists every loaded bundle in declaration order.
func (s *Store) Bundles() []*Bundle {
	return lo.Map(s.order, func(name string, _ int) *Bundle { return s.bundles[name] })
}

// PickBundle draws one bundle proportionally to its weight. Zero weight
// bundles never win the draw.
func (s *Store) PickBundle() (string, bool) {
	name, ok := rng.Weighted(s.src, s.order, func(name string) int { return s.bundles[name].Weight })
	if !ok {
		s.logger.Error("no bundle with a positive weight")
	}
	return name, ok
}

// TierForLevel returns the first tier whose bracket contains level, falling
// back to the first declared tier.
func (s *Store) TierForLevel(bundle string, level int) (string, bool) {
	b, ok := s.bundles[bundle]
	if !ok {
		s.logger.Error("unknown preset bundle", zap.String("bundle", bundle))
		return "", false
	}
	if len(b.Tiers) == 0 {
		s.logger.Error("bundle has no tiers", zap.String("bundle", bundle))
		return "", false
	}
	for _, tier := range b.Tiers {
		if tier.Contains(level) {
			return tier.Name, true
		}
	}
	return b.Tiers[0].Name, true
}

func (s *Store) tierData(bundle string, level int) (string, *TierData) {
	tier, ok := s.TierForLevel(bundle, level)
	if !ok {
		return "", nil
	}
	return tier, s.bundles[bundle].tier(tier)
}

// RandomAmmo picks an ammunition template for the caliber at the bot's tier.
func (s *Store) RandomAmmo(bundle string, level int, caliber string) (string, bool) {
	tier, data := s.tierData(bundle, level)
	var candidates []string
	if data != nil {
		candidates = data.Ammo[caliber]
	}
	if len(candidates) == 0 {
		// The miss is counted by the weapon assembler.
		s.logger.Error("no ammo record", zap.String("bundle", bundle), zap.String("tier", tier), zap.String("caliber", caliber))
		return "", false
	}
	return rng.Pick(s.src, candidates)
}

// RandomWeaponPreset returns a deep copy of a uniformly chosen weapon preset.
func (s *Store) RandomWeaponPreset(bundle string, level int) (WeaponPreset, bool) {
	tier, data := s.tierData(bundle, level)
	if data == nil || len(data.Weapons) == 0 {
		s.logger.Error("no weapon presets", zap.String("bundle", bundle), zap.String("tier", tier))
		s.metrics.CountMiss(metrics.MissPreset)
		return WeaponPreset{}, false
	}
	picked, _ := rng.Pick(s.src, data.Weapons)
	if s.debug {
		s.logger.Debug("selected weapon preset",
			zap.Int("level", level),
			zap.String("bundle", bundle),
			zap.String("tier", tier),
			zap.String("weapon", picked.Name))
	}
	return picked.Clone(), true
}

// Gear returns the tier's gear tables. The slices are shared and must not be
// modified.
func (s *Store) Gear(bundle string, level int) (Gear, bool) {
	_, data := s.tierData(bundle, level)
	if data == nil {
		return Gear{}, false
	}
	return data.Gear, true
}

func (s *Store) ModuleAlternatives(bundle string, level int) Modules {
	_, data := s.tierData(bundle, level)
	if data == nil {
		return nil
	}
	return data.Modules
}

// AlternativeModule returns either moduleTpl or, on a coin flip, one of its
// tier alternatives.
func (s *Store) AlternativeModule(bundle string, level int, moduleTpl string) string {
	alternatives := s.ModuleAlternatives(bundle, level)[moduleTpl]
	if len(alternatives) == 0 || !rng.Bool(s.src) {
		return moduleTpl
	}
	picked, _ := rng.Pick(s.src, alternatives)
	return picked
}

// Suggest returns the loaded bundle name closest to name, or "".
func (s *Store) Suggest(name string) string {
	best := ""
	bestDistance := -1
	for _, candidate := range s.order {
		distance := levenshtein.ComputeDistance(name, candidate)
		if distance > max(2, len(candidate)/2) {
			continue
		}
		if bestDistance == -1 || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}
