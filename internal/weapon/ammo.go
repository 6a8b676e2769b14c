package weapon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"loadout/internal/preset"
)

// AmmoPolicy resolves the ammunition template a bot of the given bundle and
// level loads for a caliber.
type AmmoPolicy interface {
	Ammo(bundle string, level int, caliber string) (string, bool)
}

// TierAmmo draws from the per-tier ammo tables of the preset store.
type TierAmmo struct {
	Store *preset.Store
}

func (p TierAmmo) Ammo(bundle string, level int, caliber string) (string, bool) {
	return p.Store.RandomAmmo(bundle, level, caliber)
}

// StaticAmmo maps every caliber to one fixed ammunition template regardless
// of bundle and level.
type StaticAmmo struct {
	table map[string]string
}

func NewStaticAmmo(table map[string]string) *StaticAmmo {
	copied := make(map[string]string, len(table))
	for caliber, tpl := range table {
		copied[caliber] = tpl
	}
	return &StaticAmmo{table: copied}
}

// LoadStaticAmmo reads a caliber -> ammo template mapping:
//
//	Caliber556x45NATO: 54527a984bdc2d4e668b4567
//	Caliber545x39: 56dfef82d2720bbd668b4567
func LoadStaticAmmo(path string) (*StaticAmmo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading static ammo: %w", err)
	}
	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("loading static ammo: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("loading static ammo: %s has no calibers", path)
	}
	return NewStaticAmmo(table), nil
}

func (p *StaticAmmo) Ammo(_ string, _ int, caliber string) (string, bool) {
	tpl, ok := p.table[caliber]
	return tpl, ok && tpl != ""
}
