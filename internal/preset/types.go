package preset

import (
	"loadout/internal/item"
)

// Tier is a named inclusive level bracket of a bundle.
type Tier struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

func (t Tier) Contains(level int) bool {
	return level >= t.Min && level <= t.Max
}

type GearItem struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Weight int    `yaml:"weight" json:"weight"`
}

func GearWeight(g GearItem) int {
	return g.Weight
}

// Section names one weighted table of a tier's gear file.
type Section string

const (
	SectionHelmets     Section = "helmets"
	SectionHeadsets    Section = "headsets"
	SectionBackpacks   Section = "backpacks"
	SectionFace        Section = "face"
	SectionEyewear     Section = "eyewear"
	SectionSheath      Section = "sheath"
	SectionArmoredRigs Section = "armoredRigs"
	SectionArmor       Section = "armor"
	SectionRigs        Section = "rigs"
)

var Sections = []Section{
	SectionHelmets, SectionHeadsets, SectionBackpacks, SectionFace, SectionEyewear,
	SectionSheath, SectionArmoredRigs, SectionArmor, SectionRigs,
}

type Gear struct {
	Helmets     []GearItem `yaml:"helmets" json:"helmets"`
	Headsets    []GearItem `yaml:"headsets" json:"headsets"`
	Backpacks   []GearItem `yaml:"backpacks" json:"backpacks"`
	Face        []GearItem `yaml:"face" json:"face"`
	Eyewear     []GearItem `yaml:"eyewear" json:"eyewear"`
	Sheath      []GearItem `yaml:"sheath" json:"sheath"`
	ArmoredRigs []GearItem `yaml:"armoredRigs" json:"armoredRigs"`
	Armor       []GearItem `yaml:"armor" json:"armor"`
	Rigs        []GearItem `yaml:"rigs" json:"rigs"`
}

func (g Gear) Section(section Section) []GearItem {
	switch section {
	case SectionHelmets:
		return g.Helmets
	case SectionHeadsets:
		return g.Headsets
	case SectionBackpacks:
		return g.Backpacks
	case SectionFace:
		return g.Face
	case SectionEyewear:
		return g.Eyewear
	case SectionSheath:
		return g.Sheath
	case SectionArmoredRigs:
		return g.ArmoredRigs
	case SectionArmor:
		return g.Armor
	case SectionRigs:
		return g.Rigs
	default:
		return nil
	}
}

// Ammo maps a caliber to its candidate ammunition templates.
type Ammo map[string][]string

// Modules maps a module template to its tier appropriate alternatives.
type Modules map[string][]string

type WeaponPreset struct {
	ID    string      `yaml:"id" json:"id"`
	Name  string      `yaml:"name" json:"name"`
	Root  string      `yaml:"root" json:"root"`
	Items []item.Item `yaml:"items" json:"items"`
	File  string      `yaml:"-" json:"-"`
}

func (w WeaponPreset) Clone() WeaponPreset {
	out := w
	out.Items = item.CloneAll(w.Items)
	return out
}

// TierData is everything a tier directory holds.
type TierData struct {
	Gear    Gear
	Ammo    Ammo
	Modules Modules
	Weapons []WeaponPreset
}

type Bundle struct {
	Name   string
	Weight int
	Tiers  []Tier
	Data   map[string]*TierData
}

func (b *Bundle) tier(name string) *TierData {
	if b.Data == nil {
		return nil
	}
	return b.Data[name]
}
