package helmet

// When restricts a step to day or night raids.
type When int

const (
	Always When = iota
	Day
	Night
)

func (w When) holds(night bool) bool {
	switch w {
	case Day:
		return !night
	case Night:
		return night
	default:
		return true
	}
}

func (w When) String() string {
	switch w {
	case Day:
		return "day"
	case Night:
		return "night"
	default:
		return "always"
	}
}

// Step is one instruction of a recipe. A step either attaches a part (Tpl,
// or one of OneOf taken uniformly), attaches the night vision chain (Vision),
// or forks on a coin flip (Fork).
type Step struct {
	// Name labels the attached part so later steps can use it as On.
	Name  string
	Tpl   string
	OneOf []string
	Slot  string
	// On is the Name of the part this step attaches to. Empty means the
	// helmet itself.
	On     string
	When   When
	Vision bool
	Fork   *Fork
}

// Fork takes Heads on a coin flip while When holds, Tails otherwise.
type Fork struct {
	When  When
	Heads []Step
	Tails []Step
}

type Recipe struct {
	Helmet string
	Steps  []Step
}

func part(tpl, slot string) Step {
	return Step{Tpl: tpl, Slot: slot}
}

func vision(when When) Step {
	return Step{Vision: true, When: when}
}

func shieldOnly(helmet, shield string) Recipe {
	return Recipe{Helmet: helmet, Steps: []Step{part(shield, "mod_equipment")}}
}

func dayShield(helmet string) Recipe {
	return Recipe{Helmet: helmet, Steps: []Step{
		vision(Night),
		{Tpl: FastFaceShield, Slot: "mod_equipment_000", When: Day},
	}}
}

func nightVisionOnly(helmet string) Recipe {
	return Recipe{Helmet: helmet, Steps: []Step{vision(Night)}}
}

func tc200x(helmet string) Recipe {
	return Recipe{Helmet: helmet, Steps: []Step{
		part(FastSlaapPlate, "mod_equipment_002"),
		vision(Night),
	}}
}

// sideArmorKit covers the FAST style helmets: a day raid may settle for a
// face shield, otherwise side armor goes on with either a heavy mask or a
// mandible.
func sideArmorKit(helmet string, shieldSlot string, withPlate bool) Recipe {
	mandible := []Step{
		{Tpl: FastMandible, Slot: "mod_equipment", On: "side"},
	}
	if withPlate {
		mandible = append(mandible, part(FastSlaapPlate, "mod_equipment_002"))
	}
	mandible = append(mandible, vision(Night))

	return Recipe{Helmet: helmet, Steps: []Step{{
		Fork: &Fork{
			When:  Day,
			Heads: []Step{part(FastFaceShield, shieldSlot)},
			Tails: []Step{
				{Name: "side", Tpl: FastSideArmor, Slot: "mod_equipment_000"},
				{Fork: &Fork{
					When: Always,
					Heads: []Step{
						{Name: "mask", Tpl: HeavyTrooperMask, Slot: "mod_nvg"},
						{Vision: true, On: "mask", When: Night},
					},
					Tails: mandible,
				}},
			},
		},
	}}}
}

func defaultRecipes() map[string]Recipe {
	recipes := []Recipe{
		shieldOnly(Altyn, AltynFaceShield),
		shieldOnly(Rys, RysFaceShield),
		shieldOnly(MaskaOlive, MaskaOliveFaceShield),
		shieldOnly(MaskaKilla, MaskaKillaFaceShield),
		shieldOnly(Vulkan, VulkanFaceShield),
		{Helmet: LShZ2DTM, Steps: []Step{
			part(LShZ2DTMFaceShield, "mod_equipment_000"),
			part(LShZ2DTMAventail, "mod_equipment_001"),
			part(LShZ2DTMCover, "mod_equipment_002"),
		}},
		{Helmet: Airframe, Steps: []Step{
			part(AirframeChops, "mod_equipment_001"),
			vision(Night),
			{Tpl: FastFaceShield, Slot: "mod_equipment_000", When: Day},
		}},
		{Helmet: Caiman, Steps: []Step{
			part(CaimanMandible, "mod_equipment_000"),
			part(CaimanApplique, "mod_equipment_002"),
			vision(Night),
			{Tpl: CaimanVisor, Slot: "mod_nvg", When: Day},
		}},
		nightVisionOnly(Ratnik),
		nightVisionOnly(RatnikDigi),
		sideArmorKit(LShZLight, "mod_nvg", false),
		tc200x(TC2001),
		tc200x(TC2002),
		{Helmet: ExfilBlack, Steps: []Step{
			part(ExfilEarCoversBlack, "mod_equipment_000"),
			vision(Night),
			{OneOf: []string{ExfilFaceShieldBlack, ExfilFaceShieldBrown}, Slot: "mod_equipment_001", When: Day},
		}},
		{Helmet: ExfilBrown, Steps: []Step{
			part(ExfilEarCoversBrown, "mod_equipment_000"),
			vision(Night),
		}},
		dayShield(Hjelm),
		dayShield(TC800),
		{Helmet: Bastion, Steps: []Step{
			{Name: "plate", Tpl: BastionPlate, Slot: "mod_nvg"},
			{Vision: true, On: "plate", When: Night},
		}},
		sideArmorKit(FastTan, "mod_equipment_000", true),
		sideArmorKit(FastBlack, "mod_equipment_000", true),
	}

	out := make(map[string]Recipe, len(recipes))
	for _, r := range recipes {
		out[r.Helmet] = r
	}
	return out
}

// night helmet pools by bot level, lower bound inclusive.
var nightPools = []struct {
	from    int
	helmets []string
}{
	{40, []string{Airframe, ExfilBlack, ExfilBrown, FastTan, FastBlack}},
	{28, []string{FastTan, FastBlack, TC800, Bastion, TC2002}},
	{15, []string{TC2001, Caiman, TC800, Bastion, LShZLight, Hjelm}},
	{0, []string{Ratnik, RatnikDigi}},
}

// NightPool returns the night raid helmet candidates for a bot level.
func NightPool(level int) []string {
	for _, pool := range nightPools {
		if level >= pool.from {
			return pool.helmets
		}
	}
	return nightPools[len(nightPools)-1].helmets
}
