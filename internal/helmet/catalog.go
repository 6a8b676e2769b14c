package helmet

// Headwear templates with attachment recipes.
const (
	Altyn      = "5aa7e276e5b5b000171d0647"
	Rys        = "5f60c74e3b85f6263c145586"
	MaskaOlive = "5c091a4e0db834001d5addc8"
	MaskaKilla = "5c0e874186f7745dc7616606"
	Vulkan     = "5ca20ee186f774799474abc2"
	LShZ2DTM   = "5d6d3716a4b9361bc8618872"
	Airframe   = "5c17a7ed2e2216152142459c"
	Caiman     = "5f60b34a41e30a4ab12a6947"
	Ratnik     = "5a7c4850e899ef00150be885"
	RatnikDigi = "5aa7cfc0e5b5b00015693143"
	LShZLight  = "5b432d215acfc4771e1c6624"
	TC2001     = "5d5e7d28a4b936645d161203"
	TC2002     = "5d5e9c74a4b9364855191c40"
	ExfilBlack = "5e00c1ad86f774747333222c"
	ExfilBrown = "5e01ef6886f77445f643baa4"
	Hjelm      = "61bca7cda0eae612383adf57"
	TC800      = "5e4bfc1586f774264f7582d3"
	Bastion    = "5ea17ca01412a1425304d1c0"
	FastTan    = "5ac8d6885acfc400180ae7b0"
	FastBlack  = "5a154d5cfcdbcb001a3b00da"
	SSh68      = "5c06c6a80db834001b735491"
	SSh68Name  = "SSh-68 steel helmet"
	GSSh01     = "5b432b965acfc47a8774094e"
)

// SlotHeadwear is the equipment slot every helmet goes into.
const SlotHeadwear = "Headwear"

// Helmet parts.
const (
	AltynFaceShield      = "5aa7e373e5b5b000137b76f0"
	RysFaceShield        = "5f60c85b58eff926626a60f7"
	MaskaOliveFaceShield = "5c0919b50db834001b7ce3b9"
	MaskaKillaFaceShield = "5c0e842486f77443a74d2976"
	VulkanFaceShield     = "5ca2113f86f7740b2547e1d2"
	LShZ2DTMFaceShield   = "5d6d3829a4b9361bc8618943"
	LShZ2DTMAventail     = "5d6d3be5a4b9361bc73bc763"
	LShZ2DTMCover        = "5d6d3943a4b9360dbc46d0cc"
	AirframeChops        = "5c178a942e22164bef5ceca3"
	CaimanMandible       = "5f60c076f2bcbb675b00dac2"
	CaimanApplique       = "5f60b85bbdb8e27dee3dc985"
	CaimanVisor          = "5f60bf4558eff926626a60f2"
	ExfilEarCoversBlack  = "5e00cfa786f77469dc6e5685"
	ExfilEarCoversBrown  = "5e01f31d86f77465cf261343"
	ExfilFaceShieldBlack = "5e00cdd986f7747473332240"
	ExfilFaceShieldBrown = "5e01f37686f774773c6f6c15"
	BastionPlate         = "5ea18c84ecf1982c7712d9a2"
	FastFaceShield       = "5a16b7e1fcdbcb00165aa6c9"
	FastSideArmor        = "5a16badafcdbcb001865f72d"
	FastSlaapPlate       = "5c0e66e2d174af02a96252f4"
	FastMandible         = "5a16ba61fcdbcb098008728a"
	HeavyTrooperMask     = "5ea058e01dbce517f324b3e2"
)

// Night vision parts.
const (
	NorotosMount     = "5a16b8a9fcdbcb00165aa6ca"
	PNV10TAdapter    = "5c0695860db834001b735461"
	PNV10T           = "5c0696830db834001d23f5da"
	GPNVG18          = "5c0558060db834001b735271"
	ChainLevelCutoff = 28
)

var names = map[string]string{
	Altyn:                "Altyn bulletproof helmet",
	Rys:                  "Rys-T bulletproof helmet",
	MaskaOlive:           "Maska-1SCh bulletproof helmet (Olive Drab)",
	MaskaKilla:           "Maska-1SCh bulletproof helmet (Killa)",
	Vulkan:               "Vulkan-5 (LShZ-5) bulletproof helmet",
	LShZ2DTM:             "LShZ-2DTM helmet",
	Airframe:             "Crye Precision AirFrame helmet",
	Caiman:               "Galvion Caiman Hybrid helmet",
	Ratnik:               "6B47 Ratnik-BSh helmet",
	RatnikDigi:           "6B47 Ratnik-BSh helmet (Digital Flora cover)",
	LShZLight:            "LShZ light helmet",
	TC2001:               "MSA ACH TC-2001 MICH Series helmet",
	TC2002:               "MSA ACH TC-2002 MICH Series helmet",
	ExfilBlack:           "Team Wendy EXFIL Ballistic Helmet (Black)",
	ExfilBrown:           "Team Wendy EXFIL Ballistic Helmet (Coyote Brown)",
	Hjelm:                "NFM HJELM helmet",
	TC800:                "MSA Gallet TC 800 High Cut combat helmet",
	Bastion:              "Diamond Age Bastion helmet",
	FastTan:              "Ops-Core FAST MT Super High Cut helmet (Tan)",
	FastBlack:            "Ops-Core FAST MT Super High Cut helmet (Black)",
	SSh68:                SSh68Name,
	GSSh01:               "GSSh-01 active headset",
	AltynFaceShield:      "Altyn helmet face shield",
	RysFaceShield:        "Rys-T face shield",
	MaskaOliveFaceShield: "Maska-1SCh face shield (Olive Drab)",
	MaskaKillaFaceShield: "Maska-1SCh face shield (Killa)",
	VulkanFaceShield:     "Vulkan-5 face shield",
	LShZ2DTMFaceShield:   "LShZ-2DTM face shield",
	LShZ2DTMAventail:     "LShZ-2DTM aventail",
	LShZ2DTMCover:        "LShZ-2DTM helmet cover",
	AirframeChops:        "Crye Precision AirFrame Chops",
	CaimanMandible:       "Caiman Ballistic Mandible Guard",
	CaimanApplique:       "Caiman Ballistic Applique",
	CaimanVisor:          "Caiman Fixed Arm Visor",
	ExfilEarCoversBlack:  "Team Wendy EXFIL Ear Covers (Black)",
	ExfilEarCoversBrown:  "Team Wendy EXFIL Ear Covers (Coyote Brown)",
	ExfilFaceShieldBlack: "Team Wendy EXFIL Ballistic Face Shield (Black)",
	ExfilFaceShieldBrown: "Team Wendy EXFIL Ballistic Face Shield (Coyote Brown)",
	BastionPlate:         "Diamond Age Bastion helmet armor plate",
	FastFaceShield:       "Ops-Core FAST Multi-Hit ballistic face shield",
	FastSideArmor:        "Ops-Core FAST Side Armor",
	FastSlaapPlate:       "Crye Precision SLAAP armor helmet plate",
	FastMandible:         "Ops-Core FAST Gunsight Mandible",
	HeavyTrooperMask:     "Heavy Trooper mask for Ops-Core FAST helmets",
	NorotosMount:         "Norotos Titanium Advanced Tactical Mount",
	PNV10TAdapter:        "PNV-10T dovetail adapter",
	PNV10T:               "PNV-10T Night Vision Goggles",
	GPNVG18:              "GPNVG-18 Night Vision goggles",
}

// Name returns a display name for a known headwear or part template.
func Name(tpl string) string {
	if name, ok := names[tpl]; ok {
		return name
	}
	return tpl
}

var earpieceIncompatible = map[string]struct{}{
	Altyn: {}, Rys: {}, MaskaOlive: {}, MaskaKilla: {}, Vulkan: {}, LShZ2DTM: {},
}

var earpiecePartial = map[string]struct{}{
	Airframe: {}, LShZLight: {}, ExfilBlack: {}, ExfilBrown: {}, FastBlack: {}, FastTan: {},
}

// EarpieceIncompatible reports whether the headwear cannot be worn with any
// hearing protection.
func EarpieceIncompatible(tpl string) bool {
	_, ok := earpieceIncompatible[tpl]
	return ok
}

// EarpiecePartiallyCompatible reports whether only some headsets fit under
// the headwear.
func EarpiecePartiallyCompatible(tpl string) bool {
	_, ok := earpiecePartial[tpl]
	return ok
}

// IsSSh68 matches the steel helmet that forces the GSSh-01 earpiece.
func IsSSh68(tpl, name string) bool {
	return tpl == SSh68 || name == SSh68Name
}
