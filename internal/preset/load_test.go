package preset

import (
	"path/filepath"
	"testing"

	"loadout/internal/config"
	"loadout/internal/validate"
)

func testWeights() config.BundleWeights {
	return config.BundleWeights{
		{Name: "default", Weight: 3},
		{Name: "meta", Weight: 0},
		{Name: "nobrackets", Weight: 1},
	}
}

func hasIssue(report *validate.Report, severity validate.Severity, code, bundle string) bool {
	for _, issue := range report.Issues {
		if issue.Severity == severity && issue.Code == code && issue.Bundle == bundle {
			return true
		}
	}
	return false
}

func TestLoad(t *testing.T) {
	store, report := Load(filepath.Join("testdata", "presets"), testWeights())

	t.Run("every configured bundle is loaded", func(t *testing.T) {
		if got := len(store.Bundles()); got != 3 {
			t.Fatalf("expected 3 bundles, got %d", got)
		}
		names := []string{}
		for _, b := range store.Bundles() {
			names = append(names, b.Name)
		}
		if names[0] != "default" || names[1] != "meta" || names[2] != "nobrackets" {
			t.Fatalf("unexpected bundle order %v", names)
		}
	})

	t.Run("brackets keep declaration order", func(t *testing.T) {
		b, ok := store.Bundle("default")
		if !ok {
			t.Fatalf("expected default bundle")
		}
		if len(b.Tiers) != 3 || b.Tiers[0].Name != "one" || b.Tiers[2].Name != "three" {
			t.Fatalf("unexpected tiers %+v", b.Tiers)
		}
		if b.Tiers[1].Min != 21 || b.Tiers[1].Max != 40 {
			t.Fatalf("unexpected bracket %+v", b.Tiers[1])
		}
	})

	t.Run("loaded and malformed presets are rejected", func(t *testing.T) {
		b, _ := store.Bundle("default")
		weapons := b.Data["one"].Weapons
		if len(weapons) != 2 {
			t.Fatalf("expected 2 accepted presets, got %d", len(weapons))
		}
		for _, w := range weapons {
			if w.ID == "m4a1-loaded" {
				t.Fatalf("loaded preset must be rejected")
			}
		}
		if !hasIssue(report, validate.SeverityError, validate.CodeChamberLoaded, "default") {
			t.Fatalf("expected magazine_not_empty error, got %+v", report.Issues)
		}
		if !hasIssue(report, validate.SeverityError, validate.CodeReadFailed, "default") {
			t.Fatalf("expected read error for broken.json")
		}
	})

	t.Run("preset without magazine is accepted with a warning", func(t *testing.T) {
		b, _ := store.Bundle("default")
		found := false
		for _, w := range b.Data["one"].Weapons {
			if w.ID == "m4a1-nomag" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected m4a1-nomag to be accepted")
		}
		if !hasIssue(report, validate.SeverityWarn, validate.CodeNoMagazine, "default") {
			t.Fatalf("expected no_magazine warning")
		}
	})

	t.Run("gear, ammo and modules are read", func(t *testing.T) {
		b, _ := store.Bundle("default")
		data := b.Data["one"]
		if len(data.Gear.Helmets) != 2 || data.Gear.Helmets[0].Weight != 2 {
			t.Fatalf("unexpected helmets %+v", data.Gear.Helmets)
		}
		if len(data.Ammo["Caliber545x39"]) != 2 {
			t.Fatalf("unexpected ammo %+v", data.Ammo)
		}
		if len(data.Modules["55d4b9964bdc2d1d4e8b456e"]) != 2 {
			t.Fatalf("unexpected modules %+v", data.Modules)
		}
		if len(b.Data["two"].Modules) != 0 {
			t.Fatalf("expected no modules for tier two")
		}
	})

	t.Run("zero weight bundle still loads", func(t *testing.T) {
		b, ok := store.Bundle("meta")
		if !ok || b.Weight != 0 {
			t.Fatalf("expected meta bundle with zero weight, got %+v", b)
		}
		if len(b.Data["one"].Weapons) != 1 {
			t.Fatalf("expected meta weapons")
		}
	})

	t.Run("missing bracket file is an error", func(t *testing.T) {
		if !hasIssue(report, validate.SeverityError, validate.CodeMissingBrackets, "nobrackets") {
			t.Fatalf("expected missing_brackets error")
		}
		if _, ok := store.TierForLevel("nobrackets", 10); ok {
			t.Fatalf("expected no tier for a bundle without brackets")
		}
	})
}

func TestParseWeaponPresetFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		preset, err := ParseWeaponPresetFile(filepath.Join("testdata", "presets", "default", "one", "m4a1.json"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if preset.Name != "M4A1 basic" || len(preset.Items) != 6 {
			t.Fatalf("unexpected preset %+v", preset)
		}
		if preset.Items[0].Upd == nil {
			t.Fatalf("expected upd on the receiver")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		if _, err := ParseWeaponPresetFile(filepath.Join("testdata", "presets", "default", "one", "broken.json")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ParseWeaponPresetFile(filepath.Join("testdata", "nope.json")); err == nil {
			t.Fatalf("expected error")
		}
	})
}
