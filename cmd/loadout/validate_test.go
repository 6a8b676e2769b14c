package main

import (
	"bytes"
	"strings"
	"testing"

	"loadout/internal/preset"
	"loadout/internal/validate"
)

func TestPrintReport(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		var out bytes.Buffer
		if err := printReport(&out, &validate.Report{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(out.String()) != "No issues found." {
			t.Fatalf("unexpected output %q", out.String())
		}
	})

	t.Run("errors fail", func(t *testing.T) {
		report := &validate.Report{}
		report.Add(
			validate.Issue{Severity: validate.SeverityError, Code: validate.CodeChamberLoaded, Message: "loaded", Bundle: "default", Tier: "one", FilePath: "loaded.json"},
			validate.Issue{Severity: validate.SeverityWarn, Code: validate.CodeNoTactical, Message: "no tactical", Bundle: "default", Tier: "one"},
		)
		var out bytes.Buffer
		if err := printReport(&out, report); err == nil {
			t.Fatalf("expected error")
		}
		text := out.String()
		if !strings.Contains(text, "Errors (1):") || !strings.Contains(text, "Warnings (1):") {
			t.Fatalf("unexpected output %q", text)
		}
		if !strings.Contains(text, "default/one (loaded.json): loaded (magazine_not_empty)") {
			t.Fatalf("unexpected issue line in %q", text)
		}
	})
}

func TestPrintTiers(t *testing.T) {
	bundles := []*preset.Bundle{
		{
			Name:   "default",
			Weight: 3,
			Tiers:  []preset.Tier{{Name: "one", Min: 1, Max: 20}},
			Data:   map[string]*preset.TierData{"one": {Weapons: []preset.WeaponPreset{{Name: "m4"}}}},
		},
		{Name: "empty", Weight: 0},
	}
	var out bytes.Buffer
	if err := printTiers(&out, bundles); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out.String())
	}
	if fields := strings.Fields(lines[1]); strings.Join(fields, " ") != "default 3 one 1 20 1" {
		t.Fatalf("unexpected tier row %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); strings.Join(fields, " ") != "empty 0 - - - -" {
		t.Fatalf("unexpected empty row %q", lines[2])
	}
}
