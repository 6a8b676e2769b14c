package validate

import (
	"errors"
	"fmt"
	"strings"

	"loadout/internal/item"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	CodeReadFailed       = "read_failed"
	CodeMissingBrackets  = "missing_brackets"
	CodeChamberLoaded    = "magazine_not_empty"
	CodeBrokenGraph      = "broken_item_graph"
	CodeNoMagazine       = "no_magazine"
	CodeNoTactical       = "no_tactical_device"
	CodeBracketInverted  = "bracket_inverted"
	CodeBracketOverlap   = "bracket_overlap"
	CodeBracketGap       = "bracket_gap"
	CodeNoWeaponPresets  = "no_weapon_presets"
	CodeUnknownTierDir   = "unknown_tier_directory"
	CodeZeroWeightGear   = "zero_weight_gear"
	CodeEmptyGearSection = "empty_gear_section"
)

var ErrChamberLoaded = errors.New("preset's magazine is not empty")

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Bundle   string
	Tier     string
	FilePath string
}

type Report struct {
	Issues []Issue
}

func (r *Report) Add(issues ...Issue) {
	r.Issues = append(r.Issues, issues...)
}

func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarn)
}

func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

func (r *Report) filter(severity Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// Location renders bundle/tier/file for display.
func (i Issue) Location() string {
	location := i.Bundle
	if i.Tier != "" {
		location = fmt.Sprintf("%s/%s", location, i.Tier)
	}
	if i.FilePath != "" {
		location = fmt.Sprintf("%s (%s)", location, i.FilePath)
	}
	return location
}

// WeaponPreset checks a stored weapon item graph. Presets must arrive unloaded:
// any cartridge stack rejects the preset outright. Missing magazine or
// tactical device only produce warnings.
func WeaponPreset(items []item.Item) (bool, []Issue) {
	var issues []Issue

	if _, err := item.Root(items); err != nil {
		return false, []Issue{{Severity: SeverityError, Code: CodeBrokenGraph, Message: err.Error()}}
	}
	if err := item.CheckIntegrity(items, ""); err != nil {
		return false, []Issue{{Severity: SeverityError, Code: CodeBrokenGraph, Message: err.Error()}}
	}

	hasMagazine := false
	hasTactical := false
	for _, it := range items {
		if it.SlotID == "" {
			continue
		}
		if it.SlotID == item.SlotCartridges || it.SlotID == item.SlotChamber {
			return false, []Issue{{Severity: SeverityError, Code: CodeChamberLoaded, Message: ErrChamberLoaded.Error()}}
		}
		if it.SlotID == item.SlotMagazine {
			hasMagazine = true
		}
		if strings.HasPrefix(it.SlotID, item.SlotTactical) {
			hasTactical = true
		}
	}

	if !hasMagazine {
		issues = append(issues, Issue{Severity: SeverityWarn, Code: CodeNoMagazine, Message: "preset doesn't have magazine"})
	}
	if !hasTactical {
		issues = append(issues, Issue{Severity: SeverityWarn, Code: CodeNoTactical, Message: "preset doesn't have tactical device"})
	}
	return true, issues
}
