package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"loadout/internal/gear"
	"loadout/internal/helmet"
	"loadout/internal/item"
	"loadout/internal/preset"
	"loadout/internal/store"
)

type GenerateLoadoutInput struct {
	Level    int    `json:"level" jsonschema:"bot level"`
	Bundle   string `json:"bundle,omitempty" jsonschema:"preset bundle, drawn by weight when empty"`
	Role     string `json:"role,omitempty" jsonschema:"bot role"`
	Location string `json:"location,omitempty" jsonschema:"raid location id"`
	Night    bool   `json:"night,omitempty" jsonschema:"night raid"`
	Record   bool   `json:"record,omitempty" jsonschema:"append the result to the spawn journal"`
}

type ListBundlesInput struct{}

type TierForLevelInput struct {
	Bundle string `json:"bundle" jsonschema:"preset bundle"`
	Level  int    `json:"level" jsonschema:"bot level"`
}

type ValidatePresetsInput struct{}

type DescribeHelmetInput struct {
	Tpl   string `json:"tpl" jsonschema:"helmet template id"`
	Level int    `json:"level,omitempty" jsonschema:"bot level for a sample assembly"`
	Night bool   `json:"night,omitempty" jsonschema:"sample a night assembly"`
}

type ListSpawnsInput struct {
	Bundle    string `json:"bundle,omitempty" jsonschema:"bundle filter"`
	EliteOnly bool   `json:"elite_only,omitempty" jsonschema:"only elite spawns"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of records"`
}

type LoadoutOutput struct {
	ID        string      `json:"id,omitempty"`
	Bundle    string      `json:"bundle"`
	Tier      string      `json:"tier"`
	Level     int         `json:"level"`
	Elite     bool        `json:"elite"`
	Helmet    string      `json:"helmet,omitempty"`
	Weapon    string      `json:"weapon,omitempty"`
	AmmoTpl   string      `json:"ammo_tpl,omitempty"`
	Equipment string      `json:"equipment"`
	Items     []item.Item `json:"items"`
}

type TierOutput struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

type BundleOutput struct {
	Name   string       `json:"name"`
	Weight int          `json:"weight"`
	Tiers  []TierOutput `json:"tiers"`
}

type ListBundlesOutput struct {
	Bundles []BundleOutput `json:"bundles"`
}

type TierForLevelOutput struct {
	Bundle string `json:"bundle"`
	Tier   string `json:"tier"`
}

type IssueOutput struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

type ValidatePresetsOutput struct {
	Errors   []IssueOutput `json:"errors"`
	Warnings []IssueOutput `json:"warnings"`
}

type DescribeHelmetOutput struct {
	Name   string             `json:"name"`
	Steps  []string           `json:"steps"`
	Sample []helmet.Placement `json:"sample,omitempty"`
}

type ListSpawnsOutput struct {
	Spawns []store.SpawnRecord `json:"spawns"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "generate_loadout",
		Description: "Generate one bot inventory",
	}, s.handleGenerateLoadout)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_bundles",
		Description: "List preset bundles with their weights and level brackets",
	}, s.handleListBundles)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "tier_for_level",
		Description: "Resolve the tier a bot level falls into",
	}, s.handleTierForLevel)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "validate_presets",
		Description: "Reload the preset directory and report data problems",
	}, s.handleValidatePresets)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "describe_helmet",
		Description: "Show the assembly recipe of a helmet and a sample assembly",
	}, s.handleDescribeHelmet)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_spawns",
		Description: "List recorded spawns, newest first",
	}, s.handleListSpawns)
}

func (s *Server) handleGenerateLoadout(ctx context.Context, req *sdk.CallToolRequest, input GenerateLoadoutInput) (*sdk.CallToolResult, LoadoutOutput, error) {
	if input.Level < 1 {
		return nil, LoadoutOutput{}, fmt.Errorf("level must be at least 1")
	}
	loadout, err := s.deps.Generator.Generate(gear.Request{
		Bundle: input.Bundle,
		Role:   input.Role,
		Level:  input.Level,
		Raid:   gear.RaidInfo{Location: input.Location, Night: input.Night},
	})
	if err != nil {
		if errors.Is(err, preset.ErrUnknownBundle) {
			if suggestion := s.deps.Presets.Suggest(input.Bundle); suggestion != "" {
				return nil, LoadoutOutput{}, fmt.Errorf("%w (did you mean %q?)", err, suggestion)
			}
		}
		return nil, LoadoutOutput{}, err
	}

	output := loadoutOutput(loadout)
	if input.Record {
		if s.deps.Journal == nil {
			return nil, LoadoutOutput{}, fmt.Errorf("no spawn journal configured")
		}
		rec := store.NewSpawnRecord(loadout, time.Now())
		if err := s.deps.Journal.RecordSpawn(ctx, rec); err != nil {
			return nil, LoadoutOutput{}, err
		}
		output.ID = rec.ID
	}
	return nil, output, nil
}

func (s *Server) handleListBundles(ctx context.Context, req *sdk.CallToolRequest, input ListBundlesInput) (*sdk.CallToolResult, ListBundlesOutput, error) {
	bundles := s.deps.Presets.Bundles()
	output := make([]BundleOutput, 0, len(bundles))
	for _, b := range bundles {
		tiers := make([]TierOutput, 0, len(b.Tiers))
		for _, tier := range b.Tiers {
			tiers = append(tiers, TierOutput{Name: tier.Name, Min: tier.Min, Max: tier.Max})
		}
		output = append(output, BundleOutput{Name: b.Name, Weight: b.Weight, Tiers: tiers})
	}
	return nil, ListBundlesOutput{Bundles: output}, nil
}

func (s *Server) handleTierForLevel(ctx context.Context, req *sdk.CallToolRequest, input TierForLevelInput) (*sdk.CallToolResult, TierForLevelOutput, error) {
	if input.Bundle == "" {
		return nil, TierForLevelOutput{}, fmt.Errorf("bundle is required")
	}
	tier, ok := s.deps.Presets.TierForLevel(input.Bundle, input.Level)
	if !ok {
		return nil, TierForLevelOutput{}, fmt.Errorf("%w: %s", preset.ErrUnknownBundle, input.Bundle)
	}
	return nil, TierForLevelOutput{Bundle: input.Bundle, Tier: tier}, nil
}

func (s *Server) handleValidatePresets(ctx context.Context, req *sdk.CallToolRequest, input ValidatePresetsInput) (*sdk.CallToolResult, ValidatePresetsOutput, error) {
	if s.deps.Validate == nil {
		return nil, ValidatePresetsOutput{}, fmt.Errorf("preset validation is not available")
	}
	report := s.deps.Validate()
	output := ValidatePresetsOutput{Errors: []IssueOutput{}, Warnings: []IssueOutput{}}
	for _, issue := range report.Errors() {
		output.Errors = append(output.Errors, IssueOutput{Severity: string(issue.Severity), Code: issue.Code, Message: issue.Message, Location: issue.Location()})
	}
	for _, issue := range report.Warnings() {
		output.Warnings = append(output.Warnings, IssueOutput{Severity: string(issue.Severity), Code: issue.Code, Message: issue.Message, Location: issue.Location()})
	}
	s.logger.Info("validated presets", zap.Int("errors", len(output.Errors)), zap.Int("warnings", len(output.Warnings)))
	return nil, output, nil
}

func (s *Server) handleDescribeHelmet(ctx context.Context, req *sdk.CallToolRequest, input DescribeHelmetInput) (*sdk.CallToolResult, DescribeHelmetOutput, error) {
	if input.Tpl == "" {
		return nil, DescribeHelmetOutput{}, fmt.Errorf("tpl is required")
	}
	recipe, ok := s.deps.Helmets.Recipe(input.Tpl)
	if !ok {
		return nil, DescribeHelmetOutput{}, fmt.Errorf("no recipe for helmet %s", input.Tpl)
	}
	output := DescribeHelmetOutput{Name: helmet.Name(input.Tpl), Steps: helmet.Describe(recipe)}
	if input.Level > 0 {
		recorder := helmet.NewRecorder()
		s.deps.Helmets.Assemble(recorder, input.Tpl, input.Level, input.Night)
		output.Sample = recorder.Placed
	}
	return nil, output, nil
}

func (s *Server) handleListSpawns(ctx context.Context, req *sdk.CallToolRequest, input ListSpawnsInput) (*sdk.CallToolResult, ListSpawnsOutput, error) {
	if s.deps.Journal == nil {
		return nil, ListSpawnsOutput{}, fmt.Errorf("no spawn journal configured")
	}
	records, err := s.deps.Journal.ListSpawns(ctx, store.SpawnFilter{Bundle: input.Bundle, EliteOnly: input.EliteOnly, Limit: input.Limit})
	if err != nil {
		return nil, ListSpawnsOutput{}, err
	}
	if records == nil {
		records = []store.SpawnRecord{}
	}
	return nil, ListSpawnsOutput{Spawns: records}, nil
}

func loadoutOutput(l *gear.Loadout) LoadoutOutput {
	return LoadoutOutput{
		Bundle:    l.Bundle,
		Tier:      l.Tier,
		Level:     l.Level,
		Elite:     l.Elite,
		Helmet:    l.Helmet,
		Weapon:    l.Weapon.Preset,
		AmmoTpl:   l.Weapon.AmmoTpl,
		Equipment: l.Inventory.Equipment,
		Items:     l.Inventory.Items,
	}
}
