package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"loadout/internal/config"
	"loadout/internal/metrics"
	"loadout/internal/validate"
)

const (
	bracketsFile = "preset.yaml"
	gearFile     = "gear.yaml"
	ammoFile     = "ammo.yaml"
	modulesFile  = "modules.yaml"
	weaponExt    = ".json"
)

var ErrNotMapping = errors.New("expected a mapping")

type loader struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
	report  *validate.Report
}

// Load reads every configured bundle under dir. Individual file failures are
// logged and recorded in the report; the affected slice of data is left empty.
func Load(dir string, weights config.BundleWeights, opts ...Option) (*Store, *validate.Report) {
	s := newStore(opts...)
	l := &loader{logger: s.logger, metrics: s.metrics, report: &validate.Report{}}

	// Zero-weight bundles are loaded too. PickBundle never draws them but a
	// request may still name one.
	for _, bw := range weights {
		bundle := l.loadBundle(dir, bw)
		s.add(bundle)
		s.logger.Info("loaded preset", zap.String("bundle", bundle.Name), zap.Int("weight", bundle.Weight), zap.Int("tiers", len(bundle.Data)))
	}
	return s, l.report
}

func (l *loader) issue(severity validate.Severity, code, bundle, tier, path string, err error) {
	l.report.Add(validate.Issue{
		Severity: severity,
		Code:     code,
		Message:  err.Error(),
		Bundle:   bundle,
		Tier:     tier,
		FilePath: path,
	})
	fields := []zap.Field{zap.String("bundle", bundle), zap.String("code", code), zap.Error(err)}
	if tier != "" {
		fields = append(fields, zap.String("tier", tier))
	}
	if path != "" {
		fields = append(fields, zap.String("file", path))
	}
	if severity == validate.SeverityError {
		l.logger.Error("preset data problem", fields...)
	} else {
		l.logger.Warn("preset data problem", fields...)
	}
}

func (l *loader) loadBundle(dir string, bw config.BundleWeight) *Bundle {
	bundle := &Bundle{Name: bw.Name, Weight: bw.Weight, Data: make(map[string]*TierData)}
	bundleDir := filepath.Join(dir, bw.Name)

	bracketsPath := filepath.Join(bundleDir, bracketsFile)
	tiers, err := readBrackets(bracketsPath)
	if err != nil {
		code := validate.CodeReadFailed
		if errors.Is(err, os.ErrNotExist) {
			code = validate.CodeMissingBrackets
		}
		l.issue(validate.SeverityError, code, bw.Name, "", bracketsPath, err)
	}
	bundle.Tiers = tiers

	brackets := make([]validate.Bracket, 0, len(tiers))
	for _, tier := range tiers {
		brackets = append(brackets, validate.Bracket{Name: tier.Name, Min: tier.Min, Max: tier.Max})
	}
	for _, issue := range validate.Brackets(brackets) {
		l.issue(issue.Severity, issue.Code, bw.Name, issue.Tier, bracketsPath, errors.New(issue.Message))
	}

	entries, err := os.ReadDir(bundleDir)
	if err != nil {
		l.issue(validate.SeverityError, validate.CodeReadFailed, bw.Name, "", bundleDir, err)
		return bundle
	}

	known := make(map[string]struct{}, len(tiers))
	for _, tier := range tiers {
		known[tier.Name] = struct{}{}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		tierName := entry.Name()
		if _, ok := known[tierName]; !ok && len(tiers) > 0 {
			l.issue(validate.SeverityWarn, validate.CodeUnknownTierDir, bw.Name, tierName, "", fmt.Errorf("tier directory %s has no level bracket", tierName))
		}
		bundle.Data[tierName] = l.loadTier(bw.Name, tierName, filepath.Join(bundleDir, tierName))
	}
	return bundle
}

func (l *loader) loadTier(bundle, tier, tierDir string) *TierData {
	data := &TierData{Ammo: Ammo{}, Modules: Modules{}}

	gearPath := filepath.Join(tierDir, gearFile)
	if err := readYAML(gearPath, &data.Gear); err != nil {
		l.issue(validate.SeverityError, validate.CodeReadFailed, bundle, tier, gearPath, err)
	} else {
		for _, section := range Sections {
			items := data.Gear.Section(section)
			if len(items) == 0 {
				l.issue(validate.SeverityWarn, validate.CodeEmptyGearSection, bundle, tier, gearPath, fmt.Errorf("gear section %s is empty", section))
			} else if lo.SumBy(items, GearWeight) == 0 {
				l.issue(validate.SeverityWarn, validate.CodeZeroWeightGear, bundle, tier, gearPath, fmt.Errorf("every %s entry has zero weight", section))
			}
		}
	}

	ammoPath := filepath.Join(tierDir, ammoFile)
	if err := readYAML(ammoPath, &data.Ammo); err != nil {
		l.issue(validate.SeverityError, validate.CodeReadFailed, bundle, tier, ammoPath, err)
	}

	modulesPath := filepath.Join(tierDir, modulesFile)
	if _, err := os.Stat(modulesPath); err == nil {
		if err := readYAML(modulesPath, &data.Modules); err != nil {
			l.issue(validate.SeverityError, validate.CodeReadFailed, bundle, tier, modulesPath, err)
		}
	}

	data.Weapons = l.loadWeapons(bundle, tier, tierDir)
	if len(data.Weapons) == 0 {
		l.issue(validate.SeverityWarn, validate.CodeNoWeaponPresets, bundle, tier, tierDir, errors.New("tier has no valid weapon presets"))
	}
	return data
}

func (l *loader) loadWeapons(bundle, tier, tierDir string) []WeaponPreset {
	entries, err := os.ReadDir(tierDir)
	if err != nil {
		l.issue(validate.SeverityError, validate.CodeReadFailed, bundle, tier, tierDir, err)
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), weaponExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var weapons []WeaponPreset
	for _, name := range names {
		path := filepath.Join(tierDir, name)
		preset, err := ParseWeaponPresetFile(path)
		if err != nil {
			l.issue(validate.SeverityError, validate.CodeReadFailed, bundle, tier, path, err)
			continue
		}

		ok, issues := validate.WeaponPreset(preset.Items)
		for _, issue := range issues {
			l.issue(issue.Severity, issue.Code, bundle, tier, path, errors.New(issue.Message))
		}
		if !ok {
			l.metrics.CountRejected(1)
			continue
		}
		weapons = append(weapons, *preset)
	}
	return weapons
}

// ParseWeaponPresetFile reads one exported weapon build (a JSON document).
func ParseWeaponPresetFile(path string) (*WeaponPreset, error) {
	var preset WeaponPreset
	if err := readYAML(path, &preset); err != nil {
		return nil, err
	}
	if len(preset.Items) == 0 {
		return nil, fmt.Errorf("weapon preset has no items")
	}
	if preset.Name == "" {
		preset.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	preset.File = path
	return &preset, nil
}

// readBrackets decodes the tier -> {min, max} mapping keeping declaration order.
func readBrackets(path string) ([]Tier, error) {
	var doc yaml.Node
	if err := readYAML(path, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	tiers := make([]Tier, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		var bounds struct {
			Min int `yaml:"min"`
			Max int `yaml:"max"`
		}
		if err := root.Content[i+1].Decode(&bounds); err != nil {
			return nil, fmt.Errorf("tier %s: %w", root.Content[i].Value, err)
		}
		tiers = append(tiers, Tier{Name: root.Content[i].Value, Min: bounds.Min, Max: bounds.Max})
	}
	return tiers, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return nil
}
