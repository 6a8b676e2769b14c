package helmet

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"loadout/internal/rng"
)

// Putter places items into a bot inventory and returns the new item id.
type Putter interface {
	PutGear(slot, tpl string) string
	PutMod(tpl, slot, parentID string) string
}

type Rules struct {
	recipes map[string]Recipe
	src     rng.Source
	logger  *zap.Logger
}

func New(src rng.Source, logger *zap.Logger) *Rules {
	if src == nil {
		src = rng.NewTimeSeeded()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rules{recipes: defaultRecipes(), src: src, logger: logger}
}

func (r *Rules) Recipe(tpl string) (Recipe, bool) {
	recipe, ok := r.recipes[tpl]
	return recipe, ok
}

// NightHelmet draws a helmet uniformly from the level's night pool.
func (r *Rules) NightHelmet(level int) string {
	tpl, _ := rng.Pick(r.src, NightPool(level))
	return tpl
}

// Generate puts headwear on the bot. On night raids tpl is ignored and a
// night vision capable helmet is drawn for the level. It returns the template
// actually placed.
func (r *Rules) Generate(p Putter, tpl string, level int, night bool) string {
	if night {
		tpl = r.NightHelmet(level)
	}
	r.Assemble(p, tpl, level, night)
	return tpl
}

// Assemble puts tpl in the headwear slot and attaches the parts its recipe
// asks for. Headwear without a recipe goes on bare.
func (r *Rules) Assemble(p Putter, tpl string, level int, night bool) string {
	helmetID := p.PutGear(SlotHeadwear, tpl)
	recipe, ok := r.recipes[tpl]
	if !ok {
		r.logger.Debug("headwear has no recipe", zap.String("tpl", tpl))
		return helmetID
	}
	refs := map[string]string{"": helmetID}
	r.run(p, recipe.Steps, refs, level, night)
	return helmetID
}

func (r *Rules) run(p Putter, steps []Step, refs map[string]string, level int, night bool) {
	for _, step := range steps {
		if !step.When.holds(night) {
			continue
		}
		if step.Fork != nil {
			if step.Fork.When.holds(night) && rng.Bool(r.src) {
				r.run(p, step.Fork.Heads, refs, level, night)
			} else {
				r.run(p, step.Fork.Tails, refs, level, night)
			}
			continue
		}

		parentID, ok := refs[step.On]
		if !ok {
			r.logger.Error("recipe step attaches to an unknown part", zap.String("on", step.On))
			continue
		}
		if step.Vision {
			r.attachVision(p, parentID, level)
			continue
		}

		tpl := step.Tpl
		if len(step.OneOf) > 0 {
			tpl, _ = rng.Pick(r.src, step.OneOf)
		}
		id := p.PutMod(tpl, step.Slot, parentID)
		if step.Name != "" {
			refs[step.Name] = id
		}
	}
}

// attachVision mounts PNV-10T through a Norotos mount and dovetail adapter up
// to ChainLevelCutoff, and a self contained GPNVG-18 above it.
func (r *Rules) attachVision(p Putter, parentID string, level int) {
	if level <= ChainLevelCutoff {
		mountID := p.PutMod(NorotosMount, "mod_nvg", parentID)
		adapterID := p.PutMod(PNV10TAdapter, "mod_nvg", mountID)
		p.PutMod(PNV10T, "mod_nvg", adapterID)
		return
	}
	p.PutMod(GPNVG18, "mod_nvg", parentID)
}

// Describe renders a recipe as indented lines, one per step.
func Describe(recipe Recipe) []string {
	lines := []string{Name(recipe.Helmet)}
	describeSteps(&lines, recipe.Steps, 1)
	return lines
}

func describeSteps(lines *[]string, steps []Step, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, step := range steps {
		on := "helmet"
		if step.On != "" {
			on = step.On
		}
		cond := ""
		if step.When != Always {
			cond = fmt.Sprintf(" [%s]", step.When)
		}
		switch {
		case step.Fork != nil:
			*lines = append(*lines, fmt.Sprintf("%scoin flip%s:", indent, forkCondition(step.Fork.When)))
			*lines = append(*lines, indent+"  heads:")
			describeSteps(lines, step.Fork.Heads, depth+2)
			*lines = append(*lines, indent+"  tails:")
			describeSteps(lines, step.Fork.Tails, depth+2)
		case step.Vision:
			*lines = append(*lines, fmt.Sprintf("%snight vision on %s%s", indent, on, cond))
		case len(step.OneOf) > 0:
			options := make([]string, 0, len(step.OneOf))
			for _, tpl := range step.OneOf {
				options = append(options, Name(tpl))
			}
			*lines = append(*lines, fmt.Sprintf("%sone of %s -> %s on %s%s", indent, strings.Join(options, " | "), step.Slot, on, cond))
		default:
			*lines = append(*lines, fmt.Sprintf("%s%s -> %s on %s%s", indent, Name(step.Tpl), step.Slot, on, cond))
		}
	}
}

func forkCondition(w When) string {
	if w == Always {
		return ""
	}
	return fmt.Sprintf(" (%s only, otherwise tails)", w)
}
