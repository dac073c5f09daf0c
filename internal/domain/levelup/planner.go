package levelup

import (
	"github.com/KirkDiggler/dnd-levelup/internal/catalog"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/choicepool"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

const (
	maxLevel = 20

	// spellbookStart is the number of spells a wizard's first level copies in
	spellbookStart = 6
)

// Planner derives the ordered decisions a level-up requires. It is pure:
// the same snapshot, class and catalog always give the same plan.
type Planner struct {
	catalog catalog.Reader
}

type PlannerConfig struct {
	Catalog catalog.Reader
}

func NewPlanner(cfg *PlannerConfig) *Planner {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	return &Planner{catalog: cfg.Catalog}
}

type planOptions struct {
	subclassKey string
}

// PlanOption tunes a plan
type PlanOption func(*planOptions)

// WithSubclass previews the subclass about to be chosen so its pools and
// spells are part of the plan. Keys that do not belong to the class are ignored.
func WithSubclass(key string) PlanOption {
	return func(o *planOptions) {
		o.subclassKey = key
	}
}

// Plan lists the steps for taking one more level in classKey. targetLevel is
// the total character level after the level-up and must be exactly one above
// the snapshot's, otherwise the snapshot is stale.
//
// Steps come in a fixed order: subclass, choice pools (class then subclass),
// ability score improvement, spells, optional replacements, then optional
// class features.
func (p *Planner) Plan(classKey string, targetLevel int, snap *character.Snapshot, opts ...PlanOption) ([]*DecisionStep, error) {
	if snap == nil {
		return nil, dnderr.InvalidArgument("snapshot is required")
	}

	o := &planOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if current := snap.TotalLevel(); targetLevel != current+1 {
		return nil, dnderr.Validationf(dnderr.ReasonStaleSnapshot,
			"target level %d does not follow current level %d", targetLevel, current).
			WithMeta("version", snap.Version)
	}
	if targetLevel > maxLevel {
		return nil, dnderr.InvalidArgumentf("character is already level %d", maxLevel)
	}

	class, err := p.catalog.GetClass(classKey)
	if err != nil {
		return nil, err
	}
	level := snap.ClassLevel(classKey) + 1

	var steps []*DecisionStep

	subclassKey := snap.SubclassOf(classKey)
	if subclassKey == "" && class.SubclassLevel > 0 && level >= class.SubclassLevel {
		steps = append(steps, &DecisionStep{
			Kind:     StepSelectSubclass,
			ClassKey: classKey,
			Options:  append([]string(nil), class.Subclasses...),
		})
		if class.HasSubclass(o.subclassKey) {
			subclassKey = o.subclassKey
		}
	}

	owners := []string{classKey}
	if subclassKey != "" {
		owners = append(owners, subclassKey)
	}

	var pools []*rulebook.ChoicePool
	for _, owner := range owners {
		owned, err := p.catalog.GetChoicePools(owner)
		if err != nil {
			return nil, err
		}
		for _, pool := range owned {
			pools = append(pools, pool)

			held := snap.HeldOptions(pool.Key)
			quota := choicepool.QuotaAt(pool, level)
			if quota <= choicepool.QuotaAt(pool, level-1) || quota <= len(held) {
				continue
			}
			steps = append(steps, &DecisionStep{
				Kind:      StepSelectFromPool,
				ClassKey:  classKey,
				OwnerKey:  owner,
				PoolKey:   pool.Key,
				PickCount: quota - len(held),
				Options:   unheld(pool, held),
			})
		}
	}

	if class.IsASILevel(level) {
		steps = append(steps, &DecisionStep{
			Kind:     StepSelectAbilityOrFeat,
			ClassKey: classKey,
		})
	}

	for _, owner := range owners {
		table, err := p.catalog.GetSpellTable(owner)
		if err != nil {
			return nil, err
		}
		steps = append(steps, spellSteps(classKey, owner, table, level)...)
	}

	for _, pool := range pools {
		held := snap.HeldOptions(pool.Key)
		if len(held) == 0 || !pool.Swap.AllowsAt(level) {
			continue
		}
		steps = append(steps, &DecisionStep{
			Kind:     StepReplaceChoice,
			ClassKey: classKey,
			OwnerKey: pool.OwnerKey,
			PoolKey:  pool.Key,
			Optional: true,
			Options:  unheld(pool, held),
		})
	}

	optional, err := p.catalog.GetOptionalFeatures(classKey)
	if err != nil {
		return nil, err
	}
	var offered []string
	for _, of := range optional {
		if of.OfferedAt(level) && (of.Feature.Stacking || !snap.HasFeature(of.Feature.Key)) {
			offered = append(offered, of.Key)
		}
	}
	if len(offered) > 0 {
		steps = append(steps, &DecisionStep{
			Kind:     StepChooseOptionalFeature,
			ClassKey: classKey,
			OwnerKey: classKey,
			Optional: true,
			Options:  offered,
		})
	}

	for _, step := range steps {
		step.ID = step.key()
	}

	return steps, nil
}

func spellSteps(classKey, owner string, table *rulebook.SpellcastingProgression, level int) []*DecisionStep {
	if table == nil {
		return nil
	}

	var steps []*DecisionStep
	newStep := func(pick SpellPick, count, levelCap int) {
		steps = append(steps, &DecisionStep{
			Kind:       StepLearnSpells,
			ClassKey:   classKey,
			OwnerKey:   owner,
			SpellPick:  pick,
			SpellList:  table.SpellList,
			SpellCount: count,
			LevelCap:   levelCap,
		})
	}

	if n := table.CantripsAt(level) - table.CantripsAt(level-1); n > 0 {
		newStep(SpellPickCantrips, n, 0)
	}

	levelCap := table.MaxSpellLevel(level)
	if levelCap == 0 {
		return steps
	}
	if table.Known == rulebook.KnownFixed {
		if n := table.KnownAt(level) - table.KnownAt(level-1); n > 0 {
			newStep(SpellPickKnown, n, levelCap)
		}
	}
	if table.SpellbookPerLevel > 0 {
		n := table.SpellbookPerLevel
		if level == 1 {
			n = spellbookStart
		}
		newStep(SpellPickSpellbook, n, levelCap)
	}

	return steps
}

func unheld(pool *rulebook.ChoicePool, held []string) []string {
	isHeld := make(map[string]bool, len(held))
	for _, k := range held {
		isHeld[k] = true
	}
	var out []string
	for _, o := range pool.Options {
		if !isHeld[o.Key] {
			out = append(out, o.Key)
		}
	}
	return out
}
