package levelup

import (
	"fmt"
	"log"
	"sort"

	"github.com/KirkDiggler/dnd-levelup/internal/catalog"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/bonus"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/choicepool"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/prerequisite"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/spellcasting"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

const (
	maxAbilityScore = 20
	asiBudget       = 2
)

// Committer validates a transaction against a fresh plan and turns it into
// an ordered write batch. It never touches storage.
type Committer struct {
	catalog catalog.Reader
	planner *Planner
	spells  *spellcasting.Calculator
}

type CommitterConfig struct {
	Catalog catalog.Reader
}

func NewCommitter(cfg *CommitterConfig) *Committer {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	return &Committer{
		catalog: cfg.Catalog,
		planner: NewPlanner(&PlannerConfig{Catalog: cfg.Catalog}),
		spells:  spellcasting.NewCalculator(&spellcasting.CalculatorConfig{Classes: cfg.Catalog}),
	}
}

// CommitResult is a validated level-up
type CommitResult struct {
	Steps  []*DecisionStep
	Writes []character.WriteOp

	// Preview is the snapshot with Writes applied. Version is unchanged.
	Preview *character.Snapshot

	// Warnings come from prerequisite clauses that could not be evaluated
	Warnings []string
}

// Commit re-plans the level-up, checks every answer and returns the writes.
// The first failing step rejects the whole transaction; the error carries
// the step index and every reason found for that step.
func (c *Committer) Commit(tx *Transaction, snap *character.Snapshot) (*CommitResult, error) {
	if tx == nil {
		return nil, dnderr.InvalidArgument("transaction is required")
	}
	if snap == nil {
		return nil, dnderr.InvalidArgument("snapshot is required")
	}
	if tx.ID == "" {
		return nil, dnderr.InvalidArgument("transaction id is required")
	}
	if tx.CharacterID != "" && tx.CharacterID != snap.ID {
		return nil, dnderr.InvalidArgumentf("transaction is for %s, snapshot is %s", tx.CharacterID, snap.ID)
	}

	steps, err := c.planner.Plan(tx.ClassKey, tx.TargetLevel, snap, WithSubclass(tx.subclassHint()))
	if err != nil {
		return nil, err
	}

	answers, err := matchAnswers(steps, tx.Answers)
	if err != nil {
		return nil, err
	}

	class, err := c.catalog.GetClass(tx.ClassKey)
	if err != nil {
		return nil, err
	}
	if tx.HitDieRoll < 0 || tx.HitDieRoll > class.HitDie {
		return nil, dnderr.InvalidArgumentf("hit die roll %d is outside 1d%d", tx.HitDieRoll, class.HitDie).
			WithMeta("hit_die_roll", tx.HitDieRoll)
	}

	b := &batch{
		committer: c,
		class:     class,
		level:     snap.ClassLevel(class.Key) + 1,
		current:   snap,
	}

	if err := b.levelUp(); err != nil {
		return nil, err
	}

	for i, step := range steps {
		answer, ok := answers[step.ID]
		if !ok {
			continue
		}
		if err := b.resolve(step, answer); err != nil {
			return nil, dnderr.Wrapf(err, "step %s", step.ID).WithStep(i).WithMeta("step_id", step.ID)
		}
	}

	if err := b.finish(snap.TotalLevel() == 0, tx); err != nil {
		return nil, err
	}

	return &CommitResult{
		Steps:    steps,
		Writes:   b.ops,
		Preview:  b.current,
		Warnings: b.warnings,
	}, nil
}

func matchAnswers(steps []*DecisionStep, answers []Answer) (map[string]Answer, error) {
	known := make(map[string]bool, len(steps))
	for _, step := range steps {
		known[step.ID] = true
	}

	v := &violations{}
	out := make(map[string]Answer, len(answers))
	for _, a := range answers {
		if !known[a.StepID] {
			v.add(dnderr.ReasonUnexpectedAnswer, "no step %q in this level-up", a.StepID)
			continue
		}
		if _, dup := out[a.StepID]; dup {
			v.add(dnderr.ReasonUnexpectedAnswer, "step %s answered more than once", a.StepID)
			continue
		}
		out[a.StepID] = a
	}

	for _, step := range steps {
		if _, ok := out[step.ID]; !ok && !step.Optional {
			v.add(dnderr.ReasonMissingAnswer, "step %s is unanswered", step.ID)
		}
	}

	return out, v.err()
}

// batch accumulates writes and keeps a preview in step with them so later
// steps see what earlier ones chose
type batch struct {
	committer *Committer
	class     *rulebook.Class
	level     int

	current  *character.Snapshot
	ops      []character.WriteOp
	warnings []string
}

func (b *batch) write(ops ...character.WriteOp) error {
	if len(ops) == 0 {
		return nil
	}
	next, err := character.ApplyWrites(b.current, ops)
	if err != nil {
		return err
	}
	b.current = next
	b.ops = append(b.ops, ops...)
	return nil
}

func grants(features []*rulebook.Feature, source string) []character.WriteOp {
	ops := make([]character.WriteOp, 0, len(features))
	for _, f := range features {
		grant := character.FeatureGrant{
			FeatureKey: f.Key,
			Source:     source,
			Stacking:   f.Stacking,
		}
		if f.MaxUses > 0 {
			grant.Uses = &character.UseCounter{Max: f.MaxUses}
		}
		ops = append(ops, character.GrantFeature(grant))
	}
	return ops
}

// levelUp raises the class level and grants what the new level gives unconditionally
func (b *batch) levelUp() error {
	cat := b.committer.catalog

	features, err := cat.GetClassFeatures(b.class.Key, b.level)
	if err != nil {
		return err
	}
	ops := append([]character.WriteOp{character.SetClassLevel(b.class.Key, b.level)},
		grants(features, b.class.Key)...)

	if sub := b.current.SubclassOf(b.class.Key); sub != "" {
		subFeatures, err := cat.GetSubclassFeatures(sub, b.level)
		if err != nil {
			return err
		}
		ops = append(ops, grants(subFeatures, sub)...)
	}

	return b.write(ops...)
}

func (b *batch) resolve(step *DecisionStep, a Answer) error {
	switch step.Kind {
	case StepSelectSubclass:
		return b.selectSubclass(a)
	case StepSelectFromPool:
		return b.selectFromPool(step, a)
	case StepSelectAbilityOrFeat:
		return b.selectAbilityOrFeat(a)
	case StepLearnSpells:
		return b.learnSpells(step, a)
	case StepReplaceChoice:
		return b.replaceChoice(step, a)
	case StepChooseOptionalFeature:
		return b.chooseOptionalFeatures(a)
	default:
		return dnderr.InvalidArgumentf("unknown step kind %q", step.Kind)
	}
}

func (b *batch) selectSubclass(a Answer) error {
	if !b.class.HasSubclass(a.SubclassKey) {
		return dnderr.Validationf(dnderr.ReasonSubclassMismatch, "%q is not a %s subclass", a.SubclassKey, b.class.Name)
	}
	sub, err := b.committer.catalog.GetSubclass(a.SubclassKey)
	if err != nil {
		return err
	}

	ops := append([]character.WriteOp{character.AssignSubclass(b.class.Key, sub.Key)},
		grants(sub.FeaturesThrough(b.level), sub.Key)...)
	return b.write(ops...)
}

func (b *batch) selectFromPool(step *DecisionStep, a Answer) error {
	pool, err := b.committer.catalog.GetChoicePool(step.PoolKey)
	if err != nil {
		return err
	}
	if len(a.OptionKeys) < step.PickCount {
		return dnderr.Validationf(dnderr.ReasonMissingAnswer, "%s needs %d picks, got %d",
			pool.Name, step.PickCount, len(a.OptionKeys))
	}

	subject, err := b.subject(b.level)
	if err != nil {
		return err
	}
	result := choicepool.ValidateSelection(&choicepool.Selection{
		Pool:         pool,
		ClassLevel:   b.level,
		Held:         b.current.HeldOptions(pool.Key),
		Proposed:     a.OptionKeys,
		Subject:      subject,
		HeldFeatures: heldFeatures(b.current),
	})
	if !result.OK() {
		return result.Err()
	}

	var ops []character.WriteOp
	for _, key := range a.OptionKeys {
		option, _ := pool.Option(key)
		ops = append(ops, character.AddChoice(pool.Key, key))
		ops = append(ops, grants(option.GrantsFeatures, pool.Key)...)
	}
	return b.write(ops...)
}

func (b *batch) replaceChoice(step *DecisionStep, a Answer) error {
	if a.OldOptionKey == "" && a.NewOptionKey == "" {
		return nil
	}

	pool, err := b.committer.catalog.GetChoicePool(step.PoolKey)
	if err != nil {
		return err
	}
	subject, err := b.subject(b.level)
	if err != nil {
		return err
	}

	result := choicepool.ValidateReplacement(&choicepool.Replacement{
		Pool:         pool,
		Held:         b.current.HeldOptions(pool.Key),
		OldOption:    a.OldOptionKey,
		NewOption:    a.NewOptionKey,
		Subject:      subject,
		HeldFeatures: heldFeatures(b.current),
	})
	if !result.OK() {
		return result.Err()
	}

	var ops []character.WriteOp
	if old, ok := pool.Option(a.OldOptionKey); ok {
		for _, f := range old.GrantsFeatures {
			if !b.current.HasFeature(f.Key) {
				continue
			}
			kept, err := b.grantedElsewhere(f.Key, pool.Key, old.Key)
			if err != nil {
				return err
			}
			if !kept {
				ops = append(ops, character.RevokeFeature(f.Key))
			}
		}
	}
	ops = append(ops,
		character.RemoveChoice(pool.Key, a.OldOptionKey),
		character.AddChoice(pool.Key, a.NewOptionKey),
	)
	replacement, _ := pool.Option(a.NewOptionKey)
	ops = append(ops, grants(replacement.GrantsFeatures, pool.Key)...)

	return b.write(ops...)
}

// chooseOptionalFeatures grants the optional class features named in
// OptionKeys. A non-stacking feature already held is left as is.
func (b *batch) chooseOptionalFeatures(a Answer) error {
	if len(a.OptionKeys) == 0 {
		return nil
	}

	offered, err := b.committer.catalog.GetOptionalFeatures(b.class.Key)
	if err != nil {
		return err
	}
	byKey := make(map[string]*rulebook.OptionalFeature, len(offered))
	for _, of := range offered {
		if of.OfferedAt(b.level) {
			byKey[of.Key] = of
		}
	}

	subject, err := b.subject(b.level)
	if err != nil {
		return err
	}

	v := &violations{}
	seen := make(map[string]bool, len(a.OptionKeys))
	var ops []character.WriteOp
	for _, key := range a.OptionKeys {
		of, ok := byKey[key]
		if !ok {
			v.add(dnderr.ReasonUnknownOption, "%q is not offered at %s level %d", key, b.class.Name, b.level)
			continue
		}
		if seen[key] {
			v.add(dnderr.ReasonDuplicateOption, "%s chosen more than once", of.Name)
			continue
		}
		seen[key] = true

		eval := prerequisite.Evaluate(of.Prerequisite, subject)
		b.warnings = append(b.warnings, eval.Warnings...)
		if !eval.Satisfied {
			for _, r := range eval.Reasons {
				v.add(dnderr.ReasonPrerequisiteUnmet, "%s %s", of.Name, r)
			}
			continue
		}

		if !of.Feature.Stacking && b.current.HasFeature(of.Feature.Key) {
			continue
		}
		if of.Replaces != "" && b.current.HasFeature(of.Replaces) {
			ops = append(ops, character.RevokeFeature(of.Replaces))
		}
		ops = append(ops, grants([]*rulebook.Feature{of.Feature}, of.Key)...)
	}
	if err := v.err(); err != nil {
		return err
	}

	return b.write(ops...)
}

func heldFeatures(snap *character.Snapshot) map[string]bool {
	out := make(map[string]bool, len(snap.Features))
	for _, f := range snap.Features {
		out[f.FeatureKey] = true
	}
	return out
}

// grantedElsewhere reports whether anything other than the option being
// swapped out of poolKey still grants featureKey: another held option, a feat,
// or a class or subclass level.
func (b *batch) grantedElsewhere(featureKey, poolKey, optionKey string) (bool, error) {
	cat := b.committer.catalog
	snap := b.current

	for heldPool, options := range snap.Choices {
		pool, err := cat.GetChoicePool(heldPool)
		if err != nil {
			return false, err
		}
		for _, key := range options {
			if heldPool == poolKey && key == optionKey {
				continue
			}
			if option, ok := pool.Option(key); ok && hasFeatureKey(option.GrantsFeatures, featureKey) {
				return true, nil
			}
		}
	}

	for _, key := range snap.Feats {
		feat, err := cat.GetFeat(key)
		if err != nil {
			return false, err
		}
		if hasFeatureKey(feat.GrantsFeatures, featureKey) {
			return true, nil
		}
	}

	for _, entry := range snap.Classes {
		for level := 1; level <= entry.Level; level++ {
			features, err := cat.GetClassFeatures(entry.ClassKey, level)
			if err != nil {
				return false, err
			}
			if hasFeatureKey(features, featureKey) {
				return true, nil
			}
			if entry.SubclassKey == "" {
				continue
			}
			features, err = cat.GetSubclassFeatures(entry.SubclassKey, level)
			if err != nil {
				return false, err
			}
			if hasFeatureKey(features, featureKey) {
				return true, nil
			}
		}
	}
	return false, nil
}

func hasFeatureKey(features []*rulebook.Feature, key string) bool {
	for _, f := range features {
		if f.Key == key {
			return true
		}
	}
	return false
}

func (b *batch) selectAbilityOrFeat(a Answer) error {
	hasIncreases := len(a.AbilityIncreases) > 0
	if hasIncreases == (a.FeatKey != "") {
		return dnderr.Validationf(dnderr.ReasonASIBudgetMismatch, "choose either ability increases or a feat")
	}

	scores, err := b.current.Scores()
	if err != nil {
		return err
	}

	if !hasIncreases {
		return b.selectFeat(a, scores)
	}

	if err := checkIncreases(a.AbilityIncreases); err != nil {
		return err
	}
	if err := checkCap(scores, a.AbilityIncreases); err != nil {
		return err
	}

	amounts := make(map[shared.Attribute]int, len(a.AbilityIncreases))
	for attr, n := range a.AbilityIncreases {
		amounts[attr] = n
	}
	source := bonus.FixedSource(bonus.LabelASI, fmt.Sprintf("%s-%d", b.class.Key, b.level), amounts)
	return b.write(character.AddAbilityBonus(source))
}

// checkIncreases allows +2 to one ability or +1 to each of two
func checkIncreases(increases map[shared.Attribute]int) error {
	v := &violations{}
	total := 0
	for _, attr := range sortedAttributes(increases) {
		n := increases[attr]
		if _, err := shared.ParseAttribute(string(attr)); err != nil {
			v.add(dnderr.ReasonASIBudgetMismatch, "%q is not an ability", attr)
		}
		if n < 1 || n > asiBudget {
			v.add(dnderr.ReasonASIBudgetMismatch, "%s cannot increase by %d", attr, n)
		}
		total += n
	}
	if total != asiBudget {
		v.add(dnderr.ReasonASIBudgetMismatch, "increases must total %d, got %d", asiBudget, total)
	}
	return v.err()
}

func checkCap(scores shared.AbilityScores, increases map[shared.Attribute]int) error {
	v := &violations{}
	for _, attr := range sortedAttributes(increases) {
		if after := scores[attr] + increases[attr]; after > maxAbilityScore {
			v.add(dnderr.ReasonAbilityCapExceeded, "%s would be %d, max %d", attr, after, maxAbilityScore)
		}
	}
	return v.err()
}

func (b *batch) selectFeat(a Answer, scores shared.AbilityScores) error {
	feat, err := b.committer.catalog.GetFeat(a.FeatKey)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return dnderr.Validationf(dnderr.ReasonUnknownOption, "feat %q does not exist", a.FeatKey)
		}
		return err
	}
	if b.current.HasFeat(feat.Key) {
		return dnderr.Validationf(dnderr.ReasonDuplicateOption, "%s already taken", feat.Name)
	}

	subject, err := b.subject(b.current.TotalLevel())
	if err != nil {
		return err
	}
	eval := prerequisite.Evaluate(feat.Prerequisite, subject)
	b.warnings = append(b.warnings, eval.Warnings...)
	if !eval.Satisfied {
		reasons := make([]string, len(eval.Reasons))
		for i, r := range eval.Reasons {
			reasons[i] = feat.Name + " " + r
		}
		return dnderr.Validation(dnderr.ReasonPrerequisiteUnmet, reasons...)
	}

	ops := []character.WriteOp{character.AddFeat(feat.Key)}

	switch {
	case feat.AbilityBonus.NeedsPick():
		fb := feat.AbilityBonus
		if !fb.Allows(a.FeatAbility) {
			return dnderr.Validationf(dnderr.ReasonInvalidBonusPick, "%s increases one of %v, got %q",
				feat.Name, fb.Choices, a.FeatAbility)
		}
		if err := checkCap(scores, map[shared.Attribute]int{a.FeatAbility: fb.Amount}); err != nil {
			return err
		}
		ops = append(ops, character.AddAbilityBonus(bonus.Source{
			Label:     bonus.LabelFeat,
			EntityKey: feat.Key,
			Mode:      bonus.ModeFlexible,
			Groups: []bonus.FlexibleGroup{{
				Name:        feat.Key,
				Value:       fb.Amount,
				ChoiceCount: 1,
				Members:     append([]shared.Attribute(nil), fb.Choices...),
			}},
			Picks: map[string][]shared.Attribute{feat.Key: {a.FeatAbility}},
		}))
	case a.FeatAbility != "":
		return dnderr.Validationf(dnderr.ReasonInvalidBonusPick, "%s has no ability choice", feat.Name)
	case feat.AbilityBonus != nil && len(feat.AbilityBonus.Fixed) > 0:
		if err := checkCap(scores, feat.AbilityBonus.Fixed); err != nil {
			return err
		}
		amounts := make(map[shared.Attribute]int, len(feat.AbilityBonus.Fixed))
		for attr, n := range feat.AbilityBonus.Fixed {
			amounts[attr] = n
		}
		ops = append(ops, character.AddAbilityBonus(bonus.FixedSource(bonus.LabelFeat, feat.Key, amounts)))
	}

	ops = append(ops, grants(feat.GrantsFeatures, feat.Key)...)
	return b.write(ops...)
}

func (b *batch) learnSpells(step *DecisionStep, a Answer) error {
	switch n := len(a.SpellKeys); {
	case n < step.SpellCount:
		return dnderr.Validationf(dnderr.ReasonMissingAnswer, "%d %s to learn, got %d", step.SpellCount, step.SpellPick, n)
	case n > step.SpellCount:
		return dnderr.Validationf(dnderr.ReasonQuotaExceeded, "%d %s to learn, got %d", step.SpellCount, step.SpellPick, n)
	}

	cantrips := step.SpellPick == SpellPickCantrips
	known := b.current.KnownSpells()
	seen := make(map[string]bool, len(a.SpellKeys))

	v := &violations{}
	var ops []character.WriteOp
	for _, key := range a.SpellKeys {
		if known[key] || seen[key] {
			v.add(dnderr.ReasonDuplicateOption, "%s is already known", key)
			continue
		}
		seen[key] = true

		spell, err := b.committer.catalog.GetSpell(key)
		if err != nil {
			if !dnderr.IsNotFound(err) {
				return err
			}
			v.add(dnderr.ReasonUnknownOption, "spell %q does not exist", key)
			continue
		}
		if !spell.OnList(step.SpellList) {
			v.add(dnderr.ReasonUnknownOption, "%s is not on the %s list", spell.Name, step.SpellList)
			continue
		}
		switch {
		case cantrips && spell.Level != 0:
			v.add(dnderr.ReasonSpellLevelExceeded, "%s is not a cantrip", spell.Name)
			continue
		case !cantrips && spell.Level == 0:
			v.add(dnderr.ReasonSpellLevelExceeded, "%s is a cantrip", spell.Name)
			continue
		case !cantrips && spell.Level > step.LevelCap:
			v.add(dnderr.ReasonSpellLevelExceeded, "%s is level %d, max %d", spell.Name, spell.Level, step.LevelCap)
			continue
		}
		ops = append(ops, character.LearnSpell(spell.Key, cantrips))
	}
	if err := v.err(); err != nil {
		return err
	}

	return b.write(ops...)
}

// finish adds hit points, recomputes slots and records the transaction.
// The first character level always takes the full hit die.
func (b *batch) finish(firstLevel bool, tx *Transaction) error {
	scores, err := b.current.Scores()
	if err != nil {
		return err
	}
	conMod := scores.Modifier(shared.AttributeConstitution)

	hp := b.class.AverageHitPointGain(conMod)
	if tx.HitDieRoll > 0 {
		hp = max(1, tx.HitDieRoll+conMod)
	}
	if firstLevel {
		hp = max(1, b.class.HitDie+conMod)
	}

	table, err := b.committer.spells.Slots(b.current.Classes)
	if err != nil {
		return err
	}

	return b.write(
		character.IncreaseMaxHP(hp),
		character.SetSpellSlots(table.Slots, table.Pact),
		character.RecordTransaction(tx.ID),
	)
}

// subject describes the preview for prerequisite checks at the given gating level
func (b *batch) subject(level int) (*prerequisite.Subject, error) {
	snap := b.current

	scores, err := snap.Scores()
	if err != nil {
		return nil, err
	}
	casts, err := b.committer.spells.HasSpellcasting(snap.Classes)
	if err != nil {
		return nil, err
	}

	subject := &prerequisite.Subject{
		Level:           level,
		Scores:          scores,
		HasSpellcasting: casts,
		Race:            snap.Race,
		Subrace:         snap.Subrace,
		HeldOptions:     snap.AllHeldOptions(),
		KnownSpells:     snap.KnownSpells(),
		Subclasses:      make(map[string]bool),
		Features:        heldFeatures(snap),
	}
	for _, entry := range snap.Classes {
		if entry.SubclassKey != "" {
			subject.Subclasses[entry.SubclassKey] = true
		}
	}
	if pact := snap.HeldOptions(catalog.PoolPactBoon); len(pact) > 0 {
		subject.Pact = pact[0]
	}
	return subject, nil
}

func sortedAttributes(m map[shared.Attribute]int) []shared.Attribute {
	out := make([]shared.Attribute, 0, len(m))
	for a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// violations collects reasons for one step; the first one names the error reason
type violations struct {
	reason   dnderr.Reason
	messages []string
}

func (v *violations) add(reason dnderr.Reason, format string, args ...any) {
	if len(v.messages) == 0 {
		v.reason = reason
	}
	v.messages = append(v.messages, fmt.Sprintf(format, args...))
}

func (v *violations) err() error {
	if len(v.messages) == 0 {
		return nil
	}
	log.Printf("Level-up rejected (%s): %v", v.reason, v.messages)
	return dnderr.Validation(v.reason, v.messages...)
}
