package levelup

import (
	"fmt"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// StepKind is the kind of decision a level-up asks for
type StepKind string

const (
	StepSelectSubclass      StepKind = "select_subclass"
	StepSelectAbilityOrFeat StepKind = "select_ability_or_feat"
	StepSelectFromPool      StepKind = "select_from_pool"
	StepReplaceChoice       StepKind = "replace_choice"
	StepLearnSpells         StepKind = "learn_spells"

	StepChooseOptionalFeature StepKind = "choose_optional_feature"
)

// SpellPick says which kind of spell a learn step adds
type SpellPick string

const (
	SpellPickCantrips  SpellPick = "cantrips"
	SpellPickKnown     SpellPick = "spells"
	SpellPickSpellbook SpellPick = "spellbook"
)

// DecisionStep is one decision the player must (or, if Optional, may) make
type DecisionStep struct {
	// ID is unique within one plan; answers refer to steps by ID
	ID       string   `json:"id"`
	Kind     StepKind `json:"kind"`
	ClassKey string   `json:"class_key"`

	// OwnerKey is the class or subclass a pool or spell step belongs to
	OwnerKey string `json:"owner_key,omitempty"`
	PoolKey  string `json:"pool_key,omitempty"`

	PickCount int `json:"pick_count,omitempty"`

	SpellPick  SpellPick `json:"spell_pick,omitempty"`
	SpellList  string    `json:"spell_list,omitempty"`
	SpellCount int       `json:"spell_count,omitempty"`
	LevelCap   int       `json:"level_cap,omitempty"`

	Optional bool `json:"optional,omitempty"`

	// Options are the candidate keys (subclasses, pool options or optional
	// features) for display
	Options []string `json:"options,omitempty"`
}

func (d *DecisionStep) key() string {
	switch d.Kind {
	case StepSelectFromPool, StepReplaceChoice:
		return fmt.Sprintf("%s:%s", d.Kind, d.PoolKey)
	case StepLearnSpells:
		return fmt.Sprintf("%s:%s:%s", d.Kind, d.OwnerKey, d.SpellPick)
	default:
		return string(d.Kind)
	}
}

// Answer carries the player's response to one step; only the fields for the
// step's kind are read.
type Answer struct {
	StepID string `json:"step_id"`

	SubclassKey string `json:"subclass_key,omitempty"`

	AbilityIncreases map[shared.Attribute]int `json:"ability_increases,omitempty"`
	FeatKey          string                   `json:"feat_key,omitempty"`
	FeatAbility      shared.Attribute         `json:"feat_ability,omitempty"`

	OptionKeys []string `json:"option_keys,omitempty"`

	OldOptionKey string `json:"old_option_key,omitempty"`
	NewOptionKey string `json:"new_option_key,omitempty"`

	SpellKeys []string `json:"spell_keys,omitempty"`
}

// Transaction is a full set of answers for one level-up. TargetLevel is the
// total character level after the level-up.
type Transaction struct {
	ID          string   `json:"id"`
	CharacterID string   `json:"character_id"`
	ClassKey    string   `json:"class_key"`
	TargetLevel int      `json:"target_level"`
	Answers     []Answer `json:"answers"`

	// HitDieRoll is the rolled hit die for the new level. Zero takes the
	// fixed average.
	HitDieRoll int `json:"hit_die_roll,omitempty"`
}

// subclassHint returns the subclass picked in the transaction, if any
func (t *Transaction) subclassHint() string {
	for _, a := range t.Answers {
		if a.StepID == string(StepSelectSubclass) {
			return a.SubclassKey
		}
	}
	return ""
}
