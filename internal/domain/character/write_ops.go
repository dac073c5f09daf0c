package character

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/bonus"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// OpKind names one atomic write
type OpKind string

const (
	OpSetClassLevel     OpKind = "set_class_level"
	OpGrantFeature      OpKind = "grant_feature"
	OpRevokeFeature     OpKind = "revoke_feature"
	OpAddAbilityBonus   OpKind = "add_ability_bonus"
	OpAssignSubclass    OpKind = "assign_subclass"
	OpLearnSpell        OpKind = "learn_spell"
	OpAddChoice         OpKind = "add_choice"
	OpRemoveChoice      OpKind = "remove_choice"
	OpIncreaseMaxHP     OpKind = "increase_max_hp"
	OpAddFeat           OpKind = "add_feat"
	OpSetSpellSlots     OpKind = "set_spell_slots"
	OpRecordTransaction OpKind = "record_transaction"
)

// WriteOp is one step of a write batch; only the fields for its Kind are set
type WriteOp struct {
	Kind OpKind `json:"kind"`

	ClassKey    string `json:"class_key,omitempty"`
	Level       int    `json:"level,omitempty"`
	SubclassKey string `json:"subclass_key,omitempty"`

	Feature *FeatureGrant `json:"feature,omitempty"`
	Bonus   *bonus.Source `json:"bonus,omitempty"`

	SpellKey string `json:"spell_key,omitempty"`
	Cantrip  bool   `json:"cantrip,omitempty"`

	PoolKey   string `json:"pool_key,omitempty"`
	OptionKey string `json:"option_key,omitempty"`

	FeatKey string `json:"feat_key,omitempty"`
	HP      int    `json:"hp,omitempty"`

	SpellSlots []int      `json:"spell_slots,omitempty"`
	PactSlots  *PactSlots `json:"pact_slots,omitempty"`

	TransactionID string `json:"transaction_id,omitempty"`
}

func SetClassLevel(classKey string, level int) WriteOp {
	return WriteOp{Kind: OpSetClassLevel, ClassKey: classKey, Level: level}
}

func GrantFeature(grant FeatureGrant) WriteOp {
	return WriteOp{Kind: OpGrantFeature, Feature: &grant}
}

// RevokeFeature drops a grant; used when a pool option is swapped out
func RevokeFeature(featureKey string) WriteOp {
	return WriteOp{Kind: OpRevokeFeature, Feature: &FeatureGrant{FeatureKey: featureKey}}
}

func AddAbilityBonus(src bonus.Source) WriteOp {
	return WriteOp{Kind: OpAddAbilityBonus, Bonus: &src}
}

func AssignSubclass(classKey, subclassKey string) WriteOp {
	return WriteOp{Kind: OpAssignSubclass, ClassKey: classKey, SubclassKey: subclassKey}
}

func LearnSpell(spellKey string, cantrip bool) WriteOp {
	return WriteOp{Kind: OpLearnSpell, SpellKey: spellKey, Cantrip: cantrip}
}

func AddChoice(poolKey, optionKey string) WriteOp {
	return WriteOp{Kind: OpAddChoice, PoolKey: poolKey, OptionKey: optionKey}
}

func RemoveChoice(poolKey, optionKey string) WriteOp {
	return WriteOp{Kind: OpRemoveChoice, PoolKey: poolKey, OptionKey: optionKey}
}

func IncreaseMaxHP(amount int) WriteOp {
	return WriteOp{Kind: OpIncreaseMaxHP, HP: amount}
}

func AddFeat(featKey string) WriteOp {
	return WriteOp{Kind: OpAddFeat, FeatKey: featKey}
}

func SetSpellSlots(slots []int, pact PactSlots) WriteOp {
	return WriteOp{Kind: OpSetSpellSlots, SpellSlots: slots, PactSlots: &pact}
}

func RecordTransaction(id string) WriteOp {
	return WriteOp{Kind: OpRecordTransaction, TransactionID: id}
}

// ApplyWrites applies ops in order to a copy of s. Either every op applies
// or an error is returned and s is untouched. Version is left to the writer.
func ApplyWrites(s *Snapshot, ops []WriteOp) (*Snapshot, error) {
	out := s.Clone()
	for i, op := range ops {
		if err := out.apply(op); err != nil {
			return nil, dnderr.Wrapf(err, "write %d (%s)", i, op.Kind).WithMeta("op", i)
		}
	}
	return out, nil
}

func (s *Snapshot) apply(op WriteOp) error {
	switch op.Kind {
	case OpSetClassLevel:
		if op.Level < 1 || op.Level > 20 {
			return dnderr.InvalidArgumentf("class level %d out of range", op.Level)
		}
		for i := range s.Classes {
			if s.Classes[i].ClassKey == op.ClassKey {
				s.Classes[i].Level = op.Level
				return nil
			}
		}
		s.Classes = append(s.Classes, ClassEntry{ClassKey: op.ClassKey, Level: op.Level})
	case OpGrantFeature:
		if op.Feature == nil || op.Feature.FeatureKey == "" {
			return dnderr.InvalidArgument("grant_feature without feature")
		}
		s.grant(*op.Feature)
	case OpRevokeFeature:
		if op.Feature == nil {
			return dnderr.InvalidArgument("revoke_feature without feature")
		}
		i, ok := s.feature(op.Feature.FeatureKey)
		if !ok {
			return dnderr.NotFoundf("feature %s not granted", op.Feature.FeatureKey)
		}
		s.Features = append(s.Features[:i:i], s.Features[i+1:]...)
	case OpAddAbilityBonus:
		if op.Bonus == nil {
			return dnderr.InvalidArgument("add_ability_bonus without bonus")
		}
		s.BonusSources = append(s.BonusSources, cloneSource(*op.Bonus))
	case OpAssignSubclass:
		for i := range s.Classes {
			if s.Classes[i].ClassKey != op.ClassKey {
				continue
			}
			if s.Classes[i].SubclassKey != "" && s.Classes[i].SubclassKey != op.SubclassKey {
				return dnderr.Validationf(dnderr.ReasonSubclassMismatch, "%s already has subclass %s",
					op.ClassKey, s.Classes[i].SubclassKey)
			}
			s.Classes[i].SubclassKey = op.SubclassKey
			return nil
		}
		return dnderr.NotFoundf("class %s not held", op.ClassKey)
	case OpLearnSpell:
		if s.Spells == nil {
			s.Spells = &SpellList{}
		}
		s.Spells.add(op.SpellKey, op.Cantrip)
	case OpAddChoice:
		if contains(s.Choices[op.PoolKey], op.OptionKey) {
			return dnderr.Validationf(dnderr.ReasonDuplicateOption, "%s already holds %s", op.PoolKey, op.OptionKey)
		}
		if s.Choices == nil {
			s.Choices = make(map[string][]string)
		}
		s.Choices[op.PoolKey] = append(s.Choices[op.PoolKey], op.OptionKey)
	case OpRemoveChoice:
		held := s.Choices[op.PoolKey]
		for i, k := range held {
			if k == op.OptionKey {
				s.Choices[op.PoolKey] = append(held[:i:i], held[i+1:]...)
				return nil
			}
		}
		return dnderr.Validationf(dnderr.ReasonUnknownOption, "%s does not hold %s", op.PoolKey, op.OptionKey)
	case OpIncreaseMaxHP:
		s.MaxHP += op.HP
	case OpAddFeat:
		if !contains(s.Feats, op.FeatKey) {
			s.Feats = append(s.Feats, op.FeatKey)
		}
	case OpSetSpellSlots:
		s.SpellSlots = append([]int(nil), op.SpellSlots...)
		if op.PactSlots != nil {
			s.PactSlots = *op.PactSlots
		}
	case OpRecordTransaction:
		if s.HasTransaction(op.TransactionID) {
			return dnderr.Persistencef(dnderr.ReasonAlreadyApplied, "transaction %s already applied", op.TransactionID)
		}
		s.AppliedTransactions = append(s.AppliedTransactions, op.TransactionID)
	default:
		return dnderr.InvalidArgumentf("unknown write %q", op.Kind)
	}
	return nil
}

// grant adds a feature once; stacking features count repeats instead
func (s *Snapshot) grant(g FeatureGrant) {
	if i, ok := s.feature(g.FeatureKey); ok {
		if s.Features[i].Stacking {
			s.Features[i].Count++
		}
		return
	}
	if g.Count == 0 {
		g.Count = 1
	}
	if g.Uses != nil {
		uses := *g.Uses
		g.Uses = &uses
	}
	s.Features = append(s.Features, g)
}
