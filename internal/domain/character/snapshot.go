package character

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/bonus"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// ClassEntry is one class a character has levels in
type ClassEntry struct {
	ClassKey    string `json:"class_key"`
	Level       int    `json:"level"`
	SubclassKey string `json:"subclass_key,omitempty"`
}

// UseCounter bounds how often a granted feature may be used
type UseCounter struct {
	Max  int `json:"max"`
	Used int `json:"used"`
}

// FeatureGrant is unique per character and feature key. Stacking features
// bump Count instead of adding a second grant.
type FeatureGrant struct {
	FeatureKey string      `json:"feature_key"`
	Source     string      `json:"source"`
	Stacking   bool        `json:"stacking,omitempty"`
	Count      int         `json:"count"`
	Uses       *UseCounter `json:"uses,omitempty"`
}

// PactSlots are warlock pact magic slots, tracked apart from the shared table
type PactSlots struct {
	Count     int `json:"count"`
	SlotLevel int `json:"slot_level"`
}

// Snapshot is a read view of a character. Operations never mutate one in
// place; ApplyWrites returns a new snapshot.
type Snapshot struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version int64  `json:"version"`

	Race    string `json:"race"`
	Subrace string `json:"subrace,omitempty"`

	Classes      []ClassEntry         `json:"classes"`
	BaseScores   shared.AbilityScores `json:"base_scores"`
	BonusSources []bonus.Source       `json:"bonus_sources,omitempty"`

	Features []FeatureGrant `json:"features,omitempty"`

	// Choices holds option keys per pool key, in selection order
	Choices map[string][]string `json:"choices,omitempty"`

	Spells *SpellList `json:"spells,omitempty"`
	Feats  []string   `json:"feats,omitempty"`
	MaxHP  int        `json:"max_hp"`

	// SpellSlots index 0 is 1st-level slots
	SpellSlots []int     `json:"spell_slots,omitempty"`
	PactSlots  PactSlots `json:"pact_slots"`

	AppliedTransactions []string `json:"applied_transactions,omitempty"`
}

// TotalLevel is the sum of every class level
func (s *Snapshot) TotalLevel() int {
	total := 0
	for _, c := range s.Classes {
		total += c.Level
	}
	return total
}

// ClassEntry returns the entry for classKey
func (s *Snapshot) ClassEntry(classKey string) (ClassEntry, bool) {
	for _, c := range s.Classes {
		if c.ClassKey == classKey {
			return c, true
		}
	}
	return ClassEntry{}, false
}

// ClassLevel is the character's level in one class, 0 if none
func (s *Snapshot) ClassLevel(classKey string) int {
	entry, _ := s.ClassEntry(classKey)
	return entry.Level
}

// SubclassOf returns the subclass held for classKey, if any
func (s *Snapshot) SubclassOf(classKey string) string {
	entry, _ := s.ClassEntry(classKey)
	return entry.SubclassKey
}

// HasFeature reports whether the feature has been granted
func (s *Snapshot) HasFeature(key string) bool {
	_, ok := s.feature(key)
	return ok
}

// Feature returns the grant for key
func (s *Snapshot) Feature(key string) (FeatureGrant, bool) {
	i, ok := s.feature(key)
	if !ok {
		return FeatureGrant{}, false
	}
	return s.Features[i], true
}

func (s *Snapshot) feature(key string) (int, bool) {
	for i, f := range s.Features {
		if f.FeatureKey == key {
			return i, true
		}
	}
	return -1, false
}

// HeldOptions returns the options held in one pool
func (s *Snapshot) HeldOptions(poolKey string) []string {
	return s.Choices[poolKey]
}

// AllHeldOptions returns every held option key across pools
func (s *Snapshot) AllHeldOptions() map[string]bool {
	out := make(map[string]bool)
	for _, opts := range s.Choices {
		for _, o := range opts {
			out[o] = true
		}
	}
	return out
}

// KnowsSpell reports whether a spell or cantrip is known
func (s *Snapshot) KnowsSpell(key string) bool {
	return s.Spells.Knows(key)
}

// KnownSpells returns a set of every known spell and cantrip
func (s *Snapshot) KnownSpells() map[string]bool {
	out := make(map[string]bool)
	if s.Spells == nil {
		return out
	}
	for _, k := range s.Spells.KnownSpells {
		out[k] = true
	}
	for _, k := range s.Spells.Cantrips {
		out[k] = true
	}
	return out
}

// HasFeat reports whether the feat was taken
func (s *Snapshot) HasFeat(key string) bool {
	return contains(s.Feats, key)
}

// HasTransaction reports whether a level-up transaction was already applied
func (s *Snapshot) HasTransaction(id string) bool {
	return contains(s.AppliedTransactions, id)
}

// Scores computes current scores from base scores and bonus sources
func (s *Snapshot) Scores() (shared.AbilityScores, error) {
	breakdown, err := bonus.Compute(s.BaseScores, s.BonusSources)
	if err != nil {
		return nil, err
	}
	return breakdown.Scores(), nil
}

// Clone returns a deep copy
func (s *Snapshot) Clone() *Snapshot {
	out := *s

	out.Classes = append([]ClassEntry(nil), s.Classes...)
	out.BaseScores = s.BaseScores.Clone()
	out.BonusSources = make([]bonus.Source, len(s.BonusSources))
	for i, src := range s.BonusSources {
		out.BonusSources[i] = cloneSource(src)
	}

	out.Features = make([]FeatureGrant, len(s.Features))
	for i, f := range s.Features {
		if f.Uses != nil {
			uses := *f.Uses
			f.Uses = &uses
		}
		out.Features[i] = f
	}

	out.Choices = make(map[string][]string, len(s.Choices))
	for k, v := range s.Choices {
		out.Choices[k] = append([]string(nil), v...)
	}

	out.Spells = s.Spells.clone()
	out.Feats = append([]string(nil), s.Feats...)
	out.SpellSlots = append([]int(nil), s.SpellSlots...)
	out.AppliedTransactions = append([]string(nil), s.AppliedTransactions...)

	return &out
}

func cloneSource(src bonus.Source) bonus.Source {
	if src.Fixed != nil {
		fixed := make(map[shared.Attribute]int, len(src.Fixed))
		for k, v := range src.Fixed {
			fixed[k] = v
		}
		src.Fixed = fixed
	}
	src.Groups = append([]bonus.FlexibleGroup(nil), src.Groups...)
	if src.Picks != nil {
		picks := make(map[string][]shared.Attribute, len(src.Picks))
		for k, v := range src.Picks {
			picks[k] = append([]shared.Attribute(nil), v...)
		}
		src.Picks = picks
	}
	return src
}
