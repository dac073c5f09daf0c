package prerequisite

import (
	"encoding/json"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// Kind names a clause variant
type Kind string

const (
	KindLevel        Kind = "level"
	KindAbility      Kind = "ability"
	KindPact         Kind = "pact"
	KindSpellcasting Kind = "spellcasting"
	KindRace         Kind = "race"
	KindOptionHeld   Kind = "option"
	KindKnownSpell   Kind = "spell"
	KindSubclass     Kind = "subclass"
	KindFeature      Kind = "feature"
	KindUnsupported  Kind = "unsupported"
)

// Clause is a closed set of requirement kinds. Only types in this package implement it.
type Clause interface {
	Kind() Kind
	isClause()
}

// LevelClause requires the subject's gating level to be at least Min
type LevelClause struct {
	Min int
}

// AbilityClause requires a current (post-bonus) score of at least Min
type AbilityClause struct {
	Ability shared.Attribute
	Min     int
}

// PactClause requires a specific pact boon
type PactClause struct {
	Pact string
}

// SpellcastingClause requires the ability to cast at least one spell
type SpellcastingClause struct{}

// RaceClause requires the race or subrace to be one of Races
type RaceClause struct {
	Races []string
}

// OptionHeldClause requires another choice option to already be held
type OptionHeldClause struct {
	OptionKey string
}

// KnownSpellClause requires a spell to be known
type KnownSpellClause struct {
	SpellKey string
}

// SubclassClause requires a subclass in any class
type SubclassClause struct {
	SubclassKey string
}

// FeatureClause requires a feature to already be granted
type FeatureClause struct {
	FeatureKey string
}

// UnsupportedClause is a requirement this ruleset version cannot check.
// It evaluates as satisfied and is reported as a warning.
type UnsupportedClause struct {
	Key string
	Raw json.RawMessage
}

func (LevelClause) Kind() Kind        { return KindLevel }
func (AbilityClause) Kind() Kind      { return KindAbility }
func (PactClause) Kind() Kind         { return KindPact }
func (SpellcastingClause) Kind() Kind { return KindSpellcasting }
func (RaceClause) Kind() Kind         { return KindRace }
func (OptionHeldClause) Kind() Kind   { return KindOptionHeld }
func (KnownSpellClause) Kind() Kind   { return KindKnownSpell }
func (SubclassClause) Kind() Kind     { return KindSubclass }
func (FeatureClause) Kind() Kind      { return KindFeature }
func (UnsupportedClause) Kind() Kind  { return KindUnsupported }

func (LevelClause) isClause()        {}
func (AbilityClause) isClause()      {}
func (PactClause) isClause()         {}
func (SpellcastingClause) isClause() {}
func (RaceClause) isClause()         {}
func (OptionHeldClause) isClause()   {}
func (KnownSpellClause) isClause()   {}
func (SubclassClause) isClause()     {}
func (FeatureClause) isClause()      {}
func (UnsupportedClause) isClause()  {}

// Expression is a conjunction of clauses. The zero value is always satisfied.
type Expression struct {
	Clauses []Clause
}

// All builds an expression from clauses
func All(clauses ...Clause) Expression {
	return Expression{Clauses: clauses}
}

// IsEmpty reports whether the expression has no clauses
func (e Expression) IsEmpty() bool {
	return len(e.Clauses) == 0
}
