package prerequisite

import (
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// Subject is the character state a prerequisite is checked against
type Subject struct {
	// Level is the gating level: the owning class level for pool options,
	// total character level for feats
	Level int

	// Scores are current scores including all bonuses
	Scores shared.AbilityScores

	Pact            string
	HasSpellcasting bool
	Race            string
	Subrace         string
	HeldOptions     map[string]bool
	KnownSpells     map[string]bool
	Subclasses      map[string]bool
	Features        map[string]bool
}

// Result lists every failing clause, not just the first
type Result struct {
	Satisfied bool
	Reasons   []string
	Warnings  []string
}

// Evaluate checks every clause of expr independently
func Evaluate(expr Expression, subject *Subject) *Result {
	result := &Result{Satisfied: true}
	if subject == nil {
		subject = &Subject{}
	}

	for _, clause := range expr.Clauses {
		switch c := clause.(type) {
		case LevelClause:
			if subject.Level < c.Min {
				result.fail(fmt.Sprintf("requires level %d (have %d)", c.Min, subject.Level))
			}
		case AbilityClause:
			if have := subject.Scores[c.Ability]; have < c.Min {
				result.fail(fmt.Sprintf("requires %s %d (have %d)", c.Ability, c.Min, have))
			}
		case PactClause:
			if subject.Pact != c.Pact {
				result.fail(fmt.Sprintf("requires %s", c.Pact))
			}
		case SpellcastingClause:
			if !subject.HasSpellcasting {
				result.fail("requires the ability to cast at least one spell")
			}
		case RaceClause:
			if !raceMatches(c.Races, subject) {
				result.fail(fmt.Sprintf("requires race: %s", strings.Join(c.Races, ", ")))
			}
		case OptionHeldClause:
			if !subject.HeldOptions[c.OptionKey] {
				result.fail(fmt.Sprintf("requires %s", c.OptionKey))
			}
		case KnownSpellClause:
			if !subject.KnownSpells[c.SpellKey] {
				result.fail(fmt.Sprintf("requires the %s spell", c.SpellKey))
			}
		case SubclassClause:
			if !subject.Subclasses[c.SubclassKey] {
				result.fail(fmt.Sprintf("requires the %s subclass", c.SubclassKey))
			}
		case FeatureClause:
			if !subject.Features[c.FeatureKey] {
				result.fail(fmt.Sprintf("requires the %s feature", c.FeatureKey))
			}
		case UnsupportedClause:
			warning := fmt.Sprintf("unsupported prerequisite %q treated as satisfied", c.Key)
			log.Printf("WARN prerequisite: %s", warning)
			result.Warnings = append(result.Warnings, warning)
		default:
			warning := fmt.Sprintf("unhandled prerequisite kind %q treated as satisfied", clause.Kind())
			log.Printf("WARN prerequisite: %s", warning)
			result.Warnings = append(result.Warnings, warning)
		}
	}

	return result
}

func (r *Result) fail(reason string) {
	r.Satisfied = false
	r.Reasons = append(r.Reasons, reason)
}

func raceMatches(races []string, subject *Subject) bool {
	for _, r := range races {
		if r == subject.Race || (subject.Subrace != "" && r == subject.Subrace) {
			return true
		}
	}
	return false
}
