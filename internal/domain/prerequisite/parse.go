package prerequisite

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// Parse converts a loosely-typed prerequisite payload such as
//
//	{"level":5,"pact":"pact-of-the-blade","abilityScore":{"STR":13},
//	 "spellcasting":true,"raceRestriction":["elf"],"option":"x","spell":"y",
//	 "subclass":"battle-master","feature":"z"}
//
// into an Expression. Unknown keys become UnsupportedClause. Clauses come
// out in a stable order.
func Parse(payload []byte) (Expression, error) {
	if len(payload) == 0 || string(payload) == "null" {
		return Expression{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return Expression{}, fmt.Errorf("prerequisite payload: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var expr Expression
	for _, key := range keys {
		value := raw[key]
		clauses, err := parseKey(key, value)
		if err != nil {
			return Expression{}, fmt.Errorf("prerequisite %q: %w", key, err)
		}
		expr.Clauses = append(expr.Clauses, clauses...)
	}

	return expr, nil
}

func parseKey(key string, value json.RawMessage) ([]Clause, error) {
	switch key {
	case "level":
		var n int
		if err := json.Unmarshal(value, &n); err != nil {
			return nil, err
		}
		return []Clause{LevelClause{Min: n}}, nil
	case "pact":
		var pact string
		if err := json.Unmarshal(value, &pact); err != nil {
			return nil, err
		}
		return []Clause{PactClause{Pact: pact}}, nil
	case "abilityScore":
		var scores map[string]int
		if err := json.Unmarshal(value, &scores); err != nil {
			return nil, err
		}
		names := make([]string, 0, len(scores))
		for name := range scores {
			names = append(names, name)
		}
		sort.Strings(names)

		clauses := make([]Clause, 0, len(names))
		for _, name := range names {
			attr, err := shared.ParseAttribute(name)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, AbilityClause{Ability: attr, Min: scores[name]})
		}
		return clauses, nil
	case "spellcasting":
		var required bool
		if err := json.Unmarshal(value, &required); err != nil {
			return nil, err
		}
		if !required {
			return nil, nil
		}
		return []Clause{SpellcastingClause{}}, nil
	case "raceRestriction":
		var races []string
		if err := json.Unmarshal(value, &races); err != nil {
			return nil, err
		}
		if len(races) == 0 {
			return nil, nil
		}
		return []Clause{RaceClause{Races: races}}, nil
	case "option":
		var option string
		if err := json.Unmarshal(value, &option); err != nil {
			return nil, err
		}
		return []Clause{OptionHeldClause{OptionKey: option}}, nil
	case "spell":
		var spell string
		if err := json.Unmarshal(value, &spell); err != nil {
			return nil, err
		}
		return []Clause{KnownSpellClause{SpellKey: spell}}, nil
	case "subclass":
		var sub string
		if err := json.Unmarshal(value, &sub); err != nil {
			return nil, err
		}
		return []Clause{SubclassClause{SubclassKey: sub}}, nil
	case "feature":
		var feature string
		if err := json.Unmarshal(value, &feature); err != nil {
			return nil, err
		}
		return []Clause{FeatureClause{FeatureKey: feature}}, nil
	default:
		return []Clause{UnsupportedClause{Key: key, Raw: value}}, nil
	}
}

// MustParse is Parse for static catalog data
func MustParse(payload string) Expression {
	expr, err := Parse([]byte(payload))
	if err != nil {
		panic(err)
	}
	return expr
}
