package prerequisite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/prerequisite"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

func warlock(level int) *prerequisite.Subject {
	return &prerequisite.Subject{
		Level: level,
		Scores: shared.AbilityScores{
			shared.AttributeStrength: 10,
			shared.AttributeCharisma: 16,
		},
		Pact:            "pact-of-the-tome",
		HasSpellcasting: true,
		Race:            "elf",
		Subrace:         "high-elf",
		HeldOptions:     map[string]bool{"agonizing-blast": true},
		KnownSpells:     map[string]bool{"eldritch-blast": true},
		Subclasses:      map[string]bool{"fiend": true},
		Features:        map[string]bool{"pact-boon": true},
	}
}

func TestEmptyExpressionIsSatisfied(t *testing.T) {
	result := prerequisite.Evaluate(prerequisite.Expression{}, nil)

	assert.True(t, result.Satisfied)
	assert.Empty(t, result.Reasons)
}

func TestEveryFailingClauseIsReported(t *testing.T) {
	expr := prerequisite.All(
		prerequisite.LevelClause{Min: 15},
		prerequisite.PactClause{Pact: "pact-of-the-blade"},
		prerequisite.AbilityClause{Ability: shared.AttributeStrength, Min: 13},
		prerequisite.SpellcastingClause{},
	)

	result := prerequisite.Evaluate(expr, warlock(5))

	assert.False(t, result.Satisfied)
	assert.Equal(t, []string{
		"requires level 15 (have 5)",
		"requires pact-of-the-blade",
		"requires STR 13 (have 10)",
	}, result.Reasons)
}

func TestSatisfiedClauses(t *testing.T) {
	expr := prerequisite.All(
		prerequisite.LevelClause{Min: 5},
		prerequisite.PactClause{Pact: "pact-of-the-tome"},
		prerequisite.AbilityClause{Ability: shared.AttributeCharisma, Min: 13},
		prerequisite.SpellcastingClause{},
		prerequisite.RaceClause{Races: []string{"dwarf", "high-elf"}},
		prerequisite.OptionHeldClause{OptionKey: "agonizing-blast"},
		prerequisite.KnownSpellClause{SpellKey: "eldritch-blast"},
		prerequisite.SubclassClause{SubclassKey: "fiend"},
		prerequisite.FeatureClause{FeatureKey: "pact-boon"},
	)

	result := prerequisite.Evaluate(expr, warlock(5))

	assert.True(t, result.Satisfied)
	assert.Empty(t, result.Reasons)
}

func TestUnsupportedClauseSatisfiesWithWarning(t *testing.T) {
	expr := prerequisite.All(prerequisite.UnsupportedClause{Key: "proficiency"})

	result := prerequisite.Evaluate(expr, warlock(1))

	assert.True(t, result.Satisfied)
	assert.Len(t, result.Warnings, 1)
}

func TestParse(t *testing.T) {
	expr, err := prerequisite.Parse([]byte(`{
		"level": 5,
		"pact": "pact-of-the-chain",
		"abilityScore": {"STR": 13, "DEX": 13},
		"spellcasting": true,
		"raceRestriction": ["dwarf"],
		"proficiency": "heavy-armor"
	}`))
	require.NoError(t, err)

	assert.Equal(t, []prerequisite.Clause{
		prerequisite.AbilityClause{Ability: shared.AttributeDexterity, Min: 13},
		prerequisite.AbilityClause{Ability: shared.AttributeStrength, Min: 13},
		prerequisite.LevelClause{Min: 5},
		prerequisite.PactClause{Pact: "pact-of-the-chain"},
		prerequisite.UnsupportedClause{Key: "proficiency", Raw: []byte(`"heavy-armor"`)},
		prerequisite.RaceClause{Races: []string{"dwarf"}},
		prerequisite.SpellcastingClause{},
	}, expr.Clauses)
}

func TestParseEmptyAndInvalid(t *testing.T) {
	expr, err := prerequisite.Parse(nil)
	require.NoError(t, err)
	assert.True(t, expr.IsEmpty())

	expr, err = prerequisite.Parse([]byte(`{"spellcasting": false}`))
	require.NoError(t, err)
	assert.True(t, expr.IsEmpty())

	_, err = prerequisite.Parse([]byte(`{"abilityScore": {"Luck": 3}}`))
	assert.Error(t, err)

	_, err = prerequisite.Parse([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestSubclassAndFeatureClauses(t *testing.T) {
	expr, err := prerequisite.Parse([]byte(`{"subclass": "battle-master", "feature": "natural-explorer"}`))
	require.NoError(t, err)
	assert.Equal(t, []prerequisite.Clause{
		prerequisite.FeatureClause{FeatureKey: "natural-explorer"},
		prerequisite.SubclassClause{SubclassKey: "battle-master"},
	}, expr.Clauses)

	result := prerequisite.Evaluate(expr, warlock(5))
	assert.Equal(t, []string{
		"requires the natural-explorer feature",
		"requires the battle-master subclass",
	}, result.Reasons)
}
