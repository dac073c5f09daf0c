package testutils

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/bonus"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// CreateTestScores returns a standard array spread starting with STR
func CreateTestScores() shared.AbilityScores {
	return shared.AbilityScores{
		shared.AttributeStrength:     15,
		shared.AttributeDexterity:    14,
		shared.AttributeConstitution: 13,
		shared.AttributeIntelligence: 12,
		shared.AttributeWisdom:       10,
		shared.AttributeCharisma:     8,
	}
}

// CreateTestSnapshot creates a human with no class levels
func CreateTestSnapshot(id, name string) *character.Snapshot {
	return &character.Snapshot{
		ID:         id,
		Name:       name,
		Version:    1,
		Race:       "human",
		BaseScores: CreateTestScores(),
		BonusSources: []bonus.Source{
			bonus.FixedSource(bonus.LabelRace, "human", map[shared.Attribute]int{
				shared.AttributeStrength:     1,
				shared.AttributeDexterity:    1,
				shared.AttributeConstitution: 1,
				shared.AttributeIntelligence: 1,
				shared.AttributeWisdom:       1,
				shared.AttributeCharisma:     1,
			}),
		},
		Choices: map[string][]string{},
		Spells:  &character.SpellList{},
	}
}

// CreateTestFighter creates a fighter of the given level holding the Defense style.
// An empty subclass leaves the archetype unchosen.
func CreateTestFighter(id string, level int, subclass string) *character.Snapshot {
	s := CreateTestSnapshot(id, "Test Fighter")
	s.Classes = []character.ClassEntry{{ClassKey: "fighter", Level: level, SubclassKey: subclass}}
	s.Features = []character.FeatureGrant{
		{FeatureKey: "fighting-style", Source: "fighter", Count: 1},
		{FeatureKey: "second-wind", Source: "fighter", Count: 1, Uses: &character.UseCounter{Max: 1}},
		{FeatureKey: "fighting-style-defense", Source: "fighter-fighting-style", Count: 1},
	}
	s.Choices["fighter-fighting-style"] = []string{"defense"}
	s.MaxHP = 12 + (level-1)*7
	return s
}

// CreateTestWarlock creates a fiend warlock knowing eldritch blast and the
// given invocations
func CreateTestWarlock(id string, level int, pact string, invocations ...string) *character.Snapshot {
	s := CreateTestSnapshot(id, "Test Warlock")
	s.BaseScores[shared.AttributeCharisma] = 15
	s.Classes = []character.ClassEntry{{ClassKey: "warlock", Level: level, SubclassKey: "fiend"}}
	s.Spells = &character.SpellList{
		Cantrips:    []string{"eldritch-blast", "minor-illusion"},
		KnownSpells: []string{"hex", "hellish-rebuke"},
	}
	if pact != "" {
		s.Choices["pact-boon"] = []string{pact}
	}
	if len(invocations) > 0 {
		s.Choices["eldritch-invocations"] = invocations
	}
	s.MaxHP = 9 + (level-1)*6
	return s
}

// CreateTestASI is an ability score improvement source as the committer writes it
func CreateTestASI(entity string, ability shared.Attribute, amount int) bonus.Source {
	return bonus.FixedSource(bonus.LabelASI, entity, map[shared.Attribute]int{ability: amount})
}
