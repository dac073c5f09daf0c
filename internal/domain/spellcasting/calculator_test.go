package spellcasting_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-levelup/internal/catalog"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/spellcasting"
)

type CalculatorTestSuite struct {
	suite.Suite
	calc *spellcasting.Calculator
}

func (s *CalculatorTestSuite) SetupTest() {
	s.calc = spellcasting.NewCalculator(&spellcasting.CalculatorConfig{
		Classes: catalog.NewStatic(nil),
	})
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}

func (s *CalculatorTestSuite) TestScenarioCClericPrepared() {
	lines, err := s.calc.CountsFor(
		[]character.ClassEntry{{ClassKey: "cleric", Level: 5, SubclassKey: "life"}},
		shared.AbilityScores{shared.AttributeWisdom: 16},
	)
	s.Require().NoError(err)
	s.Require().Len(lines, 1)

	line := lines[0]
	s.Equal("class:cleric:prepared:5", line.Key)
	s.Equal(4, line.Cantrips)
	s.Equal(rulebook.KnownPrepared, line.Spells.Kind)
	s.Equal(8, line.Spells.Value)
	s.Equal("floor(5/1) + 3", line.Spells.Formula)
}

func (s *CalculatorTestSuite) TestPreparedMinimumAndMinLevel() {
	scores := shared.AbilityScores{shared.AttributeCharisma: 6}

	lines, err := s.calc.CountsFor([]character.ClassEntry{{ClassKey: "paladin", Level: 1}}, scores)
	s.Require().NoError(err)
	s.Equal(0, lines[0].Spells.Value)

	lines, err = s.calc.CountsFor([]character.ClassEntry{{ClassKey: "paladin", Level: 3}}, scores)
	s.Require().NoError(err)
	s.Equal(1, lines[0].Spells.Value)
}

func (s *CalculatorTestSuite) TestFixedKnownUsesOwnClassLevel() {
	lines, err := s.calc.CountsFor([]character.ClassEntry{
		{ClassKey: "fighter", Level: 5},
		{ClassKey: "bard", Level: 3, SubclassKey: "lore"},
		{ClassKey: "warlock", Level: 2},
	}, shared.AbilityScores{})
	s.Require().NoError(err)
	s.Require().Len(lines, 2)

	s.Equal("class:bard:3", lines[0].Key)
	s.Equal(2, lines[0].Cantrips)
	s.Equal(6, lines[0].Spells.Value)
	s.Equal("class:warlock:2", lines[1].Key)
	s.Equal(3, lines[1].Spells.Value)
}

func (s *CalculatorTestSuite) TestThirdCasterOnlyWithSubclass() {
	lines, err := s.calc.CountsFor([]character.ClassEntry{{ClassKey: "fighter", Level: 7}}, nil)
	s.Require().NoError(err)
	s.Empty(lines)

	lines, err = s.calc.CountsFor([]character.ClassEntry{{ClassKey: "fighter", Level: 7, SubclassKey: "eldritch-knight"}}, nil)
	s.Require().NoError(err)
	s.Require().Len(lines, 1)
	s.Equal("subclass:eldritch-knight:7", lines[0].Key)
	s.Equal(2, lines[0].Cantrips)
	s.Equal(5, lines[0].Spells.Value)
}

func (s *CalculatorTestSuite) TestLinesAreDeduplicatedAndStable() {
	entries := []character.ClassEntry{
		{ClassKey: "wizard", Level: 4, SubclassKey: "evocation"},
		{ClassKey: "wizard", Level: 4, SubclassKey: "evocation"},
	}
	scores := shared.AbilityScores{shared.AttributeIntelligence: 17}

	first, err := s.calc.CountsFor(entries, scores)
	s.Require().NoError(err)
	second, err := s.calc.CountsFor(entries, scores)
	s.Require().NoError(err)

	s.Len(first, 1)
	s.Equal(first, second)
	s.Equal(7, first[0].Spells.Value)
	s.Equal(12, first[0].Spellbook)
}

func (s *CalculatorTestSuite) TestSingleClassSlots() {
	table, err := s.calc.Slots([]character.ClassEntry{{ClassKey: "paladin", Level: 5}})
	s.Require().NoError(err)
	s.Equal(3, table.CasterLevel)
	s.Equal([]int{4, 2}, table.Slots)

	table, err = s.calc.Slots([]character.ClassEntry{{ClassKey: "fighter", Level: 3, SubclassKey: "eldritch-knight"}})
	s.Require().NoError(err)
	s.Equal(1, table.CasterLevel)
	s.Equal([]int{2}, table.Slots)

	table, err = s.calc.Slots([]character.ClassEntry{{ClassKey: "artificer", Level: 1}})
	s.Require().NoError(err)
	s.Equal([]int{2}, table.Slots)
}

func (s *CalculatorTestSuite) TestMulticlassSlotsAndPact() {
	table, err := s.calc.Slots([]character.ClassEntry{
		{ClassKey: "wizard", Level: 3},
		{ClassKey: "paladin", Level: 5},
		{ClassKey: "fighter", Level: 4, SubclassKey: "eldritch-knight"},
		{ClassKey: "warlock", Level: 3},
	})
	s.Require().NoError(err)

	s.Equal(3+2+1, table.CasterLevel)
	s.Equal([]int{4, 3, 3}, table.Slots)
	s.Equal(3, table.PactLevel)
	s.Equal(character.PactSlots{Count: 2, SlotLevel: 2}, table.Pact)
}

func (s *CalculatorTestSuite) TestNonCasterHasNoSlots() {
	table, err := s.calc.Slots([]character.ClassEntry{{ClassKey: "barbarian", Level: 20}})
	s.Require().NoError(err)
	s.Zero(table.CasterLevel)
	s.Empty(table.Slots)

	has, err := s.calc.HasSpellcasting([]character.ClassEntry{{ClassKey: "barbarian", Level: 20}})
	s.Require().NoError(err)
	s.False(has)

	has, err = s.calc.HasSpellcasting([]character.ClassEntry{{ClassKey: "ranger", Level: 2}})
	s.Require().NoError(err)
	s.True(has)
}
