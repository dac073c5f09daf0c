package levelup_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-levelup/internal/catalog"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/levelup"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/testutils"
)

type PlannerTestSuite struct {
	suite.Suite
	planner *levelup.Planner
}

func (s *PlannerTestSuite) SetupTest() {
	s.planner = levelup.NewPlanner(&levelup.PlannerConfig{Catalog: catalog.NewStatic(nil)})
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerTestSuite))
}

func ids(steps []*levelup.DecisionStep) []string {
	out := make([]string, len(steps))
	for i, step := range steps {
		out[i] = step.ID
	}
	return out
}

func (s *PlannerTestSuite) TestSubclassLevelWithoutHint() {
	steps, err := s.planner.Plan("fighter", 3, testutils.CreateTestFighter("c1", 2, ""))
	s.Require().NoError(err)

	s.Equal([]string{"select_subclass"}, ids(steps))
	s.Contains(steps[0].Options, "battle-master")
	s.Contains(steps[0].Options, "eldritch-knight")
}

func (s *PlannerTestSuite) TestSubclassHintAddsPools() {
	steps, err := s.planner.Plan("fighter", 3, testutils.CreateTestFighter("c1", 2, ""),
		levelup.WithSubclass("battle-master"))
	s.Require().NoError(err)

	s.Equal([]string{"select_subclass", "select_from_pool:maneuvers"}, ids(steps))
	s.Equal(3, steps[1].PickCount)
	s.Equal("battle-master", steps[1].OwnerKey)
	s.Len(steps[1].Options, 16)
}

func (s *PlannerTestSuite) TestSubclassHintAddsSpells() {
	steps, err := s.planner.Plan("fighter", 3, testutils.CreateTestFighter("c1", 2, ""),
		levelup.WithSubclass("eldritch-knight"))
	s.Require().NoError(err)

	s.Equal([]string{
		"select_subclass",
		"learn_spells:eldritch-knight:cantrips",
		"learn_spells:eldritch-knight:spells",
	}, ids(steps))
	s.Equal(2, steps[1].SpellCount)
	s.Equal(0, steps[1].LevelCap)
	s.Equal(3, steps[2].SpellCount)
	s.Equal(1, steps[2].LevelCap)
	s.Equal("wizard", steps[2].SpellList)
}

func (s *PlannerTestSuite) TestForeignSubclassHintIgnored() {
	steps, err := s.planner.Plan("fighter", 3, testutils.CreateTestFighter("c1", 2, ""),
		levelup.WithSubclass("evocation"))
	s.Require().NoError(err)
	s.Equal([]string{"select_subclass"}, ids(steps))
}

func (s *PlannerTestSuite) TestASILevelWithOptionalSwap() {
	steps, err := s.planner.Plan("fighter", 4, testutils.CreateTestFighter("c1", 3, "battle-master"))
	s.Require().NoError(err)

	s.Equal([]string{"select_ability_or_feat", "replace_choice:fighter-fighting-style"}, ids(steps))
	s.False(steps[0].Optional)
	s.True(steps[1].Optional)
	s.NotContains(steps[1].Options, "defense")
}

func (s *PlannerTestSuite) TestEmptyPlanIsValid() {
	steps, err := s.planner.Plan("fighter", 5, testutils.CreateTestFighter("c1", 4, "champion"))
	s.Require().NoError(err)
	s.Empty(steps)
}

func (s *PlannerTestSuite) TestWarlockLevelFive() {
	snap := testutils.CreateTestWarlock("c1", 4, "pact-of-the-blade", "agonizing-blast", "devils-sight")

	steps, err := s.planner.Plan("warlock", 5, snap)
	s.Require().NoError(err)

	s.Equal([]string{
		"select_from_pool:eldritch-invocations",
		"learn_spells:warlock:spells",
		"replace_choice:eldritch-invocations",
	}, ids(steps))
	s.Equal(1, steps[0].PickCount)
	s.Equal(1, steps[1].SpellCount)
	s.Equal(3, steps[1].LevelCap)
}

func (s *PlannerTestSuite) TestWizardSpellbookAndCantrip() {
	snap := testutils.CreateTestSnapshot("c1", "Test Wizard")
	snap.Classes = []character.ClassEntry{{ClassKey: "wizard", Level: 3, SubclassKey: "evocation"}}

	steps, err := s.planner.Plan("wizard", 4, snap)
	s.Require().NoError(err)

	s.Equal([]string{
		"select_ability_or_feat",
		"learn_spells:wizard:cantrips",
		"learn_spells:wizard:spellbook",
	}, ids(steps))
	s.Equal(1, steps[1].SpellCount)
	s.Equal(2, steps[2].SpellCount)
	s.Equal(2, steps[2].LevelCap)
}

func (s *PlannerTestSuite) TestFirstWizardLevelFillsSpellbook() {
	snap := testutils.CreateTestFighter("c1", 2, "")

	steps, err := s.planner.Plan("wizard", 3, snap)
	s.Require().NoError(err)

	s.Equal([]string{"learn_spells:wizard:cantrips", "learn_spells:wizard:spellbook"}, ids(steps))
	s.Equal(3, steps[0].SpellCount)
	s.Equal(6, steps[1].SpellCount)
	s.Equal(1, steps[1].LevelCap)
}

func (s *PlannerTestSuite) TestStaleTargetLevel() {
	_, err := s.planner.Plan("fighter", 7, testutils.CreateTestFighter("c1", 4, "champion"))

	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
	s.Equal(dnderr.ReasonStaleSnapshot, dnderr.GetReason(err))
}

func (s *PlannerTestSuite) TestUnknownClass() {
	_, err := s.planner.Plan("blood-hunter", 5, testutils.CreateTestFighter("c1", 4, "champion"))
	s.True(dnderr.IsNotFound(err))
}

func (s *PlannerTestSuite) TestLevelTwentyIsTheEnd() {
	_, err := s.planner.Plan("fighter", 21, testutils.CreateTestFighter("c1", 20, "champion"))
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *PlannerTestSuite) TestPlanIsDeterministic() {
	snap := testutils.CreateTestWarlock("c1", 4, "pact-of-the-tome", "agonizing-blast", "devils-sight")

	first, err := s.planner.Plan("warlock", 5, snap)
	s.Require().NoError(err)
	second, err := s.planner.Plan("warlock", 5, snap)
	s.Require().NoError(err)

	s.Equal(first, second)
}

// monk creates a four elements monk holding two disciplines and the given features
func monk(level int, features ...string) *character.Snapshot {
	snap := testutils.CreateTestSnapshot("c1", "Test Monk")
	snap.Classes = []character.ClassEntry{{ClassKey: "monk", Level: level, SubclassKey: "four-elements"}}
	snap.Choices[catalog.PoolElementalDisciplines] = []string{"water-whip", "fist-of-unbroken-air"}
	for _, key := range features {
		snap.Features = append(snap.Features, character.FeatureGrant{FeatureKey: key, Source: key, Count: 1})
	}
	return snap
}

func (s *PlannerTestSuite) TestOptionalFeatureFollowsReplacements() {
	steps, err := s.planner.Plan("monk", 4, monk(3))
	s.Require().NoError(err)

	s.Equal([]string{
		"select_ability_or_feat",
		"replace_choice:elemental-disciplines",
		"choose_optional_feature",
	}, ids(steps))
	s.True(steps[2].Optional)
	s.Equal("monk", steps[2].OwnerKey)
	s.Equal([]string{"quickened-healing"}, steps[2].Options)
}

func (s *PlannerTestSuite) TestHeldOptionalFeatureNotOfferedAgain() {
	steps, err := s.planner.Plan("monk", 4, monk(3, "quickened-healing"))
	s.Require().NoError(err)
	s.NotContains(ids(steps), "choose_optional_feature")
}

func (s *PlannerTestSuite) TestStackingOptionalFeatureOfferedAgain() {
	snap := testutils.CreateTestSnapshot("c1", "Test Barbarian")
	snap.Classes = []character.ClassEntry{{ClassKey: "barbarian", Level: 9, SubclassKey: "berserker"}}
	snap.Features = []character.FeatureGrant{{FeatureKey: "primal-knowledge", Source: "primal-knowledge", Count: 1, Stacking: true}}

	steps, err := s.planner.Plan("barbarian", 10, snap)
	s.Require().NoError(err)

	s.Equal([]string{"choose_optional_feature"}, ids(steps))
	s.Equal([]string{"primal-knowledge"}, steps[0].Options)
}

func (s *PlannerTestSuite) TestGatedOptionalFeatureStillListed() {
	snap := testutils.CreateTestSnapshot("c1", "Test Ranger")
	snap.Classes = []character.ClassEntry{{ClassKey: "ranger", Level: 5, SubclassKey: "hunter"}}

	steps, err := s.planner.Plan("ranger", 6, snap)
	s.Require().NoError(err)

	s.Equal([]string{"choose_optional_feature"}, ids(steps))
	s.Equal([]string{"deft-explorer-roving"}, steps[0].Options)
}
