package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-levelup/internal/catalog"
	mockdnd5e "github.com/KirkDiggler/dnd-levelup/internal/clients/dnd5e/mock"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/choicepool"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

type StaticTestSuite struct {
	suite.Suite
	catalog *catalog.Static
}

func (s *StaticTestSuite) SetupTest() {
	s.catalog = catalog.NewStatic(nil)
}

func TestStaticSuite(t *testing.T) {
	suite.Run(t, new(StaticTestSuite))
}

func (s *StaticTestSuite) TestEveryPoolQuotaIsMonotonic() {
	for _, pool := range s.catalog.ListChoicePools() {
		for level := 0; level < 20; level++ {
			s.GreaterOrEqual(choicepool.QuotaAt(pool, level+1), choicepool.QuotaAt(pool, level),
				"pool %s level %d", pool.Key, level)
		}
	}
}

func (s *StaticTestSuite) TestScenarioAManeuverQuota() {
	pool, err := s.catalog.GetChoicePool(catalog.PoolManeuvers)
	s.Require().NoError(err)

	s.Equal(3, choicepool.QuotaAt(pool, 3))
	s.Equal(3, choicepool.QuotaAt(pool, 5))
	s.Equal(5, choicepool.QuotaAt(pool, 7))
}

func (s *StaticTestSuite) TestSubclassesAreLinked() {
	fighter, err := s.catalog.GetClass("fighter")
	s.Require().NoError(err)

	s.True(fighter.HasSubclass("battle-master"))
	s.True(fighter.HasSubclass("eldritch-knight"))
	s.False(fighter.HasSubclass("evocation"))

	for _, key := range s.catalog.ListClasses() {
		class, err := s.catalog.GetClass(key)
		s.Require().NoError(err)
		s.NotEmpty(class.Subclasses, "class %s", key)
	}
}

func (s *StaticTestSuite) TestTablesCoverTwentyLevels() {
	for _, key := range s.catalog.ListClasses() {
		table, err := s.catalog.GetSpellTable(key)
		s.Require().NoError(err)
		if table == nil {
			continue
		}
		s.Len(table.Cantrips, 20, "class %s", key)
		if table.Known == rulebook.KnownFixed {
			s.Len(table.SpellsKnown, 20, "class %s", key)
		}
	}
}

func (s *StaticTestSuite) TestPoolsByOwner() {
	pools, err := s.catalog.GetChoicePools("warlock")
	s.Require().NoError(err)
	s.Len(pools, 2)

	pools, err = s.catalog.GetChoicePools("champion")
	s.Require().NoError(err)
	s.Empty(pools)

	_, err = s.catalog.GetChoicePools("necromancer")
	s.True(dnderr.IsNotFound(err))
}

func (s *StaticTestSuite) TestNotFound() {
	_, err := s.catalog.GetClass("blood-hunter")
	s.True(dnderr.IsNotFound(err))

	_, err = s.catalog.GetFeat("nope")
	s.True(dnderr.IsNotFound(err))

	_, err = s.catalog.GetSpell("wish")
	s.True(dnderr.IsNotFound(err))
}

func (s *StaticTestSuite) TestFeatsSortedAndParsed() {
	feats, err := s.catalog.ListFeats()
	s.Require().NoError(err)

	for i := 1; i < len(feats); i++ {
		s.Less(feats[i-1].Key, feats[i].Key)
	}

	grappler, err := s.catalog.GetFeat("grappler")
	s.Require().NoError(err)
	s.Len(grappler.Prerequisite.Clauses, 1)

	resilient, err := s.catalog.GetFeat("resilient")
	s.Require().NoError(err)
	s.True(resilient.AbilityBonus.NeedsPick())
}

type stubSource struct {
	features []*rulebook.Feature
	err      error
}

func (s *stubSource) ClassFeatures(string, int) ([]*rulebook.Feature, error) {
	return s.features, s.err
}

func (s *StaticTestSuite) TestFeatureSourceOverride() {
	remote := []*rulebook.Feature{{Key: "remote-feature", Level: 2}}
	c := catalog.NewStatic(&catalog.StaticConfig{FeatureSource: &stubSource{features: remote}})

	features, err := c.GetClassFeatures("fighter", 2)
	s.Require().NoError(err)
	s.Equal(remote, features)
}

func (s *StaticTestSuite) TestFeatureSourceFallsBackToStatic() {
	c := catalog.NewStatic(&catalog.StaticConfig{FeatureSource: &stubSource{err: errors.New("api down")}})

	features, err := c.GetClassFeatures("fighter", 2)
	s.Require().NoError(err)
	s.Require().Len(features, 1)
	s.Equal("action-surge", features[0].Key)
}

func (s *StaticTestSuite) TestSpellSourceBacksMissingSpells() {
	ctrl := gomock.NewController(s.T())
	client := mockdnd5e.NewMockClient(ctrl)
	c := catalog.NewStatic(&catalog.StaticConfig{SpellSource: client})

	wish := &rulebook.Spell{Key: "wish", Name: "Wish", Level: 9, Classes: []string{"sorcerer", "wizard"}}
	client.EXPECT().GetSpell("wish").Return(wish, nil).Times(1)

	for i := 0; i < 2; i++ {
		spell, err := c.GetSpell("wish")
		s.Require().NoError(err)
		s.Equal(wish, spell)
	}

	spell, err := c.GetSpell("hex")
	s.Require().NoError(err)
	s.Equal("Hex", spell.Name)
}

func (s *StaticTestSuite) TestSpellSourceFailureIsNotFound() {
	ctrl := gomock.NewController(s.T())
	client := mockdnd5e.NewMockClient(ctrl)
	c := catalog.NewStatic(&catalog.StaticConfig{SpellSource: client})

	client.EXPECT().GetSpell("made-up").Return(nil, errors.New("404 not found"))

	_, err := c.GetSpell("made-up")
	s.True(dnderr.IsNotFound(err), "got %v", err)
}

func (s *StaticTestSuite) TestOptionalFeatures() {
	ranger, err := s.catalog.GetOptionalFeatures("ranger")
	s.Require().NoError(err)

	byKey := make(map[string]*rulebook.OptionalFeature, len(ranger))
	for _, of := range ranger {
		s.Equal("ranger", of.ClassKey)
		s.Equal(of.Key, of.Feature.Key)
		byKey[of.Key] = of
	}
	s.Equal(catalog.FeatureNaturalExplorer, byKey[catalog.FeatureDeftExplorerCanny].Replaces)
	s.True(byKey["deft-explorer-roving"].OfferedAt(6))
	s.False(byKey["deft-explorer-roving"].OfferedAt(5))
	s.Len(byKey["deft-explorer-roving"].Prerequisite.Clauses, 1)

	paladin, err := s.catalog.GetOptionalFeatures("paladin")
	s.Require().NoError(err)
	s.Require().Len(paladin, 1)
	s.True(paladin[0].Feature.Stacking)

	fighter, err := s.catalog.GetOptionalFeatures("fighter")
	s.NoError(err)
	s.Empty(fighter)

	_, err = s.catalog.GetOptionalFeatures("gunslinger")
	s.True(dnderr.IsNotFound(err))
}
