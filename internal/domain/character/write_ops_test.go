package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/bonus"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

func fighter() *character.Snapshot {
	return &character.Snapshot{
		ID:      "char-1",
		Version: 3,
		Race:    "human",
		Classes: []character.ClassEntry{{ClassKey: "fighter", Level: 2}},
		BaseScores: shared.AbilityScores{
			shared.AttributeStrength:     15,
			shared.AttributeConstitution: 14,
		},
		Features: []character.FeatureGrant{{FeatureKey: "second-wind", Source: "fighter", Count: 1}},
		Choices:  map[string][]string{"fighter-fighting-style": {"defense"}},
		MaxHP:    20,
	}
}

func TestGrantIsIdempotent(t *testing.T) {
	ops := []character.WriteOp{
		character.GrantFeature(character.FeatureGrant{FeatureKey: "action-surge", Source: "fighter"}),
		character.GrantFeature(character.FeatureGrant{FeatureKey: "action-surge", Source: "fighter"}),
		character.GrantFeature(character.FeatureGrant{FeatureKey: "second-wind", Source: "fighter"}),
	}

	out, err := character.ApplyWrites(fighter(), ops)
	require.NoError(t, err)

	count := 0
	for _, f := range out.Features {
		if f.FeatureKey == "action-surge" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, out.Features, 2)
}

func TestStackingGrantCounts(t *testing.T) {
	grant := character.FeatureGrant{FeatureKey: "extra-attack", Source: "fighter", Stacking: true}

	out, err := character.ApplyWrites(fighter(), []character.WriteOp{
		character.GrantFeature(grant),
		character.GrantFeature(grant),
	})
	require.NoError(t, err)

	g, ok := out.Feature("extra-attack")
	require.True(t, ok)
	assert.Equal(t, 2, g.Count)
}

func TestApplyWritesDoesNotMutateInput(t *testing.T) {
	in := fighter()
	ops := []character.WriteOp{
		character.SetClassLevel("fighter", 3),
		character.AssignSubclass("fighter", "champion"),
		character.AddChoice("fighter-fighting-style", "archery"),
		character.AddAbilityBonus(bonus.FixedSource(bonus.LabelASI, "fighter-4", map[shared.Attribute]int{shared.AttributeStrength: 2})),
		character.LearnSpell("fire-bolt", true),
		character.IncreaseMaxHP(8),
		character.AddFeat("tough"),
		character.SetSpellSlots([]int{2}, character.PactSlots{}),
		character.RecordTransaction("tx-1"),
	}

	out, err := character.ApplyWrites(in, ops)
	require.NoError(t, err)

	assert.Equal(t, 2, in.ClassLevel("fighter"))
	assert.Equal(t, 3, out.ClassLevel("fighter"))
	assert.Equal(t, "champion", out.SubclassOf("fighter"))
	assert.Equal(t, []string{"defense"}, in.Choices["fighter-fighting-style"])
	assert.Equal(t, []string{"defense", "archery"}, out.Choices["fighter-fighting-style"])
	assert.Empty(t, in.BonusSources)
	assert.True(t, out.KnowsSpell("fire-bolt"))
	assert.Equal(t, 28, out.MaxHP)
	assert.True(t, out.HasFeat("tough"))
	assert.Equal(t, []int{2}, out.SpellSlots)
	assert.True(t, out.HasTransaction("tx-1"))
	assert.Equal(t, in.Version, out.Version)

	scores, err := out.Scores()
	require.NoError(t, err)
	assert.Equal(t, 17, scores[shared.AttributeStrength])
}

func TestRemoveThenAddKeepsPoolSize(t *testing.T) {
	out, err := character.ApplyWrites(fighter(), []character.WriteOp{
		character.RemoveChoice("fighter-fighting-style", "defense"),
		character.AddChoice("fighter-fighting-style", "dueling"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"dueling"}, out.Choices["fighter-fighting-style"])
}

func TestFailingOpDiscardsBatch(t *testing.T) {
	in := fighter()

	out, err := character.ApplyWrites(in, []character.WriteOp{
		character.SetClassLevel("fighter", 3),
		character.RemoveChoice("fighter-fighting-style", "archery"),
	})

	assert.Nil(t, out)
	assert.True(t, dnderr.IsValidation(err))
	assert.Equal(t, 1, dnderr.GetMeta(err)["op"])
	assert.Equal(t, 2, in.ClassLevel("fighter"))
}

func TestReplayedTransactionIsAlreadyApplied(t *testing.T) {
	in := fighter()
	in.AppliedTransactions = []string{"tx-1"}

	_, err := character.ApplyWrites(in, []character.WriteOp{character.RecordTransaction("tx-1")})

	assert.True(t, dnderr.IsPersistence(err))
	assert.Equal(t, dnderr.ReasonAlreadyApplied, dnderr.GetReason(err))
}

func TestAssignDifferentSubclassFails(t *testing.T) {
	in := fighter()
	in.Classes[0].SubclassKey = "champion"

	_, err := character.ApplyWrites(in, []character.WriteOp{character.AssignSubclass("fighter", "battle-master")})

	assert.Equal(t, dnderr.ReasonSubclassMismatch, dnderr.GetReason(err))
}

func TestRevokeFeature(t *testing.T) {
	out, err := character.ApplyWrites(fighter(), []character.WriteOp{character.RevokeFeature("second-wind")})
	require.NoError(t, err)
	assert.False(t, out.HasFeature("second-wind"))

	_, err = character.ApplyWrites(fighter(), []character.WriteOp{character.RevokeFeature("rage")})
	assert.True(t, dnderr.IsNotFound(err))
}
