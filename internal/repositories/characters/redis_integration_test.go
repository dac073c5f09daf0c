//go:build integration
// +build integration

package characters_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/catalog"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/levelup"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-levelup/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := characters.NewRedisRepository(&characters.RedisRepoConfig{
		Client:    client,
		KeyPrefix: "it-character",
	})
	ctx := context.Background()

	t.Run("create and retrieve", func(t *testing.T) {
		snap := testutils.CreateTestWarlock("w1", 4, "pact-of-the-blade", "agonizing-blast", "devils-sight")
		require.NoError(t, repo.Create(ctx, snap))

		got, err := repo.GetSnapshot(ctx, "w1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Version)
		assert.Equal(t, []string{"agonizing-blast", "devils-sight"}, got.HeldOptions("eldritch-invocations"))
		assert.Equal(t, snap.BaseScores, got.BaseScores)
		assert.Len(t, got.BonusSources, 1)

		ids, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, "w1")
	})

	t.Run("commit a planned level-up", func(t *testing.T) {
		static := catalog.NewStatic(nil)
		planner := levelup.NewPlanner(&levelup.PlannerConfig{Catalog: static})
		committer := levelup.NewCommitter(&levelup.CommitterConfig{Catalog: static})

		require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter("f1", 3, "champion")))
		snap, err := repo.GetSnapshot(ctx, "f1")
		require.NoError(t, err)

		steps, err := planner.Plan("fighter", 4, snap)
		require.NoError(t, err)
		session := levelup.NewSession("f1", "fighter", 4, steps)
		require.NoError(t, session.Answer(levelup.Answer{
			StepID:           "select_ability_or_feat",
			AbilityIncreases: map[shared.Attribute]int{shared.AttributeStrength: 2},
		}))
		tx, err := session.Transaction("tx-f1-4")
		require.NoError(t, err)

		result, err := committer.Commit(tx, snap)
		require.NoError(t, err)

		updated, err := repo.ApplyWrites(ctx, "f1", snap.Version, tx.ID, result.Writes)
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated.Version)
		assert.Equal(t, 4, updated.ClassLevel("fighter"))

		stored, err := repo.GetSnapshot(ctx, "f1")
		require.NoError(t, err)
		assert.Equal(t, result.Preview.MaxHP, stored.MaxHP)
		scores, err := stored.Scores()
		require.NoError(t, err)
		assert.Equal(t, 18, scores[shared.AttributeStrength])

		_, err = repo.ApplyWrites(ctx, "f1", stored.Version, tx.ID, result.Writes)
		assert.Equal(t, dnderr.ReasonAlreadyApplied, dnderr.GetReason(err))
	})

	t.Run("concurrent commits on one character", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter("f2", 3, "champion")))

		const writers = 2
		var wg sync.WaitGroup
		errs := make([]error, writers)
		start := make(chan struct{})
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				txID := fmt.Sprintf("tx-f2-%d", i)
				_, errs[i] = repo.ApplyWrites(ctx, "f2", 1, txID, hpBatch(txID, 8))
			}(i)
		}
		close(start)
		wg.Wait()

		applied := 0
		for _, err := range errs {
			if err == nil {
				applied++
				continue
			}
			assert.True(t, dnderr.IsPersistence(err))
			assert.Equal(t, dnderr.ReasonVersionConflict, dnderr.GetReason(err))
		}
		assert.Equal(t, 1, applied)

		got, err := repo.GetSnapshot(ctx, "f2")
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Version)
		assert.Equal(t, 34, got.MaxHP)
		assert.Len(t, got.AppliedTransactions, 1)
	})

	t.Run("missing character", func(t *testing.T) {
		_, err := repo.ApplyWrites(ctx, "ghost", 1, "tx-1", hpBatch("tx-1", 1))
		assert.True(t, dnderr.IsNotFound(err))
	})
}
