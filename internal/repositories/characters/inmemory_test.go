package characters_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-levelup/internal/testutils"
)

func hpBatch(txID string, amount int) []character.WriteOp {
	return []character.WriteOp{
		character.IncreaseMaxHP(amount),
		character.RecordTransaction(txID),
	}
}

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		snap := testutils.CreateTestFighter("c1", 3, "champion")
		snap.Version = 42

		require.NoError(t, repo.Create(ctx, snap))

		got, err := repo.GetSnapshot(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Version)
		assert.Equal(t, snap.MaxHP, got.MaxHP)

		got.MaxHP = 1
		again, err := repo.GetSnapshot(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, snap.MaxHP, again.MaxHP, "reads are copies")
	})

	t.Run("create twice", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter("c1", 1, "")))

		err := repo.Create(ctx, testutils.CreateTestFighter("c1", 1, ""))
		assert.True(t, dnderr.IsAlreadyExists(err))
	})

	t.Run("unknown character", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()

		_, err := repo.GetSnapshot(ctx, "nope")
		assert.True(t, dnderr.IsNotFound(err))

		_, err = repo.ApplyWrites(ctx, "nope", 1, "tx-1", nil)
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("list is sorted", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		for _, id := range []string{"b", "c", "a"} {
			require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter(id, 1, "")))
		}

		ids, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, ids)
	})

	t.Run("apply bumps version", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter("c1", 3, "champion")))

		updated, err := repo.ApplyWrites(ctx, "c1", 1, "tx-1", hpBatch("tx-1", 8))
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated.Version)
		assert.Equal(t, 34, updated.MaxHP)
		assert.True(t, updated.HasTransaction("tx-1"))
	})

	t.Run("stale version", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter("c1", 3, "champion")))
		_, err := repo.ApplyWrites(ctx, "c1", 1, "tx-1", hpBatch("tx-1", 8))
		require.NoError(t, err)

		_, err = repo.ApplyWrites(ctx, "c1", 1, "tx-2", hpBatch("tx-2", 8))
		assert.True(t, dnderr.IsPersistence(err))
		assert.Equal(t, dnderr.ReasonVersionConflict, dnderr.GetReason(err))
	})

	t.Run("replayed transaction", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter("c1", 3, "champion")))
		_, err := repo.ApplyWrites(ctx, "c1", 1, "tx-1", hpBatch("tx-1", 8))
		require.NoError(t, err)

		_, err = repo.ApplyWrites(ctx, "c1", 2, "tx-1", hpBatch("tx-1", 8))
		assert.Equal(t, dnderr.ReasonAlreadyApplied, dnderr.GetReason(err))
	})

	t.Run("failed batch leaves nothing behind", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter("c1", 3, "champion")))

		ops := []character.WriteOp{
			character.IncreaseMaxHP(8),
			character.RemoveChoice("maneuvers", "riposte"),
			character.RecordTransaction("tx-1"),
		}
		_, err := repo.ApplyWrites(ctx, "c1", 1, "tx-1", ops)
		require.Error(t, err)
		assert.True(t, dnderr.IsPersistence(err))
		assert.Equal(t, dnderr.ReasonWriteFailed, dnderr.GetReason(err))

		got, err := repo.GetSnapshot(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Version)
		assert.Equal(t, 26, got.MaxHP)
		assert.False(t, got.HasTransaction("tx-1"))
	})
}

func TestInMemoryRepositoryConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	require.NoError(t, repo.Create(ctx, testutils.CreateTestFighter("c1", 3, "champion")))

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			txID := fmt.Sprintf("tx-%d", i)
			_, errs[i] = repo.ApplyWrites(ctx, "c1", 1, txID, hpBatch(txID, 8))
		}(i)
	}
	wg.Wait()

	applied := 0
	for _, err := range errs {
		if err == nil {
			applied++
			continue
		}
		assert.Equal(t, dnderr.ReasonVersionConflict, dnderr.GetReason(err))
	}
	assert.Equal(t, 1, applied)

	got, err := repo.GetSnapshot(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, 34, got.MaxHP)
}
