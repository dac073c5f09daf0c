package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/dice"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

func TestRollStaysOnTheDie(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 200; i++ {
		result, err := roller.Roll(2, 10, 3)
		require.NoError(t, err)
		require.Len(t, result.Rolls, 2)

		for _, r := range result.Rolls {
			assert.GreaterOrEqual(t, r, 1)
			assert.LessOrEqual(t, r, 10)
		}
		assert.Equal(t, result.Rolls[0]+result.Rolls[1], result.RawTotal)
		assert.Equal(t, result.RawTotal+3, result.Total)
	}
}

func TestRollRejectsBadDice(t *testing.T) {
	tests := []struct {
		name  string
		count int
		sides int
	}{
		{name: "no dice", count: 0, sides: 6},
		{name: "no sides", count: 1, sides: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dice.Roll(tt.count, tt.sides, 0)
			assert.True(t, dnderr.IsInvalidArgument(err))
		})
	}
}

func TestRollResultString(t *testing.T) {
	result := &dice.RollResult{Count: 2, Sides: 6, Bonus: -1, Rolls: []int{4, 5}, RawTotal: 9, Total: 8}
	assert.Equal(t, "2d6-1 = 8 [4,5]", result.String())
}
