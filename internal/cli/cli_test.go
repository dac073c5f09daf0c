package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-levelup/internal/cli"
	"github.com/KirkDiggler/dnd-levelup/internal/config"
	"github.com/KirkDiggler/dnd-levelup/internal/dice"
	mockdice "github.com/KirkDiggler/dnd-levelup/internal/dice/mock"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/bonus"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	domain "github.com/KirkDiggler/dnd-levelup/internal/domain/levelup"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-levelup/internal/services"
	mocklevelup "github.com/KirkDiggler/dnd-levelup/internal/services/levelup/mock"
	"github.com/KirkDiggler/dnd-levelup/internal/testutils"
)

func writeJSON(t *testing.T, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func realProvider(t *testing.T) cli.ProviderFunc {
	return providerWithRoller(t, nil)
}

func providerWithRoller(t *testing.T, roller dice.Roller) cli.ProviderFunc {
	cfg := &config.Config{
		DND5E: config.DND5EConfig{Timeout: time.Second},
		Catalog: config.CatalogConfig{
			FeatureSource:  config.FeatureSourceStatic,
			RulesetVersion: "phb-2014",
		},
	}
	return func(ctx context.Context) (*services.Provider, error) {
		return services.NewProvider(ctx, &services.ProviderConfig{Config: cfg, Roller: roller})
	}
}

func run(t *testing.T, newProvider cli.ProviderFunc, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd(newProvider)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestPlanCommand(t *testing.T) {
	load := writeJSON(t, "characters.json", []*character.Snapshot{testutils.CreateTestFighter("f1", 3, "champion")})

	stdout, _, err := run(t, realProvider(t), "plan", "f1", "--load", load)
	require.NoError(t, err)

	assert.Contains(t, stdout, "f1: fighter to character level 4")
	assert.Contains(t, stdout, "select_ability_or_feat")
	assert.Contains(t, stdout, "replace_choice:fighter-fighting-style")
}

func TestPlanCommandJSON(t *testing.T) {
	load := writeJSON(t, "characters.json", []*character.Snapshot{testutils.CreateTestFighter("f1", 2, "")})

	stdout, _, err := run(t, realProvider(t), "plan", "f1", "--level", "3", "--subclass", "battle-master", "-o", "json", "--load", load)
	require.NoError(t, err)

	var output struct {
		ClassKey string
		Steps    []*domain.DecisionStep
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	assert.Equal(t, "fighter", output.ClassKey)
	require.Len(t, output.Steps, 2)
	assert.Equal(t, "select_from_pool:maneuvers", output.Steps[1].ID)
}

func TestCommitCommand(t *testing.T) {
	load := writeJSON(t, "characters.json", []*character.Snapshot{testutils.CreateTestFighter("f1", 3, "champion")})
	answers := writeJSON(t, "answers.json", []domain.Answer{{
		StepID:           "select_ability_or_feat",
		AbilityIncreases: map[shared.Attribute]int{shared.AttributeStrength: 2},
	}})

	stdout, _, err := run(t, realProvider(t), "commit", "f1", "--answers", answers, "--tx", "tx-1", "--load", load)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Committed f1: fighter level 4, max HP 34 (transaction tx-1, version 2)")
}

func TestCommitCommandRollsHitDie(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Roll(1, 10, 0).Return(&dice.RollResult{Count: 1, Sides: 10, Rolls: []int{9}, RawTotal: 9, Total: 9}, nil)

	load := writeJSON(t, "characters.json", []*character.Snapshot{testutils.CreateTestFighter("f1", 3, "champion")})
	answers := writeJSON(t, "answers.json", []domain.Answer{{
		StepID:           "select_ability_or_feat",
		AbilityIncreases: map[shared.Attribute]int{shared.AttributeStrength: 2},
	}})

	stdout, stderr, err := run(t, providerWithRoller(t, roller), "commit", "f1",
		"--answers", answers, "--tx", "tx-1", "--roll-hp", "--dry-run", "--load", load)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Hit die: 1d10 = 9 [9]")
	assert.Contains(t, stdout, "Validated f1: fighter level 4, max HP 37")
}

func TestCommitCommandReportsFlaggedStep(t *testing.T) {
	load := writeJSON(t, "characters.json", []*character.Snapshot{testutils.CreateTestFighter("f1", 3, "champion")})
	answers := writeJSON(t, "answers.json", []domain.Answer{{
		StepID:           "select_ability_or_feat",
		AbilityIncreases: map[shared.Attribute]int{shared.AttributeStrength: 1},
	}})

	_, stderr, err := run(t, realProvider(t), "commit", "f1", "--answers", answers, "--load", load)
	require.Error(t, err)

	assert.Equal(t, dnderr.ReasonASIBudgetMismatch, dnderr.GetReason(err))
	assert.Contains(t, stderr, "Step select_ability_or_feat was rejected")
}

func TestCommitCommandUnknownStep(t *testing.T) {
	load := writeJSON(t, "characters.json", []*character.Snapshot{testutils.CreateTestFighter("f1", 3, "champion")})
	answers := writeJSON(t, "answers.json", []domain.Answer{{StepID: "select_subclass", SubclassKey: "champion"}})

	_, _, err := run(t, realProvider(t), "commit", "f1", "--answers", answers, "--load", load)
	assert.Equal(t, dnderr.ReasonUnexpectedAnswer, dnderr.GetReason(err))
}

func TestSeedCommand(t *testing.T) {
	file := writeJSON(t, "characters.json", []*character.Snapshot{
		testutils.CreateTestFighter("f1", 3, "champion"),
		testutils.CreateTestWarlock("w1", 5, "pact-of-the-tome"),
	})

	stdout, _, err := run(t, realProvider(t), "seed", file)
	require.NoError(t, err)
	assert.Equal(t, "Stored f1\nStored w1\n", stdout)
}

func TestSpellsCommand(t *testing.T) {
	load := writeJSON(t, "characters.json", []*character.Snapshot{testutils.CreateTestWarlock("w1", 5, "pact-of-the-tome")})

	stdout, _, err := run(t, realProvider(t), "spells", "w1", "--load", load)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pact slots: 2 of level 3")
}

func TestBonusesCommandUsesService(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocklevelup.NewMockService(ctrl)

	breakdown, err := bonus.Compute(testutils.CreateTestScores(), []bonus.Source{
		testutils.CreateTestASI("fighter-4", shared.AttributeStrength, 2),
	})
	require.NoError(t, err)
	svc.EXPECT().ComputeBonusBreakdown(gomock.Any(), "f1").Return(breakdown, nil)

	provider := func(context.Context) (*services.Provider, error) {
		return &services.Provider{
			CharacterRepository: characters.NewInMemoryRepository(),
			LevelUpService:      svc,
		}, nil
	}

	stdout, _, err := run(t, provider, "bonuses", "f1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "asi +2")
}

func TestInvalidOutputFormat(t *testing.T) {
	_, _, err := run(t, realProvider(t), "bonuses", "f1", "-o", "yaml")
	assert.Error(t, err)
}
