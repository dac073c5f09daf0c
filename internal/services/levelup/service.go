package levelup

//go:generate mockgen -destination=mock/mock_service.go -package=mocklevelup -source=service.go

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-levelup/internal/catalog"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/bonus"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/levelup"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/spellcasting"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-levelup/internal/uuid"
)

// Service is the level-up surface offered to callers (UI, CLI, API)
type Service interface {
	// PlanLevelUp lists the decisions needed to reach TargetLevel
	PlanLevelUp(ctx context.Context, input *PlanLevelUpInput) (*PlanLevelUpOutput, error)

	// CommitLevelUp validates a transaction and applies it as one batch
	CommitLevelUp(ctx context.Context, input *CommitLevelUpInput) (*CommitLevelUpOutput, error)

	// ComputeBonusBreakdown explains every ability score of a character
	ComputeBonusBreakdown(ctx context.Context, characterID string) (*bonus.Breakdown, error)

	// ComputeSpellcastingCounts summarizes cantrips, spells and slots
	ComputeSpellcastingCounts(ctx context.Context, characterID string) (*SpellcastingCountsOutput, error)
}

// PlanLevelUpInput asks for the plan of one level-up. ClassKey may be empty
// for single-class characters.
type PlanLevelUpInput struct {
	CharacterID string
	ClassKey    string
	TargetLevel int

	// SubclassKey previews the subclass about to be chosen
	SubclassKey string
}

type PlanLevelUpOutput struct {
	ClassKey string
	Steps    []*levelup.DecisionStep

	// Features are granted automatically at the new class level
	Features []*rulebook.Feature

	// Version of the snapshot the plan was made from
	Version int64
}

type CommitLevelUpInput struct {
	CharacterID string
	Transaction *levelup.Transaction

	// DryRun validates and previews without writing
	DryRun bool
}

type CommitLevelUpOutput struct {
	TransactionID string
	Snapshot      *character.Snapshot
	Writes        []character.WriteOp
	Warnings      []string
	Applied       bool
}

type SpellcastingCountsOutput struct {
	Lines []*spellcasting.CountsLine
	Slots *spellcasting.SlotTable
}

type service struct {
	catalog    catalog.Reader
	repository characters.Repository
	uuids      uuid.Generator

	planner    *levelup.Planner
	committer  *levelup.Committer
	calculator *spellcasting.Calculator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog    catalog.Reader        // Required
	Repository characters.Repository // Required

	// UUIDGenerator issues transaction IDs when a caller omits one
	UUIDGenerator uuid.Generator
}

// NewService creates a new level-up service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	uuids := cfg.UUIDGenerator
	if uuids == nil {
		uuids = uuid.NewGenerator()
	}

	return &service{
		catalog:    cfg.Catalog,
		repository: cfg.Repository,
		uuids:      uuids,
		planner:    levelup.NewPlanner(&levelup.PlannerConfig{Catalog: cfg.Catalog}),
		committer:  levelup.NewCommitter(&levelup.CommitterConfig{Catalog: cfg.Catalog}),
		calculator: spellcasting.NewCalculator(&spellcasting.CalculatorConfig{Classes: cfg.Catalog}),
	}
}

func (s *service) PlanLevelUp(ctx context.Context, input *PlanLevelUpInput) (*PlanLevelUpOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	snap, err := s.snapshot(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	classKey, err := resolveClass(snap, input.ClassKey)
	if err != nil {
		return nil, err
	}

	steps, err := s.planner.Plan(classKey, input.TargetLevel, snap, levelup.WithSubclass(input.SubclassKey))
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to plan %s level %d", classKey, input.TargetLevel).
			WithMeta("character_id", snap.ID)
	}

	subclassKey := snap.SubclassOf(classKey)
	if subclassKey == "" {
		subclassKey = plannedSubclass(steps, input.SubclassKey)
	}

	features, err := s.features(ctx, classKey, subclassKey, snap.ClassLevel(classKey)+1)
	if err != nil {
		return nil, err
	}

	return &PlanLevelUpOutput{
		ClassKey: classKey,
		Steps:    steps,
		Features: features,
		Version:  snap.Version,
	}, nil
}

// features loads class and subclass features of one level in parallel.
// A remote feature source makes these network calls.
func (s *service) features(ctx context.Context, classKey, subclassKey string, level int) ([]*rulebook.Feature, error) {
	var classFeatures, subclassFeatures []*rulebook.Feature

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		classFeatures, err = s.catalog.GetClassFeatures(classKey, level)
		return err
	})
	if subclassKey != "" {
		g.Go(func() error {
			var err error
			subclassFeatures, err = s.catalog.GetSubclassFeatures(subclassKey, level)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dnderr.Wrapf(err, "failed to load features for %s level %d", classKey, level)
	}

	return append(classFeatures, subclassFeatures...), nil
}

func (s *service) CommitLevelUp(ctx context.Context, input *CommitLevelUpInput) (*CommitLevelUpOutput, error) {
	if input == nil || input.Transaction == nil {
		return nil, dnderr.InvalidArgument("transaction is required")
	}

	snap, err := s.snapshot(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	tx := *input.Transaction
	tx.CharacterID = snap.ID
	if tx.ClassKey, err = resolveClass(snap, tx.ClassKey); err != nil {
		return nil, err
	}
	if tx.ID == "" {
		tx.ID = s.uuids.New()
	}

	result, err := s.committer.Commit(&tx, snap)
	if err != nil {
		return nil, err
	}

	output := &CommitLevelUpOutput{
		TransactionID: tx.ID,
		Snapshot:      result.Preview,
		Writes:        result.Writes,
		Warnings:      result.Warnings,
	}
	if input.DryRun {
		return output, nil
	}

	updated, err := s.repository.ApplyWrites(ctx, snap.ID, snap.Version, tx.ID, result.Writes)
	if err != nil {
		return nil, err
	}

	log.Printf("Character %s reached %s level %d (transaction %s, version %d)",
		snap.ID, tx.ClassKey, updated.ClassLevel(tx.ClassKey), tx.ID, updated.Version)

	output.Snapshot = updated
	output.Applied = true
	return output, nil
}

func (s *service) ComputeBonusBreakdown(ctx context.Context, characterID string) (*bonus.Breakdown, error) {
	snap, err := s.snapshot(ctx, characterID)
	if err != nil {
		return nil, err
	}

	breakdown, err := bonus.Compute(snap.BaseScores, snap.BonusSources)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to compute ability scores of %s", characterID)
	}
	return breakdown, nil
}

func (s *service) ComputeSpellcastingCounts(ctx context.Context, characterID string) (*SpellcastingCountsOutput, error) {
	snap, err := s.snapshot(ctx, characterID)
	if err != nil {
		return nil, err
	}

	scores, err := snap.Scores()
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to compute ability scores of %s", characterID)
	}

	lines, err := s.calculator.CountsFor(snap.Classes, scores)
	if err != nil {
		return nil, err
	}
	slots, err := s.calculator.Slots(snap.Classes)
	if err != nil {
		return nil, err
	}

	return &SpellcastingCountsOutput{
		Lines: lines,
		Slots: slots,
	}, nil
}

func (s *service) snapshot(ctx context.Context, characterID string) (*character.Snapshot, error) {
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}
	snap, err := s.repository.GetSnapshot(ctx, characterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return snap, nil
}

// resolveClass defaults to the only class of a single-class character
func resolveClass(snap *character.Snapshot, classKey string) (string, error) {
	if classKey != "" {
		return classKey, nil
	}
	if len(snap.Classes) == 1 {
		return snap.Classes[0].ClassKey, nil
	}
	return "", dnderr.InvalidArgumentf("character %s has %d classes, pick one to level", snap.ID, len(snap.Classes)).
		WithMeta("character_id", snap.ID)
}

// plannedSubclass returns hint when the plan includes it as a subclass option
func plannedSubclass(steps []*levelup.DecisionStep, hint string) string {
	if hint == "" {
		return ""
	}
	for _, step := range steps {
		if step.Kind != levelup.StepSelectSubclass {
			continue
		}
		for _, option := range step.Options {
			if option == hint {
				return hint
			}
		}
	}
	return ""
}
