package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/KirkDiggler/dnd-levelup/internal/domain/levelup"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/services/levelup"
)

type CommitArgs struct {
	*RootArgs

	ClassKey      string
	TargetLevel   int
	AnswersFile   string
	TransactionID string
	DryRun        bool
	RollHP        bool
}

func (ca *CommitArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ca.ClassKey, "class", "", "Class to level, defaults to the character's only class")
	cmd.Flags().IntVar(&ca.TargetLevel, "level", 0, "Character level after the level-up, defaults to one above current")
	cmd.Flags().StringVar(&ca.AnswersFile, "answers", "", "JSON file with one answer per decision step")
	cmd.Flags().StringVar(&ca.TransactionID, "tx", "", "Transaction ID, generated when empty")
	cmd.Flags().BoolVar(&ca.DryRun, "dry-run", false, "Validate and preview without writing")
	cmd.Flags().BoolVar(&ca.RollHP, "roll-hp", false, "Roll the class hit die instead of taking the average")
}

func NewCommitCmd(root *RootArgs) *cobra.Command {
	args := &CommitArgs{RootArgs: root}

	cmd := &cobra.Command{
		Use:   "commit CHARACTER_ID",
		Short: "Validate answers and apply a level-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return args.run(cmd, argv[0])
		},
	}
	args.AddFlags(cmd)

	return cmd
}

func readAnswers(path string) ([]domain.Answer, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var answers []domain.Answer
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return answers, nil
}

func subclassAnswer(answers []domain.Answer) string {
	for _, a := range answers {
		if a.StepID == string(domain.StepSelectSubclass) {
			return a.SubclassKey
		}
	}
	return ""
}

// run walks a session through answering, validation and commit. On
// rejection the flagged step is reported alongside the reasons.
func (ca *CommitArgs) run(cmd *cobra.Command, characterID string) error {
	ctx := cmd.Context()
	svc := ca.provider.LevelUpService

	answers, err := readAnswers(ca.AnswersFile)
	if err != nil {
		return err
	}

	target, err := ca.targetLevel(cmd, characterID, ca.TargetLevel)
	if err != nil {
		return err
	}

	plan, err := svc.PlanLevelUp(ctx, &levelup.PlanLevelUpInput{
		CharacterID: characterID,
		ClassKey:    ca.ClassKey,
		TargetLevel: target,
		SubclassKey: subclassAnswer(answers),
	})
	if err != nil {
		return err
	}

	session := domain.NewSession(characterID, plan.ClassKey, target, plan.Steps)
	for _, a := range answers {
		if err := session.Answer(a); err != nil {
			return err
		}
	}

	tx, err := session.Transaction(ca.TransactionID)
	if err != nil {
		return err
	}
	if ca.RollHP {
		if tx.HitDieRoll, err = ca.rollHitDie(cmd, plan.ClassKey); err != nil {
			return err
		}
	}

	output, commitErr := svc.CommitLevelUp(ctx, &levelup.CommitLevelUpInput{
		CharacterID: characterID,
		Transaction: tx,
		DryRun:      ca.DryRun,
	})
	if err := session.Resolve(commitErr); err != nil {
		return err
	}
	if commitErr != nil {
		if step, _ := session.Flagged(); step != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Step %s was rejected:\n", step)
		}
		for _, reason := range dnderr.GetReasons(commitErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", reason)
		}
		return commitErr
	}

	if ca.Output == outputJSON {
		return ca.printJSON(cmd, output)
	}

	w := cmd.OutOrStdout()
	verb := "Committed"
	if !output.Applied {
		verb = "Validated"
	}
	fmt.Fprintf(w, "%s %s: %s level %d, max HP %d (transaction %s, version %d)\n",
		verb, characterID, plan.ClassKey, output.Snapshot.ClassLevel(plan.ClassKey),
		output.Snapshot.MaxHP, output.TransactionID, output.Snapshot.Version)
	for _, warning := range output.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	return nil
}

func (ca *CommitArgs) rollHitDie(cmd *cobra.Command, classKey string) (int, error) {
	class, err := ca.provider.Catalog.GetClass(classKey)
	if err != nil {
		return 0, err
	}

	result, err := ca.provider.Roller.Roll(1, class.HitDie, 0)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Hit die: %s\n", result)
	return result.RawTotal, nil
}
