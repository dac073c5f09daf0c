package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-levelup/internal/services/levelup"
)

type PlanArgs struct {
	*RootArgs

	ClassKey    string
	TargetLevel int
	SubclassKey string
}

func (pa *PlanArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pa.ClassKey, "class", "", "Class to level, defaults to the character's only class")
	cmd.Flags().IntVar(&pa.TargetLevel, "level", 0, "Character level after the level-up, defaults to one above current")
	cmd.Flags().StringVar(&pa.SubclassKey, "subclass", "", "Subclass about to be chosen, to preview its choices")
}

func NewPlanCmd(root *RootArgs) *cobra.Command {
	args := &PlanArgs{RootArgs: root}

	cmd := &cobra.Command{
		Use:   "plan CHARACTER_ID",
		Short: "List the decisions a level-up needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return args.run(cmd, argv[0])
		},
	}
	args.AddFlags(cmd)

	return cmd
}

func (pa *PlanArgs) run(cmd *cobra.Command, characterID string) error {
	target, err := pa.targetLevel(cmd, characterID, pa.TargetLevel)
	if err != nil {
		return err
	}

	output, err := pa.provider.LevelUpService.PlanLevelUp(cmd.Context(), &levelup.PlanLevelUpInput{
		CharacterID: characterID,
		ClassKey:    pa.ClassKey,
		TargetLevel: target,
		SubclassKey: pa.SubclassKey,
	})
	if err != nil {
		return err
	}

	if pa.Output == outputJSON {
		return pa.printJSON(cmd, output)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %s to character level %d (version %d)\n", characterID, output.ClassKey, target, output.Version)
	if len(output.Features) > 0 {
		names := make([]string, len(output.Features))
		for i, f := range output.Features {
			names[i] = f.Name
		}
		fmt.Fprintf(w, "Gains: %s\n", strings.Join(names, ", "))
	}
	if len(output.Steps) == 0 {
		fmt.Fprintln(w, "No decisions needed")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSTEP\tPICK\tOPTIONS")
	for i, step := range output.Steps {
		pick := ""
		switch {
		case step.PickCount > 0:
			pick = fmt.Sprintf("%d", step.PickCount)
		case step.SpellCount > 0:
			pick = fmt.Sprintf("%d (max level %d)", step.SpellCount, step.LevelCap)
		case step.Optional:
			pick = "optional"
		}
		options := step.SpellList
		if len(step.Options) > 0 {
			options = strings.Join(step.Options, ", ")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, step.ID, pick, options)
	}
	return tw.Flush()
}

// targetLevel defaults to one above the stored character's level
func (ra *RootArgs) targetLevel(cmd *cobra.Command, characterID string, level int) (int, error) {
	if level > 0 {
		return level, nil
	}
	snap, err := ra.provider.CharacterRepository.GetSnapshot(cmd.Context(), characterID)
	if err != nil {
		return 0, err
	}
	return snap.TotalLevel() + 1, nil
}
