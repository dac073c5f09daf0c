package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewSpellsCmd(root *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "spells CHARACTER_ID",
		Short: "Show cantrips, spells known or prepared, and slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			output, err := root.provider.LevelUpService.ComputeSpellcastingCounts(cmd.Context(), argv[0])
			if err != nil {
				return err
			}
			if root.Output == outputJSON {
				return root.printJSON(cmd, output)
			}

			w := cmd.OutOrStdout()
			if len(output.Lines) == 0 {
				fmt.Fprintln(w, "No spellcasting")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SOURCE\tLEVEL\tCANTRIPS\tSPELLS\tHOW")
			for _, line := range output.Lines {
				how := string(line.Spells.Kind)
				if line.Spells.Formula != "" {
					how = fmt.Sprintf("%s: %s", how, line.Spells.Formula)
				}
				if line.Spellbook > 0 {
					how = fmt.Sprintf("%s, spellbook %d", how, line.Spellbook)
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", line.Name, line.Level, line.Cantrips, line.Spells.Value, how)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if slots := output.Slots; slots != nil {
				if len(slots.Slots) > 0 {
					counts := make([]string, len(slots.Slots))
					for i, n := range slots.Slots {
						counts[i] = fmt.Sprintf("%d:%d", i+1, n)
					}
					fmt.Fprintf(w, "Slots (caster level %d): %s\n", slots.CasterLevel, strings.Join(counts, " "))
				}
				if slots.Pact.Count > 0 {
					fmt.Fprintf(w, "Pact slots: %d of level %d\n", slots.Pact.Count, slots.Pact.SlotLevel)
				}
			}
			return nil
		},
	}
}
