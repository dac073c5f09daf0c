package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

func NewBonusesCmd(root *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "bonuses CHARACTER_ID",
		Short: "Show where every ability score comes from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			breakdown, err := root.provider.LevelUpService.ComputeBonusBreakdown(cmd.Context(), argv[0])
			if err != nil {
				return err
			}
			if root.Output == outputJSON {
				return root.printJSON(cmd, breakdown)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ABILITY\tBASE\tBONUS\tTOTAL\tMOD\tSOURCES")
			for _, ability := range shared.Attributes {
				ab := breakdown.Get(ability)
				sources := make([]string, len(ab.Entries))
				for i, e := range ab.Entries {
					sources[i] = fmt.Sprintf("%s %+d", e.Source, e.Amount)
				}
				fmt.Fprintf(tw, "%s\t%d\t%+d\t%d\t%+d\t%s\n",
					ability, ab.Base, ab.Bonus, ab.Total, ab.Modifier(), strings.Join(sources, ", "))
			}
			return tw.Flush()
		},
	}
}
