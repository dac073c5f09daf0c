package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSeedCmd(root *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "seed FILE",
		Short: "Store characters from a JSON array of snapshots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			ids, err := seed(cmd.Context(), root.provider, argv[0], false)
			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", id)
			}
			return err
		},
	}
}
