package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/services"
)

const (
	cmdName = "levelup"
	cmdDesc = `Plan and commit D&D 5e character level-ups.`

	outputText = "text"
	outputJSON = "json"
)

// ProviderFunc builds the services a command runs against
type ProviderFunc func(ctx context.Context) (*services.Provider, error)

// RootArgs are flags shared by every command
type RootArgs struct {
	Output string

	// Load seeds characters from a JSON file before the command runs
	Load string

	newProvider ProviderFunc
	provider    *services.Provider
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&ra.Output, "output", "o", outputText, "Output format, one of: text, json")
	cmd.PersistentFlags().StringVar(&ra.Load, "load", "", "JSON file of character snapshots to store before running")

	err := cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions([]string{outputText, outputJSON}, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

// NewRootCmd assembles the CLI. newProvider is called once per invocation.
func NewRootCmd(newProvider ProviderFunc) *cobra.Command {
	args := &RootArgs{newProvider: newProvider}

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		SilenceUsage:      true,
		PersistentPreRunE: args.setup,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if args.provider == nil {
				return nil
			}
			return args.provider.Close()
		},
	}

	args.AddFlags(cmd)
	cmd.AddCommand(
		NewPlanCmd(args),
		NewCommitCmd(args),
		NewBonusesCmd(args),
		NewSpellsCmd(args),
		NewSeedCmd(args),
	)

	return cmd
}

func (ra *RootArgs) setup(cmd *cobra.Command, _ []string) error {
	if ra.Output != outputText && ra.Output != outputJSON {
		return fmt.Errorf("invalid argument %q for --output", ra.Output)
	}

	provider, err := ra.newProvider(cmd.Context())
	if err != nil {
		return err
	}
	ra.provider = provider

	if ra.Load != "" {
		if _, err := seed(cmd.Context(), provider, ra.Load, true); err != nil {
			return err
		}
	}
	return nil
}

func (ra *RootArgs) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readSnapshots(path string) ([]*character.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var snaps []*character.Snapshot
	if err := json.Unmarshal(data, &snaps); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return snaps, nil
}

// seed stores every snapshot in path. With skipExisting, characters that are
// already stored are left as they are.
func seed(ctx context.Context, provider *services.Provider, path string, skipExisting bool) ([]string, error) {
	snaps, err := readSnapshots(path)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		err := provider.CharacterRepository.Create(ctx, snap)
		if skipExisting && dnderr.IsAlreadyExists(err) {
			continue
		}
		if err != nil {
			return ids, err
		}
		ids = append(ids, snap.ID)
	}
	return ids, nil
}
