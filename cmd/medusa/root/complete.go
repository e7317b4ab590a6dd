package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"medusa/internal/chore"
	"medusa/internal/ui"
)

func newCompleteCmd(opts *globalOptions) *cobra.Command {
	var name string
	var location string

	cmd := &cobra.Command{
		Use:   "complete <chore_file> --chore_name NAME --chore_loc LOCATION",
		Short: "Complete a chore",
		Long: `Mark a chore as done today.

The chore is found by name and location. When several chores share both,
the first one in the file is updated.`,
		Args: choreFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(cmd, opts, args[0])
			if err != nil {
				return err
			}

			res, err := svc.Complete(ctx, name, location)
			if errors.Is(err, chore.ErrChoreNotFound) {
				// Not fatal: nothing changed and the file was not rewritten.
				fmt.Fprintf(cmd.OutOrStdout(), "%s no chore named %q at %q; nothing updated\n", ui.Warn.Render(ui.IconWarn+" Not found:"), name, location)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Completed"), ui.ChoreLabel(res.Chore.Location, res.Chore.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Last completed", fmt.Sprintf("%s → %s", res.Previous, res.Chore.LastCompleted)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "chore_name", "n", "", "The name of the chore to complete")
	cmd.Flags().StringVarP(&location, "chore_loc", "l", "", "The location of the chore to complete")
	_ = cmd.MarkFlagRequired("chore_name")
	_ = cmd.MarkFlagRequired("chore_loc")

	return cmd
}
