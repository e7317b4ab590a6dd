package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medusa/internal/ui"
)

func newPickCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick <chore_file>",
		Short: "Pick a random chore from the open pool, favouring overdue ones",
		Args:  choreFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(cmd, opts, args[0])
			if err != nil {
				return err
			}

			res, err := svc.Pick(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Gold.Render(ui.IconHat+" Chore picked:"),
				ui.ChoreLabel(res.Chore.Location, res.Chore.Name),
				ui.Muted.Render(fmt.Sprintf("(%d of %d slips)", res.Copies, res.HatSize)))
			if res.Chore.Description != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(res.Chore.Description))
			}
			return nil
		},
	}

	return cmd
}
