package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medusa/internal/ui"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <chore_file>",
		Short: "List the open chores for today",
		Args:  choreFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(cmd, opts, args[0])
			if err != nil {
				return err
			}

			res, err := svc.List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBroom, "Open chores for today"))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s (%s)", res.AsOf, res.DayType)))
			if len(res.Due) == 0 {
				fmt.Fprintln(out, ui.Good.Render("Nothing is due."))
				return nil
			}
			for _, d := range res.Due {
				fmt.Fprintf(out, "- %s %s %s\n",
					ui.DayTypeIcon(d.Chore.Type.String()),
					ui.ChoreLabel(d.Chore.Location, d.Chore.Name),
					ui.Muted.Render(fmt.Sprintf("(%d days since, due %s)", d.OverdueDays, d.DueDate)))
			}
			return nil
		},
	}

	return cmd
}
