package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medusa/internal/chore"
	"medusa/internal/ui"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <chore_file>",
		Short: "Show every chore with its due date (read-only)",
		Args:  choreFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(cmd, opts, args[0])
			if err != nil {
				return err
			}

			chores, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}
			today := svc.Today()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, "Chore Status"))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%s (%s)", today, chore.Classify(today))))
			fmt.Fprintln(out, ui.LabelValue("Chores", len(chores)))
			fmt.Fprintln(out, "")

			for _, dt := range []chore.DayType{chore.Weekday, chore.Weekend} {
				var group []chore.Chore
				for _, c := range chores {
					if c.Type == dt {
						group = append(group, c)
					}
				}
				if len(group) == 0 {
					continue
				}
				fmt.Fprintln(out, ui.H2.Render(ui.DayTypeIcon(dt.String())+" "+dt.String()+" chores"))
				for _, c := range group {
					state := ui.Good.Render("ok")
					if chore.IsDue(c, today) {
						state = ui.Warn.Render("due")
					}
					fmt.Fprintf(out, "- %s %s %s\n", ui.ChoreLabel(c.Location, c.Name), state,
						ui.Muted.Render(fmt.Sprintf("(every %dd, last %s, due after %s)", c.Frequency, c.LastCompleted, chore.DueDate(c))))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	return cmd
}
