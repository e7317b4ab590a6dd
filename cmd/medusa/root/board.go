package root

import (
	"context"

	"github.com/spf13/cobra"

	"medusa/internal/tui"
)

func newBoardCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board <chore_file>",
		Short: "Open the TUI board of today's chores",
		Args:  choreFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(cmd, opts, args[0])
			if err != nil {
				return err
			}

			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
