package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"medusa/internal/ui"
)

const Version = "0.1.0"

type globalOptions struct {
	configFile string
	logLevel   string
	date       string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "medusa",
		Short: "Medusa — household chore tracker",
		Long: `Medusa keeps a JSON list of recurring chores, shows which are due today,
marks them done, and picks one out of a hat where overdue chores get more slips.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default is $HOME/.config/medusa/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error), overrides config")
	rootCmd.PersistentFlags().StringVar(&opts.date, "date", "", "treat this MM/DD/YYYY date as today")

	rootCmd.AddCommand(
		newListCmd(opts),
		newCompleteCmd(opts),
		newPickCmd(opts),
		newStatusCmd(opts),
		newBoardCmd(opts),
	)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(exitCode(err))
	}
}
