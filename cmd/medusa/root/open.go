package root

import (
	"errors"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"medusa/internal/chore"
	"medusa/internal/config"
	"medusa/internal/engine"
	"medusa/internal/logging"
	"medusa/internal/storage"
)

func choreFileArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("exactly one chore file is required")
	}
	return nil
}

func openService(cmd *cobra.Command, opts *globalOptions, path string) (*engine.Service, error) {
	cfg, err := config.Load(config.New(opts.configFile))
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	svcOpts := []engine.Option{engine.WithLogger(logger)}
	if opts.date != "" {
		d, err := chore.ParseDate(opts.date)
		if err != nil {
			return nil, err
		}
		svcOpts = append(svcOpts, engine.WithClock(func() time.Time { return d.Time() }))
	}

	repo := storage.NewChoreRepo(afero.NewOsFs(), path, cfg.Store.Indent)
	return engine.NewService(repo, svcOpts...), nil
}
