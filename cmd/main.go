package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/luca-patrignani/joker-poker/config"
	"github.com/luca-patrignani/joker-poker/logging"
	"github.com/luca-patrignani/joker-poker/rng"
)

// app is what every subcommand gets once the root command loaded the config.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// source is seeded from the config when a seed is set.
func (a *app) source() rng.Source {
	if a.cfg.Seed == "" {
		return rng.NewRandom()
	}
	return rng.NewString(a.cfg.Seed)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var configPath string
	v := config.New()

	root := &cobra.Command{
		Use:           "joker-poker",
		Short:         "Rules engine of a poker game played with jokers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(v, configPath)
			if err != nil {
				return err
			}
			opts := cfg.Logging()
			opts.Writer = cmd.ErrOrStderr()
			logger, err := logging.New(opts)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.String("log-level", "info", "trace, debug, info, warn, error or disabled")
	flags.String("seed", "", "seed for reproducible shuffles")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("seed", flags.Lookup("seed"))

	root.AddCommand(
		newEvalCmd(a),
		newJokersCmd(),
		newSimulateCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}
