package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// env is shared by all subcommands.
type env struct {
	fs      afero.Fs
	verbose bool
	log     *zap.SugaredLogger
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	e := &env{fs: fs, log: zap.NewNop().Sugar()}

	root := &cobra.Command{
		Use:          "fa",
		Short:        "Finite automata demonstrator",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			log, err := newLogger(e.verbose)
			if err != nil {
				return err
			}

			e.log = log.Sugar()

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = e.log.Sync()
		},
	}

	registerGlobalFlags(root.PersistentFlags(), e)

	root.AddCommand(
		newDemoCmd(e),
		newDotCmd(e),
		newAcceptsCmd(e),
	)

	return root
}

func registerGlobalFlags(flags *pflag.FlagSet, e *env) {
	flags.BoolVarP(&e.verbose, "verbose", "v", false, "log every edge found by subset construction")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.DisableStacktrace = true

	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}
