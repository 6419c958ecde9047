// plume runs scripts against the plume object runtime.
//
//	plume run script.py        evaluate files (stdin when none are given)
//	plume repl                 interactive session
//	plume test testdata/       run YAML snippet suites
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/feather-lang/plume"
)

// errSilent reports failure through the exit code only; details were
// already written by the command.
var errSilent = errors.New("failed")

type options struct {
	configPath string
	logLevel   string
	cfg        plume.Config
	logger     *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "plume",
		Short:         "Embeddable object runtime with weak references",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.sync()
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newRunCmd(opts), newReplCmd(opts), newTestCmd(opts))
	return root
}

// load reads the config file, applies flag overrides and installs the logger.
func (o *options) load() error {
	cfg := plume.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = plume.LoadConfig(o.configPath); err != nil {
			return err
		}
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	o.cfg = cfg

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	o.logger = logger
	plume.SetLogger(logger)
	return nil
}

// sync flushes buffered log entries. Errors from syncing a terminal are ignored.
func (o *options) sync() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
}

// newInterp creates an interpreter from the loaded configuration.
func (o *options) newInterp() *plume.Interp {
	return plume.NewWithConfig(o.cfg)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.DisableStacktrace = true
	return cfg.Build()
}
