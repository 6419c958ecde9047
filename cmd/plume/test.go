package main

import (
	"github.com/spf13/cobra"

	"github.com/feather-lang/plume/harness"
)

func newTestCmd(opts *options) *cobra.Command {
	var (
		pattern string
		verbose bool
		list    bool
	)

	cmd := &cobra.Command{
		Use:   "test [flags] <suite-files-or-dirs>...",
		Short: "Run YAML snippet suites",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := harness.Config{
				NewInterp:   opts.newInterp,
				TestPaths:   args,
				NamePattern: pattern,
				Output:      cmd.OutOrStdout(),
				ErrOutput:   cmd.ErrOrStderr(),
				Verbose:     verbose,
			}
			run := harness.Run
			if list {
				run = harness.List
			}
			if run(cfg) != 0 {
				return errSilent
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "run", "", "only run tests whose 'suite > name' matches this regex")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report passing tests too")
	cmd.Flags().BoolVar(&list, "list", false, "list test names instead of running them")
	return cmd
}
