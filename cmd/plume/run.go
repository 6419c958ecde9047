package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/feather-lang/plume"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [files...]",
		Short: "Evaluate script files, or stdin when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			interp := opts.newInterp()
			defer interp.Close()
			interp.SetOutput(cmd.OutOrStdout())

			if len(args) == 0 {
				script, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading script: %w", err)
				}
				return runScript(cmd, interp, "<stdin>", string(script))
			}
			for _, path := range args {
				script, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if err := runScript(cmd, interp, path, string(script)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// runScript evaluates one script and prints its final value unless it is None.
func runScript(cmd *cobra.Command, interp *plume.Interp, name, script string) error {
	result, err := interp.Eval(script)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
		return errSilent
	}
	if result != interp.None() {
		fmt.Fprintln(cmd.OutOrStdout(), plume.Repr(result))
	}
	return nil
}
