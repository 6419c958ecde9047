package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/feather-lang/plume"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interp := opts.newInterp()
			defer interp.Close()

			if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return runTUI(interp)
			}
			return runREPL(interp, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// session accumulates input lines until they form a complete script.
type session struct {
	interp *plume.Interp
	buffer []string
}

// outcome is what evaluating one complete input produced.
type outcome struct {
	output string // print() output
	result string // repr of the value, empty for None
	err    error
}

// feed adds a line. It reports false while more input is needed.
func (s *session) feed(line string) (outcome, bool) {
	s.buffer = append(s.buffer, line)
	script := strings.Join(s.buffer, "\n")

	pr := s.interp.Parse(script)
	switch pr.Status {
	case plume.ParseIncomplete:
		return outcome{}, false
	case plume.ParseError:
		s.buffer = nil
		return outcome{err: fmt.Errorf("%s", pr.Message)}, true
	}
	s.buffer = nil

	var out strings.Builder
	s.interp.SetOutput(&out)
	result, err := s.interp.Eval(script)
	o := outcome{output: out.String(), err: err}
	if err == nil && result != s.interp.None() {
		o.result = plume.Repr(result)
	}
	return o, true
}

// pending reports whether the session is inside a multi-line input.
func (s *session) pending() bool {
	return len(s.buffer) > 0
}

// runREPL reads lines from r without a terminal UI.
func runREPL(interp *plume.Interp, r io.Reader, w, errw io.Writer) error {
	s := &session{interp: interp}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		o, done := s.feed(scanner.Text())
		if !done {
			continue
		}
		io.WriteString(w, o.output)
		if o.err != nil {
			fmt.Fprintf(errw, "error: %v\n", o.err)
		} else if o.result != "" {
			fmt.Fprintln(w, o.result)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if s.pending() {
		fmt.Fprintln(errw, "error: unexpected end of input")
		return errSilent
	}
	return nil
}
