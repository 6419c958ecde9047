// Package harness runs YAML snippet suites against fresh interpreters.
//
// A suite file looks like:
//
//	name: weakref
//	cases:
//	  - name: call returns referent
//	    script: |
//	      import _weakref
//	      o = object()
//	      _weakref.ref(o)() is o
//	    result: "True"
package harness

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/feather-lang/plume"
)

// Config holds the configuration for running the harness.
type Config struct {
	NewInterp   func() *plume.Interp // nil selects plume.New
	TestPaths   []string
	NamePattern string // Go regex pattern to filter test names
	Output      io.Writer
	ErrOutput   io.Writer
	Verbose     bool
}

// testFullName returns the display name for a test case: "suite > test"
func testFullName(suite *TestSuite, tc *TestCase) string {
	return fmt.Sprintf("%s > %s", suite.Name, tc.Name)
}

// matchesFilter returns true if the test name matches the configured pattern.
// If no pattern is set, all tests match.
func matchesFilter(cfg Config, fullName string) (bool, error) {
	if cfg.NamePattern == "" {
		return true, nil
	}
	return regexp.MatchString(cfg.NamePattern, fullName)
}

// filterCases keeps the cases of suite whose full name matches the pattern.
func filterCases(cfg Config, suite *TestSuite) error {
	var kept []TestCase
	for i := range suite.Cases {
		tc := &suite.Cases[i]
		matches, err := matchesFilter(cfg, testFullName(suite, tc))
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
		if matches {
			kept = append(kept, *tc)
		}
	}
	suite.Cases = kept
	return nil
}

// collect finds the suite files named by the configuration.
func collect(cfg Config) ([]string, error) {
	testFiles, err := CollectTestFiles(cfg.TestPaths)
	if err != nil {
		return nil, err
	}
	if len(testFiles) == 0 {
		return nil, errors.New("no test files found")
	}
	return testFiles, nil
}

// List prints all test case names from the given paths, one per line.
// Returns 0 on success, 1 on error.
func List(cfg Config) int {
	testFiles, err := collect(cfg)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}

	for _, testFile := range testFiles {
		suite, err := ParseFile(testFile)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error parsing %s: %v\n", testFile, err)
			return 1
		}
		if err := filterCases(cfg, suite); err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
			return 1
		}
		for i := range suite.Cases {
			fmt.Fprintln(cfg.Output, testFullName(suite, &suite.Cases[i]))
		}
	}

	return 0
}

// Run executes the test harness with the given configuration.
// Returns 0 when every selected test passed, 1 otherwise.
func Run(cfg Config) int {
	testFiles, err := collect(cfg)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}

	runner := NewRunner(cfg.NewInterp)
	reporter := NewReporter(cfg.Output, cfg.Verbose)
	var allResults []TestResult
	hasErrors := false

	for _, testFile := range testFiles {
		suite, err := ParseFile(testFile)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error parsing %s: %v\n", testFile, err)
			hasErrors = true
			continue
		}
		if err := filterCases(cfg, suite); err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
			return 1
		}

		results := runner.RunSuite(suite)
		allResults = append(allResults, results...)
		for _, result := range results {
			reporter.ReportResult(testFile, result)
		}
	}

	summary := Summarize(allResults)
	reporter.ReportSummary(summary)

	if hasErrors || summary.Failed > 0 {
		return 1
	}
	return 0
}
