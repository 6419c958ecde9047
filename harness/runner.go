package harness

import (
	"bytes"
	"fmt"

	"github.com/feather-lang/plume"
	"go.uber.org/zap"
)

// TestResult holds the outcome of running a single test case.
type TestResult struct {
	TestCase TestCase
	Passed   bool
	Actual   ActualResult
	Failures []string
}

// ActualResult captures what actually happened when the test ran.
type ActualResult struct {
	Stdout string
	Result string // repr of the final value
	Error  string // error text, empty on success
}

// Runner evaluates test cases in-process, each in a fresh interpreter.
type Runner struct {
	NewInterp func() *plume.Interp
}

// NewRunner creates a test runner. A nil factory selects plume.New.
func NewRunner(newInterp func() *plume.Interp) *Runner {
	if newInterp == nil {
		newInterp = plume.New
	}
	return &Runner{NewInterp: newInterp}
}

// RunSuite executes all test cases in a suite and returns the results.
func (r *Runner) RunSuite(suite *TestSuite) []TestResult {
	results := make([]TestResult, 0, len(suite.Cases))
	for _, tc := range suite.Cases {
		result := r.RunTest(tc)
		results = append(results, result)
	}
	return results
}

// RunTest executes a single test case and returns the result.
func (r *Runner) RunTest(tc TestCase) TestResult {
	result := TestResult{
		TestCase: tc,
		Passed:   true,
	}

	interp := r.NewInterp()
	defer interp.Close()
	var stdout bytes.Buffer
	interp.SetOutput(&stdout)

	value, err := interp.Eval(tc.Script)
	result.Actual.Stdout = normalizeLines(stdout.String())
	if err != nil {
		result.Actual.Error = err.Error()
	} else {
		result.Actual.Result = plume.Repr(value)
	}
	plume.Logger().Debug("snippet evaluated",
		zap.String("test", tc.Name),
		zap.String("result", result.Actual.Result),
		zap.String("error", result.Actual.Error))

	if tc.Error != result.Actual.Error {
		result.Passed = false
		result.Failures = append(result.Failures,
			fmt.Sprintf("error mismatch:\n  expected: %q\n  actual:   %q", tc.Error, result.Actual.Error))
	}

	if tc.Result != "" && tc.Result != result.Actual.Result {
		result.Passed = false
		result.Failures = append(result.Failures,
			fmt.Sprintf("result mismatch:\n  expected: %q\n  actual:   %q", tc.Result, result.Actual.Result))
	}

	if tc.Stdout != nil && *tc.Stdout != result.Actual.Stdout {
		result.Passed = false
		result.Failures = append(result.Failures,
			fmt.Sprintf("stdout mismatch:\n  expected: %q\n  actual:   %q", *tc.Stdout, result.Actual.Stdout))
	}

	return result
}

// Summary holds aggregate statistics about a test run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize calculates summary statistics from test results.
func Summarize(results []TestResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}
