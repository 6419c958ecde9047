package harness

// TestCase captures the relevant information about
// a single snippet in a suite.
type TestCase struct {
	Name   string `yaml:"name"`
	Script string `yaml:"script"`

	// Result is the expected repr of the script's final value.
	// Empty means the value is not checked.
	Result string `yaml:"result"`

	// Error is the expected error text. Empty means the script must succeed.
	Error string `yaml:"error"`

	// Stdout is the expected print() output. Nil means it is not checked.
	Stdout *string `yaml:"stdout"`
}

// TestSuite represents a collection of test cases parsed from a YAML file.
type TestSuite struct {
	Name  string     `yaml:"name"`
	Path  string     `yaml:"-"`
	Cases []TestCase `yaml:"cases"`
}
