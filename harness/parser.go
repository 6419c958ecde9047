package harness

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile parses a test suite from the given file path.
// A suite without a name is named after its file.
func ParseFile(path string) (*TestSuite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	suite, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	suite.Path = path
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return suite, nil
}

// Parse parses a test suite from the given reader.
func Parse(r io.Reader) (*TestSuite, error) {
	var suite TestSuite
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, err
	}

	for i := range suite.Cases {
		tc := &suite.Cases[i]
		if tc.Name == "" {
			return nil, fmt.Errorf("case %d: missing name", i+1)
		}
		tc.Script = strings.TrimSpace(tc.Script)
		tc.Result = strings.TrimSpace(tc.Result)
		tc.Error = strings.TrimSpace(tc.Error)
		if tc.Stdout != nil {
			s := normalizeLines(*tc.Stdout)
			tc.Stdout = &s
		}
	}
	return &suite, nil
}

// normalizeLines trims trailing whitespace from every line and surrounding
// blank lines from the whole text.
func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
