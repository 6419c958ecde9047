package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feather-lang/plume"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	plume.SetLogger(zap.NewNop())
	return out.String(), errOut.String(), err
}

func TestRunStdin(t *testing.T) {
	out, _, err := execute(t, "import _weakref\no = object()\nw = _weakref.ref(o)\nprint(w() is o)\nw() is o\n", "run")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "True\nTrue\n" {
		t.Errorf("expected 'True\\nTrue\\n', got %q", out)
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.py")
	second := filepath.Join(dir, "second.py")
	os.WriteFile(first, []byte("x = 20"), 0o644)
	os.WriteFile(second, []byte("x + 22"), 0o644)

	out, _, err := execute(t, "", "run", first, second)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "42\n" {
		t.Errorf("expected '42\\n', got %q", out)
	}
}

func TestRunError(t *testing.T) {
	_, errOut, err := execute(t, "1 +\n", "run")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(errOut, "<stdin>: line 1: SyntaxError") {
		t.Errorf("unexpected stderr %q", errOut)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plume.yaml")
	os.WriteFile(path, []byte("collect_cycles: 4\nlog_level: error\n"), 0o644)

	out, _, err := execute(t, "import gc\ngc.collect()", "--config", path, "run")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "4\n" {
		t.Errorf("expected '4\\n', got %q", out)
	}

	if _, _, err := execute(t, "", "--log-level", "loud", "run"); err == nil {
		t.Error("expected invalid log level error")
	}
	if _, _, err := execute(t, "", "--config", filepath.Join(dir, "missing.yaml"), "run"); err == nil {
		t.Error("expected missing config error")
	}
}

func TestReplScriptMode(t *testing.T) {
	out, errOut, err := execute(t, "x = [1,\n2]\nx\nprint('hi')\nmissing\n", "repl")
	if err != nil {
		t.Fatalf("repl failed: %v", err)
	}
	if out != "[1, 2]\nhi\n" {
		t.Errorf("unexpected stdout %q", out)
	}
	if !strings.Contains(errOut, "NameError") {
		t.Errorf("expected NameError on stderr, got %q", errOut)
	}

	_, errOut, err = execute(t, "print(1,\n", "repl")
	if err == nil || !strings.Contains(errOut, "unexpected end of input") {
		t.Errorf("expected incomplete input error, got %v %q", err, errOut)
	}
}

func TestReplModel(t *testing.T) {
	m := newReplModel(plume.New())
	m.submit("x = [1,")
	if m.input.Prompt != promptContinue {
		t.Errorf("expected continuation prompt, got %q", m.input.Prompt)
	}
	m.submit("2]")
	m.submit("len(x)")
	if m.input.Prompt != promptFirst {
		t.Errorf("expected first prompt, got %q", m.input.Prompt)
	}
	view := m.View()
	if !strings.Contains(view, "2") || !strings.Contains(view, "len(x)") {
		t.Errorf("unexpected view %q", view)
	}
	if len(m.history) != 3 {
		t.Errorf("expected 3 history entries, got %d", len(m.history))
	}
}

func TestTestCommand(t *testing.T) {
	out, errOut, err := execute(t, "", "test", "-v", "../../testdata/snippets")
	if err != nil {
		t.Fatalf("test failed: %v\n%s\n%s", err, out, errOut)
	}
	if !strings.Contains(out, "0 failed") {
		t.Errorf("unexpected summary %q", out)
	}

	out, _, err = execute(t, "", "test", "--list", "--run", "weakref > module", "../../testdata/snippets")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out != "weakref > module exposes only ref\n" {
		t.Errorf("unexpected listing %q", out)
	}
}

type syncRecorder struct {
	bytes.Buffer
	synced int
}

func (r *syncRecorder) Sync() error {
	r.synced++
	return nil
}

func TestLoggerSyncedAfterCommand(t *testing.T) {
	rec := &syncRecorder{}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), rec, zap.DebugLevel)
	opts := &options{logger: zap.New(core)}
	opts.logger.Info("buffered")
	opts.sync()
	if rec.synced != 1 {
		t.Errorf("expected 1 sync, got %d", rec.synced)
	}
	if !strings.Contains(rec.String(), "buffered") {
		t.Errorf("expected entry in output, got %q", rec.String())
	}

	(&options{}).sync()

	if newRootCmd().PersistentPostRun == nil {
		t.Error("expected root command to sync the logger after running")
	}
}
