package driver_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"xvm/internal/driver"
	"xvm/pkg/bytecode"
	"xvm/pkg/color"
	"xvm/pkg/interpreter"
	"xvm/pkg/parser"
)

const echo = `GOTO start<<1>>
LABEL Read
LINE -1
FUNCTION Read -1 -1
READ
RETURN
LABEL start<<1>>
LINE 1
FUNCTION main 1 3
LIT 0 n
LINE 2
ARGS 0
CALL Read
STORE 0 n
LINE 3
LOAD 0 n
WRITE
HALT
`

const echoSource = `program { int n
  n = read()
  write(n) }
`

func TestMain(m *testing.M) {
	color.EnableColor(false)
	os.Exit(m.Run())
}

type script struct {
	lines []string
}

func (s *script) ReadLine(string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}

	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func writeProgram(t *testing.T, dir, code, source string) string {
	t.Helper()

	base := filepath.Join(dir, "echo")
	if err := os.WriteFile(base+".x.cod", []byte(code), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if source != "" {
		if err := os.WriteFile(base+".x", []byte(source), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	return base
}

func TestInterpret(t *testing.T) {
	base := writeProgram(t, t.TempDir(), echo, "")

	var out bytes.Buffer
	d := driver.Driver{File: base + ".x.cod", Stdout: &out, Stdin: strings.NewReader("12\n")}
	if err := d.Configure(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.String() != "Enter an integer, or -1 to quit: 12\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestInterpretTerminated(t *testing.T) {
	base := writeProgram(t, t.TempDir(), echo, "")

	d := driver.Driver{File: base + ".x.cod", Stdout: &bytes.Buffer{}, Stdin: strings.NewReader("-1\n")}
	if err := d.Run(); !errors.Is(err, interpreter.ErrTerminated) {
		t.Errorf("expected ErrTerminated, got %v", err)
	}
}

func TestConfigFileSettings(t *testing.T) {
	dir := t.TempDir()
	base := writeProgram(t, dir, "LABEL loop\nGOTO loop\n", "")
	if err := os.WriteFile(filepath.Join(dir, "xvm.toml"), []byte("[interpreter]\nmax_steps = 50\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	d := driver.Driver{File: base + ".x.cod", Stdout: &bytes.Buffer{}}
	if err := d.Configure(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.MaxSteps != 50 {
		t.Fatalf("expected max steps from xvm.toml, got %d", d.MaxSteps)
	}
	if err := d.Run(); !errors.Is(err, interpreter.ErrMaxStepsExceeded) {
		t.Errorf("expected ErrMaxStepsExceeded, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	base := writeProgram(t, t.TempDir(), "LIT\nGOTO nowhere\nHALT\n", "")

	var out bytes.Buffer
	d := driver.Driver{File: base + ".x.cod", Stdout: &out}
	err := d.Run()

	var le *parser.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if le.File != base+".x.cod" {
		t.Errorf("expected file name on the error, got %q", le.File)
	}
	if !strings.Contains(out.String(), "=== Load Errors ===\nMissing number operand for LIT") {
		t.Errorf("unexpected report:\n%s", out.String())
	}
	if errors.Is(err, bytecode.ErrUnresolvedLabel) {
		t.Errorf("labels must not be resolved after decode errors")
	}
}

func TestDebug(t *testing.T) {
	base := writeProgram(t, t.TempDir(), echo, echoSource)

	var out bytes.Buffer
	console := &script{lines: []string{"setbp 3", "cont", "7", "vars", "cont"}}
	d := driver.Driver{File: base, Debug: true, Stdout: &out, Console: console}
	if err := d.Configure(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		" 2.   n = read()\n",
		"Breakpoint set at line 3\n",
		"Execution stopped at line 3\n",
		"Local variables:\nn: 7\n",
		"7\n\n***** Execution has completed *****\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestDebugMissingSource(t *testing.T) {
	base := writeProgram(t, t.TempDir(), echo, "")

	d := driver.Driver{File: base, Debug: true, Stdout: &bytes.Buffer{}, Console: &script{}}
	if err := d.Run(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a missing source error, got %v", err)
	}
}

func TestVerboseListing(t *testing.T) {
	base := writeProgram(t, t.TempDir(), echo, "")

	var out bytes.Buffer
	d := driver.Driver{File: base + ".x.cod", Verbose: true, Stdout: &out, Stdin: strings.NewReader("3\n")}
	if err := d.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"=== Decoded Program ===\n",
		"   0: GOTO start<<1>> -> 6\n",
		"  12: CALL Read -> 1\n",
		"   5: RETURN\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in listing:\n%s", want, out.String())
		}
	}
}
