package bytecode_test

import (
	"errors"
	"testing"

	"xvm/pkg/bytecode"
)

func TestResolve(t *testing.T) {
	p := bytecode.NewProgram([]bytecode.Instruction{
		bytecode.Goto("start<<1>>"),
		bytecode.Label("f<<2>>"),
		bytecode.Lit(1, ""),
		bytecode.Return("f<<2>>"),
		bytecode.Label("start<<1>>"),
		bytecode.Args(0),
		bytecode.Call("f<<2>>"),
		bytecode.FalseBranch("start<<1>>"),
		bytecode.Return(""),
		bytecode.Halt(),
	})

	if err := p.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		pc     int
		target int
	}{
		{0, 4},
		{3, 1},
		{6, 1},
		{7, 4},
		{8, bytecode.NoTarget},
	}

	for _, test := range tests {
		in, ok := p.At(test.pc)
		if !ok {
			t.Fatalf("no instruction at %d", test.pc)
		}
		if in.Target != test.target {
			t.Errorf("%s at %d: expected target %d, got %d", in, test.pc, test.target, in.Target)
		}
	}
}

func TestResolveUnresolvedLabel(t *testing.T) {
	p := bytecode.NewProgram([]bytecode.Instruction{
		bytecode.Goto("nowhere"),
		bytecode.Halt(),
	})

	err := p.Resolve()
	if !errors.Is(err, bytecode.ErrUnresolvedLabel) {
		t.Fatalf("expected ErrUnresolvedLabel, got %v", err)
	}

	var le *bytecode.LabelError
	if !errors.As(err, &le) || le.Label != "nowhere" {
		t.Errorf("expected LabelError for %q, got %v", "nowhere", err)
	}
}

func TestResolveDuplicateLabel(t *testing.T) {
	p := bytecode.NewProgram([]bytecode.Instruction{
		bytecode.Label("a"),
		bytecode.Label("a"),
		bytecode.Halt(),
	})

	if err := p.Resolve(); !errors.Is(err, bytecode.ErrDuplicateLabel) {
		t.Fatalf("expected ErrDuplicateLabel, got %v", err)
	}
}

func TestLineNumbers(t *testing.T) {
	p := bytecode.NewProgram([]bytecode.Instruction{
		bytecode.Line(1),
		bytecode.Line(-1),
		bytecode.Line(3),
		bytecode.Line(1),
		bytecode.Halt(),
	})

	lines := p.LineNumbers()
	if len(lines) != 2 || lines[0] != 1 || lines[1] != 3 {
		t.Errorf("expected [1 3], got %v", lines)
	}

	if !p.HasLine(3) || p.HasLine(2) || p.HasLine(-1) {
		t.Errorf("HasLine mismatch for %v", lines)
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		in       bytecode.Instruction
		expected string
	}{
		{bytecode.Lit(0, "i"), "LIT 0 i"},
		{bytecode.Lit(5, ""), "LIT 5"},
		{bytecode.Return(""), "RETURN"},
		{bytecode.Dump(true), "DUMP ON"},
		{bytecode.Function("main", 1, 9), "FUNCTION main 1 9"},
		{bytecode.Formal("n", 0), "FORMAL n 0"},
		{bytecode.Bop("<="), "BOP <="},
	}

	for _, test := range tests {
		if got := test.in.String(); got != test.expected {
			t.Errorf("expected %q, got %q", test.expected, got)
		}
	}

	if id := bytecode.Call("fib<<4>>").BaseID(); id != "fib" {
		t.Errorf("expected base id fib, got %q", id)
	}
}
