package bytecode

import (
	"errors"
	"fmt"
)

var (
	ErrUnresolvedLabel = errors.New("unresolved label")
	ErrDuplicateLabel  = errors.New("duplicate label")
)

// LabelError reports a label that cannot be resolved, with the bytecode
// line of the offending instruction
type LabelError struct {
	Label string
	Line  int
	Err   error
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("line %d: %v %q", e.Line, e.Err, e.Label)
}

func (e *LabelError) Unwrap() error {
	return e.Err
}

// Program is an ordered, 0-indexed list of instructions. It must not be
// modified once Resolve has succeeded.
type Program struct {
	code   []Instruction
	labels map[string]int
}

// NewProgram wraps a decoded instruction list
func NewProgram(code []Instruction) *Program {
	return &Program{
		code:   append([]Instruction(nil), code...),
		labels: make(map[string]int),
	}
}

// Len returns the number of instructions
func (p *Program) Len() int {
	return len(p.code)
}

// At returns the instruction at index pc
func (p *Program) At(pc int) (Instruction, bool) {
	if pc < 0 || pc >= len(p.code) {
		return Instruction{}, false
	}

	return p.code[pc], true
}

// Instructions returns a copy of the instruction list
func (p *Program) Instructions() []Instruction {
	return append([]Instruction(nil), p.code...)
}

// Resolve replaces every symbolic jump, call and labelled return with the
// absolute index of its LABEL. All unresolved labels are reported together.
func (p *Program) Resolve() error {
	p.labels = make(map[string]int)

	var errs []error
	for idx, in := range p.code {
		if in.Op != OpLabel {
			continue
		}
		if _, ok := p.labels[in.Label]; ok {
			errs = append(errs, &LabelError{Label: in.Label, Line: in.Line, Err: ErrDuplicateLabel})
			continue
		}
		p.labels[in.Label] = idx
	}

	for idx := range p.code {
		in := &p.code[idx]
		if !in.IsJump() {
			continue
		}
		target, ok := p.labels[in.Label]
		if !ok {
			errs = append(errs, &LabelError{Label: in.Label, Line: in.Line, Err: ErrUnresolvedLabel})
			continue
		}
		in.Target = target
	}

	return errors.Join(errs...)
}

// LineNumbers returns every positive source line that has a LINE instruction,
// in program order without duplicates
func (p *Program) LineNumbers() []int {
	seen := make(map[int]bool)
	lines := make([]int, 0)

	for _, in := range p.code {
		if in.Op == OpLine && in.N > 0 && !seen[in.N] {
			seen[in.N] = true
			lines = append(lines, in.N)
		}
	}

	return lines
}

// HasLine reports whether a LINE instruction exists for the source line
func (p *Program) HasLine(line int) bool {
	if line <= 0 {
		return false
	}

	for _, in := range p.code {
		if in.Op == OpLine && in.N == line {
			return true
		}
	}

	return false
}
