package debugger

import (
	"bufio"
	"io"
	"slices"
	"strings"
)

// SourceLine is one line of the high-level program
type SourceLine struct {
	Text       string
	Breakpoint bool
}

// Source holds the program text, 1-based, with breakpoint flags
type Source struct {
	lines []SourceLine
}

// NewSource reads the program text from r
func NewSource(r io.Reader) (*Source, error) {
	s := &Source{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.lines = append(s.lines, SourceLine{Text: strings.TrimRight(scanner.Text(), "\r")})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return s, nil
}

// ParseSource builds a Source from a string
func ParseSource(text string) *Source {
	s, _ := NewSource(strings.NewReader(text))
	return s
}

// Len returns the number of lines
func (s *Source) Len() int {
	return len(s.lines)
}

// Line returns line n
func (s *Source) Line(n int) (SourceLine, bool) {
	if n < 1 || n > len(s.lines) {
		return SourceLine{}, false
	}

	return s.lines[n-1], true
}

// SetBreakpoint sets or clears the flag on line n
func (s *Source) SetBreakpoint(n int, on bool) bool {
	if n < 1 || n > len(s.lines) {
		return false
	}

	s.lines[n-1].Breakpoint = on
	return true
}

func (s *Source) HasBreakpoint(n int) bool {
	line, ok := s.Line(n)
	return ok && line.Breakpoint
}

// Breakpoints returns the flagged lines in ascending order
func (s *Source) Breakpoints() []int {
	lines := make([]int, 0)
	for i, line := range s.lines {
		if line.Breakpoint {
			lines = append(lines, i+1)
		}
	}

	return slices.Clip(lines)
}

// ClearAll removes every breakpoint
func (s *Source) ClearAll() {
	for i := range s.lines {
		s.lines[i].Breakpoint = false
	}
}
