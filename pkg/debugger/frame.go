package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is the debugger's record of one active call
type Frame struct {
	Name        string
	StartLine   int // 0 until FUNCTION runs
	EndLine     int
	CurrentLine int
	RollbackPC  int // PC of the last binding made before the body started
	Bindings    *Bindings

	described bool // FUNCTION has run for this frame
}

// NewFrame creates a frame that is still in its prologue
func NewFrame() *Frame {
	return &Frame{Bindings: NewBindings()}
}

// SetFunctionInfo records what FUNCTION says about the frame
func (f *Frame) SetFunctionInfo(name string, start, end int) {
	f.Name = name
	f.StartLine = start
	f.EndLine = end
	f.described = true
}

// Described reports whether the frame's FUNCTION has run
func (f *Frame) Described() bool {
	return f.described
}

// InPrologue reports whether the frame has no source range yet
func (f *Frame) InPrologue() bool {
	return f.StartLine == 0 || f.EndLine == 0
}

// String renders the frame as "( <a/0,b/1>, f, 3, 9, 4 )", with "-" for
// unset fields
func (f *Frame) String() string {
	pairs := make([]string, 0)
	for _, name := range f.Bindings.Names() {
		offset, _ := f.Bindings.Lookup(name)
		pairs = append(pairs, fmt.Sprintf("%s/%d", name, offset))
	}

	name := f.Name
	if name == "" {
		name = "-"
	}

	return fmt.Sprintf("( <%s>, %s, %s, %s, %s )",
		strings.Join(pairs, ","), name, field(f.StartLine), field(f.EndLine), field(f.CurrentLine))
}

func field(n int) string {
	if n == 0 {
		return "-"
	}

	return strconv.Itoa(n)
}
