// Package debugger drives an interpreter one source line at a time and
// answers questions about the program's state between steps.
package debugger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"xvm/pkg/bytecode"
	"xvm/pkg/interpreter"
)

// Debugger tracks the source-level view of a running program: frames,
// bindings, breakpoints and stepping state.
type Debugger struct {
	it      *interpreter.Interpreter
	program *bytecode.Program
	source  *Source

	env      *Environment
	stepper  Stepper
	rollback *Rollback

	out        io.Writer
	prompt     string
	showSource bool
	itOpts     []interpreter.Option

	lastLine  int    // last LINE reached
	mainStart bool   // between FUNCTION main and main's first LINE
	builtin   string // "read" or "write" while inside a built-in
	quit      bool   // the user asked to stop
}

type Option func(*Debugger)

// WithWriter sets where the debugger and the program write
func WithWriter(w io.Writer) Option {
	return func(d *Debugger) { d.out = w }
}

// WithPrompt sets the command prompt
func WithPrompt(prompt string) Option {
	return func(d *Debugger) { d.prompt = prompt }
}

// WithShowSource controls the listing printed when a session starts
func WithShowSource(on bool) Option {
	return func(d *Debugger) { d.showSource = on }
}

// WithInterpreterOptions passes options through to the interpreter
func WithInterpreterOptions(opts ...interpreter.Option) Option {
	return func(d *Debugger) { d.itOpts = append(d.itOpts, opts...) }
}

// NewDebugger prepares program for debugging against its source text
func NewDebugger(program *bytecode.Program, source *Source, opts ...Option) *Debugger {
	d := &Debugger{
		program:    program,
		source:     source,
		env:        NewEnvironment(),
		rollback:   NewRollback(),
		prompt:     ">> ",
		showSource: true,
	}

	for _, o := range opts {
		o(d)
	}

	if d.out == nil {
		d.out = os.Stdout
	}

	itOpts := append([]interpreter.Option{interpreter.WithWriter(d.out)}, d.itOpts...)
	itOpts = append(itOpts, interpreter.WithHook(d.hook), interpreter.WithoutDump())
	d.it = interpreter.NewInterpreter(program, itOpts...)

	return d
}

// hook mirrors every executed instruction into the debugger's state
func (d *Debugger) hook(it *interpreter.Interpreter, in bytecode.Instruction) (bool, error) {
	frame := d.env.Current()

	switch in.Op {
	case bytecode.OpArgs:
		d.env.BeginScope()

	case bytecode.OpCall:
		d.rollback.Push(it.Stack().TopFrameValues())

	case bytecode.OpReturn:
		if _, err := d.env.EndScope(); err != nil {
			return false, err
		}
		d.rollback.Pop()
		d.builtin = ""

		d.lastLine = d.env.Current().CurrentLine
		mode := d.stepper.Mode()
		if d.stepper.AtReturn(d.env.Depth()) {
			d.suspended("return", mode)
			return true, nil
		}

	case bytecode.OpPop:
		frame.Bindings.PopBindings(in.N)

	case bytecode.OpLit:
		if in.Name == "" {
			break
		}
		stack := it.Stack()
		frame.Bindings.Bind(in.Name, stack.Len()-stack.FrameBase()-1, d.mainStart)
		if d.mainStart {
			frame.RollbackPC = it.PC()
		}

	case bytecode.OpFunction:
		frame.SetFunctionInfo(in.Name, in.Start, in.End)
		frame.RollbackPC = it.PC()
		if in.Name == "main" {
			d.mainStart = true
		}

	case bytecode.OpFormal:
		frame.Bindings.Bind(in.Name, in.N, true)
		frame.RollbackPC = it.PC()

	case bytecode.OpLabel:
		switch in.Label {
		case "Read":
			d.builtin = "read"
		case "Write":
			d.builtin = "write"
		}

	case bytecode.OpLine:
		return d.atLine(it, frame, in.N), nil
	}

	return false, nil
}

func (d *Debugger) atLine(it *interpreter.Interpreter, frame *Frame, line int) bool {
	d.lastLine = line
	frame.CurrentLine = line

	if d.mainStart {
		d.mainStart = false
		d.rollback.Replace(it.Stack().TopFrameValues())
	}

	mode := d.stepper.Mode()
	breakpoint := line > 0 && d.source.HasBreakpoint(line)
	if !d.stepper.AtLine(line, d.env.Depth(), breakpoint) {
		return false
	}

	d.suspended("line", mode)
	return true
}

func (d *Debugger) suspended(event string, mode StepMode) {
	log.Debug("suspended", "event", event, "mode", mode, "line", d.lastLine, "depth", d.env.Depth())
	d.display(d.lastLine)
}

// Interpreter returns the interpreter being debugged
func (d *Debugger) Interpreter() *interpreter.Interpreter {
	return d.it
}

func (d *Debugger) Environment() *Environment {
	return d.env
}

func (d *Debugger) Source() *Source {
	return d.source
}

// LastLine returns the last source line reached
func (d *Debugger) LastLine() int {
	return d.lastLine
}

// Mode returns the pending step mode
func (d *Debugger) Mode() StepMode {
	return d.stepper.Mode()
}

// Quit reports whether the user ended the session
func (d *Debugger) Quit() bool {
	return d.quit
}
