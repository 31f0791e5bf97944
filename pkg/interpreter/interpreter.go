package interpreter

import (
	"errors"
	"io"
	"os"

	"xvm/pkg/bytecode"
	"xvm/pkg/stack"
)

// Status reports where Step or Run stopped
type Status int

const (
	StatusRunning Status = iota
	StatusHalted
	StatusSuspended
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusHalted:
		return "halted"
	case StatusSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// LineReader supplies one line of input after showing a prompt
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Hook runs after every executed instruction, before the PC advances.
// Returning suspend=true makes Run return StatusSuspended.
type Hook func(i *Interpreter, in bytecode.Instruction) (suspend bool, err error)

// Interpreter executes a resolved bytecode program
type Interpreter struct {
	program *bytecode.Program // program being executed
	pc      int               // index of the instruction being executed
	running bool              // cleared by HALT, termination or Stop

	stack   *RuntimeStack     // operand and frame stack
	returns *stack.Stack[int] // return addresses, one per pending call

	out io.Writer  // output writer for WRITE and dumps
	in  LineReader // input for READ

	hook Hook // debug hook (nil in interpreter mode)

	dump        bool   // DUMP ON is active
	dumpAllowed bool   // DUMP instructions take effect
	trace       bool   // log every instruction at debug level
	builtin     string // READ or WRITE ran since the last bare RETURN
	stored      int    // value written by the last STORE
	returned    int    // value carried by the last RETURN

	maxSteps int // maximum steps (0 = unlimited)
	steps    int // steps executed
}

type Option func(*Interpreter)

// WithWriter sets the output writer for WRITE and dumps
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithInput sets the reader used by READ
func WithInput(r LineReader) Option {
	return func(i *Interpreter) { i.in = r }
}

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// WithHook installs a hook consulted after every instruction
func WithHook(h Hook) Option {
	return func(i *Interpreter) { i.hook = h }
}

// WithTrace logs every executed instruction at debug level
func WithTrace(on bool) Option {
	return func(i *Interpreter) { i.trace = on }
}

// WithDump turns dumping on before the first instruction
func WithDump(on bool) Option {
	return func(i *Interpreter) { i.dump = on }
}

// WithoutDump makes DUMP instructions no-ops
func WithoutDump() Option {
	return func(i *Interpreter) {
		i.dumpAllowed = false
		i.dump = false
	}
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(p *bytecode.Program, opts ...Option) *Interpreter {
	it := &Interpreter{
		program:     p,
		pc:          0,
		running:     true,
		stack:       NewRuntimeStack(),
		returns:     stack.NewStack[int](),
		out:         nil, // caller should set, or use WithWriter
		dumpAllowed: true,
		maxSteps:    0, // 0 => unlimited
	}

	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}

	if it.in == nil {
		it.in = NewLineReader(os.Stdin, it.out)
	}

	return it
}

// Step executes a single instruction
func (i *Interpreter) Step() (Status, error) {
	if !i.running {
		return StatusHalted, nil
	}

	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return StatusRunning, ErrMaxStepsExceeded
	}

	in, ok := i.program.At(i.pc)
	if !ok {
		// running off the end of the program halts it
		i.running = false
		return StatusHalted, nil
	}

	pc := i.pc
	if err := coreStep(i, in); err != nil {
		i.running = false
		if errors.Is(err, ErrTerminated) {
			return StatusHalted, err
		}
		return StatusHalted, &FatalError{PC: pc, Op: in.Op, Err: err}
	}
	i.steps++

	i.traceStep(pc, in)
	if i.dump && in.Op != bytecode.OpDump {
		i.dumpStep(in)
	}
	if in.Op == bytecode.OpReturn {
		i.builtin = ""
	}

	suspend := false
	if i.hook != nil {
		var err error
		if suspend, err = i.hook(i, in); err != nil {
			i.running = false
			return StatusHalted, &FatalError{PC: pc, Op: in.Op, Err: err}
		}
	}

	i.pc++

	switch {
	case !i.running:
		return StatusHalted, nil
	case suspend:
		return StatusSuspended, nil
	default:
		return StatusRunning, nil
	}
}

// Run executes until halt, suspension or error. A suspended run continues
// with the next call to Run.
func (i *Interpreter) Run() (Status, error) {
	for {
		status, err := i.Step()
		if err != nil || status != StatusRunning {
			return status, err
		}
	}
}

// Stop ends the run; the next Step reports StatusHalted
func (i *Interpreter) Stop() {
	i.running = false
}

// Running reports whether the program can still execute
func (i *Interpreter) Running() bool {
	return i.running
}

// PC returns the index of the next instruction to execute. Inside a hook
// it is the index of the instruction that just ran.
func (i *Interpreter) PC() int {
	return i.pc
}

// SetPC moves execution to pc
func (i *Interpreter) SetPC(pc int) {
	i.pc = pc
}

// Program returns the program being executed
func (i *Interpreter) Program() *bytecode.Program {
	return i.program
}

// Stack returns the runtime stack
func (i *Interpreter) Stack() *RuntimeStack {
	return i.stack
}

// ReturnDepth returns the number of pending calls
func (i *Interpreter) ReturnDepth() int {
	return i.returns.Size()
}

// Steps returns the number of instructions executed so far
func (i *Interpreter) Steps() int {
	return i.steps
}

// Dumping reports whether DUMP ON is active
func (i *Interpreter) Dumping() bool {
	return i.dump
}
