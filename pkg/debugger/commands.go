package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// command is one debugger command. run returns true when execution
// should resume.
type command struct {
	name string
	help string
	run  func(d *Debugger, args []string) bool
}

var commands []command

func init() {
	commands = []command{
		{"setbp", "Sets breakpoint(s) (example: setbp 2 3)", (*Debugger).setBreakpoints},
		{"clrbp", "Clears breakpoint(s) (example: clrbp 6)", (*Debugger).clearBreakpoints},
		{"clrall", "Clears all breakpoints", (*Debugger).clearAll},
		{"showbp", "Shows all breakpoints", (*Debugger).showBreakpoints},
		{"sout", "Steps out of the current function", (*Debugger).stepOut},
		{"sover", "Steps over the current line", (*Debugger).stepOver},
		{"sinto", "Steps into the function called on the current line", (*Debugger).stepInto},
		{"rb", "Rolls back to the start of the current function", (*Debugger).rollbackFrame},
		{"dcf", "Displays the current function", (*Debugger).displayFunction},
		{"cont", "Continues execution until a breakpoint or the end of the program", (*Debugger).continueRun},
		{"vars", "Displays the local variables of the current function", (*Debugger).showVariables},
		{"cv", "Changes value of one local variable to specified value (Example: cv n 3)", (*Debugger).changeVariable},
		{"q", "Terminates program", (*Debugger).quitSession},
		{"help", "Displays this list of commands", (*Debugger).showHelp},
	}
}

func lookupCommand(name string) (command, bool) {
	if name == "?" {
		name = "help"
	}

	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}

	return command{}, false
}

// Execute runs one command line and reports whether execution should resume
func (d *Debugger) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		d.unrecognized()
		return false
	}

	c, ok := lookupCommand(fields[0])
	if !ok {
		d.unrecognized()
		return false
	}

	log.Debug("command", "name", c.name, "args", fields[1:])
	return c.run(d, fields[1:])
}

func (d *Debugger) unrecognized() {
	d.println("The command you entered is not recognized.")
	d.println("Type help or ? to see a list of commands.")
}

func (d *Debugger) setBreakpoints(args []string) bool {
	if len(args) == 0 {
		d.println("Invalid setbp commmand.")
		return false
	}

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			d.printf("Invalid setbp line: %s\n", arg)
			continue
		}

		if !d.breakable(n) {
			d.printf("A break point may not be set on line %d\n", n)
			continue
		}

		d.source.SetBreakpoint(n, true)
		d.printf("Breakpoint set at line %d\n", n)
	}

	return false
}

// breakable reports whether a LINE instruction marks source line n
func (d *Debugger) breakable(n int) bool {
	_, ok := d.source.Line(n)
	return ok && d.program.HasLine(n)
}

func (d *Debugger) clearBreakpoints(args []string) bool {
	if len(args) == 0 {
		d.println("Invalid clrbp command.")
		return false
	}

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			d.printf("Invalid clrbp line: %s\n", arg)
			continue
		}

		if !d.source.HasBreakpoint(n) {
			d.printf("There was no break point set to line %d\n", n)
			continue
		}

		d.source.SetBreakpoint(n, false)
		d.printf("Breakpoint cleared from line %d\n", n)
	}

	return false
}

func (d *Debugger) clearAll(args []string) bool {
	if len(args) > 0 {
		d.println("Invalid clrall command.")
		return false
	}

	d.source.ClearAll()
	d.println("Breakpoint(s) cleared from all lines.")

	return false
}

func (d *Debugger) showBreakpoints([]string) bool {
	lines := d.source.Breakpoints()

	switch len(lines) {
	case 0:
		d.println("No break points are set.")
	case 1:
		d.printf("A breakpoint is set on line: %d \n", lines[0])
	default:
		var sb strings.Builder
		for _, n := range lines {
			fmt.Fprintf(&sb, "%d ", n)
		}
		d.printf("Breakpoints are set on the following lines: %s\n", sb.String())
	}

	return false
}

func (d *Debugger) stepOut([]string) bool {
	d.stepper.Set(StepOut, d.env.Depth(), 0)
	return true
}

func (d *Debugger) stepOver([]string) bool {
	d.stepper.Set(StepOver, d.env.Depth(), d.lastLine)
	return true
}

func (d *Debugger) stepInto([]string) bool {
	d.stepper.Set(StepInto, d.env.Depth(), d.lastLine)
	return true
}

func (d *Debugger) continueRun([]string) bool {
	d.stepper.Clear()
	return true
}

func (d *Debugger) displayFunction([]string) bool {
	d.display(d.lastLine)
	return false
}

func (d *Debugger) quitSession([]string) bool {
	d.it.Stop()
	d.quit = true
	d.println(bannerHalted)

	return false
}

// rollbackFrame restores the current frame to the state it had when its
// body started and resumes the listing there
func (d *Debugger) rollbackFrame([]string) bool {
	frame := d.env.Current()
	if !frame.Described() {
		d.println("Rollback is not available before the function has started.")
		return false
	}

	stack := d.it.Stack()
	stack.ClearTopFrame()
	for _, v := range d.rollback.Peek() {
		stack.Push(v)
	}

	frame.Bindings.Restore()
	d.it.SetPC(frame.RollbackPC + 1)

	d.lastLine = frame.StartLine
	frame.CurrentLine = frame.StartLine

	log.Debug("rollback", "function", frame.Name, "pc", frame.RollbackPC+1, "stack", stack.String())
	d.display(d.lastLine)

	return false
}

// inspected returns the frame whose variables are shown, and its depth
// index. A frame still in its prologue defers to its caller.
func (d *Debugger) inspected() (*Frame, int, bool) {
	idx := d.env.Depth() - 1
	frame := d.env.Current()

	if frame.InPrologue() {
		if idx == 0 {
			return nil, 0, false
		}
		idx--
		frame, _ = d.env.At(idx)
	}

	return frame, idx, true
}

func (d *Debugger) showVariables([]string) bool {
	frame, idx, ok := d.inspected()
	if !ok || len(frame.Bindings.Names()) == 0 {
		d.println("No local variables")
		return false
	}

	base, _ := d.it.Stack().BaseAt(idx)

	d.println("Local variables:")
	for _, name := range frame.Bindings.Names() {
		offset, _ := frame.Bindings.Lookup(name)
		v, err := d.it.Stack().ValueAt(base + offset)
		if err != nil {
			d.printf("%s: -\n", name)
			continue
		}
		d.printf("%s: %d\n", name, v)
	}

	return false
}

func (d *Debugger) changeVariable(args []string) bool {
	if len(args) == 0 {
		d.println("Invalid cv command.")
		return false
	}

	if len(args) != 2 {
		d.println("Invalid variable value.")
		return false
	}

	v, err := strconv.Atoi(args[1])
	if err != nil {
		d.println("Invalid variable value.")
		return false
	}

	frame, idx, ok := d.inspected()
	if !ok {
		d.println("There is no variable with that name in the current frame.")
		return false
	}

	offset, ok := frame.Bindings.Lookup(args[0])
	if !ok {
		d.println("There is no variable with that name in the current frame.")
		return false
	}

	base, _ := d.it.Stack().BaseAt(idx)
	if err := d.it.Stack().SetValueAt(base+offset, v); err != nil {
		log.Debug("cv failed", "name", args[0], "err", err)
		d.println("There is no variable with that name in the current frame.")
		return false
	}

	d.printf("Value of %s changed to %d\n", args[0], v)
	return false
}

func (d *Debugger) showHelp([]string) bool {
	for _, c := range commands {
		d.printf("%-15s%s\n", c.name, c.help)
	}
	d.printf("%-15s%s\n", "?", "Same as help")

	return false
}
