package debugger

import (
	"fmt"

	"xvm/pkg/color"
)

const (
	bannerHalted    = "***** Execution has been halted *****"
	bannerCompleted = "***** Execution has completed *****"
	currentMarker   = "  <-----------"
)

func (d *Debugger) println(a ...any) {
	fmt.Fprintln(d.out, a...)
}

func (d *Debugger) printf(format string, a ...any) {
	fmt.Fprintf(d.out, format, a...)
}

// display shows where execution stopped and lists the current function
func (d *Debugger) display(line int) {
	if line < 0 {
		name := d.builtin
		if name == "" {
			name = d.env.Current().Name
		}
		d.printf("Execution stopped in function %s()\n", name)
		d.println("Source code is unavailable for this function")
		return
	}

	if line > 0 {
		d.println(color.BoldText(fmt.Sprintf("Execution stopped at line %d", line)))
	}
	d.listFunction(line)
}

// listFunction prints the current function's lines with breakpoint and
// current-line markers. A frame still in its prologue lists its caller.
func (d *Debugger) listFunction(current int) {
	frame := d.env.Current()
	start, end := frame.StartLine, frame.EndLine

	if frame.InPrologue() {
		caller, ok := d.env.At(d.env.Depth() - 2)
		if !ok {
			d.println("The program has not yet entered the first block.")
			return
		}
		start, end = caller.StartLine, caller.EndLine
	}

	start = max(start, 1)
	end = min(end, d.source.Len())

	for n := start; n <= end; n++ {
		line, _ := d.source.Line(n)

		prefix := ""
		switch {
		case line.Breakpoint:
			prefix = color.YellowText("*")
		case n < 10:
			prefix = " "
		}

		text := fmt.Sprintf("%s%d. %s", prefix, n, line.Text)
		if n == current {
			text += color.GreenText(currentMarker)
		}
		d.println(text)
	}
}

// printSource prints the whole program
func (d *Debugger) printSource() {
	for n := 1; n <= d.source.Len(); n++ {
		line, _ := d.source.Line(n)
		d.printf("%2d. %s\n", n, line.Text)
	}
}
