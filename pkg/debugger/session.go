package debugger

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"xvm/pkg/interpreter"
)

// SetBreakpoints sets breakpoints before the session starts, reporting
// each line like setbp does
func (d *Debugger) SetBreakpoints(lines []int) {
	for _, n := range lines {
		if !d.breakable(n) {
			d.printf("A break point may not be set on line %d\n", n)
			continue
		}
		d.source.SetBreakpoint(n, true)
		d.printf("Breakpoint set at line %d\n", n)
	}
}

// Session reads commands from console until the program halts or the user
// quits. End of input on the console quits the session. ErrTerminated and
// fatal interpreter errors are returned to the caller.
func (d *Debugger) Session(console interpreter.LineReader) error {
	if d.showSource {
		d.printSource()
	}

	for d.it.Running() {
		d.println()
		d.println("Type ? for help")

		line, err := console.ReadLine(d.prompt)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			d.quitSession(nil)
			return nil
		}

		if !d.Execute(line) {
			continue
		}

		status, err := d.it.Run()
		if err != nil {
			return err
		}

		log.Debug("run returned", "status", status, "steps", d.it.Steps())
		if status == interpreter.StatusHalted {
			d.println()
			d.println(bannerCompleted)
		}
	}

	return nil
}
