package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init configures the default logger on stderr
func Init(verbose, noColor bool) {
	Setup(os.Stderr, verbose, noColor)
}

// Setup configures the default logger. Verbose mode logs at debug level,
// which carries the interpreter trace and the debugger's state changes.
func Setup(w io.Writer, verbose, noColor bool) {
	log.SetDefault(log.NewWithOptions(w,
		log.Options{
			ReportCaller:    verbose,
			ReportTimestamp: false, // output is interleaved with the program's own
			Prefix:          "XVM",
		}))

	log.SetLevel(log.WarnLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
