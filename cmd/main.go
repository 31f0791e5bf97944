package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"xvm/internal/driver"
	"xvm/internal/logger"
	"xvm/pkg/color"
	"xvm/pkg/interpreter"
)

// Main entry point for the xvm interpreter and debugger.
func main() {
	options := driver.Driver{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode (debug logging and instruction trace)")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.Debug, "d", false, "Debug <base>.x.cod against <base>.x")
	flag.StringVar(&options.ConfigFile, "c", "", "Configuration file (default: xvm.toml next to the program)")
	flag.IntVar(&options.MaxSteps, "max-steps", 0, "Stop after n instructions (0 = unlimited)")
	flag.BoolVar(&options.Dump, "dump", false, "Start with DUMP ON")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file.x.cod>\n", os.Args[0])
		fmt.Printf("       %s -d [options] <base>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	options.File = args[0]
	if err := options.Configure(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	logger.Init(options.Verbose, options.NoColor)
	if options.NoColor {
		color.EnableColor(false)
	}

	err := options.Run()
	switch {
	case errors.Is(err, interpreter.ErrTerminated):
		fmt.Println("Terminating program.")
	case err != nil:
		log.Fatal("Execution failed", "error", err)
	}
}
