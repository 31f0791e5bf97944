package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"xvm/internal/config"
	"xvm/internal/console"
	"xvm/pkg/bytecode"
	"xvm/pkg/color"
	"xvm/pkg/debugger"
	"xvm/pkg/interpreter"
	"xvm/pkg/parser"
)

const (
	codeExt   = ".x.cod"
	sourceExt = ".x"
)

type Driver struct {
	Help       bool   // Show help message
	Verbose    bool   // Debug logging and instruction trace
	NoColor    bool   // Disable colored output
	Debug      bool   // Run under the debugger
	Dump       bool   // Start with DUMP ON
	MaxSteps   int    // Step limit, 0 for none
	ConfigFile string // Explicit xvm.toml path
	File       string // Bytecode file, or the program base name in debug mode

	Stdout  io.Writer              // defaults to os.Stdout
	Stdin   io.Reader              // READ input in interpreter mode, defaults to os.Stdin
	Console interpreter.LineReader // debugger console, defaults to a terminal line editor

	cfg *config.Config
}

// Configure loads xvm.toml and merges it under the command line flags
func (d *Driver) Configure() error {
	var (
		cfg *config.Config
		err error
	)

	if d.ConfigFile != "" {
		cfg, err = config.Load(d.ConfigFile)
	} else {
		cfg, err = config.FindAndLoad(filepath.Dir(d.File))
	}
	if err != nil {
		return err
	}

	d.Verbose = d.Verbose || cfg.Log.Verbose
	d.NoColor = d.NoColor || cfg.Log.NoColor
	d.Dump = d.Dump || cfg.Interpreter.Dump
	if d.MaxSteps == 0 {
		d.MaxSteps = cfg.Interpreter.MaxSteps
	}

	d.cfg = cfg
	return nil
}

// Run loads the program and executes it in the selected mode
func (d *Driver) Run() error {
	if d.cfg == nil {
		d.cfg = config.Default()
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}

	codePath, sourcePath := d.paths()
	log.Info("Processing file", "file", codePath, "debug", d.Debug, "config", d.cfg.Path)

	program, err := d.load(codePath)
	if err != nil {
		return err
	}

	if d.Verbose {
		d.list(program)
	}

	if d.Debug {
		return d.debug(program, sourcePath)
	}

	return d.interpret(program)
}

// paths returns the bytecode and source file names
func (d *Driver) paths() (string, string) {
	if !d.Debug {
		return d.File, strings.TrimSuffix(d.File, codeExt) + sourceExt
	}

	base := strings.TrimSuffix(strings.TrimSuffix(d.File, codeExt), sourceExt)
	return base + codeExt, base + sourceExt
}

func (d *Driver) load(path string) (*bytecode.Program, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	program, err := parser.Load(string(input))
	if err != nil {
		var le *parser.LoadError
		if errors.As(err, &le) {
			le.File = path
			fmt.Fprintln(d.Stdout, color.BrightRedText("=== Load Errors ==="))
			for _, e := range le.Errs {
				var se *parser.SyntaxError
				if errors.As(e, &se) {
					fmt.Fprintln(d.Stdout, se.Pretty())
					continue
				}
				fmt.Fprintln(d.Stdout, color.RedText(e.Error()))
			}
		}
		return nil, err
	}

	log.Debug("program loaded", "file", path, "instructions", program.Len())
	return program, nil
}

// list prints the decoded program
func (d *Driver) list(program *bytecode.Program) {
	fmt.Fprintln(d.Stdout, color.GreenText("=== Decoded Program ==="))
	if program.Len() == 0 {
		fmt.Fprintln(d.Stdout, color.GrayText("No instructions."))
		return
	}

	for pc, in := range program.Instructions() {
		target := ""
		if in.IsJump() {
			target = color.GrayText(fmt.Sprintf(" -> %d", in.Target))
		}
		fmt.Fprintf(d.Stdout, "%s: %s%s\n",
			color.CyanText(fmt.Sprintf("%4d", pc)),
			color.YellowText(in.String()),
			target)
	}
}

func (d *Driver) interpret(program *bytecode.Program) error {
	it := interpreter.NewInterpreter(program,
		interpreter.WithWriter(d.Stdout),
		interpreter.WithInput(interpreter.NewLineReader(d.Stdin, d.Stdout)),
		interpreter.WithMaxSteps(d.MaxSteps),
		interpreter.WithDump(d.Dump),
		interpreter.WithTrace(d.Verbose || d.cfg.Interpreter.Trace),
	)

	if _, err := it.Run(); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	log.Debug("program halted", "steps", it.Steps())
	return nil
}

func (d *Driver) debug(program *bytecode.Program, sourcePath string) error {
	f, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", sourcePath, err)
	}
	source, err := debugger.NewSource(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", sourcePath, err)
	}

	in := d.Console
	if in == nil {
		c := console.New(d.cfg.HistoryPath())
		defer c.Close()
		in = c
	}

	dbg := debugger.NewDebugger(program, source,
		debugger.WithWriter(d.Stdout),
		debugger.WithPrompt(d.cfg.Debugger.Prompt),
		debugger.WithShowSource(d.cfg.Debugger.ShowSource),
		debugger.WithInterpreterOptions(
			interpreter.WithInput(in),
			interpreter.WithMaxSteps(d.MaxSteps),
			interpreter.WithTrace(d.Verbose || d.cfg.Interpreter.Trace),
		),
	)
	dbg.SetBreakpoints(d.cfg.Debugger.Breakpoints)

	if err := dbg.Session(in); err != nil {
		return fmt.Errorf("debug session failed: %w", err)
	}

	return nil
}
