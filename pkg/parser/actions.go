package parser

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"xvm/pkg/bytecode"
	"xvm/pkg/lexer"
)

// decoder collects the tokens of one instruction and turns them into a
// bytecode.Instruction when the production's semantic action runs
type decoder struct {
	code     []bytecode.Instruction // decoded program
	mnemonic lexer.Token            // mnemonic of the instruction being decoded
	operands []lexer.Token          // operands matched so far
	open     bool                   // an instruction is being decoded
	line     int                    // line of the open instruction
	lastLine int                    // line of the last finished instruction
	errors   []error                // operand errors
}

func newDecoder() *decoder {
	return &decoder{
		code:     make([]bytecode.Instruction, 0),
		operands: make([]lexer.Token, 0, 3),
		errors:   []error{},
	}
}

// SetCurrentToken records a matched terminal. A mnemonic opens a new
// instruction, anything else is an operand of the open one.
func (d *decoder) SetCurrentToken(tok lexer.Token) {
	if tok.Type.GetCategory() == lexer.MNEMONIC {
		d.mnemonic = tok
		d.operands = d.operands[:0]
		d.open = true
		d.line = tok.Pos.Line
		return
	}

	d.operands = append(d.operands, tok)
}

// ExecuteAction executes the semantic action corresponding to the given action name
func (d *decoder) ExecuteAction(actionName string) {
	SemanticActions := map[string]func(){
		"@halt":        func() { d.emit(bytecode.Halt()) },
		"@pop":         func() { d.withNumber(0, func(n int) { d.emit(bytecode.Pop(n)) }) },
		"@falsebranch": func() { d.emit(bytecode.FalseBranch(d.name(0))) },
		"@goto":        func() { d.emit(bytecode.Goto(d.name(0))) },
		"@store":       func() { d.withNumber(0, func(n int) { d.emit(bytecode.Store(n, d.name(1))) }) },
		"@load":        func() { d.withNumber(0, func(n int) { d.emit(bytecode.Load(n, d.name(1))) }) },
		"@lit":         func() { d.withNumber(0, func(n int) { d.emit(bytecode.Lit(n, d.name(1))) }) },
		"@args":        d.argsAction,
		"@call":        func() { d.emit(bytecode.Call(d.name(0))) },
		"@return":      func() { d.emit(bytecode.Return(d.name(0))) },
		"@bop":         func() { d.emit(bytecode.Bop(d.name(0))) },
		"@read":        func() { d.emit(bytecode.Read()) },
		"@write":       func() { d.emit(bytecode.Write()) },
		"@label":       func() { d.emit(bytecode.Label(d.name(0))) },
		"@dump":        d.dumpAction,
		"@line":        func() { d.withNumber(0, func(n int) { d.emit(bytecode.Line(n)) }) },
		"@function":    d.functionAction,
		"@formal":      d.formalAction,
	}

	if action, ok := SemanticActions[actionName]; ok {
		action()
	} else {
		log.Error("Unknown semantic action", "action", actionName)
		d.close()
	}
}

// argsAction decodes ARGS n, rejecting a negative argument count
func (d *decoder) argsAction() {
	d.withNumber(0, func(n int) {
		if n < 0 {
			d.addError(d.operands[0], "Argument count must not be negative")
			return
		}
		d.emit(bytecode.Args(n))
	})
}

// dumpAction decodes DUMP ON|OFF
func (d *decoder) dumpAction() {
	switch d.name(0) {
	case "ON":
		d.emit(bytecode.Dump(true))
	case "OFF":
		d.emit(bytecode.Dump(false))
	default:
		d.addError(d.operands[0], "Expected ON or OFF")
	}
}

// functionAction decodes FUNCTION name start end
func (d *decoder) functionAction() {
	d.withNumber(1, func(start int) {
		d.withNumber(2, func(end int) {
			d.emit(bytecode.Function(d.name(0), start, end))
		})
	})
}

// formalAction decodes FORMAL name offset
func (d *decoder) formalAction() {
	d.withNumber(1, func(offset int) {
		d.emit(bytecode.Formal(d.name(0), offset))
	})
}

// withNumber converts operand i to an int and hands it to fn. An out of
// range literal is recorded and the instruction is dropped.
func (d *decoder) withNumber(i int, fn func(int)) {
	tok := d.operands[i]
	n, err := strconv.Atoi(tok.Lexeme)
	if err != nil {
		d.addError(tok, "Number out of range")
		return
	}

	fn(n)
}

// name returns operand i, or "" when the optional operand is absent
func (d *decoder) name(i int) string {
	if i >= len(d.operands) {
		return ""
	}

	return d.operands[i].Lexeme
}

// emit appends a decoded instruction and closes it
func (d *decoder) emit(in bytecode.Instruction) {
	in.Line = d.line
	d.code = append(d.code, in)
	d.close()
}

// close finishes the open instruction without emitting it
func (d *decoder) close() {
	if d.open {
		d.lastLine = d.line
	}
	d.open = false
	d.operands = d.operands[:0]
}

// discard drops the open instruction after a syntax error on line
func (d *decoder) discard(line int) {
	d.open = false
	d.operands = d.operands[:0]
	d.lastLine = line
}

func (d *decoder) addError(tok lexer.Token, msg string) {
	d.errors = append(d.errors, &SyntaxError{
		Pos:    tok.Pos,
		Msg:    fmt.Sprintf("%s in %s", msg, d.mnemonic.Lexeme),
		Lexeme: tok.Lexeme,
	})
	d.close()
}

// GetProgram returns the decoded instructions
func (d *decoder) GetProgram() []bytecode.Instruction {
	return d.code
}

// GetErrors returns the operand errors
func (d *decoder) GetErrors() []error {
	return d.errors
}
