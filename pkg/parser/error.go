package parser

import (
	"fmt"
	"strings"

	"xvm/pkg/color"
	"xvm/pkg/lexer"
)

// SyntaxError is a decoding error at a position in the bytecode file
type SyntaxError struct {
	Pos    lexer.Position
	Msg    string
	Lexeme string
}

func (e *SyntaxError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Pos.Line, e.Pos.Column)
	}

	return fmt.Sprintf("%s '%s' at line %d, column %d", e.Msg, e.Lexeme, e.Pos.Line, e.Pos.Column)
}

// Pretty formats the error for the terminal
func (e *SyntaxError) Pretty() string {
	msg := color.RedText(e.Msg)
	if e.Lexeme != "" {
		msg += " `" + color.BlueText(e.Lexeme) + "`"
	}

	return msg + " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", e.Pos.Line, e.Pos.Column))
}

// LoadError collects every error found while loading a bytecode file
type LoadError struct {
	File string
	Errs []error
}

func (e *LoadError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}

	prefix := "load failed"
	if e.File != "" {
		prefix = "load " + e.File + " failed"
	}

	return fmt.Sprintf("%s with %d errors: %s", prefix, len(e.Errs), strings.Join(msgs, "; "))
}

func (e *LoadError) Unwrap() []error {
	return e.Errs
}

// handleTerminalError is called when a terminal on the stack doesn't match current token.
func (p *Parser) handleTerminalError(expected string) {
	current := p.currentToken

	if current.Type == lexer.ILLEGAL && current.Pos.Line == p.dec.line {
		p.addError("Illegal token", current)
		return
	}

	if p.isOperand(expected) && (current.Pos.Line != p.dec.line || current.Type == lexer.EOF) {
		p.addError(fmt.Sprintf("Missing %s operand for %s", p.describe(expected), p.dec.mnemonic.Lexeme), lexer.Token{Pos: p.dec.mnemonic.Pos})
		return
	}

	p.addError("Expected "+p.describe(expected), current)
}

// handleNonTerminalError is called when there is no production for top non-terminal and current token.
func (p *Parser) handleNonTerminalError(expected string) {
	current := p.currentToken

	switch {
	case current.Type == lexer.ILLEGAL:
		p.addError("Illegal token", current)
	case current.Type.GetCategory() == lexer.MNEMONIC:
		p.addError("Only one instruction per line is allowed, found", current)
	case expected == "InstrList" && current.Pos.Line == p.dec.lastLine:
		p.addError("Unexpected operand", current)
	default:
		p.addError("Expected mnemonic", current)
	}
}

// handleUnexpectedEndOfInput is called when the stack is empty but input remains
func (p *Parser) handleUnexpectedEndOfInput() {
	p.addError("Unexpected token at end of input", p.currentToken)
}

// addError records a decoding error with location
func (p *Parser) addError(msg string, tok lexer.Token) {
	p.errors = append(p.errors, &SyntaxError{Pos: tok.Pos, Msg: msg, Lexeme: tok.Lexeme})
}

// describe names a terminal for error messages
func (p *Parser) describe(terminal string) string {
	switch terminal {
	case "num":
		return "number"
	case "name":
		return "name"
	case "op":
		return "operator"
	case "$":
		return "end of input"
	default:
		return terminal
	}
}
