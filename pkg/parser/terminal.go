package parser

import (
	"strings"

	"xvm/pkg/lexer"
)

// isTerminal checks if a symbol is a terminal
func (p *Parser) isTerminal(symbol string) bool {
	// Semantic actions are considered terminals
	if strings.HasPrefix(symbol, "@") {
		return true
	}

	if _, ok := lexer.IsMnemonic(symbol); ok {
		return true
	}

	switch symbol {
	case "num", "name", "op", "$":
		return true
	default:
		return false
	}
}

// isOperand checks if a terminal is an instruction operand
func (p *Parser) isOperand(symbol string) bool {
	return symbol == "num" || symbol == "name" || symbol == "op"
}

// matchTerminal checks if the current token matches the expected terminal.
// Operands only match on the line of the instruction they belong to.
func (p *Parser) matchTerminal(expected string) bool {
	if p.isOperand(expected) && p.currentToken.Pos.Line != p.dec.line {
		return false
	}

	switch expected {
	case "num":
		return p.currentToken.Type == lexer.NUM
	case "name":
		return p.currentToken.Type == lexer.NAME
	case "op":
		return p.currentToken.Type == lexer.OP
	case "$":
		return p.currentToken.Type == lexer.EOF
	}

	if mnemonic, ok := lexer.IsMnemonic(expected); ok {
		return p.currentToken.Type == mnemonic
	}

	return false
}
