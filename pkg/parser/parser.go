package parser

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"xvm/pkg/bytecode"
	"xvm/pkg/lexer"
	"xvm/pkg/stack"
)

type Parser struct {
	stack        *stack.Stack[string] // LL(1) parsing stack
	lexer        *lexer.Lexer         // lexer instance
	dec          *decoder             // instruction decoder
	currentToken lexer.Token          // current token
	table        ParsingTable         // LL(1) parsing table
	errors       []error              // list of errors
}

// NewParser creates a new parser instance
func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{
		lexer:  l,
		dec:    newDecoder(),
		table:  NewParsingTable(),
		stack:  stack.NewStack("$", "Program"), // Program is start state and $ is bottom of the stack
		errors: []error{},
	}

	// Initialize current token
	p.nextToken()

	return p
}

// Parse decodes the whole input. Errors do not stop decoding: the parser
// resumes at the next instruction line so every bad line is reported.
func (p *Parser) Parse() {
	for p.stack.Size() > 1 { // While stack is not empty (only $ remains)
		top, _ := p.stack.Pop()

		if p.isTerminal(top) {
			// Check if this is a semantic action
			if p.isSemanticAction(top) {
				p.dec.ExecuteAction(top)
			} else if p.matchTerminal(top) {
				p.dec.SetCurrentToken(p.currentToken)
				p.nextToken()
			} else {
				p.handleTerminalError(top)
				p.synchronize()
			}
		} else {
			// Non-terminal: pick production from table
			if production, ok := p.table[top][p.lookahead()]; ok {
				rhs_length := len(production.RHS)
				// If production is ε, do not push anything
				if rhs_length == 0 || (rhs_length == 1 && production.RHS[0] == "ε") {
					continue
				}

				// Push RHS of production onto stack in reverse order (so first symbol is on top)
				for i := rhs_length - 1; i >= 0; i-- {
					if production.RHS[i] != "ε" {
						p.stack.Push(production.RHS[i])
					}
				}

			} else {
				p.handleNonTerminalError(top)
				p.synchronize()
			}
		}
	}

	if p.currentToken.Type != lexer.EOF {
		p.handleUnexpectedEndOfInput()
	}
}

// lookahead returns the token type that selects the next production.
// An operand on a later line than its instruction ends that instruction,
// and a mnemonic sharing a line with the previous instruction is illegal.
func (p *Parser) lookahead() lexer.TokenType {
	tok := p.currentToken

	switch {
	case tok.Type == lexer.EOF:
		return lexer.EOF
	case tok.Type.GetCategory() == lexer.MNEMONIC:
		if !p.dec.open && tok.Pos.Line == p.dec.lastLine {
			return lexer.ILLEGAL
		}
		return tok.Type
	case p.dec.open && tok.Pos.Line != p.dec.line:
		return lexer.EOF
	default:
		return tok.Type
	}
}

// synchronize drops the rest of the failing line and restarts the parse at
// the first mnemonic of a later line
func (p *Parser) synchronize() {
	line := p.currentToken.Pos.Line
	if p.dec.open {
		line = p.dec.line
	}
	p.dec.discard(line)

	for p.currentToken.Type != lexer.EOF {
		if p.currentToken.Type.GetCategory() == lexer.MNEMONIC && p.currentToken.Pos.Line > line {
			break
		}
		p.nextToken()
	}

	p.stack = stack.NewStack("$", "InstrList")
}

// nextToken advances to the next token from the lexer
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// isSemanticAction checks if a symbol is a semantic action
func (p *Parser) isSemanticAction(symbol string) bool {
	return strings.HasPrefix(symbol, "@")
}

// Instructions returns the decoded instructions in file order
func (p *Parser) Instructions() []bytecode.Instruction {
	return p.dec.GetProgram()
}

// Errors returns syntax and operand errors ordered by position
func (p *Parser) Errors() []error {
	errs := append([]error{}, p.errors...)
	errs = append(errs, p.dec.GetErrors()...)
	sortByPosition(errs)

	return errs
}

// Load decodes bytecode text and resolves its labels
func Load(src string) (*bytecode.Program, error) {
	p := NewParser(lexer.NewLexer(src))
	p.Parse()

	if errs := p.Errors(); len(errs) > 0 {
		return nil, &LoadError{Errs: errs}
	}

	program := bytecode.NewProgram(p.Instructions())
	if err := program.Resolve(); err != nil {
		return nil, &LoadError{Errs: []error{err}}
	}

	return program, nil
}

func sortByPosition(errs []error) {
	pos := func(err error) int {
		var se *SyntaxError
		if errors.As(err, &se) {
			return se.Pos.Offset
		}
		return 0
	}

	slices.SortStableFunc(errs, func(a, b error) int {
		return cmp.Compare(pos(a), pos(b))
	})
}
