package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from the bytecode file
	Literal string    // Literal value (if applicable), empty string if not
	Pos     Position  // Position in the bytecode file
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, Pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     Pos,
	}
}

const (
	NONE TokenCategory = iota
	MNEMONIC
	IDENTIFIER
	LITERAL
	OPERATOR
)

const (
	EOF TokenType = iota // End of file

	HALT        // HALT
	POP         // POP
	FALSEBRANCH // FALSEBRANCH
	GOTO        // GOTO
	STORE       // STORE
	LOAD        // LOAD
	LIT         // LIT
	ARGS        // ARGS
	CALL        // CALL
	RETURN      // RETURN
	BOP         // BOP
	READ        // READ
	WRITE       // WRITE
	LABEL       // LABEL
	DUMP        // DUMP
	LINE        // LINE
	FUNCTION    // FUNCTION
	FORMAL      // FORMAL

	NAME // variable, function or label name (e.g. fib<<2>>)
	NUM  // signed integer
	OP   // binary operator symbol

	ILLEGAL // illegal token
)

var Mnemonics = map[string]TokenType{
	"HALT":        HALT,
	"POP":         POP,
	"FALSEBRANCH": FALSEBRANCH,
	"GOTO":        GOTO,
	"STORE":       STORE,
	"LOAD":        LOAD,
	"LIT":         LIT,
	"ARGS":        ARGS,
	"CALL":        CALL,
	"RETURN":      RETURN,
	"BOP":         BOP,
	"READ":        READ,
	"WRITE":       WRITE,
	"LABEL":       LABEL,
	"DUMP":        DUMP,
	"LINE":        LINE,
	"FUNCTION":    FUNCTION,
	"FORMAL":      FORMAL,
}

var tokenNames = map[TokenType]string{
	NAME:    "name",
	NUM:     "num",
	OP:      "op",
	EOF:     "$",
	ILLEGAL: "illegal",
}

func init() {
	for word, t := range Mnemonics {
		tokenNames[t] = word
	}
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("T_{%s, %v, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := tokenNames[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch {
	case t >= HALT && t <= FORMAL:
		return MNEMONIC
	case t == NAME:
		return IDENTIFIER
	case t == NUM:
		return LITERAL
	case t == OP:
		return OPERATOR
	default:
		return NONE
	}
}

// IsMnemonic checks if the given word is a mnemonic and returns its TokenType if it is
func IsMnemonic(word string) (TokenType, bool) {
	tokenType, ok := Mnemonics[word]
	return tokenType, ok
}
