package lexer_test

import (
	"testing"

	"xvm/pkg/lexer"
)

func TestTokens(t *testing.T) {
	input := "GOTO start<<1>>\n" +
		"LABEL fib<<2>>\n" +
		"LINE -1\n" +
		"FUNCTION fib 3 8\n" +
		"FORMAL n 0\n" +
		"LIT 0 i\n" +
		"BOP <=\n" +
		"BOP -\n" +
		"LIT -7\n" +
		"DUMP ON\n" +
		"RETURN\n"
	mylexer := lexer.NewLexer(input)

	expectedTokens := []lexer.TokenType{
		lexer.GOTO, lexer.NAME,
		lexer.LABEL, lexer.NAME,
		lexer.LINE, lexer.NUM,
		lexer.FUNCTION, lexer.NAME, lexer.NUM, lexer.NUM,
		lexer.FORMAL, lexer.NAME, lexer.NUM,
		lexer.LIT, lexer.NUM, lexer.NAME,
		lexer.BOP, lexer.OP,
		lexer.BOP, lexer.OP,
		lexer.LIT, lexer.NUM,
		lexer.DUMP, lexer.NAME,
		lexer.RETURN,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}

func TestTokenLexemes(t *testing.T) {
	mylexer := lexer.NewLexer("CALL fib<<2>>\nLINE -1\nBOP !=")

	expected := []struct {
		lexeme string
		line   int
	}{
		{"CALL", 1},
		{"fib<<2>>", 1},
		{"LINE", 2},
		{"-1", 2},
		{"BOP", 3},
		{"!=", 3},
	}

	for i, e := range expected {
		token := mylexer.NextToken()
		if token.Lexeme != e.lexeme {
			t.Errorf("Token %d: expected lexeme %q, got %q", i, e.lexeme, token.Lexeme)
		}
		if token.Pos.Line != e.line {
			t.Errorf("Token %d: expected line %d, got %d", i, e.line, token.Pos.Line)
		}
	}
}

func TestComments(t *testing.T) {
	input := `// header comment
LIT 3 // trailing comment
// another comment
HALT`

	mylexer := lexer.NewLexer(input)
	expectedTokens := []lexer.TokenType{lexer.LIT, lexer.NUM, lexer.HALT, lexer.EOF}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}

func TestMatchToken(t *testing.T) {
	tests := []struct {
		input       string
		expected    lexer.TokenType
		lexeme      string
		description string
	}{
		{"HALT", lexer.HALT, "HALT", "mnemonic"},
		{"HALTED", lexer.NAME, "HALTED", "mnemonic prefix is a name"},
		{"Read", lexer.NAME, "Read", "built-in label"},
		{"while<<12>>", lexer.NAME, "while<<12>>", "compiler label"},
		{"42", lexer.NUM, "42", "integer"},
		{"<=", lexer.OP, "<=", "two-char operator"},
		{"<", lexer.OP, "<", "one-char operator"},
		{"|", lexer.OP, "|", "logical or"},
	}

	for _, test := range tests {
		tokenType, lexeme, matched := lexer.MatchToken(test.input)
		if !matched {
			t.Errorf("Failed to match %s (%s)", test.input, test.description)
		}
		if tokenType != test.expected {
			t.Errorf("Input %s (%s): expected %s, got %s", test.input, test.description, test.expected, tokenType)
		}
		if lexeme != test.lexeme {
			t.Errorf("Input %s (%s): expected lexeme %s, got %s", test.input, test.description, test.lexeme, lexeme)
		}
	}
}

func TestIllegal(t *testing.T) {
	mylexer := lexer.NewLexer("LIT 12ab")

	if tok := mylexer.NextToken(); tok.Type != lexer.LIT {
		t.Fatalf("expected LIT, got %s", tok.Type)
	}
	tok := mylexer.NextToken()
	if tok.Type != lexer.ILLEGAL || tok.Lexeme != "12ab" {
		t.Errorf("expected ILLEGAL 12ab, got %s", tok)
	}
	if tok := mylexer.NextToken(); tok.Type != lexer.EOF {
		t.Errorf("expected EOF, got %s", tok.Type)
	}
}
