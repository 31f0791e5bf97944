package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

func mustToken(raw string) tokenRegex {
	return tokenRegex{regexp.MustCompile(raw), raw}
}

// Token regex patterns
var tokenRegexes = map[TokenType]tokenRegex{
	FALSEBRANCH: mustToken(`^FALSEBRANCH\b`),
	FUNCTION:    mustToken(`^FUNCTION\b`),
	RETURN:      mustToken(`^RETURN\b`),
	FORMAL:      mustToken(`^FORMAL\b`),
	STORE:       mustToken(`^STORE\b`),
	LABEL:       mustToken(`^LABEL\b`),
	WRITE:       mustToken(`^WRITE\b`),
	HALT:        mustToken(`^HALT\b`),
	GOTO:        mustToken(`^GOTO\b`),
	LOAD:        mustToken(`^LOAD\b`),
	ARGS:        mustToken(`^ARGS\b`),
	CALL:        mustToken(`^CALL\b`),
	READ:        mustToken(`^READ\b`),
	DUMP:        mustToken(`^DUMP\b`),
	LINE:        mustToken(`^LINE\b`),
	POP:         mustToken(`^POP\b`),
	LIT:         mustToken(`^LIT\b`),
	BOP:         mustToken(`^BOP\b`),

	NUM:  mustToken(`^\d+\b`),
	OP:   mustToken(`^(==|!=|<=|>=|[-+*/<>|&])`),
	NAME: mustToken(`^[A-Za-z_][A-Za-z0-9_]*(<<\d+>>)?`),
}

var (
	whitespaceRegex = regexp.MustCompile(`^[ \t\r\n]+`)
	commentRegex    = regexp.MustCompile(`^//[^\n]*`)
)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	FALSEBRANCH, FUNCTION, RETURN, FORMAL, STORE, LABEL, WRITE,
	HALT, GOTO, LOAD, ARGS, CALL, READ, DUMP, LINE, POP, LIT, BOP,
	NUM, OP, NAME,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// Match the longest token at the start of the string
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.Pattern.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}

// Check if a byte is a digit
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
