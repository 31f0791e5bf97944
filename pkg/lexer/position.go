package lexer

import "fmt"

// Position locates a token in the bytecode file
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns the position as "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NewPosition creates a new Position instance
func NewPosition(line, column, offset int) Position {
	return Position{
		Line:   line,
		Column: column,
		Offset: offset,
	}
}
