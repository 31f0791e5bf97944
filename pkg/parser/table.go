package parser

import "xvm/pkg/lexer"

type Production struct {
	LHS string
	RHS []string
}

type ParsingTable map[string]map[lexer.TokenType]Production

// Every instruction production starts with its mnemonic and ends with the
// semantic action that decodes it.
var grammar = []Production{
	{}, // 0 - empty
	{LHS: "Program", RHS: []string{"InstrList"}}, // 1

	{LHS: "InstrList", RHS: []string{"Instr", "InstrList"}}, // 2
	{LHS: "InstrList", RHS: []string{"ε"}},                  // 3

	{LHS: "Instr", RHS: []string{"HALT", "@halt"}},                               // 4
	{LHS: "Instr", RHS: []string{"POP", "num", "@pop"}},                          // 5
	{LHS: "Instr", RHS: []string{"FALSEBRANCH", "name", "@falsebranch"}},         // 6
	{LHS: "Instr", RHS: []string{"GOTO", "name", "@goto"}},                       // 7
	{LHS: "Instr", RHS: []string{"STORE", "num", "OptName", "@store"}},           // 8
	{LHS: "Instr", RHS: []string{"LOAD", "num", "OptName", "@load"}},             // 9
	{LHS: "Instr", RHS: []string{"LIT", "num", "OptName", "@lit"}},               // 10
	{LHS: "Instr", RHS: []string{"ARGS", "num", "@args"}},                        // 11
	{LHS: "Instr", RHS: []string{"CALL", "name", "@call"}},                       // 12
	{LHS: "Instr", RHS: []string{"RETURN", "OptName", "@return"}},                // 13
	{LHS: "Instr", RHS: []string{"BOP", "op", "@bop"}},                           // 14
	{LHS: "Instr", RHS: []string{"READ", "@read"}},                               // 15
	{LHS: "Instr", RHS: []string{"WRITE", "@write"}},                             // 16
	{LHS: "Instr", RHS: []string{"LABEL", "name", "@label"}},                     // 17
	{LHS: "Instr", RHS: []string{"DUMP", "name", "@dump"}},                       // 18
	{LHS: "Instr", RHS: []string{"LINE", "num", "@line"}},                        // 19
	{LHS: "Instr", RHS: []string{"FUNCTION", "name", "num", "num", "@function"}}, // 20
	{LHS: "Instr", RHS: []string{"FORMAL", "name", "num", "@formal"}},            // 21

	{LHS: "OptName", RHS: []string{"name"}}, // 22
	{LHS: "OptName", RHS: []string{"ε"}},    // 23
}

// instrProductions maps each mnemonic to the production that decodes it
var instrProductions = map[lexer.TokenType]int{
	lexer.HALT:        4,
	lexer.POP:         5,
	lexer.FALSEBRANCH: 6,
	lexer.GOTO:        7,
	lexer.STORE:       8,
	lexer.LOAD:        9,
	lexer.LIT:         10,
	lexer.ARGS:        11,
	lexer.CALL:        12,
	lexer.RETURN:      13,
	lexer.BOP:         14,
	lexer.READ:        15,
	lexer.WRITE:       16,
	lexer.LABEL:       17,
	lexer.DUMP:        18,
	lexer.LINE:        19,
	lexer.FUNCTION:    20,
	lexer.FORMAL:      21,
}

// NewParsingTable creates and returns a new LL(1) parsing table
func NewParsingTable() ParsingTable {
	table := ParsingTable{
		"Program": {
			lexer.EOF: grammar[1],
		},

		"InstrList": {
			lexer.EOF: grammar[3],
		},

		"Instr": {},

		"OptName": {
			lexer.NAME: grammar[22],
			lexer.EOF:  grammar[23],
		},
	}

	for mnemonic, idx := range instrProductions {
		table["Program"][mnemonic] = grammar[1]
		table["InstrList"][mnemonic] = grammar[2]
		table["Instr"][mnemonic] = grammar[idx]
		table["OptName"][mnemonic] = grammar[23]
	}

	return table
}
