package bytecode

import (
	"fmt"
	"strings"
)

type Operation string

// List of bytecode operations
const (
	OpHalt        Operation = "HALT"
	OpPop         Operation = "POP"
	OpFalseBranch Operation = "FALSEBRANCH"
	OpGoto        Operation = "GOTO"
	OpStore       Operation = "STORE"
	OpLoad        Operation = "LOAD"
	OpLit         Operation = "LIT"
	OpArgs        Operation = "ARGS"
	OpCall        Operation = "CALL"
	OpReturn      Operation = "RETURN"
	OpBop         Operation = "BOP"
	OpRead        Operation = "READ"
	OpWrite       Operation = "WRITE"
	OpLabel       Operation = "LABEL"
	OpDump        Operation = "DUMP"
	OpLine        Operation = "LINE"
	OpFunction    Operation = "FUNCTION"
	OpFormal      Operation = "FORMAL"
)

// Operations lists every operation in mnemonic table order
var Operations = []Operation{
	OpHalt, OpPop, OpFalseBranch, OpGoto, OpStore, OpLoad, OpLit, OpArgs, OpCall,
	OpReturn, OpBop, OpRead, OpWrite, OpLabel, OpDump, OpLine, OpFunction, OpFormal,
}

// NoTarget marks an instruction whose label has not been resolved, or a
// RETURN that carries no label.
const NoTarget = -1

// Instruction is one decoded bytecode. Which fields are meaningful depends on Op:
//
//	POP, ARGS           N (count)
//	STORE, LOAD         N (offset), Name (optional, display only)
//	LIT                 N (value), Name (optional variable being declared)
//	FORMAL              N (offset), Name
//	FALSEBRANCH, GOTO,
//	CALL, RETURN        Label, Target (resolved index; RETURN may have no label)
//	LABEL               Label
//	BOP                 Symbol
//	DUMP                On
//	LINE                N (source line; negative inside built-ins)
//	FUNCTION            Name, Start, End
type Instruction struct {
	Op Operation

	N      int
	Name   string
	Label  string
	Target int
	Symbol string
	On     bool
	Start  int
	End    int

	Line int // line in the bytecode file, for diagnostics
}

// Halt creates a HALT instruction
func Halt() Instruction { return Instruction{Op: OpHalt, Target: NoTarget} }

// Pop creates a POP n instruction
func Pop(n int) Instruction { return Instruction{Op: OpPop, N: n, Target: NoTarget} }

// FalseBranch creates a FALSEBRANCH label instruction
func FalseBranch(label string) Instruction {
	return Instruction{Op: OpFalseBranch, Label: label, Target: NoTarget}
}

// Goto creates a GOTO label instruction
func Goto(label string) Instruction {
	return Instruction{Op: OpGoto, Label: label, Target: NoTarget}
}

// Store creates a STORE offset [name] instruction
func Store(offset int, name string) Instruction {
	return Instruction{Op: OpStore, N: offset, Name: name, Target: NoTarget}
}

// Load creates a LOAD offset [name] instruction
func Load(offset int, name string) Instruction {
	return Instruction{Op: OpLoad, N: offset, Name: name, Target: NoTarget}
}

// Lit creates a LIT value [name] instruction
func Lit(value int, name string) Instruction {
	return Instruction{Op: OpLit, N: value, Name: name, Target: NoTarget}
}

// Args creates an ARGS n instruction
func Args(n int) Instruction { return Instruction{Op: OpArgs, N: n, Target: NoTarget} }

// Call creates a CALL label instruction
func Call(label string) Instruction {
	return Instruction{Op: OpCall, Label: label, Target: NoTarget}
}

// Return creates a RETURN [label] instruction
func Return(label string) Instruction {
	return Instruction{Op: OpReturn, Label: label, Target: NoTarget}
}

// Bop creates a BOP symbol instruction
func Bop(symbol string) Instruction {
	return Instruction{Op: OpBop, Symbol: symbol, Target: NoTarget}
}

// Read creates a READ instruction
func Read() Instruction { return Instruction{Op: OpRead, Target: NoTarget} }

// Write creates a WRITE instruction
func Write() Instruction { return Instruction{Op: OpWrite, Target: NoTarget} }

// Label creates a LABEL name instruction
func Label(name string) Instruction {
	return Instruction{Op: OpLabel, Label: name, Target: NoTarget}
}

// Dump creates a DUMP ON|OFF instruction
func Dump(on bool) Instruction { return Instruction{Op: OpDump, On: on, Target: NoTarget} }

// Line creates a LINE n instruction
func Line(n int) Instruction { return Instruction{Op: OpLine, N: n, Target: NoTarget} }

// Function creates a FUNCTION name start end instruction
func Function(name string, start, end int) Instruction {
	return Instruction{Op: OpFunction, Name: name, Start: start, End: end, Target: NoTarget}
}

// Formal creates a FORMAL name offset instruction
func Formal(name string, offset int) Instruction {
	return Instruction{Op: OpFormal, Name: name, N: offset, Target: NoTarget}
}

// IsJump reports whether the instruction refers to a label that must be
// resolved before execution
func (i Instruction) IsJump() bool {
	switch i.Op {
	case OpFalseBranch, OpGoto, OpCall:
		return true
	case OpReturn:
		return i.Label != ""
	default:
		return false
	}
}

// BaseID strips the "<<n>>" suffix the compiler adds to function labels
func (i Instruction) BaseID() string {
	if idx := strings.Index(i.Label, "<<"); idx >= 0 {
		return i.Label[:idx]
	}

	return i.Label
}

// String returns the instruction in bytecode file syntax
func (i Instruction) String() string {
	switch i.Op {
	case OpPop, OpArgs, OpLine:
		return fmt.Sprintf("%s %d", i.Op, i.N)
	case OpStore, OpLoad, OpLit:
		if i.Name != "" {
			return fmt.Sprintf("%s %d %s", i.Op, i.N, i.Name)
		}
		return fmt.Sprintf("%s %d", i.Op, i.N)
	case OpFalseBranch, OpGoto, OpCall, OpLabel:
		return fmt.Sprintf("%s %s", i.Op, i.Label)
	case OpReturn:
		if i.Label != "" {
			return fmt.Sprintf("%s %s", i.Op, i.Label)
		}
		return string(i.Op)
	case OpBop:
		return fmt.Sprintf("%s %s", i.Op, i.Symbol)
	case OpDump:
		if i.On {
			return "DUMP ON"
		}
		return "DUMP OFF"
	case OpFunction:
		return fmt.Sprintf("%s %s %d %d", i.Op, i.Name, i.Start, i.End)
	case OpFormal:
		return fmt.Sprintf("%s %s %d", i.Op, i.Name, i.N)
	default:
		return string(i.Op)
	}
}
