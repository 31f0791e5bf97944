package interpreter

import (
	"errors"
	"fmt"

	"xvm/pkg/bytecode"
)

var (
	ErrNotImplemented   = errors.New("operation not implemented")
	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")

	ErrStackEmpty       = errors.New("operand stack is empty")
	ErrFrameStackEmpty  = errors.New("frame-base stack is empty")
	ErrReturnStackEmpty = errors.New("return-address stack is empty")
	ErrInvalidOffset    = errors.New("offset outside the current frame")
	ErrUnknownOperator  = errors.New("unknown binary operator")
	ErrDivisionByZero   = errors.New("division by zero")

	// ErrTerminated is returned when the user ends the program from READ.
	// It is not a failure.
	ErrTerminated = errors.New("program terminated by user")
)

// FatalError stops the run. It records the instruction that failed.
type FatalError struct {
	PC  int
	Op  bytecode.Operation
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal error at pc %d (%s): %v", e.PC, e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
