package interpreter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"xvm/pkg/bytecode"
)

const readPrompt = "Enter an integer, or -1 to quit: "

// coreStep executes one instruction against the stacks and PC. Jumps set
// the PC one short of their target; Step advances it afterwards.
func coreStep(i *Interpreter, in bytecode.Instruction) error {
	switch in.Op {
	case bytecode.OpHalt:
		i.running = false
		return nil

	case bytecode.OpPop:
		return i.stack.PopN(in.N)

	case bytecode.OpFalseBranch:
		v, err := i.stack.Pop()
		if err != nil {
			return err
		}
		if v == 0 {
			return i.jump(in)
		}
		return nil

	case bytecode.OpGoto:
		return i.jump(in)

	case bytecode.OpStore:
		v, err := i.stack.Store(in.N)
		if err != nil {
			return err
		}
		i.stored = v
		return nil

	case bytecode.OpLoad:
		_, err := i.stack.Load(in.N)
		return err

	case bytecode.OpLit:
		i.stack.Push(in.N)
		return nil

	case bytecode.OpArgs:
		return i.stack.NewFrame(in.N)

	case bytecode.OpCall:
		i.returns.Push(i.pc)
		return i.jump(in)

	case bytecode.OpReturn:
		ret, ok := i.returns.Pop()
		if !ok {
			return ErrReturnStackEmpty
		}
		v, err := i.stack.PopFrame()
		if err != nil {
			return err
		}
		i.returned = v
		i.pc = ret
		return nil

	case bytecode.OpBop:
		right, err := i.stack.Pop()
		if err != nil {
			return err
		}
		left, err := i.stack.Pop()
		if err != nil {
			return err
		}
		res, err := evalBinary(in.Symbol, left, right)
		if err != nil {
			return err
		}
		i.stack.Push(res)
		return nil

	case bytecode.OpRead:
		v, err := i.read()
		if err != nil {
			return err
		}
		i.stack.Push(v)
		i.builtin = "READ"
		return nil

	case bytecode.OpWrite:
		v, err := i.stack.Peek()
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, v)
		i.builtin = "WRITE"
		return nil

	case bytecode.OpDump:
		if i.dumpAllowed {
			i.dump = in.On
		}
		return nil

	case bytecode.OpLabel, bytecode.OpLine, bytecode.OpFunction, bytecode.OpFormal:
		// markers for the loader and the debugger
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrNotImplemented, in.Op)
	}
}

// jump moves the PC so the post-increment lands on the resolved target
func (i *Interpreter) jump(in bytecode.Instruction) error {
	if in.Target == bytecode.NoTarget {
		return fmt.Errorf("%w %q", bytecode.ErrUnresolvedLabel, in.Label)
	}

	i.pc = in.Target - 1
	return nil
}

// read prompts until an integer is entered. -1 or end of input ends the
// program with ErrTerminated.
func (i *Interpreter) read() (int, error) {
	for {
		line, err := i.in.ReadLine(readPrompt)
		if errors.Is(err, io.EOF) {
			return 0, ErrTerminated
		}
		if err != nil {
			return 0, err
		}

		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(i.out, "Invalid input.")
			continue
		}

		if v == -1 {
			return 0, ErrTerminated
		}

		return v, nil
	}
}
