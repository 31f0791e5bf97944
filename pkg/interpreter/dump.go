package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"xvm/pkg/bytecode"
)

// dumpStep prints the instruction that just ran and the stack it left
func (i *Interpreter) dumpStep(in bytecode.Instruction) {
	fmt.Fprintln(i.out, i.describe(in))
	fmt.Fprintln(i.out, i.stack.String())
}

// describe renders an executed instruction for DUMP ON output
func (i *Interpreter) describe(in bytecode.Instruction) string {
	const gap = "    "

	switch in.Op {
	case bytecode.OpLit:
		if in.Name != "" {
			return in.String() + gap + "int " + in.Name
		}

	case bytecode.OpLoad:
		if in.Name != "" {
			return in.String() + gap + "<load " + in.Name + ">"
		}

	case bytecode.OpStore:
		if in.Name != "" {
			return fmt.Sprintf("%s%s%s = %d", in, gap, in.Name, i.stored)
		}

	case bytecode.OpCall:
		switch {
		case strings.Contains(in.Label, "<<"):
			return in.String() + gap + in.BaseID() + "(" + joinInts(i.stack.TopFrameValues()) + ")"
		case in.Label == "Read" || in.Label == "Write":
			return in.String() + gap + in.Label + "()"
		}

	case bytecode.OpReturn:
		switch {
		case strings.Contains(in.Label, "<<"):
			return fmt.Sprintf("%s%sexit %s: %d", in, gap, in.BaseID(), i.returned)
		case in.Label != "":
			return fmt.Sprintf("%s%sexit: %d", in, gap, i.returned)
		case i.builtin != "":
			return fmt.Sprintf("%s%sexit %s: %d", in, gap, i.builtin, i.returned)
		}
	}

	return in.String()
}

// traceStep logs an executed instruction when tracing is on
func (i *Interpreter) traceStep(pc int, in bytecode.Instruction) {
	if !i.trace {
		return
	}

	log.Debug("step", "pc", pc, "op", in.String(), "stack", i.stack.String())
}

func joinInts(values []int) string {
	items := make([]string, 0, len(values))
	for _, v := range values {
		items = append(items, strconv.Itoa(v))
	}

	return strings.Join(items, ",")
}
