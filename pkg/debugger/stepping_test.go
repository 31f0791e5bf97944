package debugger_test

import (
	"testing"

	"xvm/pkg/debugger"
)

func TestStepper(t *testing.T) {
	tests := []struct {
		mode        debugger.StepMode
		line, depth int
		breakpoint  bool
		expected    bool
		description string
	}{
		{debugger.StepNone, 7, 1, false, false, "continue ignores lines"},
		{debugger.StepNone, 7, 3, true, true, "breakpoint while continuing"},
		{debugger.StepOver, 5, 1, false, false, "same line"},
		{debugger.StepOver, 6, 2, false, false, "deeper call"},
		{debugger.StepOver, 6, 1, false, true, "next line"},
		{debugger.StepOver, 3, 2, true, true, "breakpoint inside the call"},
		{debugger.StepInto, 5, 2, false, true, "entered a call"},
		{debugger.StepInto, 6, 1, false, true, "next line"},
		{debugger.StepInto, 5, 1, false, false, "same line, same depth"},
		{debugger.StepOut, 9, 1, false, false, "lines never end a step out"},
	}

	for _, test := range tests {
		var s debugger.Stepper
		s.Set(test.mode, 1, 5)

		if got := s.AtLine(test.line, test.depth, test.breakpoint); got != test.expected {
			t.Errorf("%s: expected %v, got %v", test.description, test.expected, got)
		}
		if test.expected && s.Mode() != debugger.StepNone {
			t.Errorf("%s: suspension must clear the mode, got %s", test.description, s.Mode())
		}
	}
}

func TestStepperReturn(t *testing.T) {
	var s debugger.Stepper

	s.Set(debugger.StepOut, 3, 0)
	if s.AtReturn(3) {
		t.Errorf("returning from a deeper call must not end step out")
	}
	if !s.AtReturn(2) {
		t.Errorf("expected step out to end in the caller")
	}

	s.Set(debugger.StepInto, 3, 4)
	if s.AtReturn(2) {
		t.Errorf("step into only stops on lines")
	}
}

func TestRollbackSnapshots(t *testing.T) {
	r := debugger.NewRollback()
	if r.Depth() != 1 || len(r.Peek()) != 0 {
		t.Fatalf("expected one empty snapshot")
	}

	values := []int{1, 2}
	r.Push(values)
	values[0] = 9
	if got := r.Peek(); got[0] != 1 {
		t.Errorf("snapshot must not alias the caller's slice, got %v", got)
	}

	r.Replace([]int{3})
	if got := r.Peek(); len(got) != 1 || got[0] != 3 || r.Depth() != 2 {
		t.Errorf("expected [3] at depth 2, got %v at %d", got, r.Depth())
	}
}

func TestSourceBreakpoints(t *testing.T) {
	s := debugger.ParseSource("a\nb\nc\n")
	if s.Len() != 3 {
		t.Fatalf("expected 3 lines, got %d", s.Len())
	}

	s.SetBreakpoint(3, true)
	s.SetBreakpoint(1, true)
	if s.SetBreakpoint(4, true) {
		t.Errorf("expected line 4 to be out of range")
	}

	if bps := s.Breakpoints(); len(bps) != 2 || bps[0] != 1 || bps[1] != 3 {
		t.Errorf("expected [1 3], got %v", bps)
	}

	s.ClearAll()
	if len(s.Breakpoints()) != 0 {
		t.Errorf("expected no breakpoints")
	}
}
