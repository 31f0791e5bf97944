package debugger

// StepMode is the pending stepping request
type StepMode int

const (
	StepNone StepMode = iota
	StepOver
	StepInto
	StepOut
)

func (m StepMode) String() string {
	switch m {
	case StepNone:
		return "none"
	case StepOver:
		return "over"
	case StepInto:
		return "into"
	case StepOut:
		return "out"
	default:
		return "unknown"
	}
}

// Stepper decides when execution suspends. Any suspension clears the mode.
type Stepper struct {
	mode      StepMode
	baseDepth int
	baseLine  int
}

// Set records a stepping request made at depth while stopped at line
func (s *Stepper) Set(mode StepMode, depth, line int) {
	s.mode = mode
	s.baseDepth = depth
	s.baseLine = line
}

// Mode returns the pending mode
func (s *Stepper) Mode() StepMode {
	return s.mode
}

// Clear drops the pending mode
func (s *Stepper) Clear() {
	s.mode = StepNone
}

// AtLine reports whether a line event at the given depth suspends.
// A breakpoint wins over every mode.
func (s *Stepper) AtLine(line, depth int, breakpoint bool) bool {
	stop := breakpoint
	if !stop {
		switch s.mode {
		case StepOver:
			stop = line != s.baseLine && depth == s.baseDepth
		case StepInto:
			stop = line != s.baseLine || depth == s.baseDepth+1
		}
	}

	if stop {
		s.Clear()
	}
	return stop
}

// AtReturn reports whether returning to depth completes a step
func (s *Stepper) AtReturn(depth int) bool {
	stop := false
	switch s.mode {
	case StepOver, StepOut:
		stop = depth == s.baseDepth-1
	}

	if stop {
		s.Clear()
	}
	return stop
}
