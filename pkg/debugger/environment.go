package debugger

import "xvm/pkg/stack"

// Environment is the stack of frames, one per active call plus main
type Environment struct {
	frames *stack.Stack[*Frame]
}

// NewEnvironment creates an environment holding only the main frame
func NewEnvironment() *Environment {
	env := &Environment{frames: stack.NewStack[*Frame]()}
	env.BeginScope()

	return env
}

// BeginScope pushes a new frame for a call
func (e *Environment) BeginScope() *Frame {
	f := NewFrame()
	e.frames.Push(f)

	return f
}

// EndScope pops the current frame. The main frame is never popped.
func (e *Environment) EndScope() (*Frame, error) {
	if e.frames.Size() < 2 {
		return nil, ErrNoFrame
	}

	f, _ := e.frames.Pop()
	return f, nil
}

// Current returns the newest frame
func (e *Environment) Current() *Frame {
	f, _ := e.frames.Peek()
	return f
}

// At returns the frame at depth i, counting the main frame as 0
func (e *Environment) At(i int) (*Frame, bool) {
	return e.frames.At(i)
}

// Depth returns the number of frames
func (e *Environment) Depth() int {
	return e.frames.Size()
}
