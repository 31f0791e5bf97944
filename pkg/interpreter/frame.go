package interpreter

import (
	"fmt"
	"strings"

	"xvm/pkg/stack"
)

// RuntimeStack is the operand stack shared by every call, split into frames
// by a stack of frame-base indices. The main frame (base 0) always exists.
//
// Pop and Peek never cross the current frame base, and a frame marker is
// only removed by PopFrame, so Depth always equals pending calls plus one.
type RuntimeStack struct {
	values []int
	bases  *stack.Stack[int]
}

// NewRuntimeStack creates an empty stack holding only the main frame
func NewRuntimeStack() *RuntimeStack {
	return &RuntimeStack{
		values: make([]int, 0, 32),
		bases:  stack.NewStack(0),
	}
}

// Push appends v to the current frame
func (r *RuntimeStack) Push(v int) int {
	r.values = append(r.values, v)
	return v
}

// Pop removes and returns the top of the current frame
func (r *RuntimeStack) Pop() (int, error) {
	if len(r.values) <= r.FrameBase() {
		return 0, ErrStackEmpty
	}

	top := len(r.values) - 1
	v := r.values[top]
	r.values = r.values[:top]

	return v, nil
}

// Peek returns the top of the current frame without removing it
func (r *RuntimeStack) Peek() (int, error) {
	if len(r.values) <= r.FrameBase() {
		return 0, ErrStackEmpty
	}

	return r.values[len(r.values)-1], nil
}

// PopN pops n values from the current frame
func (r *RuntimeStack) PopN(n int) error {
	for i := 0; i < n; i++ {
		if _, err := r.Pop(); err != nil {
			return err
		}
	}

	return nil
}

// Store pops the top value and writes it at offset in the current frame
func (r *RuntimeStack) Store(offset int) (int, error) {
	v, err := r.Pop()
	if err != nil {
		return 0, err
	}

	idx := r.FrameBase() + offset
	if offset < 0 || idx >= len(r.values) {
		return 0, fmt.Errorf("%w: store at %d", ErrInvalidOffset, offset)
	}
	r.values[idx] = v

	return v, nil
}

// Load pushes a copy of the value at offset in the current frame
func (r *RuntimeStack) Load(offset int) (int, error) {
	idx := r.FrameBase() + offset
	if offset < 0 || idx >= len(r.values) {
		return 0, fmt.Errorf("%w: load from %d", ErrInvalidOffset, offset)
	}

	return r.Push(r.values[idx]), nil
}

// NewFrame starts a frame holding the top n values
func (r *RuntimeStack) NewFrame(n int) error {
	base := len(r.values) - n
	if n < 0 || base < r.FrameBase() {
		return fmt.Errorf("%w: frame of %d values over %d", ErrStackEmpty, n, len(r.values)-r.FrameBase())
	}

	r.bases.Push(base)
	return nil
}

// PopFrame collapses the current frame to its top value, which is pushed
// onto the caller frame and returned
func (r *RuntimeStack) PopFrame() (int, error) {
	if r.bases.Size() < 2 {
		return 0, ErrFrameStackEmpty
	}

	top, err := r.Peek()
	if err != nil {
		return 0, err
	}

	base, _ := r.bases.Pop()
	r.values = r.values[:base]

	return r.Push(top), nil
}

// FrameBase returns the base index of the current frame
func (r *RuntimeStack) FrameBase() int {
	base, _ := r.bases.Peek()
	return base
}

// BaseAt returns the base of the frame at depth i, counting the main frame as 0
func (r *RuntimeStack) BaseAt(i int) (int, bool) {
	return r.bases.At(i)
}

// TopFrameValues returns a copy of the current frame's values
func (r *RuntimeStack) TopFrameValues() []int {
	return append([]int(nil), r.values[r.FrameBase():]...)
}

// ClearTopFrame drops every value of the current frame, keeping its base
func (r *RuntimeStack) ClearTopFrame() {
	r.values = r.values[:r.FrameBase()]
}

// ValueAt returns the value at absolute index idx
func (r *RuntimeStack) ValueAt(idx int) (int, error) {
	if idx < 0 || idx >= len(r.values) {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidOffset, idx)
	}

	return r.values[idx], nil
}

// SetValueAt overwrites the value at absolute index idx
func (r *RuntimeStack) SetValueAt(idx, v int) error {
	if idx < 0 || idx >= len(r.values) {
		return fmt.Errorf("%w: index %d", ErrInvalidOffset, idx)
	}

	r.values[idx] = v
	return nil
}

// Depth returns the number of frames, including the main frame
func (r *RuntimeStack) Depth() int {
	return r.bases.Size()
}

// Len returns the number of values on the stack
func (r *RuntimeStack) Len() int {
	return len(r.values)
}

// String renders every frame, e.g. "[1,2] [3]"
func (r *RuntimeStack) String() string {
	bases := r.bases.Array()
	frames := make([]string, 0, len(bases))

	for i, start := range bases {
		end := len(r.values)
		if i+1 < len(bases) {
			end = bases[i+1]
		}

		frames = append(frames, "["+joinInts(r.values[start:end])+"]")
	}

	return strings.Join(frames, " ")
}
