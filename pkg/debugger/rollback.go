package debugger

import "xvm/pkg/stack"

// Rollback keeps one snapshot of each frame's values as they were when
// the function body started. Main's snapshot is empty until main's first
// line runs.
type Rollback struct {
	snapshots *stack.Stack[[]int]
}

func NewRollback() *Rollback {
	return &Rollback{snapshots: stack.NewStack([]int{})}
}

// Push saves a snapshot for a new frame
func (r *Rollback) Push(values []int) {
	r.snapshots.Push(append([]int(nil), values...))
}

// Replace overwrites the current frame's snapshot
func (r *Rollback) Replace(values []int) {
	r.snapshots.Pop()
	r.Push(values)
}

// Pop drops the snapshot of a returning frame
func (r *Rollback) Pop() ([]int, bool) {
	return r.snapshots.Pop()
}

// Peek returns a copy of the current frame's snapshot
func (r *Rollback) Peek() []int {
	values, _ := r.snapshots.Peek()
	return append([]int(nil), values...)
}

func (r *Rollback) Depth() int {
	return r.snapshots.Size()
}
