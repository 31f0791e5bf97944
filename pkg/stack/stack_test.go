package stack_test

import (
	"testing"

	"xvm/pkg/stack"
)

func TestStackOrder(t *testing.T) {
	s := stack.NewStack(1, 2)
	s.Push(3)

	if s.Size() != 3 {
		t.Fatalf("expected size 3, got %d", s.Size())
	}

	for _, expected := range []int{3, 2, 1} {
		top, ok := s.Peek()
		if !ok || top != expected {
			t.Errorf("Peek: expected %d, got %d (ok=%v)", expected, top, ok)
		}
		v, ok := s.Pop()
		if !ok || v != expected {
			t.Errorf("Pop: expected %d, got %d (ok=%v)", expected, v, ok)
		}
	}

	if !s.Empty() {
		t.Errorf("expected empty stack, size %d", s.Size())
	}
}

func TestStackEmpty(t *testing.T) {
	s := stack.NewStack[string]()

	if _, ok := s.Pop(); ok {
		t.Errorf("Pop on empty stack reported ok")
	}
	if _, ok := s.Peek(); ok {
		t.Errorf("Peek on empty stack reported ok")
	}
}

func TestStackAt(t *testing.T) {
	s := stack.NewStack("main", "f", "g")

	tests := []struct {
		index    int
		expected string
		ok       bool
	}{
		{0, "main", true},
		{2, "g", true},
		{3, "", false},
		{-1, "", false},
	}

	for _, test := range tests {
		v, ok := s.At(test.index)
		if ok != test.ok || v != test.expected {
			t.Errorf("At(%d): expected (%q, %v), got (%q, %v)", test.index, test.expected, test.ok, v, ok)
		}
	}
}
