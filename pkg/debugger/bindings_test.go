package debugger_test

import (
	"slices"
	"testing"

	"xvm/pkg/debugger"
)

func TestBindingsShadowing(t *testing.T) {
	b := debugger.NewBindings()
	b.Bind("x", 0, true)
	b.Bind("y", 1, false)
	b.Bind("x", 2, false)

	if offset, _ := b.Lookup("x"); offset != 2 {
		t.Errorf("expected inner x at offset 2, got %d", offset)
	}
	if names := b.Names(); !slices.Equal(names, []string{"y", "x"}) {
		t.Errorf("expected [y x], got %v", names)
	}

	if n := b.PopBindings(1); n != 1 {
		t.Fatalf("expected 1 binding removed, got %d", n)
	}
	if offset, _ := b.Lookup("x"); offset != 0 {
		t.Errorf("expected outer x at offset 0 after pop, got %d", offset)
	}
	if names := b.Names(); !slices.Equal(names, []string{"x", "y"}) {
		t.Errorf("expected [x y], got %v", names)
	}
}

func TestBindingsPopRemovesShadowedName(t *testing.T) {
	b := debugger.NewBindings()
	b.Bind("k", 0, false)
	b.Bind("k", 1, false)

	b.PopBindings(2)
	if _, ok := b.Lookup("k"); ok {
		t.Errorf("expected k to be unbound")
	}
	if b.Total() != 0 {
		t.Errorf("expected no bindings, got %d", b.Total())
	}
}

func TestBindingsProtected(t *testing.T) {
	b := debugger.NewBindings()
	b.Bind("n", 0, true)
	b.Bind("i", 1, false)
	b.Bind("j", 2, false)

	if n := b.PopBindings(5); n != 2 {
		t.Errorf("expected only transient bindings removed, got %d", n)
	}
	if _, ok := b.Lookup("n"); !ok {
		t.Errorf("protected binding was removed")
	}

	b.Bind("i", 1, false)
	b.Restore()
	b.Restore()
	if b.Total() != b.Protected() || b.Total() != 1 {
		t.Errorf("expected only n after restore, got total %d protected %d", b.Total(), b.Protected())
	}
}

func TestFrameString(t *testing.T) {
	f := debugger.NewFrame()
	if f.String() != "( <>, -, -, -, - )" {
		t.Errorf("unexpected empty frame %s", f)
	}

	f.SetFunctionInfo("g", 1, 20)
	f.CurrentLine = 5
	f.Bindings.Bind("a", 4, false)
	f.Bindings.Bind("b", 2, false)

	if f.String() != "( <a/4,b/2>, g, 1, 20, 5 )" {
		t.Errorf("unexpected frame %s", f)
	}
	if !f.Described() || f.InPrologue() {
		t.Errorf("expected a described frame")
	}
}

func TestEnvironment(t *testing.T) {
	env := debugger.NewEnvironment()
	if env.Depth() != 1 {
		t.Fatalf("expected main frame only, got depth %d", env.Depth())
	}
	if _, err := env.EndScope(); err == nil {
		t.Errorf("expected main frame to stay")
	}

	f := env.BeginScope()
	if env.Current() != f || env.Depth() != 2 {
		t.Errorf("expected new frame on top")
	}
	if popped, err := env.EndScope(); err != nil || popped != f {
		t.Errorf("expected to pop the new frame, got %v", err)
	}
}
