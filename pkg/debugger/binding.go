package debugger

// noBinding marks a missing record index
const noBinding = -1

// binding is one record of the undo log
type binding struct {
	name     string
	offset   int // frame-relative stack offset
	prevTop  int // record on top of the scope before this one
	shadowed int // older record for the same name
}

// Bindings is a frame's symbol table. Records live in an arena addressed
// by index and are removed strictly in LIFO order, so removing the newest
// binding of a name reinstates the one it shadowed.
type Bindings struct {
	records   []binding
	live      map[string]int // name -> current head record
	top       int            // newest live record
	protected int            // bindings that survive rollback
}

// NewBindings creates an empty table
func NewBindings() *Bindings {
	return &Bindings{
		records: make([]binding, 0, 8),
		live:    make(map[string]int),
		top:     noBinding,
	}
}

// Bind declares name at offset, shadowing any older binding of the same
// name. Protected bindings are only removed by Restore.
func (b *Bindings) Bind(name string, offset int, protected bool) {
	shadowed, ok := b.live[name]
	if !ok {
		shadowed = noBinding
	}

	b.records = append(b.records, binding{
		name:     name,
		offset:   offset,
		prevTop:  b.top,
		shadowed: shadowed,
	})

	b.top = len(b.records) - 1
	b.live[name] = b.top

	if protected {
		b.protected++
	}
}

// PopBindings removes the n newest transient bindings and returns how many
// were removed. Protected bindings stop the unwinding.
func (b *Bindings) PopBindings(n int) int {
	removed := 0
	for removed < n && b.Total() > b.protected {
		b.removeTop()
		removed++
	}

	return removed
}

// Restore removes every transient binding
func (b *Bindings) Restore() {
	for b.Total() > b.protected {
		b.removeTop()
	}
}

func (b *Bindings) removeTop() {
	rec := b.records[b.top]

	delete(b.live, rec.name)
	if rec.shadowed != noBinding {
		b.live[rec.name] = rec.shadowed
	}

	b.records = b.records[:b.top]
	b.top = rec.prevTop
}

// Lookup returns the frame-relative offset bound to name
func (b *Bindings) Lookup(name string) (int, bool) {
	idx, ok := b.live[name]
	if !ok {
		return 0, false
	}

	return b.records[idx].offset, true
}

// Names returns every visible name, oldest declaration first
func (b *Bindings) Names() []string {
	names := make([]string, 0, len(b.live))
	for idx, rec := range b.records {
		if b.live[rec.name] == idx {
			names = append(names, rec.name)
		}
	}

	return names
}

// Total returns the number of live bindings, shadowed ones included
func (b *Bindings) Total() int {
	return len(b.records)
}

// Protected returns the number of bindings that survive rollback
func (b *Bindings) Protected() int {
	return b.protected
}
