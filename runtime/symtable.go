package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Binding tables for name resolution. Binding tables are attached to scope
// tables; scope tables are organized in chains.
//

// --- Bindings --------------------------------------------------------------

// RenderFunc renders a call from its already-rendered argument strings.
type RenderFunc func(args []string) (string, error)

// Binding is the entry type to be stored into binding tables. A binding is
// either symbol-shaped, mapping a name to a literal replacement text, or
// call-shaped, mapping a name to a render function. Bindings are immutable
// once placed in a table.
type Binding struct {
	name   string
	text   string
	render RenderFunc
}

// NewBinding creates a new binding for a name. Without further
// qualification the binding is symbol-shaped with empty replacement text.
func NewBinding(name string) *Binding {
	return &Binding{name: name}
}

// WithText sets a replacement text, making the binding symbol-shaped.
// Use as
//
//    b := NewBinding("pi").WithText(`\pi`)
//
func (b *Binding) WithText(text string) *Binding {
	b.text = text
	b.render = nil
	return b
}

// WithRenderer sets a render function, making the binding call-shaped.
func (b *Binding) WithRenderer(render RenderFunc) *Binding {
	b.render = render
	return b
}

// Name gets the binding's name.
func (b *Binding) Name() string {
	return b.name
}

// IsSymbol is a predicate: does the binding carry a replacement text?
func (b *Binding) IsSymbol() bool {
	return b.render == nil
}

// IsRenderer is a predicate: does the binding carry a render function?
func (b *Binding) IsRenderer() bool {
	return b.render != nil
}

// Text returns the replacement text of a symbol-shaped binding.
func (b *Binding) Text() string {
	return b.text
}

// Render invokes the render function of a call-shaped binding.
func (b *Binding) Render(args []string) (string, error) {
	if b.render == nil {
		return "", fmt.Errorf("'%s' has no render function", b.name)
	}
	return b.render(args)
}

// String is a debug Stringer for bindings.
func (b *Binding) String() string {
	if b.IsRenderer() {
		return fmt.Sprintf("<bind '%s':render>", b.name)
	}
	return fmt.Sprintf("<bind '%s'=%q>", b.name, b.text)
}

// === Binding Tables ========================================================

// BindingTable is an ordered table of bindings (map-like semantics,
// insertion order preserved).
type BindingTable struct {
	table *linkedhashmap.Map
}

// NewBindingTable creates an empty binding table.
func NewBindingTable() *BindingTable {
	return &BindingTable{
		table: linkedhashmap.New(),
	}
}

// Resolve checks for a binding in the table. Returns a binding or nil.
func (t *BindingTable) Resolve(name string) *Binding {
	if b, ok := t.table.Get(name); ok {
		return b.(*Binding)
	}
	return nil
}

// Def stores a binding into the table. The binding's name may not be empty.
// Overwrites an existing binding with this name, if any; returns the
// previously stored binding (or nil).
func (t *BindingTable) Def(b *Binding) *Binding {
	if b == nil || b.name == "" {
		return nil
	}
	old := t.Resolve(b.name)
	t.table.Put(b.name, b)
	return old
}

// Size counts the bindings in a table.
func (t *BindingTable) Size() int {
	return t.table.Size()
}

// Each iterates over each binding in the table, in insertion order,
// executing a mapper function.
func (t *BindingTable) Each(mapper func(string, *Binding)) {
	t.table.Each(func(key interface{}, value interface{}) {
		mapper(key.(string), value.(*Binding))
	})
}

// === Scope Tables ==========================================================

// ScopeTable is a named table of bindings. Scope tables may link back to a
// parent table, forming a chain.
//
// Lookup invariant: resolving a name searches the local table first, then
// the parent chain, outward; the first match wins. This gives closer (more
// specific) tables precedence over defaults.
type ScopeTable struct {
	Name     string
	Parent   *ScopeTable
	bindings *BindingTable
}

// NewScopeTable creates a new scope table.
func NewScopeTable(nm string, parent *ScopeTable) *ScopeTable {
	sc := &ScopeTable{
		Name:     nm,
		Parent:   parent,
		bindings: NewBindingTable(),
	}
	return sc
}

// Prettyfied Stringer.
func (s *ScopeTable) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Bindings returns the binding table of a scope table.
func (s *ScopeTable) Bindings() *BindingTable {
	return s.bindings
}

// Def stores a binding in the scope table. Returns the previously stored
// binding under this name, if any.
func (s *ScopeTable) Def(b *Binding) *Binding {
	return s.bindings.Def(b)
}

// Resolve finds a binding. Returns the binding (or nil) and a scope table.
// The scope table is the table (of a chain of tables) the binding was
// found in.
func (s *ScopeTable) Resolve(name string) (*Binding, *ScopeTable) {
	b := s.bindings.Resolve(name)
	if b != nil {
		return b, s
	}
	for s.Parent != nil {
		s = s.Parent
		b, _ = s.Resolve(name)
		if b != nil {
			return b, s
		}
	}
	return b, nil
}

// === Scope Chains ==========================================================

// ScopeChain is an ordered sequence of scope tables, searched front-to-back.
// Chains are constructed fresh per translation call and discarded after;
// the tables themselves may be shared and long-lived.
type ScopeChain []*ScopeTable

// Chain builds a scope chain from tables, given in lookup order.
func Chain(tables ...*ScopeTable) ScopeChain {
	return ScopeChain(tables)
}

// Resolve finds a binding, searching the chain front-to-back (and each
// table's parents, if any). The first match wins; kind checking of the
// matched binding is up to the lookup site. Returns the binding (or nil)
// and the table it was found in.
func (c ScopeChain) Resolve(name string) (*Binding, *ScopeTable) {
	for _, table := range c {
		if b, tab := table.Resolve(name); b != nil {
			tracer().Debugf("resolved '%s' in %v", name, tab)
			return b, tab
		}
	}
	tracer().Debugf("cannot resolve '%s' in chain", name)
	return nil, nil
}
