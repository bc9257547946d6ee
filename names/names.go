// Package names implements the name/namespace/scope environment (spec
// §3.4, §4.3): a global table of declared names addressed by
// tnode.NameID, a stack of lexical scopes supporting mark/descope for
// block-scoped bulk removal, and namespaces that group related names
// under a qualified NS.name lookup with an optional chained "next"
// namespace for extension/include-style visibility.
//
// The scope stack shape is adapted from the teacher's scopeManager
// (analyzer/core/symbolication/scope.go): a slice-backed stack of scopes
// searched in reverse order, generalized here to the mark/markdescope
// bulk-restore model spec §4.3 asks for instead of single push/pop.
package names

import "fmt"

// Name is a single declared identifier: its text, the node it declares
// (stored as a tnode.NameID by the caller, kept untyped here so this
// package never needs to import tnode), and the namespace it lives in.
type Name struct {
	ID        int32
	Text      string
	Namespace *Namespace
	// DeclNode is an opaque reference to the declaring tnode.Node, stored
	// as `any` so this package does not import tnode (tnode already holds
	// the reverse link via NameID; see tnode.NameID's doc comment).
	DeclNode any
	// Visible is false while a declaration is being processed but not yet
	// complete, mirroring the teacher's SymbolTableEntry.IsActive: it
	// prevents e.g. "x := f(x)" from resolving the RHS x to the LHS
	// declaration being built.
	Visible bool
}

// Namespace groups related names under a qualified lookup (NS.name). A
// namespace may chain to a "next" namespace, consulted when a lookup
// misses locally — the mechanism behind Occam PROTOCOL/library visibility
// and Guppy module includes (spec §4.3).
type Namespace struct {
	Name    string
	Next    *Namespace
	entries map[string]*Name
}

// NewNamespace creates an empty namespace, optionally chained to next.
func NewNamespace(name string, next *Namespace) *Namespace {
	return &Namespace{Name: name, Next: next, entries: make(map[string]*Name)}
}

// Lookup resolves text within ns, falling through to ns.Next on a miss.
func (ns *Namespace) Lookup(text string) (*Name, bool) {
	for cur := ns; cur != nil; cur = cur.Next {
		if n, ok := cur.entries[text]; ok {
			return n, true
		}
	}
	return nil, false
}

// LookupLocal resolves text within ns only, without chaining to Next.
func (ns *Namespace) LookupLocal(text string) (*Name, bool) {
	n, ok := ns.entries[text]
	return n, ok
}

// Declare adds a name to ns, erroring if text is already declared
// locally (redeclaration in the same namespace, spec §4.3 edge case).
func (ns *Namespace) Declare(n *Name) error {
	if _, exists := ns.entries[n.Text]; exists {
		return fmt.Errorf("names: %q already declared in namespace %q", n.Text, ns.Name)
	}
	n.Namespace = ns
	ns.entries[n.Text] = n
	return nil
}

// Qualified renders the NS.name form used in diagnostics.
func (n *Name) Qualified() string {
	if n.Namespace == nil || n.Namespace.Name == "" {
		return n.Text
	}
	return n.Namespace.Name + "." + n.Text
}

// scope is one lexical level of the name stack: a map from text to the
// Name declared at this level, shadowing any outer declaration of the
// same text.
type scope struct {
	entries map[string]*Name
}

func newScope() *scope { return &scope{entries: make(map[string]*Name)} }

// Mark is an opaque checkpoint into the scope stack, returned by Mark
// and consumed by MarkDescope to discard every scope pushed since.
type Mark int

// Table is the global ordered namestack plus the global namespace
// registry, the root object a pass driver threads through prescope and
// every later pass that needs to resolve or declare a name.
type Table struct {
	stack      []*scope
	allocated  []*Name
	namespaces map[string]*Namespace
	nextID     int32
}

// NewTable creates an empty table with one base scope already pushed, so
// top-level declarations always have somewhere to land.
func NewTable() *Table {
	t := &Table{namespaces: make(map[string]*Namespace)}
	t.stack = []*scope{newScope()}
	return t
}

// Mark returns a checkpoint at the current stack depth.
func (t *Table) Mark() Mark { return Mark(len(t.stack)) }

// AddScope pushes a fresh, empty scope onto the stack.
func (t *Table) AddScope() { t.stack = append(t.stack, newScope()) }

// MarkDescope truncates the stack back to the depth recorded by m,
// discarding every scope pushed since — the bulk block-exit operation
// spec §4.3 specifies in place of one-at-a-time PopScope, since a single
// block can introduce several nested scopes (e.g. a WHILE condition
// scope and its body scope) that all need to vanish together at once.
func (t *Table) MarkDescope(m Mark) error {
	if int(m) > len(t.stack) {
		return fmt.Errorf("names: descope mark %d beyond current depth %d", m, len(t.stack))
	}
	t.stack = t.stack[:m]
	if len(t.stack) == 0 {
		// never leave the stack fully empty; a base scope must always
		// exist for top-level lookups to land in.
		t.stack = []*scope{newScope()}
	}
	return nil
}

// Declare allocates a new Name for text in the current (innermost)
// scope, assigning it a fresh id. Shadowing an outer scope's declaration
// of the same text is allowed (spec §4.3); redeclaring within the same
// scope is not.
func (t *Table) Declare(text string, declNode any) (*Name, error) {
	if len(t.stack) == 0 {
		return nil, fmt.Errorf("names: no scope on stack")
	}
	cur := t.stack[len(t.stack)-1]
	if _, exists := cur.entries[text]; exists {
		return nil, fmt.Errorf("names: %q already declared in this scope", text)
	}
	t.nextID++
	n := &Name{ID: t.nextID, Text: text, DeclNode: declNode, Visible: false}
	cur.entries[text] = n
	t.allocated = append(t.allocated, n)
	return n, nil
}

// MakeVisible flips n.Visible to true, called once a declaration's own
// initializer has finished resolving so later references (but not the
// initializer itself) can see it.
func (n *Name) MakeVisible() { n.Visible = true }

// Find searches the scope stack innermost-first for text, returning the
// nearest visible declaration, or (nil, false) if none is found.
func (t *Table) Find(text string) (*Name, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if n, ok := t.stack[i].entries[text]; ok && n.Visible {
			return n, true
		}
	}
	return nil, false
}

// FindIncludingInvisible is Find but does not filter on n.Visible,
// needed by the one caller (the declaration's own initializer) allowed
// to see an in-progress declaration, e.g. recursive function literals.
func (t *Table) FindIncludingInvisible(text string) (*Name, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if n, ok := t.stack[i].entries[text]; ok {
			return n, true
		}
	}
	return nil, false
}

// ByID returns the Name allocated for id, or nil if id is out of range.
// id is 1-based, matching tnode.NameID's "zero means unset" convention.
func (t *Table) ByID(id int32) *Name {
	if id <= 0 || int(id) > len(t.allocated) {
		return nil
	}
	return t.allocated[id-1]
}

// Namespace returns (creating if absent) the namespace registered under
// name, chained to next when first created.
func (t *Table) Namespace(name string, next *Namespace) *Namespace {
	if ns, ok := t.namespaces[name]; ok {
		return ns
	}
	ns := NewNamespace(name, next)
	t.namespaces[name] = ns
	return ns
}

// Depth reports the current scope stack depth, for diagnostics/tests.
func (t *Table) Depth() int { return len(t.stack) }
