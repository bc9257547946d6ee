// Package tnode implements the generic tagged parse tree ("tnode") shared
// by every front-end language: a node type declares a fixed shape (ordered
// subnodes, named-entity slots, opaque hooks); a node tag is a concrete
// variant of that shape. Both registries are append-only and indices are
// stable once assigned.
package tnode

import "fmt"

// NameID identifies a name in the enclosing names.Table by index rather
// than by pointer. Declaration nodes and their names form a cycle (a name
// points at its declaration node, the declaration node's name slot points
// back at the name); resolving the cycle through an index instead of a
// raw pointer keeps tnode itself free of any dependency on the names
// package. Zero is the "no name" sentinel.
type NameID int32

// Origin is the source-location of a node: file plus line, the minimum
// needed to key diagnostics against (see package diag).
type Origin struct {
	File string
	Line int
}

func (o Origin) String() string {
	if o.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", o.File, o.Line)
}

// TypeDef declares a node shape: how many ordered subnodes, named-entity
// slots and opaque hook slots a node of this type carries, plus the
// per-shape callbacks that let hooks which themselves own subtrees
// (chiefly *List) participate in generic walks, copies and frees without
// the generic machinery knowing their concrete layout.
type TypeDef struct {
	Name   string
	NSub   int
	NName  int
	NHooks int

	HookFree        func(hook any)
	HookCopy        func(hook any) any
	HookCopyOrAlias func(hook any, pred AliasPredicate) any
	HookDumpTree    func(hook any, w func(string), indent int)
	HookDumpSTree   func(hook any, w func(string))

	HookPostWalkTree       func(hook any, visit func(*Node) error) error
	HookPreWalkTree        func(hook any, visit func(*Node) (bool, error)) error
	HookModPreWalkTree     func(hook any, visit func(**Node) (bool, error)) error
	HookModPrePostWalkTree func(hook any, pre func(**Node) (int, error), post func(**Node) error) error

	// Index is assigned by RegisterType and stable thereafter.
	Index int
}

// TagFlag carries parsing-shape hints for a tag, e.g. whether a long-form
// front-end production parses an indented process list into a particular
// subnode. The core tree machinery does not interpret these itself; only
// front-ends and the prescope pass care.
type TagFlag uint32

const (
	// FlagLongAction marks a long-form action (e.g. case input; parses a
	// list of things into subnode 1).
	FlagLongAction TagFlag = 1 << iota
	// FlagIndentedProcList marks an indented process list production.
	FlagIndentedProcList
	// FlagIndentedProc marks a single indented process production.
	FlagIndentedProc
	// FlagIndentedNameList marks an indented name list production.
	FlagIndentedNameList
	// FlagIndentedDeclList marks an indented declaration list production.
	FlagIndentedDeclList
)

// TagDef is a concrete variant of a TypeDef: e.g. type cnode has tags SEQ
// and PAR.
type TagDef struct {
	Name  string
	Type  *TypeDef
	Flags TagFlag
	Index int
}

var (
	typeRegistry []*TypeDef
	tagRegistry  []*TagDef
)

// RegisterType appends td to the global, append-only type registry and
// assigns it a stable index.
func RegisterType(td *TypeDef) *TypeDef {
	td.Index = len(typeRegistry)
	typeRegistry = append(typeRegistry, td)
	return td
}

// RegisterTag appends a new tag of the given type to the global,
// append-only tag registry.
func RegisterTag(name string, typ *TypeDef, flags TagFlag) *TagDef {
	td := &TagDef{Name: name, Type: typ, Flags: flags, Index: len(tagRegistry)}
	tagRegistry = append(tagRegistry, td)
	return td
}

// Types returns the current type registry snapshot, for diagnostics/tests.
func Types() []*TypeDef { return append([]*TypeDef(nil), typeRegistry...) }

// Tags returns the current tag registry snapshot, for diagnostics/tests.
func Tags() []*TagDef { return append([]*TagDef(nil), tagRegistry...) }

// Node is a single tree node: a tag, an origin, and the three slot
// vectors the tag's type declares (subnodes, names, hooks), plus an
// independent compiler-hook side table keyed by chook id (see package
// chook). Subnode slots hold trees, name slots hold NameIDs, ordinary
// hook slots hold whatever per-type payload the type's callbacks know how
// to free/copy/walk (typically a *List).
type Node struct {
	Tag    *TagDef
	Origin Origin

	Subs  []*Node
	Names []NameID
	Hooks []any

	Chooks map[int]any
}

// New allocates an all-null node of the shape tag's type declares.
func New(tag *TagDef, origin Origin) *Node {
	if tag == nil {
		internalf("tnode.New: nil tag")
	}
	return &Node{
		Tag:    tag,
		Origin: origin,
		Subs:   make([]*Node, tag.Type.NSub),
		Names:  make([]NameID, tag.Type.NName),
		Hooks:  make([]any, tag.Type.NHooks),
	}
}

// From allocates an all-null node of tag's shape, copying origin from src.
func From(tag *TagDef, src *Node) *Node {
	if src == nil {
		return New(tag, Origin{})
	}
	return New(tag, src.Origin)
}

// Create allocates a node and immediately populates its three slot
// vectors. Each slice must match the tag's declared arity exactly (pass
// nil for a zero-length slot kind); a mismatch is an internal bug.
func Create(tag *TagDef, origin Origin, subs []*Node, names []NameID, hooks []any) *Node {
	n := New(tag, origin)
	if len(subs) != len(n.Subs) {
		internalf("tnode.Create(%s): expected %d subnodes, got %d", tag.Name, len(n.Subs), len(subs))
	}
	if len(names) != len(n.Names) {
		internalf("tnode.Create(%s): expected %d name slots, got %d", tag.Name, len(n.Names), len(names))
	}
	if len(hooks) != len(n.Hooks) {
		internalf("tnode.Create(%s): expected %d hook slots, got %d", tag.Name, len(n.Hooks), len(hooks))
	}
	copy(n.Subs, subs)
	copy(n.Names, names)
	copy(n.Hooks, hooks)
	return n
}

// Sub returns subnode i, bounds-checked against the node's declared arity.
func (n *Node) Sub(i int) *Node {
	if i < 0 || i >= len(n.Subs) {
		internalf("tnode: subnode index %d out of range for %s (nsub=%d)", i, n.Tag.Name, len(n.Subs))
	}
	return n.Subs[i]
}

// SetSub sets subnode i, bounds-checked against the node's declared arity.
func (n *Node) SetSub(i int, c *Node) {
	if i < 0 || i >= len(n.Subs) {
		internalf("tnode: subnode index %d out of range for %s (nsub=%d)", i, n.Tag.Name, len(n.Subs))
	}
	n.Subs[i] = c
}

// Name returns name slot i.
func (n *Node) Name(i int) NameID {
	if i < 0 || i >= len(n.Names) {
		internalf("tnode: name index %d out of range for %s (nname=%d)", i, n.Tag.Name, len(n.Names))
	}
	return n.Names[i]
}

// SetName sets name slot i.
func (n *Node) SetName(i int, id NameID) {
	if i < 0 || i >= len(n.Names) {
		internalf("tnode: name index %d out of range for %s (nname=%d)", i, n.Tag.Name, len(n.Names))
	}
	n.Names[i] = id
}

// Hook returns ordinary hook slot i.
func (n *Node) Hook(i int) any {
	if i < 0 || i >= len(n.Hooks) {
		internalf("tnode: hook index %d out of range for %s (nhooks=%d)", i, n.Tag.Name, len(n.Hooks))
	}
	return n.Hooks[i]
}

// SetHook sets ordinary hook slot i.
func (n *Node) SetHook(i int, v any) {
	if i < 0 || i >= len(n.Hooks) {
		internalf("tnode: hook index %d out of range for %s (nhooks=%d)", i, n.Tag.Name, len(n.Hooks))
	}
	n.Hooks[i] = v
}

// Chook returns the compiler-hook payload for id and whether it is set.
func (n *Node) Chook(id int) (any, bool) {
	if n.Chooks == nil {
		return nil, false
	}
	v, ok := n.Chooks[id]
	return v, ok
}

// SetChook attaches (or replaces) the compiler-hook payload for id; a nil
// v removes it.
func (n *Node) SetChook(id int, v any) {
	if v == nil {
		delete(n.Chooks, id)
		return
	}
	if n.Chooks == nil {
		n.Chooks = make(map[int]any)
	}
	n.Chooks[id] = v
}

// Is reports whether n's tag is tag (nil-safe: a nil node is never any tag).
func (n *Node) Is(tag *TagDef) bool {
	return n != nil && n.Tag == tag
}

// Free releases n and, recursively, every owned subnode and owned hook
// exactly once. Names are not owned by nodes (they live in the names
// table) so freeing a node never touches the name table.
func Free(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.Subs {
		Free(c)
	}
	if n.Tag.Type.HookFree != nil {
		for _, h := range n.Hooks {
			if h != nil {
				n.Tag.Type.HookFree(h)
			}
		}
	}
	n.Subs = nil
	n.Hooks = nil
	n.Chooks = nil
}
