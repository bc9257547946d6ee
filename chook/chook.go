// Package chook implements the compiler-hook side-table mechanism: a
// dynamically-attached, globally-keyed attribute on a tree node, as
// opposed to the fixed per-type hook slots tnode.TypeDef declares. Each
// chook id is registered once with free/copy/dumptree callbacks and an
// AUTOPROMOTE flag indicating whether tree-rewriting passes should move
// it from a source node to a replacement destination node (spec §3.5).
package chook

// ID identifies a registered chook kind. Zero is never issued by
// Register, so it is safe to use as an "unset" sentinel.
type ID int

// Descriptor holds the per-kind callbacks for a chook.
type Descriptor struct {
	Name string
	// Free releases a payload's owned resources, if any.
	Free func(payload any)
	// Copy deep-copies a payload.
	Copy func(payload any) any
	// DumpTree renders a payload for diagnostics.
	DumpTree func(payload any) string
	// AutoPromote indicates that fetrans/betrans-style rewrites should
	// move (not copy) this chook from a source node onto its
	// replacement, rather than leaving it behind.
	AutoPromote bool
}

var registry []*Descriptor

// Register appends a new chook kind and returns its stable id.
func Register(d Descriptor) ID {
	registry = append(registry, &d)
	return ID(len(registry)) // 1-based so the zero value means "unset"
}

// Lookup returns the descriptor for id, or nil if id is unset/unknown.
func Lookup(id ID) *Descriptor {
	if id <= 0 || int(id) > len(registry) {
		return nil
	}
	return registry[id-1]
}

// Get reads the chook payload attached to n under id.
func Get(n Node, id ID) (any, bool) {
	return n.Chook(int(id))
}

// Set attaches (or replaces) the chook payload on n under id.
func Set(n Node, id ID, payload any) {
	n.SetChook(int(id), payload)
}

// Copy copies the payload for id using its registered Copy callback (or
// a shallow assignment if none is registered).
func Copy(id ID, payload any) any {
	d := Lookup(id)
	if d == nil || d.Copy == nil {
		return payload
	}
	return d.Copy(payload)
}

// Promote moves (if AutoPromote is set and the chook is present) the
// payload for id from src to dst, removing it from src. It reports
// whether a promotion happened.
func Promote(src, dst Node, id ID) bool {
	d := Lookup(id)
	if d == nil || !d.AutoPromote {
		return false
	}
	v, ok := src.Chook(int(id))
	if !ok {
		return false
	}
	dst.SetChook(int(id), v)
	src.SetChook(int(id), nil)
	return true
}

// Node is the minimal surface chook needs from a tree node; tnode.Node
// satisfies it without chook importing tnode. tnode does not import chook
// either: its side table is keyed by plain int ids.
type Node interface {
	Chook(id int) (any, bool)
	SetChook(id int, v any)
}
