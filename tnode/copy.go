package tnode

// AliasDecision is returned per-node by an AliasPredicate during
// CopyOrAliasTree: either share the original node (COPY_ALIAS) or deep
// copy some combination of its subnodes/hooks/chooks.
type AliasDecision uint8

const (
	// CopyAlias returns the original pointer; substructure is shared.
	CopyAlias AliasDecision = 0
	// CopySubs deep-copies subnodes.
	CopySubs AliasDecision = 1 << iota
	// CopyHooks deep-copies ordinary hook payloads.
	CopyHooks
	// CopyChooks deep-copies the compiler-hook side table.
	CopyChooks
)

// AliasPredicate decides, per node, how CopyOrAliasTree should treat it.
type AliasPredicate func(n *Node) AliasDecision

// CopyTree deep-copies t: every subnode is recursively copied, every
// ordinary hook is copied via its type's HookCopy callback, and the
// chook side table is copied shallowly per payload (chooks don't usually
// need deep copies of their own substructure beyond what HookCopy-style
// callbacks would do; callers needing deeper chook copies should clone
// before attaching).
func CopyTree(t *Node) *Node {
	if t == nil {
		return nil
	}
	n := &Node{Tag: t.Tag, Origin: t.Origin}
	n.Subs = make([]*Node, len(t.Subs))
	for i, c := range t.Subs {
		n.Subs[i] = CopyTree(c)
	}
	n.Names = append([]NameID(nil), t.Names...)
	n.Hooks = make([]any, len(t.Hooks))
	for i, h := range t.Hooks {
		if h == nil {
			continue
		}
		if t.Tag.Type.HookCopy != nil {
			n.Hooks[i] = t.Tag.Type.HookCopy(h)
		} else {
			n.Hooks[i] = h
		}
	}
	if t.Chooks != nil {
		n.Chooks = make(map[int]any, len(t.Chooks))
		for k, v := range t.Chooks {
			n.Chooks[k] = v
		}
	}
	return n
}

// CopyOrAliasTree copies t, consulting pred at every node: CopyAlias
// returns the original node unchanged (shared substructure); otherwise
// the requested combination of subs/hooks/chooks is deep-copied and the
// rest aliased. This lets front-ends that need structurally-fresh copies
// which still share specific leaves (e.g. traces calculus identity
// nodes) express that without a second bespoke copy routine.
func CopyOrAliasTree(t *Node, pred AliasPredicate) *Node {
	if t == nil {
		return nil
	}
	decision := pred(t)
	if decision == CopyAlias {
		return t
	}
	n := &Node{Tag: t.Tag, Origin: t.Origin}
	if decision&CopySubs != 0 {
		n.Subs = make([]*Node, len(t.Subs))
		for i, c := range t.Subs {
			n.Subs[i] = CopyOrAliasTree(c, pred)
		}
	} else {
		n.Subs = append([]*Node(nil), t.Subs...)
	}
	n.Names = append([]NameID(nil), t.Names...)
	if decision&CopyHooks != 0 {
		n.Hooks = make([]any, len(t.Hooks))
		for i, h := range t.Hooks {
			if h == nil {
				continue
			}
			if t.Tag.Type.HookCopy != nil {
				n.Hooks[i] = t.Tag.Type.HookCopy(h)
			} else {
				n.Hooks[i] = h
			}
		}
	} else {
		n.Hooks = append([]any(nil), t.Hooks...)
	}
	if decision&CopyChooks != 0 && t.Chooks != nil {
		n.Chooks = make(map[int]any, len(t.Chooks))
		for k, v := range t.Chooks {
			n.Chooks[k] = v
		}
	} else {
		n.Chooks = t.Chooks
	}
	return n
}
