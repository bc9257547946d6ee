package tnode

// List is the payload of a list node's single hook: a contiguous,
// owning, ordered sequence of nodes. The (len, cap) bookkeeping the spec
// calls for is simply the backing Go slice's own header.
type List struct {
	Items []*Node
}

// ListType is the reserved built-in node type for list nodes (spec §3.2):
// zero subnodes, zero name slots, one hook holding a *List. Its hook
// callbacks let the generic walkers, copier and freer treat a list's
// elements as if they were ordinary subnodes.
var ListType = RegisterType(&TypeDef{
	Name:   "list",
	NSub:   0,
	NName:  0,
	NHooks: 1,
	HookFree: func(hook any) {
		l := hook.(*List)
		for _, it := range l.Items {
			Free(it)
		}
	},
	HookCopy: func(hook any) any {
		l := hook.(*List)
		cp := &List{Items: make([]*Node, len(l.Items))}
		for i, it := range l.Items {
			cp.Items[i] = CopyTree(it)
		}
		return cp
	},
	HookCopyOrAlias: func(hook any, pred AliasPredicate) any {
		l := hook.(*List)
		cp := &List{Items: make([]*Node, len(l.Items))}
		for i, it := range l.Items {
			cp.Items[i] = CopyOrAliasTree(it, pred)
		}
		return cp
	},
	HookPostWalkTree: func(hook any, visit func(*Node) error) error {
		l := hook.(*List)
		for _, it := range l.Items {
			if err := visit(it); err != nil {
				return err
			}
		}
		return nil
	},
	HookPreWalkTree: func(hook any, visit func(*Node) (bool, error)) error {
		l := hook.(*List)
		for _, it := range l.Items {
			if _, err := visit(it); err != nil {
				return err
			}
		}
		return nil
	},
	HookModPreWalkTree: func(hook any, visit func(**Node) (bool, error)) error {
		l := hook.(*List)
		for i := range l.Items {
			ip := &l.Items[i]
			if _, err := visit(ip); err != nil {
				return err
			}
		}
		return nil
	},
	HookModPrePostWalkTree: func(hook any, pre func(**Node) (int, error), post func(**Node) error) error {
		l := hook.(*List)
		for i := range l.Items {
			ip := &l.Items[i]
			if _, err := pre(ip); err != nil {
				return err
			}
		}
		return nil
	},
})

var listTag = RegisterTag("LIST", ListType, 0)

// ListTag returns the sole tag used for list nodes.
func ListTag() *TagDef { return listTag }

// NewList creates an empty list node.
func NewList(origin Origin) *Node {
	return Create(listTag, origin, nil, nil, []any{&List{}})
}

func listOf(n *Node) *List {
	if n == nil || n.Tag != listTag {
		internalf("tnode: expected a list node, got %v", n)
	}
	return n.Hooks[0].(*List)
}

// IsList reports whether n is a list node.
func IsList(n *Node) bool { return n != nil && n.Tag == listTag }

// ListAdd appends c to the list node n.
func ListAdd(n *Node, c *Node) {
	l := listOf(n)
	l.Items = append(l.Items, c)
}

// ListInsertAt inserts c at position i in the list node n.
func ListInsertAt(n *Node, i int, c *Node) {
	l := listOf(n)
	if i < 0 || i > len(l.Items) {
		internalf("tnode: list insert index %d out of range (len=%d)", i, len(l.Items))
	}
	l.Items = append(l.Items, nil)
	copy(l.Items[i+1:], l.Items[i:])
	l.Items[i] = c
}

// ListDeleteAt removes and returns the item at position i.
func ListDeleteAt(n *Node, i int) *Node {
	l := listOf(n)
	if i < 0 || i >= len(l.Items) {
		internalf("tnode: list delete index %d out of range (len=%d)", i, len(l.Items))
	}
	c := l.Items[i]
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	return c
}

// ListCount returns the number of items in the list node n.
func ListCount(n *Node) int { return len(listOf(n).Items) }

// ListNth returns the item at position i.
func ListNth(n *Node, i int) *Node {
	l := listOf(n)
	if i < 0 || i >= len(l.Items) {
		internalf("tnode: list index %d out of range (len=%d)", i, len(l.Items))
	}
	return l.Items[i]
}

// ListItems returns the list node's items (not a copy; callers must not
// retain it across mutation of the list).
func ListItems(n *Node) []*Node { return listOf(n).Items }

// EnsureListInSlot wraps whatever is currently in subnode slot i of n
// into a singleton list, unless it is already a list.
func EnsureListInSlot(n *Node, i int) {
	cur := n.Sub(i)
	if IsList(cur) {
		return
	}
	l := NewList(n.Origin)
	if cur != nil {
		ListAdd(l, cur)
	}
	n.SetSub(i, l)
}
