package tnode

// NameNodeType is the reserved built-in node type standing in for a
// resolved use of a name: one named-entity slot, nothing else.
var NameNodeType = RegisterType(&TypeDef{Name: "namenode", NSub: 0, NName: 1, NHooks: 0})

// NameNodeTag is the sole tag for namenodes.
var NameNodeTag = RegisterTag("NAME", NameNodeType, 0)

// NewNameNode creates a namenode referencing id.
func NewNameNode(origin Origin, id NameID) *Node {
	return Create(NameNodeTag, origin, nil, []NameID{id}, nil)
}

// ConstNodeType is the reserved built-in node type for folded constants:
// a single hook holding the raw constant payload (see package constant).
// The type declares no hook callbacks of its own since constant.Value is
// an immutable value type; copying it is a plain Go value copy.
var ConstNodeType = RegisterType(&TypeDef{
	Name:   "constnode",
	NSub:   0,
	NName:  0,
	NHooks: 1,
	HookCopy: func(hook any) any {
		return hook // value types copy by assignment; see constant.Value
	},
})

// ConstNodeTag is the generic tag for constnodes; front-ends may register
// further tags of ConstNodeType (e.g. one per literal kind).
var ConstNodeTag = RegisterTag("CONST", ConstNodeType, 0)

// NewConstNode creates a constnode carrying value.
func NewConstNode(origin Origin, value any) *Node {
	return Create(ConstNodeTag, origin, nil, nil, []any{value})
}

// IsConstNode reports whether n is a constnode (any tag of ConstNodeType).
func IsConstNode(n *Node) bool { return n != nil && n.Tag.Type == ConstNodeType }

// ConstValue returns the raw constant payload of a constnode.
func ConstValue(n *Node) any {
	if !IsConstNode(n) {
		internalf("tnode: ConstValue called on non-constnode %v", n)
	}
	return n.Hooks[0]
}
