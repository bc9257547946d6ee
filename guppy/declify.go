package guppy

import "github.com/nocc-go/nocc/tnode"

// declBlockType/DeclBlockTag: subnodes (decls-list, body). A single
// declaration followed by the process it scopes, chained — Declify's
// output for a run of N consecutive declarations is N nested DECLBLOCKs,
// innermost holding the first non-declaration process onward.
var (
	declBlockType = tnode.RegisterType(&tnode.TypeDef{Name: "declblock", NSub: 2})
	DeclBlockTag  = tnode.RegisterTag("DECLBLOCK", declBlockType, 0)
)

func NewDeclBlock(origin tnode.Origin, decls, body *tnode.Node) *tnode.Node {
	return tnode.Create(DeclBlockTag, origin, []*tnode.Node{decls, body}, nil, nil)
}

// DeclBlockDecls/DeclBlockBody read a DECLBLOCK's subnodes.
func DeclBlockDecls(n *tnode.Node) *tnode.Node { return n.Sub(0) }
func DeclBlockBody(n *tnode.Node) *tnode.Node  { return n.Sub(1) }

// isDecl reports whether n is a declaration node (VARDECL, or a local
// FCNDEF/PFCNDEF: a nested function definition scopes its body the same
// way a variable declaration does).
func isDecl(n *tnode.Node) bool {
	return n.Is(VarDeclTag) || n.Is(FcnDefTag) || n.Is(PFcnDefTag)
}

// Declify implements spec §4.4: a mixed list of declarations and
// processes is rewritten into a chain of DECLBLOCK(decl, rest) nodes, one
// per leading declaration, so that each declaration properly scopes
// everything after it. A run of non-declaration processes at the end (or
// anywhere declarations don't immediately precede them) is wrapped back
// into a single process via AutoSeq rather than left as a bare list,
// since DECLBLOCK's body slot holds a single process, not a list.
//
// body is consumed; Declify does not mutate it in place (unlike
// FlattenSeq/LowerPar) since its output is a different node shape
// (DECLBLOCK chain, not a list), so callers must use the returned node.
func Declify(body *tnode.Node, origin tnode.Origin) *tnode.Node {
	items := tnode.ListItems(body)
	return declifyFrom(items, 0, origin)
}

func declifyFrom(items []*tnode.Node, i int, origin tnode.Origin) *tnode.Node {
	if i >= len(items) {
		return tnode.Create(SkipTag, origin, nil, nil, nil)
	}
	if isDecl(items[i]) {
		rest := declifyFrom(items, i+1, origin)
		decls := tnode.NewList(items[i].Origin)
		tnode.ListAdd(decls, items[i])
		return NewDeclBlock(items[i].Origin, decls, rest)
	}
	rem := tnode.NewList(origin)
	for ; i < len(items) && !isDecl(items[i]); i++ {
		tnode.ListAdd(rem, items[i])
	}
	procBody := AutoSeq(rem, origin)
	if i >= len(items) {
		return procBody
	}
	tail := declifyFrom(items, i, origin)
	seqBody := tnode.NewList(origin)
	tnode.ListAdd(seqBody, procBody)
	tnode.ListAdd(seqBody, tail)
	return NewListProc(SeqTag, origin, seqBody)
}
