package guppy

import "github.com/nocc-go/nocc/tnode"

// FlattenSeq implements spec §4.4's flattenseq mechanical transform: any
// SEQ whose body list directly contains another SEQ has that nested SEQ's
// items spliced in place, one level at a time, so a tree built up
// incrementally by prescope (which may nest seqs while processing
// indented blocks) collapses back down to one containing seq per spec §8
// scenario S1: `seq [ seq [ skip ], output(c, 1) ]` becomes
// `seq [ skip, output(c, 1) ]`. Only SEQ is flattened; a PAR nested
// directly inside a PAR is left as it is.
//
// It is idempotent: running it again on an already-flat tree is a no-op,
// grounded on the same guppy_flattenseq_subtree contract in
// include/guppy.h that takes a **tnode and rewrites in place.
func FlattenSeq(root *tnode.Node) *tnode.Node {
	_ = tnode.ModPrewalk(&root, func(np **tnode.Node, arg any) (bool, error) {
		n := *np
		if n != nil && n.Is(SeqTag) {
			flattenBody(ProcBody(n), SeqTag)
		}
		return true, nil
	}, nil)
	return root
}

// flattenBody splices any same-kind nested listproc directly into body
// in place of itself, repeating until no element is itself that kind.
func flattenBody(body *tnode.Node, kind *tnode.TagDef) {
	i := 0
	for i < tnode.ListCount(body) {
		item := tnode.ListNth(body, i)
		if item != nil && item.Is(kind) {
			tnode.ListDeleteAt(body, i)
			inner := ProcBody(item)
			n := tnode.ListCount(inner)
			for j := 0; j < n; j++ {
				tnode.ListInsertAt(body, i+j, tnode.ListNth(inner, j))
			}
			continue // re-examine position i in case it spliced in another nested seq
		}
		i++
	}
}

// AutoSeq implements the complementary half of spec §4.4: a bare *List
// of processes appearing where a single process is structurally
// required (e.g. an IF arm's body, a WHILE body) is wrapped in a fresh
// SEQ so downstream passes always see a single process node rather than
// having to special-case "or maybe it's a list" everywhere.
func AutoSeq(body *tnode.Node, origin tnode.Origin) *tnode.Node {
	if tnode.ListCount(body) == 1 {
		return tnode.ListNth(body, 0)
	}
	return NewListProc(SeqTag, origin, body)
}
