package guppy

import (
	"fmt"

	"github.com/nocc-go/nocc/ops"
	"github.com/nocc-go/nocc/tnode"
)

// init wires this package's mechanical/fetrans transforms into the
// generic compop dispatch tables (spec §4.2) as bottom-of-chain
// handlers, so a pass driver invokes them the same way it would invoke
// any other language's compop implementation — through ops.DispatchComp
// — rather than callers reaching into package guppy directly. Using
// SetBottomCompOp (not SetCompOp) keeps these as the fallback
// implementation: a later front-end-specific override registered for the
// same (op, tag) still runs first and can Next() through to this one.
func init() {
	for _, tag := range []*tnode.TagDef{
		AddTag, SubTag, MulTag, DivTag, RemTag, BitXorTag, BitAndTag, BitOrTag,
		AndTag, OrTag, LtTag, LeTag, GtTag, GeTag, EqTag, NeTag,
		NotTag, BitNotTag, NegTag,
	} {
		ops.SetBottomCompOp(ops.ConstProp, tag, constPropHandler)
	}
	ops.SetBottomCompOp(ops.Fetrans, SeqTag, fetransSeqHandler)
	ops.SetBottomCompOp(ops.Fetrans, ParTag, fetransParHandler)
	ops.SetBottomCompOp(ops.Fetrans, AltTag, fetransAltHandler)
	ops.SetBottomCompOp(ops.Fetrans, FcnDefTag, fetransReturnHandler)
}

// constPropHandler folds a single binop/unop node bottom-up (spec §8
// property 5); the pass driver is expected to walk post-order so each
// operand has already been folded to a literal by the time this runs.
//
// ops.Handler's signature hands us n (a *Node) rather than a **Node, so
// unlike ConstProp's own ModPrePostWalk-based traversal there is no
// parent slot to reassign here; instead, when folding produces a
// replacement node, its fields are copied onto *n in place — n keeps the
// same address, so the parent's subnode slot (which holds that same
// address) observes the fold without the driver needing to do anything
// walker-specific.
func constPropHandler(next ops.Next, n *tnode.Node, args ...any) (any, error) {
	replacement := n
	foldInPlace(&replacement)
	if replacement != n {
		*n = *replacement
	}
	return n, nil
}

// fetransSeqHandler performs one level of flattenseq splicing on n's own
// body; repeated application (as a walk revisits spliced-in children) is
// idempotent, matching FlattenSeq's whole-tree contract.
func fetransSeqHandler(next ops.Next, n *tnode.Node, args ...any) (any, error) {
	flattenBody(ProcBody(n), SeqTag)
	return n, nil
}

// fetransParHandler lowers a single PAR node's arms (spec §8 scenario
// S2). Callers must pass the enclosing scope's declaration order and a
// fresh-name allocator: DispatchComp(ops.Fetrans, parNode, declOrder,
// nextName).
func fetransParHandler(next ops.Next, n *tnode.Node, args ...any) (any, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("guppy: fetrans(PAR) requires (declOrder []tnode.NameID, nextName func() tnode.NameID)")
	}
	declOrder, ok := args[0].([]tnode.NameID)
	if !ok {
		return nil, fmt.Errorf("guppy: fetrans(PAR) arg0 must be []tnode.NameID")
	}
	nextName, ok := args[1].(func() tnode.NameID)
	if !ok {
		return nil, fmt.Errorf("guppy: fetrans(PAR) arg1 must be func() tnode.NameID")
	}
	generated := LowerPar(n, declOrder, nextName)
	return generated, nil
}

// fetransAltHandler lowers a single ALT node (spec §8 scenario S3).
// Callers pass the selector name: DispatchComp(ops.Fetrans, altNode, sel).
func fetransAltHandler(next ops.Next, n *tnode.Node, args ...any) (any, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("guppy: fetrans(ALT) requires (sel tnode.NameID)")
	}
	sel, ok := args[0].(tnode.NameID)
	if !ok {
		return nil, fmt.Errorf("guppy: fetrans(ALT) arg0 must be tnode.NameID")
	}
	return LowerAlt(n, sel, n.Origin)
}

// fetransReturnHandler lowers a single FCNDEF's multi-value returns (spec
// §8 scenario S4). Callers pass a fresh-result-name allocator:
// DispatchComp(ops.Fetrans, fcndefNode, freshName).
func fetransReturnHandler(next ops.Next, n *tnode.Node, args ...any) (any, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("guppy: fetrans(FCNDEF) requires (freshName func(int) tnode.NameID)")
	}
	freshName, ok := args[0].(func(int) tnode.NameID)
	if !ok {
		return nil, fmt.Errorf("guppy: fetrans(FCNDEF) arg0 must be func(int) tnode.NameID")
	}
	LowerMultiReturn(n, freshName)
	return n, nil
}
