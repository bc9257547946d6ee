package pass

import (
	"github.com/nocc-go/nocc/cccsp"
	"github.com/nocc-go/nocc/guppy"
	"github.com/nocc-go/nocc/ops"
	"github.com/nocc-go/nocc/tnode"
)

// ConstPropStage runs package guppy's per-node constant folder (spec §8
// property 5) bottom-up over ctx.Root via ops.DispatchComp, so the
// actual folding logic lives in (and can be overridden per front-end
// via) the compop tables rather than being called directly.
func ConstPropStage() Stage {
	return Stage{Name: "constprop", Run: func(ctx *Context) error {
		return tnode.Postwalk(ctx.Root, func(n *tnode.Node, arg any) error {
			if !ops.HasCompOp(ops.ConstProp, n.Tag) {
				return nil
			}
			_, err := ops.DispatchComp(ops.ConstProp, n)
			return err
		}, nil)
	}}
}

// FlattenSeqStage runs flattenseq (spec §4.4) over every SEQ node in
// ctx.Root via ops.DispatchComp, one splice-in-place call per SEQ
// encountered during the walk.
func FlattenSeqStage() Stage {
	return Stage{Name: "flattenseq", Run: func(ctx *Context) error {
		return tnode.Postwalk(ctx.Root, func(n *tnode.Node, arg any) error {
			if n.Is(guppy.SeqTag) {
				_, err := ops.DispatchComp(ops.Fetrans, n)
				return err
			}
			return nil
		}, nil)
	}}
}

// PreallocateStage runs the static-function-index fixpoint (spec §4.8
// step 2, property 6) over ctx.CCSP — the table a caller populates ahead
// of time from the compiled C backend's own frame-size side files
// (package sfi), since a function's true stack frame size is a property
// of the generated C, not of this tree. A nil ctx.CCSP (no side-file
// data supplied, e.g. a front-end-only compile) makes this a no-op
// rather than an error.
func PreallocateStage() Stage {
	return Stage{Name: "preallocate", Run: func(ctx *Context) error {
		if ctx.CCSP == nil {
			return nil
		}
		return ctx.CCSP.CalcAlloc(ctx.Diag)
	}}
}

// ReallocateStage implements spec §8 scenario S5/property 7: for every
// PAR node already lowered by fetrans2 (so its body is a list of
// PPINSTANCE arms), it looks up each arm's callee in ctx.CCSP, sizes the
// arms' allocsizes in words via cccsp.ReallocatePar, and records each
// arm's word-ceiled size back onto its PPINSTANCE node. Requires ctx.CCSP to already hold AllocSize data (run
// PreallocateStage first) and ctx.Names to resolve a callee's NameID
// back to the text CCSP is keyed by.
func ReallocateStage() Stage {
	return Stage{Name: "reallocate", Run: func(ctx *Context) error {
		if ctx.CCSP == nil || ctx.Names == nil {
			return nil
		}
		return tnode.Postwalk(ctx.Root, func(n *tnode.Node, arg any) error {
			if !n.Is(guppy.ParTag) {
				return nil
			}
			body := guppy.ProcBody(n)
			count := tnode.ListCount(body)
			arms := make([]cccsp.ParArm, 0, count)
			items := make([]*tnode.Node, 0, count)
			for i := 0; i < count; i++ {
				item := tnode.ListNth(body, i)
				if !item.Is(guppy.PPInstanceTag) {
					continue
				}
				calleeID := guppy.InstanceCallee(item).Name(0)
				nm := ctx.Names.ByID(int32(calleeID))
				if nm == nil {
					continue
				}
				entry, ok := ctx.CCSP[nm.Text]
				if !ok {
					continue
				}
				arms = append(arms, cccsp.ParArm{Name: nm.Text, AllocSize: entry.AllocSize})
				items = append(items, item)
			}
			info := cccsp.ReallocatePar(arms)
			for i := range info.Arms {
				guppy.SetPPInstanceWorkspaceWords(items[i], info.Arms[i].Words)
			}
			return nil
		}, nil)
	}}
}

// DeclifyStage rewrites ctx.Root's top-level body (assumed a *List, per
// prescope's "ensures slots that should be lists are lists" contract)
// into a DECLBLOCK chain (spec §4.4), replacing ctx.Root.
func DeclifyStage() Stage {
	return Stage{Name: "declify", Run: func(ctx *Context) error {
		if ctx.Root == nil {
			return nil
		}
		ctx.Root = guppy.Declify(ctx.Root, ctx.Root.Origin)
		return nil
	}}
}
