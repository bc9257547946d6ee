package guppy

import "github.com/nocc-go/nocc/tnode"

// FreeVariables collects the set of NameIDs referenced anywhere under n
// that are not also declared somewhere under n (a name node's NameID is
// free for n iff it is never the name slot of a VARDECL/FPARAM/FCNDEF
// beneath n). The result is an unordered set; the caller (CaptureParArm)
// orders the captured names by the enclosing scope's declaration order.
func FreeVariables(n *tnode.Node) map[tnode.NameID]bool {
	bound := map[tnode.NameID]bool{}
	used := map[tnode.NameID]bool{}
	_ = tnode.Postwalk(n, func(cur *tnode.Node, arg any) error {
		switch {
		case cur.Is(VarDeclTag):
			bound[cur.Name(0)] = true
		case cur.Is(FParamTag):
			bound[cur.Name(0)] = true
		case cur.Is(FcnDefTag) || cur.Is(PFcnDefTag):
			bound[cur.Name(0)] = true
		case cur.Tag == tnode.NameNodeTag:
			used[cur.Name(0)] = true
		}
		return nil
	}, nil)
	free := map[tnode.NameID]bool{}
	for id := range used {
		if !bound[id] {
			free[id] = true
		}
	}
	return free
}

// CaptureParArm implements the PAR-arm half of spec §4.6 scenario S2:
// given a PAR arm (a single process subtree referencing free variables
// x, y, c declared in the enclosing scope) and the order those names
// were declared in, it synthesizes a PFCNDEF parameterised by exactly
// the arm's free variables (in declaration order) and returns a
// PPINSTANCE calling it with those same names as arguments — the
// enclosing function itself gains no new parameters, since the capture
// is entirely local to the new PFCNDEF's formal parameter list.
func CaptureParArm(arm *tnode.Node, declOrder []tnode.NameID, freshName tnode.NameID, origin tnode.Origin) (pfcndef *tnode.Node, instance *tnode.Node) {
	free := FreeVariables(arm)
	params := tnode.NewList(origin)
	args := tnode.NewList(origin)
	for _, id := range declOrder {
		if !free[id] {
			continue
		}
		tnode.ListAdd(params, NewFParam(origin, nil, id, ParamValue))
		tnode.ListAdd(args, tnode.NewNameNode(origin, id))
	}
	rtypes := tnode.NewList(origin)
	pfcndef = NewFcnDef(PFcnDefTag, origin, freshName, params, rtypes, arm)
	instance = NewPPInstance(origin, tnode.NewNameNode(origin, freshName), args)
	return pfcndef, instance
}

// LowerPar implements spec §4.6 scenario S2 end-to-end: rewrites a PAR
// node's body in place so each arm becomes a PPINSTANCE of a freshly
// synthesized PFCNDEF, and returns the list of generated PFCNDEFs (which
// the caller splices into the enclosing declaration block — fetrans2
// does not itself decide where declarations live, matching
// guppy_fetrans2_t's `inslist`/`insidx` fields in include/guppy.h).
func LowerPar(par *tnode.Node, declOrder []tnode.NameID, nextName func() tnode.NameID) []*tnode.Node {
	body := ProcBody(par)
	var generated []*tnode.Node
	n := tnode.ListCount(body)
	for i := 0; i < n; i++ {
		arm := tnode.ListNth(body, i)
		pfcndef, instance := CaptureParArm(arm, declOrder, nextName(), arm.Origin)
		generated = append(generated, pfcndef)
		replaceListItem(body, i, instance)
	}
	return generated
}

func replaceListItem(list *tnode.Node, i int, replacement *tnode.Node) {
	tnode.ListDeleteAt(list, i)
	tnode.ListInsertAt(list, i, replacement)
}
