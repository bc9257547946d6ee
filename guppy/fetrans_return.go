package guppy

import "github.com/nocc-go/nocc/tnode"

// LowerMultiReturn implements spec §4.6/§8 scenario S4: a function
// declared with N return types is rewritten into a procedure (FCNDEF
// with an empty return-type list) taking N extra trailing result
// parameters (res0..resN-1), and every RETURN within its body is
// rewritten from `return (e0, e1, ...)` into `seq [ assign(res0, e0);
// assign(res1, e1); ...; return ]` (an empty-valued return, now just a
// control-flow exit).
//
// fcndef is mutated in place: its return-type list is emptied and N
// FPARAMs of kind ParamResult are appended to its parameter list, named
// by freshName (one call per trailing parameter, in order).
func LowerMultiReturn(fcndef *tnode.Node, freshName func(i int) tnode.NameID) {
	rtypes := FcnRTypes(fcndef)
	nret := tnode.ListCount(rtypes)
	if nret == 0 {
		return
	}

	params := FcnParams(fcndef)
	resultNames := make([]tnode.NameID, nret)
	for i := 0; i < nret; i++ {
		rtype := tnode.ListNth(rtypes, i)
		resultNames[i] = freshName(i)
		tnode.ListAdd(params, NewFParam(rtype.Origin, rtype, resultNames[i], ParamResult))
	}
	for i := nret - 1; i >= 0; i-- {
		tnode.ListDeleteAt(rtypes, i)
	}

	body := FcnBody(fcndef)
	_ = tnode.ModPrewalk(&body, func(np **tnode.Node, arg any) (bool, error) {
		n := *np
		if n != nil && n.Is(ReturnTag) {
			*np = lowerReturnNode(n, resultNames)
			return false, nil // the replacement has no RETURN left to recurse into
		}
		return true, nil
	}, nil)
	fcndef.SetSub(2, body)
}

func lowerReturnNode(ret *tnode.Node, resultNames []tnode.NameID) *tnode.Node {
	values := ret.Sub(0)
	origin := ret.Origin
	seqBody := tnode.NewList(origin)
	n := tnode.ListCount(values)
	for i := 0; i < n && i < len(resultNames); i++ {
		lhs := tnode.NewNameNode(origin, resultNames[i])
		rhs := tnode.ListNth(values, i)
		tnode.ListAdd(seqBody, NewAssign(origin, lhs, rhs))
	}
	tnode.ListAdd(seqBody, NewReturn(origin, tnode.NewList(origin)))
	return NewListProc(SeqTag, origin, seqBody)
}
