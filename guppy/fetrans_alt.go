package guppy

import (
	"github.com/nocc-go/nocc/constant"
	"github.com/nocc-go/nocc/tnode"
)

// caseArmType/CaseTag model the `case sel of { 0 -> ...; -1 -> ... }`
// shape that LowerAlt rewrites an ALT into: two subnodes, the selector
// expression and a *List of CaseArm nodes, each (selector-literal, body).
var (
	caseType    = tnode.RegisterType(&tnode.TypeDef{Name: "case", NSub: 2})
	CaseTag     = tnode.RegisterTag("CASE", caseType, tnode.FlagIndentedProcList)
	caseArmType = tnode.RegisterType(&tnode.TypeDef{Name: "casearm", NSub: 2})
	CaseArmTag  = tnode.RegisterTag("CASEARM", caseArmType, 0)

	// PriAltSkipTag is the runtime primitive `PRIALTSKIP(sel, [c1, c2,
	// ...])` that resolves which guard fired, binding sel to its index
	// (or -1 for a skip guard), per spec §8 scenario S3.
	priAltSkipType = tnode.RegisterType(&tnode.TypeDef{Name: "prialtskip", NSub: 1, NName: 1})
	PriAltSkipTag  = tnode.RegisterTag("PRIALTSKIP", priAltSkipType, 0)
)

func NewCase(origin tnode.Origin, selector, arms *tnode.Node) *tnode.Node {
	return tnode.Create(CaseTag, origin, []*tnode.Node{selector, arms}, nil, nil)
}
func NewCaseArm(origin tnode.Origin, selectorLit, body *tnode.Node) *tnode.Node {
	return tnode.Create(CaseArmTag, origin, []*tnode.Node{selectorLit, body}, nil, nil)
}
func NewPriAltSkip(origin tnode.Origin, sel tnode.NameID, channels *tnode.Node) *tnode.Node {
	return tnode.Create(PriAltSkipTag, origin, []*tnode.Node{channels}, []tnode.NameID{sel}, nil)
}

// errSkipGuardNotPri is the diagnostic text spec §8 scenario S3 requires
// verbatim when a plain (non-pri) ALT contains a skip guard.
const errSkipGuardNotPri = "skip guard only allowed in pri alt"

// LowerAlt implements spec §4.6/§8 scenario S3: a `pri alt` is rewritten
// into `seq [ PRIALTSKIP(sel, channels), CASE sel of arms ]`, where arm i
// runs guard i's input and then its body (`seq [ input; body ]`), since
// PRIALTSKIP only selects the guard and does not perform the input, and a
// skip guard (no channel) becomes arm -1, running just its body.
// A plain (non-pri) ALT containing a skip guard is rejected instead,
// since only a pri alt's deterministic priority ordering makes a skip
// guard's "else" semantics well defined.
func LowerAlt(alt *tnode.Node, sel tnode.NameID, origin tnode.Origin) (*tnode.Node, error) {
	guards := alt.Sub(0)
	n := tnode.ListCount(guards)

	if !IsPri(alt) {
		for i := 0; i < n; i++ {
			g := tnode.ListNth(guards, i)
			if g.Sub(1).Is(SkipTag) {
				return nil, &altError{origin: origin, text: errSkipGuardNotPri}
			}
		}
	}

	channels := tnode.NewList(origin)
	arms := tnode.NewList(origin)
	for i := 0; i < n; i++ {
		g := tnode.ListNth(guards, i)
		inputOrSkip := g.Sub(1)
		body := g.Sub(2)

		selLit := NewLit(LitIntTag, origin, constant.NewInt(int64(i)))
		armBody := body
		if inputOrSkip.Is(SkipTag) {
			selLit = NewLit(LitIntTag, origin, constant.NewInt(-1))
		} else {
			tnode.ListAdd(channels, Channel(inputOrSkip))
			// PRIALTSKIP only resolves which guard fired; the guard's own
			// input (`c ? v`) still has to run before its body.
			armSeqBody := tnode.NewList(origin)
			tnode.ListAdd(armSeqBody, inputOrSkip)
			tnode.ListAdd(armSeqBody, body)
			armBody = NewListProc(SeqTag, origin, armSeqBody)
		}
		tnode.ListAdd(arms, NewCaseArm(origin, selLit, armBody))
	}

	priAltSkip := NewPriAltSkip(origin, sel, channels)
	caseNode := NewCase(origin, tnode.NewNameNode(origin, sel), arms)

	seqBody := tnode.NewList(origin)
	tnode.ListAdd(seqBody, priAltSkip)
	tnode.ListAdd(seqBody, caseNode)
	return NewListProc(SeqTag, origin, seqBody), nil
}

type altError struct {
	origin tnode.Origin
	text   string
}

func (e *altError) Error() string { return e.origin.String() + ": " + e.text }
