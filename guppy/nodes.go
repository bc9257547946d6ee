// Package guppy implements the representative front-end node-type/tag
// set (spec §3.1, grounded verbatim on include/guppy.h's guppy_pset_t)
// and the mechanical/front-end transform passes that operate on it:
// declify, autoseq, flattenseq, and the fetrans family (spec §4.4,
// §4.6). Guppy has no hand-written grammar here (spec §1 Non-goals); the
// node set is exercised by hand-built trees, the same way the teacher's
// own test packages build mast.Node literals directly instead of parsing
// source text (see analyzer/core/mast's *_test.go files).
package guppy

import "github.com/nocc-go/nocc/tnode"

// Primitive and structural types. The primitive types are leaf type
// nodes (no subnodes); BitSize distinguishes sized variants (int8 vs
// int64) via a hook rather than a family of tags, since the set of sizes
// is open-ended (LANGTAG_STYPE in guppy.h). CHAN and ARRAY carry one
// subnode and FCNTYPE two.
var (
	primTypeType = tnode.RegisterType(&tnode.TypeDef{Name: "primtype", NSub: 0, NHooks: 1})

	BoolTypeTag   = tnode.RegisterTag("BOOL", primTypeType, 0)
	ByteTypeTag   = tnode.RegisterTag("BYTE", primTypeType, 0)
	IntTypeTag    = tnode.RegisterTag("INT", primTypeType, 0)
	RealTypeTag   = tnode.RegisterTag("REAL", primTypeType, 0)
	CharTypeTag   = tnode.RegisterTag("CHAR", primTypeType, 0)
	StringTypeTag = tnode.RegisterTag("STRING", primTypeType, 0)
	ChanTypeType  = tnode.RegisterType(&tnode.TypeDef{Name: "chantype", NSub: 1, NHooks: 0})
	ChanTypeTag   = tnode.RegisterTag("CHAN", ChanTypeType, 0)
	ArrayTypeType = tnode.RegisterType(&tnode.TypeDef{Name: "arraytype", NSub: 1, NHooks: 1})
	ArrayTypeTag  = tnode.RegisterTag("ARRAY", ArrayTypeType, 0)

	// FcnTypeType's subnodes are (param-type-list, return-type-list),
	// both lists, matching spec §4.6's multi-return-value functions.
	FcnTypeType = tnode.RegisterType(&tnode.TypeDef{Name: "fcntype", NSub: 2, NHooks: 0})
	FcnTypeTag  = tnode.RegisterTag("FCNTYPE", FcnTypeType, 0)
)

// BitSize returns the size hook of a primtype node, 0 if unset
// (meaning "default size for this kind").
func BitSize(n *tnode.Node) int {
	if v, ok := n.Hook(0).(int); ok {
		return v
	}
	return 0
}

// NewPrimType creates a primitive type node of the given tag and bit size.
func NewPrimType(tag *tnode.TagDef, origin tnode.Origin, bits int) *tnode.Node {
	return tnode.Create(tag, origin, nil, nil, []any{bits})
}

// Literal tags share tnode's built-in ConstNodeType (a single opaque
// hook holding a constant.Value) but get distinct tags so typecheck/
// constprop compops can dispatch on literal kind without inspecting the
// payload.
var (
	LitBoolTag   = tnode.RegisterTag("LITBOOL", tnode.ConstNodeType, 0)
	LitIntTag    = tnode.RegisterTag("LITINT", tnode.ConstNodeType, 0)
	LitRealTag   = tnode.RegisterTag("LITREAL", tnode.ConstNodeType, 0)
	LitStringTag = tnode.RegisterTag("LITSTRING", tnode.ConstNodeType, 0)
)

// NewLit creates a literal node of tag carrying value.
func NewLit(tag *tnode.TagDef, origin tnode.Origin, value any) *tnode.Node {
	return tnode.Create(tag, origin, nil, nil, []any{value})
}

// listProcType is the shape shared by SEQ/PAR/any construct whose sole
// content is an ordered list of process subnodes (a *List in subnode 0).
var listProcType = tnode.RegisterType(&tnode.TypeDef{Name: "listproc", NSub: 1})

var (
	SeqTag  = tnode.RegisterTag("SEQ", listProcType, tnode.FlagIndentedProcList)
	ParTag  = tnode.RegisterTag("PAR", listProcType, tnode.FlagIndentedProcList)
	SkipTag = tnode.RegisterTag("SKIP", tnode.RegisterType(&tnode.TypeDef{Name: "skip", NSub: 0}), 0)
	StopTag = tnode.RegisterTag("STOP", tnode.RegisterType(&tnode.TypeDef{Name: "stop", NSub: 0}), 0)
)

// NewListProc creates a SEQ/PAR-shaped node wrapping body (a *List).
func NewListProc(tag *tnode.TagDef, origin tnode.Origin, body *tnode.Node) *tnode.Node {
	return tnode.Create(tag, origin, []*tnode.Node{body}, nil, nil)
}

// ProcBody returns the *List subnode of a SEQ/PAR node.
func ProcBody(n *tnode.Node) *tnode.Node { return n.Sub(0) }

// IfType/WhileType: WHILE's subnodes are (condition, body). IF has a
// single subnode holding its (condition, body) arms, represented here as
// a *List of two-element pairs for simplicity, each pair itself a
// binop-shaped node (CondArmTag).
var (
	ifType   = tnode.RegisterType(&tnode.TypeDef{Name: "if", NSub: 1})
	IfTag    = tnode.RegisterTag("IF", ifType, tnode.FlagIndentedProcList)
	whileType = tnode.RegisterType(&tnode.TypeDef{Name: "while", NSub: 2})
	WhileTag  = tnode.RegisterTag("WHILE", whileType, tnode.FlagIndentedProc)

	condArmType = tnode.RegisterType(&tnode.TypeDef{Name: "condarm", NSub: 2})
	CondArmTag  = tnode.RegisterTag("CONDARM", condArmType, 0)
)

func NewIf(origin tnode.Origin, arms *tnode.Node) *tnode.Node {
	return tnode.Create(IfTag, origin, []*tnode.Node{arms}, nil, nil)
}
func NewWhile(origin tnode.Origin, cond, body *tnode.Node) *tnode.Node {
	return tnode.Create(WhileTag, origin, []*tnode.Node{cond, body}, nil, nil)
}
func NewCondArm(origin tnode.Origin, cond, body *tnode.Node) *tnode.Node {
	return tnode.Create(CondArmTag, origin, []*tnode.Node{cond, body}, nil, nil)
}

// RETURN's sole subnode is a *List of expressions (spec §4.6 scenario
// S4: multiple return values).
var (
	returnType = tnode.RegisterType(&tnode.TypeDef{Name: "return", NSub: 1})
	ReturnTag  = tnode.RegisterTag("RETURN", returnType, 0)
)

func NewReturn(origin tnode.Origin, values *tnode.Node) *tnode.Node {
	return tnode.Create(ReturnTag, origin, []*tnode.Node{values}, nil, nil)
}

// ASSIGN: subnodes (lhs, rhs).
var (
	assignType = tnode.RegisterType(&tnode.TypeDef{Name: "assign", NSub: 2})
	AssignTag  = tnode.RegisterTag("ASSIGN", assignType, 0)
)

func NewAssign(origin tnode.Origin, lhs, rhs *tnode.Node) *tnode.Node {
	return tnode.Create(AssignTag, origin, []*tnode.Node{lhs, rhs}, nil, nil)
}

// INPUT/OUTPUT: subnodes (channel, item).
var (
	ioType   = tnode.RegisterType(&tnode.TypeDef{Name: "io", NSub: 2})
	InputTag  = tnode.RegisterTag("INPUT", ioType, 0)
	OutputTag = tnode.RegisterTag("OUTPUT", ioType, 0)
)

func NewInput(origin tnode.Origin, chanExpr, item *tnode.Node) *tnode.Node {
	return tnode.Create(InputTag, origin, []*tnode.Node{chanExpr, item}, nil, nil)
}
func NewOutput(origin tnode.Origin, chanExpr, item *tnode.Node) *tnode.Node {
	return tnode.Create(OutputTag, origin, []*tnode.Node{chanExpr, item}, nil, nil)
}

// Channel returns the channel subnode of an INPUT/OUTPUT node.
func Channel(n *tnode.Node) *tnode.Node { return n.Sub(0) }

// Item returns the item subnode of an INPUT/OUTPUT node.
func Item(n *tnode.Node) *tnode.Node { return n.Sub(1) }

// ALT: a single subnode, a *List of GUARD nodes (condition-or-skip,
// input-or-skip, body). Declared-as-PRI is tracked via a hook flag
// since it changes typecheck behaviour (spec §4.6 scenario S3) without
// needing a distinct tag.
var (
	altType = tnode.RegisterType(&tnode.TypeDef{Name: "alt", NSub: 1, NHooks: 1})
	AltTag  = tnode.RegisterTag("ALT", altType, tnode.FlagIndentedProcList)

	guardType = tnode.RegisterType(&tnode.TypeDef{Name: "guard", NSub: 3})
	GuardTag  = tnode.RegisterTag("GUARD", guardType, 0)
)

func NewAlt(origin tnode.Origin, guards *tnode.Node, isPri bool) *tnode.Node {
	return tnode.Create(AltTag, origin, []*tnode.Node{guards}, nil, []any{isPri})
}

// IsPri reports whether alt was declared `pri alt`.
func IsPri(alt *tnode.Node) bool {
	v, _ := alt.Hook(0).(bool)
	return v
}

// NewGuard creates a guard arm: precondition (nil if none), input-or-
// skip process, and the continuation body.
func NewGuard(origin tnode.Origin, precond, inputOrSkip, body *tnode.Node) *tnode.Node {
	return tnode.Create(GuardTag, origin, []*tnode.Node{precond, inputOrSkip, body}, nil, nil)
}

// FPARAM: a formal parameter declaration — subnodes (type), name slot 0.
var (
	fparamType = tnode.RegisterType(&tnode.TypeDef{Name: "fparam", NSub: 1, NName: 1, NHooks: 1})
	FParamTag  = tnode.RegisterTag("FPARAM", fparamType, 0)
)

// ParamKind distinguishes value/result/modifiable formal parameters
// (spec §4.7/§8 property 8's "indirection monotonicity").
type ParamKind int

const (
	ParamValue ParamKind = iota
	ParamResult
	ParamModifiable
)

func NewFParam(origin tnode.Origin, typ *tnode.Node, name tnode.NameID, kind ParamKind) *tnode.Node {
	return tnode.Create(FParamTag, origin, []*tnode.Node{typ}, []tnode.NameID{name}, []any{kind})
}

func FParamKind(n *tnode.Node) ParamKind { return n.Hook(0).(ParamKind) }
func FParamType(n *tnode.Node) *tnode.Node { return n.Sub(0) }

// FCNDEF: subnodes (params-list, return-types-list, body); name slot 0
// is the function's own declared name. PFCNDEF mirrors FCNDEF for a
// process-abstracted function, and fetrans2 (PAR capture) synthesizes
// fresh PFCNDEFs for PAR arms (spec §4.6 scenario S2).
var (
	fcnDefType = tnode.RegisterType(&tnode.TypeDef{Name: "fcndef", NSub: 3, NName: 1})
	FcnDefTag  = tnode.RegisterTag("FCNDEF", fcnDefType, 0)
	PFcnDefTag = tnode.RegisterTag("PFCNDEF", fcnDefType, 0)
)

func NewFcnDef(tag *tnode.TagDef, origin tnode.Origin, name tnode.NameID, params, rtypes, body *tnode.Node) *tnode.Node {
	return tnode.Create(tag, origin, []*tnode.Node{params, rtypes, body}, []tnode.NameID{name}, nil)
}

func FcnParams(n *tnode.Node) *tnode.Node  { return n.Sub(0) }
func FcnRTypes(n *tnode.Node) *tnode.Node  { return n.Sub(1) }
func FcnBody(n *tnode.Node) *tnode.Node    { return n.Sub(2) }
func FcnName(n *tnode.Node) tnode.NameID   { return n.Name(0) }

// VARDECL: subnodes (type, init-or-nil); name slot 0 is the declared name.
var (
	varDeclType = tnode.RegisterType(&tnode.TypeDef{Name: "vardecl", NSub: 2, NName: 1})
	VarDeclTag  = tnode.RegisterTag("VARDECL", varDeclType, 0)
)

func NewVarDecl(origin tnode.Origin, name tnode.NameID, typ, init *tnode.Node) *tnode.Node {
	return tnode.Create(VarDeclTag, origin, []*tnode.Node{typ, init}, []tnode.NameID{name}, nil)
}

// INSTANCE: a procedure/function call-as-process; subnodes (callee-name,
// args-list).
var (
	instanceType = tnode.RegisterType(&tnode.TypeDef{Name: "instance", NSub: 2})
	InstanceTag  = tnode.RegisterTag("INSTANCE", instanceType, 0)
	// PPINSTANCE is what fetrans2 lowers a PAR arm into: an instance of a
	// synthesized PFCNDEF, carrying the workspace-pointer slot
	// (spec §4.6 scenario S2) as a hook placeholder filled in by
	// reallocate (pass.ReallocateStage).
	ppInstanceType = tnode.RegisterType(&tnode.TypeDef{Name: "ppinstance", NSub: 2, NHooks: 1})
	PPInstanceTag  = tnode.RegisterTag("PPINSTANCE", ppInstanceType, 0)
)

func NewInstance(tag *tnode.TagDef, origin tnode.Origin, callee, args *tnode.Node) *tnode.Node {
	return tnode.Create(tag, origin, []*tnode.Node{callee, args}, nil, nil)
}
func NewPPInstance(origin tnode.Origin, callee, args *tnode.Node) *tnode.Node {
	return tnode.Create(PPInstanceTag, origin, []*tnode.Node{callee, args}, nil, []any{0})
}
func InstanceCallee(n *tnode.Node) *tnode.Node { return n.Sub(0) }
func InstanceArgs(n *tnode.Node) *tnode.Node   { return n.Sub(1) }

// PPInstanceWorkspaceWords and SetPPInstanceWorkspaceWords access the
// workspace size in words that reallocate (spec §4.9/§8 property 7)
// assigns this PAR arm: the arm's allocsize rounded up to whole words;
// zero until reallocate runs.
func PPInstanceWorkspaceWords(n *tnode.Node) int { return n.Hook(0).(int) }
func SetPPInstanceWorkspaceWords(n *tnode.Node, words int) { n.SetHook(0, words) }

// Binary/unary expression operators, one shared shape each (spec §4.5).
var (
	binopType = tnode.RegisterType(&tnode.TypeDef{Name: "binop", NSub: 2})
	unopType  = tnode.RegisterType(&tnode.TypeDef{Name: "unop", NSub: 1})
)

var (
	AddTag    = tnode.RegisterTag("ADD", binopType, 0)
	SubTag    = tnode.RegisterTag("SUB", binopType, 0)
	MulTag    = tnode.RegisterTag("MUL", binopType, 0)
	DivTag    = tnode.RegisterTag("DIV", binopType, 0)
	RemTag    = tnode.RegisterTag("REM", binopType, 0)
	BitXorTag = tnode.RegisterTag("BITXOR", binopType, 0)
	BitAndTag = tnode.RegisterTag("BITAND", binopType, 0)
	BitOrTag  = tnode.RegisterTag("BITOR", binopType, 0)
	AndTag    = tnode.RegisterTag("AND", binopType, tnode.FlagLongAction)
	OrTag     = tnode.RegisterTag("OR", binopType, tnode.FlagLongAction)
	LtTag     = tnode.RegisterTag("LT", binopType, 0)
	LeTag     = tnode.RegisterTag("LE", binopType, 0)
	GtTag     = tnode.RegisterTag("GT", binopType, 0)
	GeTag     = tnode.RegisterTag("GE", binopType, 0)
	EqTag     = tnode.RegisterTag("EQ", binopType, 0)
	NeTag     = tnode.RegisterTag("NE", binopType, 0)

	NotTag    = tnode.RegisterTag("NOT", unopType, 0)
	BitNotTag = tnode.RegisterTag("BITNOT", unopType, 0)
	NegTag    = tnode.RegisterTag("NEG", unopType, 0)
)

// BinOpSymbol maps a binop tag to the operator spelling constant.BinaryOp
// understands.
var binOpSymbols = map[*tnode.TagDef]string{
	AddTag: "+", SubTag: "-", MulTag: "*", DivTag: "/", RemTag: "\\",
	BitXorTag: "^", BitAndTag: "&", BitOrTag: "|", AndTag: "and", OrTag: "or",
	LtTag: "<", LeTag: "<=", GtTag: ">", GeTag: ">=", EqTag: "=", NeTag: "<>",
}

func BinOpSymbol(tag *tnode.TagDef) (string, bool) {
	s, ok := binOpSymbols[tag]
	return s, ok
}

var unOpSymbols = map[*tnode.TagDef]string{
	NotTag: "not", BitNotTag: "~", NegTag: "-",
}

func UnOpSymbol(tag *tnode.TagDef) (string, bool) {
	s, ok := unOpSymbols[tag]
	return s, ok
}

func NewBinOp(tag *tnode.TagDef, origin tnode.Origin, l, r *tnode.Node) *tnode.Node {
	return tnode.Create(tag, origin, []*tnode.Node{l, r}, nil, nil)
}
func NewUnOp(tag *tnode.TagDef, origin tnode.Origin, operand *tnode.Node) *tnode.Node {
	return tnode.Create(tag, origin, []*tnode.Node{operand}, nil, nil)
}
