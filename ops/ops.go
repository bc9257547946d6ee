// Package ops implements the slot-indexed compiler-operation and
// language-operation dispatch tables (spec §3.6, §4.2). An operation is
// identified by a small integer id (compop or langop) and dispatched on
// a node's tag. Registering a handler for a (op, tag) pair that already
// has one does not replace it: the new handler becomes the outermost
// link of a chain and is handed a Next function to call through to
// whatever was registered before it, the same override-by-chaining idiom
// the teacher's CommonChecker/LangChecker/Checker interfaces implement
// (analyzer/core/check/common.go) without any class inheritance.
package ops

import (
	"fmt"

	"github.com/nocc-go/nocc/tnode"
)

// CompOp enumerates the built-in generic (language-independent) compiler
// operations a pass driver invokes while walking the tree.
type CompOp int

const (
	Prescope CompOp = iota
	ScopeIn
	ScopeOut
	TypeCheck
	ConstProp
	TypeResolve
	PreCheck
	TracesCheck
	MobilityCheck
	PostCheck
	Fetrans
	Betrans
	PreMap
	NameMap
	BeMap
	PreAllocate
	PreCode
	CodeGen

	numCompOps
)

var compOpNames = [numCompOps]string{
	Prescope: "prescope", ScopeIn: "scopein", ScopeOut: "scopeout",
	TypeCheck: "typecheck", ConstProp: "constprop", TypeResolve: "typeresolve",
	PreCheck: "precheck", TracesCheck: "tracescheck", MobilityCheck: "mobilitycheck",
	PostCheck: "postcheck", Fetrans: "fetrans", Betrans: "betrans",
	PreMap: "premap", NameMap: "namemap", BeMap: "bemap",
	PreAllocate: "preallocate", PreCode: "precode", CodeGen: "codegen",
}

func (c CompOp) String() string {
	if c < 0 || int(c) >= len(compOpNames) {
		return fmt.Sprintf("compop(%d)", int(c))
	}
	return compOpNames[c]
}

// LangOp enumerates the built-in language-specific operations a front-end
// registers handlers for: parsing/lexing hand-off points that do not fit
// the generic compop walk because their signature varies by front-end.
type LangOp int

const (
	LangOpParseFile LangOp = iota
	LangOpPrecheckDecl
	LangOpIsTypeEqual
	LangOpDefaultValue
	LangOpNameToToken

	numLangOps
)

var langOpNames = [numLangOps]string{
	LangOpParseFile: "parse_file", LangOpPrecheckDecl: "precheck_decl",
	LangOpIsTypeEqual: "is_type_equal", LangOpDefaultValue: "default_value",
	LangOpNameToToken: "name_to_token",
}

func (l LangOp) String() string {
	if l < 0 || int(l) >= len(langOpNames) {
		return fmt.Sprintf("langop(%d)", int(l))
	}
	return langOpNames[l]
}

// Next is handed to a handler so it can call through to whatever was
// registered before it for the same (op, tag). Calling Next when nothing
// precedes it returns ErrNoMoreHandlers.
type Next func(n *tnode.Node, args ...any) (any, error)

// Handler is a single link in an operation's override chain.
type Handler func(next Next, n *tnode.Node, args ...any) (any, error)

// ErrNoMoreHandlers is returned by the callthrough sentinel at the bottom
// of a chain, and by Dispatch when no handler at all is registered.
var ErrNoMoreHandlers = fmt.Errorf("ops: no handler registered")

type key struct {
	op  int
	tag int
}

// chains (below) is shared by both CompOp and LangOp ids by biasing langop keys
// into a disjoint range, keeping a single registry and a single Dispatch
// code path for both (the teacher's vtable idiom does the same: one
// dispatch mechanism, two distinct enumerations feeding it).
const langOpBias = 1 << 20

var chains = map[key][]Handler{}

func compKey(op CompOp, tag *tnode.TagDef) key { return key{op: int(op), tag: tag.Index} }
func langKey(op LangOp, tag *tnode.TagDef) key {
	return key{op: int(op) + langOpBias, tag: tag.Index}
}

// SetCompOp registers h as the new outermost handler for op on tag.
func SetCompOp(op CompOp, tag *tnode.TagDef, h Handler) {
	k := compKey(op, tag)
	chains[k] = append(chains[k], h)
}

// SetLangOp registers h as the new outermost handler for op on tag.
func SetLangOp(op LangOp, tag *tnode.TagDef, h Handler) {
	k := langKey(op, tag)
	chains[k] = append(chains[k], h)
}

// SetBottomCompOp inserts h as the innermost (first-called-last, i.e. the
// fallback) handler for op on tag, beneath any already-registered
// overrides, rather than above them. Used by a generic/default pass
// implementation that should still be reachable via Next from more
// specific per-tag overrides registered afterward.
func SetBottomCompOp(op CompOp, tag *tnode.TagDef, h Handler) {
	k := compKey(op, tag)
	chains[k] = append([]Handler{h}, chains[k]...)
}

func buildChain(hs []Handler) Next {
	var call Next
	call = func(n *tnode.Node, args ...any) (any, error) {
		return nil, ErrNoMoreHandlers
	}
	for _, h := range hs {
		h, prev := h, call
		call = func(n *tnode.Node, args ...any) (any, error) {
			return h(prev, n, args...)
		}
	}
	return call
}

// DispatchComp invokes the outermost registered handler for (op, n.Tag).
func DispatchComp(op CompOp, n *tnode.Node, args ...any) (any, error) {
	hs := chains[compKey(op, n.Tag)]
	if len(hs) == 0 {
		return nil, ErrNoMoreHandlers
	}
	return buildChain(hs)(n, args...)
}

// DispatchLang invokes the outermost registered handler for (op, n.Tag).
func DispatchLang(op LangOp, n *tnode.Node, args ...any) (any, error) {
	hs := chains[langKey(op, n.Tag)]
	if len(hs) == 0 {
		return nil, ErrNoMoreHandlers
	}
	return buildChain(hs)(n, args...)
}

// HasCompOp reports whether any handler is registered for (op, tag).
func HasCompOp(op CompOp, tag *tnode.TagDef) bool {
	return len(chains[compKey(op, tag)]) > 0
}

// HasLangOp reports whether any handler is registered for (op, tag).
func HasLangOp(op LangOp, tag *tnode.TagDef) bool {
	return len(chains[langKey(op, tag)]) > 0
}

// Reset clears the entire registry. Exercised only by tests, which
// register ad hoc tags/handlers and must not leak state between them.
func Reset() {
	chains = map[key][]Handler{}
}
