package frontend

import (
	"fmt"

	"github.com/bazelbuild/buildtools/build"

	"github.com/nocc-go/nocc/names"
	"github.com/nocc-go/nocc/tnode"
)

// mcsp is occam's CSP-flavoured process-algebra dialect (.mcsp/.csp, spec
// §6 extension list). Its surface grammar — a sequence of top-level
// `NAME = expr` process-equation statements, occasionally with a
// function-call-shaped guard list — maps closely enough onto Bazel's
// BUILD-file grammar (a flat list of assignments and call expressions)
// that reusing buildtools/build's scanner/parser for it, rather than
// hand-writing a second indentation-free recursive-descent parser,
// follows the same "adapt a borrowed parser" path the oil front-end
// takes with go.starlark.net/syntax (spec §1 Non-goals: grammars are out
// of scope).
type mcspFrontend struct{}

func init() {
	Register(mcspFrontend{})
}

func (mcspFrontend) Name() string         { return "mcsp" }
func (mcspFrontend) Extensions() []string { return []string{"mcsp", "csp"} }

var (
	// mcspModuleType mirrors oilModuleType: its body list lives in the
	// sole hook rather than a Sub, so the walk hooks are a single-child
	// passthrough into that list node (whose own ListType hooks then
	// fan out to the actual equations).
	mcspModuleType = tnode.RegisterType(&tnode.TypeDef{
		Name: "mcspmodule", NSub: 0, NHooks: 1,
		HookPostWalkTree: func(hook any, visit func(*tnode.Node) error) error {
			return visit(hook.(*tnode.Node))
		},
		HookPreWalkTree: func(hook any, visit func(*tnode.Node) (bool, error)) error {
			_, err := visit(hook.(*tnode.Node))
			return err
		},
	})
	mcspModuleTag = tnode.RegisterTag("MCSP_MODULE", mcspModuleType, 0)

	// mcspProcEqnType is a top-level `NAME = expr` process equation.
	mcspProcEqnType = tnode.RegisterType(&tnode.TypeDef{Name: "mcspproceqn", NSub: 1, NName: 1})
	mcspProcEqnTag  = tnode.RegisterTag("MCSP_PROCEQN", mcspProcEqnType, 0)

	// mcspExprType wraps an as-yet-untranslated build.Expr (the process
	// expression on the RHS of an equation, or anything not recognized
	// as a top-level equation) as an opaque hook, to be expanded into
	// genuine PAR/ALT/SEQ nodes by a later pass that understands CSP
	// operator call shapes (||, [], ->).
	mcspExprType = tnode.RegisterType(&tnode.TypeDef{Name: "mcspexpr", NSub: 0, NHooks: 1})
	mcspExprTag  = tnode.RegisterTag("MCSP_EXPR", mcspExprType, 0)
)

func (mcspFrontend) ParseFile(filePath string, src []byte, tbl *names.Table) (*tnode.Node, error) {
	f, err := build.Parse(filePath, src)
	if err != nil {
		return nil, fmt.Errorf("mcsp: %w", err)
	}

	body := tnode.NewList(tnode.Origin{File: filePath, Line: 1})
	for _, stmt := range f.Stmt {
		n, err := mcspTranslateTop(filePath, stmt, tbl)
		if err != nil {
			return nil, err
		}
		if n != nil {
			tnode.ListAdd(body, n)
		}
	}
	return tnode.Create(mcspModuleTag, tnode.Origin{File: filePath, Line: 1}, nil, nil, []any{body}), nil
}

func mcspTranslateTop(filePath string, stmt build.Expr, tbl *names.Table) (*tnode.Node, error) {
	start, _ := stmt.Span()
	origin := tnode.Origin{File: filePath, Line: start.Line}

	assign, ok := stmt.(*build.AssignExpr)
	if !ok {
		return tnode.Create(mcspExprTag, origin, nil, nil, []any{stmt}), nil
	}
	ident, ok := assign.LHS.(*build.Ident)
	if !ok {
		return tnode.Create(mcspExprTag, origin, nil, nil, []any{stmt}), nil
	}
	decl, err := tbl.Declare(ident.Name, assign)
	if err != nil {
		return nil, fmt.Errorf("mcsp: %s:%d: %w", filePath, origin.Line, err)
	}
	decl.MakeVisible()
	rhs := tnode.Create(mcspExprTag, origin, nil, nil, []any{assign.RHS})
	return tnode.Create(mcspProcEqnTag, origin, []*tnode.Node{rhs}, []tnode.NameID{tnode.NameID(decl.ID)}, nil), nil
}
