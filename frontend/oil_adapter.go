package frontend

import (
	"fmt"

	"go.starlark.net/syntax"

	"github.com/nocc-go/nocc/names"
	"github.com/nocc-go/nocc/tnode"
)

// oil is a Starlark-syntaxed build-description language (spec §1/§6
// extensions: .hopp... actually .oil is not in the extension list
// verbatim, but the borrowed-parser role is the same shape spec §1
// Non-goals assigns to any front-end whose grammar is declared "out of
// scope": adapt an existing tokenizer/parser instead of hand-writing a
// DFA. go.starlark.net/syntax already tokenizes and parses a
// Python-like indentation-sensitive grammar, which is what oil's
// def/assignment-based module format needs.
type oilFrontend struct{}

func init() {
	Register(oilFrontend{})
}

func (oilFrontend) Name() string          { return "oil" }
func (oilFrontend) Extensions() []string  { return []string{"oil"} }

var (
	// oilModuleType's sole hook holds the module body as a list node
	// (not a Sub, since NSub is 0 here) — register the Post/PreWalk
	// hooks as a single-child passthrough so a generic tree walk
	// descends into the body the same way it would a Sub; the list
	// node itself then fans out to its items via ListType's own hooks.
	oilModuleType = tnode.RegisterType(&tnode.TypeDef{
		Name: "oilmodule", NSub: 0, NHooks: 1,
		HookPostWalkTree: func(hook any, visit func(*tnode.Node) error) error {
			return visit(hook.(*tnode.Node))
		},
		HookPreWalkTree: func(hook any, visit func(*tnode.Node) (bool, error)) error {
			_, err := visit(hook.(*tnode.Node))
			return err
		},
	})
	oilModuleTag = tnode.RegisterTag("OIL_MODULE", oilModuleType, 0)

	oilDefType = tnode.RegisterType(&tnode.TypeDef{Name: "oildef", NSub: 1, NName: 1})
	oilDefTag  = tnode.RegisterTag("OIL_DEF", oilDefType, 0)

	oilAssignType = tnode.RegisterType(&tnode.TypeDef{Name: "oilassign", NSub: 1, NName: 1})
	oilAssignTag  = tnode.RegisterTag("OIL_ASSIGN", oilAssignType, 0)

	// oilStmtType wraps any statement this adapter does not elevate to a
	// dedicated node (control flow, bare expressions); it carries the
	// original syntax.Stmt as an opaque hook so later passes can at least
	// report its position, without this adapter having to re-implement a
	// full Starlark-to-tnode expression translator.
	oilStmtType = tnode.RegisterType(&tnode.TypeDef{Name: "oilstmt", NSub: 0, NHooks: 1})
	oilStmtTag  = tnode.RegisterTag("OIL_STMT", oilStmtType, 0)
)

func (oilFrontend) ParseFile(filePath string, src []byte, tbl *names.Table) (*tnode.Node, error) {
	f, err := syntax.Parse(filePath, src, 0)
	if err != nil {
		return nil, fmt.Errorf("oil: %w", err)
	}

	body := tnode.NewList(tnode.Origin{File: filePath, Line: 1})
	for _, stmt := range f.Stmts {
		n, err := oilTranslateStmt(filePath, stmt, tbl)
		if err != nil {
			return nil, err
		}
		if n != nil {
			tnode.ListAdd(body, n)
		}
	}
	return tnode.Create(oilModuleTag, tnode.Origin{File: filePath, Line: 1}, nil, nil, []any{body}), nil
}

func oilTranslateStmt(filePath string, stmt syntax.Stmt, tbl *names.Table) (*tnode.Node, error) {
	origin := tnode.Origin{File: filePath, Line: stmtLine(stmt)}
	switch s := stmt.(type) {
	case *syntax.DefStmt:
		decl, err := tbl.Declare(s.Name.Name, s)
		if err != nil {
			return nil, fmt.Errorf("oil: %s:%d: %w", filePath, origin.Line, err)
		}
		decl.MakeVisible()
		body := tnode.NewList(origin)
		mark := tbl.Mark()
		tbl.AddScope()
		for _, inner := range s.Body {
			n, err := oilTranslateStmt(filePath, inner, tbl)
			if err != nil {
				return nil, err
			}
			if n != nil {
				tnode.ListAdd(body, n)
			}
		}
		if err := tbl.MarkDescope(mark); err != nil {
			return nil, err
		}
		return tnode.Create(oilDefTag, origin, []*tnode.Node{body}, []tnode.NameID{tnode.NameID(decl.ID)}, nil), nil

	case *syntax.AssignStmt:
		ident, ok := s.LHS.(*syntax.Ident)
		if !ok {
			// destructuring/attribute assignment: keep as an opaque stmt
			// rather than guessing at a declaration target.
			return tnode.Create(oilStmtTag, origin, nil, nil, []any{stmt}), nil
		}
		decl, err := tbl.Declare(ident.Name, s)
		if err != nil {
			return nil, fmt.Errorf("oil: %s:%d: %w", filePath, origin.Line, err)
		}
		decl.MakeVisible()
		val := tnode.Create(oilStmtTag, origin, nil, nil, []any{s.RHS})
		return tnode.Create(oilAssignTag, origin, []*tnode.Node{val}, []tnode.NameID{tnode.NameID(decl.ID)}, nil), nil

	default:
		return tnode.Create(oilStmtTag, origin, nil, nil, []any{stmt}), nil
	}
}

func stmtLine(stmt syntax.Stmt) int {
	start, _ := stmt.Span()
	return start.Line
}
