// Package frontend dispatches a source file to the front-end that owns
// its extension (spec §6: "each front-end declares a list of
// extensions... a dispatcher picks the front-end by extension"),
// grounded on the teacher's per-extension `IsAnalyzable`/`newLangChecker`
// switch in analyzer/core/check/common.go and analyzer/core/analyzer.go.
//
// Parsing itself is explicitly out of scope for the hand-rolled
// grammars (spec §1 Non-goals); two front-ends instead hand the source to
// a borrowed third-party parser and translate the AST it returns directly
// into tnode trees: oil reuses go.starlark.net/syntax (oil_adapter.go)
// and mcsp/.csp reuses github.com/bazelbuild/buildtools/build
// (mcsp_adapter.go). Neither adapter produces lexer.Token values.
package frontend

import (
	"fmt"
	"strings"

	"github.com/nocc-go/nocc/names"
	"github.com/nocc-go/nocc/tnode"
)

// Frontend is what the dispatcher needs from each source language: the
// extensions it owns and an entry point producing a tree from raw text.
// tbl is the compilation unit's name table; a front-end declares its
// top-level names into it while building the tree (declify for nested
// scopes remains a later pass per spec §4.4 — only the outermost level
// is resolved here, since the borrowed parsers already hand back fully
// structured ASTs with no token-level ambiguity left to resolve).
type Frontend interface {
	Name() string
	Extensions() []string
	ParseFile(filePath string, src []byte, tbl *names.Table) (*tnode.Node, error)
}

var registry []Frontend

// Register appends f to the dispatch table. Front-ends register
// themselves from an init function, mirroring register_frontend in
// spec §9's "global mutable state" design note.
func Register(f Frontend) {
	registry = append(registry, f)
}

// ForExtension returns the front-end owning ext (with or without a
// leading dot), or nil if none claims it.
func ForExtension(ext string) Frontend {
	ext = strings.TrimPrefix(ext, ".")
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if strings.TrimPrefix(e, ".") == ext {
				return f
			}
		}
	}
	return nil
}

// ForFile resolves filePath's extension and dispatches ParseFile to the
// owning front-end, erroring if no front-end claims the extension.
func ForFile(filePath string, src []byte, tbl *names.Table) (*tnode.Node, error) {
	dot := strings.LastIndexByte(filePath, '.')
	if dot < 0 {
		return nil, fmt.Errorf("frontend: %q has no extension to dispatch on", filePath)
	}
	f := ForExtension(filePath[dot+1:])
	if f == nil {
		return nil, fmt.Errorf("frontend: no front-end registered for extension %q", filePath[dot:])
	}
	return f.ParseFile(filePath, src, tbl)
}

// Registered returns a snapshot of the registered front-ends, for
// diagnostics/tests.
func Registered() []Frontend {
	return append([]Frontend(nil), registry...)
}
