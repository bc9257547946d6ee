// Package compiler is the top-level pipeline driver: it dispatches a
// source file to the registered front-end (package frontend), runs the
// middle-end pass driver (package pass) over the resulting tree, and
// reports the outcome through a diag.Sink. Per spec §7, a violated
// internal invariant (a tnode.InternalError panic) is recovered here —
// the one place in the pipeline allowed to catch it — and reported as an
// internal-severity diagnostic rather than crashing the process.
package compiler

import (
	"fmt"

	"github.com/nocc-go/nocc/diag"
	"github.com/nocc-go/nocc/names"
	"github.com/nocc-go/nocc/pass"
	"github.com/nocc-go/nocc/tnode"

	"github.com/nocc-go/nocc/frontend"
)

// Result is what CompileFile returns: the (possibly transformed) tree
// and the diagnostic sink it was compiled against. Root is nil if
// parsing itself failed or an internal error was recovered.
type Result struct {
	Root *tnode.Node
	Diag *diag.Sink
}

// DefaultStages is the mechanically-wired subset of spec §4.3-4.8's pass
// order this module implements end to end without per-front-end hooks
// (full typecheck/betrans/namemap/codegen need a concrete target
// language's langops, which package guppy exercises at the tree level in
// its own tests rather than through this generic entry point).
func DefaultStages() []pass.Stage {
	return []pass.Stage{
		pass.FlattenSeqStage(),
		pass.ConstPropStage(),
	}
}

// CompileFile parses filePath's contents via the registered front-end for
// its extension, then runs stages over the resulting tree. A
// tnode.InternalError raised anywhere in parsing or the pass pipeline is
// recovered and reported as diag.Internalf against filePath; any other
// panic is re-raised.
func CompileFile(filePath string, src []byte, stages []pass.Stage) (res Result, err error) {
	sink := diag.NewSink()
	res.Diag = sink

	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*tnode.InternalError); ok {
				sink.Internalf(filePath, 0, "%s", ie.Error())
				res.Root = nil
				err = ie
				return
			}
			panic(r)
		}
	}()

	tbl := names.NewTable()
	root, ferr := frontend.ForFile(filePath, src, tbl)
	if ferr != nil {
		sink.Errorf(filePath, 0, "%s", ferr.Error())
		return res, ferr
	}

	ctx := &pass.Context{Root: root, Names: tbl, Diag: sink}
	driver := &pass.Driver{Stages: stages}
	if derr := driver.Run(ctx); derr != nil {
		return res, fmt.Errorf("compiler: pass driver: %w", derr)
	}

	res.Root = ctx.Root
	if sink.HasErrors() {
		return res, sink.Err()
	}
	return res, nil
}
