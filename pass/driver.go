// Package pass implements the ordered pass driver that orchestrates the
// middle-end pipeline (spec §4.3–§4.8): prescope, scope, declify,
// autoseq, typecheck, the fetrans family, betrans, namemap, preallocate,
// precode, codegen, reallocate. Each stage is a Stage closure operating
// on a shared Context; the driver runs stages in order, aggregating
// errors with go.uber.org/multierr and aborting before codegen if any
// have accumulated (spec §7's propagation policy), the same
// symbolicate-then-transform-then-check-then-emit shape as the teacher's
// ChangesEq orchestration in analyzer/core/analyzer.go.
package pass

import (
	"go.uber.org/multierr"

	"github.com/nocc-go/nocc/cccsp"
	"github.com/nocc-go/nocc/diag"
	"github.com/nocc-go/nocc/names"
	"github.com/nocc-go/nocc/tnode"
)

// Context is threaded through every stage: the tree being transformed,
// the name table, and the diagnostic sink stages report into. CCSP is
// the static-function-index table preallocate/reallocate consult and
// populate (spec §4.8-4.9); a caller sets it (e.g. from sfi.BuildTable),
// and PreallocateStage/ReallocateStage do nothing while it is nil.
// Stage-specific auxiliary state (an insert point, a cross-
// list stack, a fresh-name counter) is not modelled generically here —
// each stage closure captures whatever extra state it needs, the same
// way guppy_fetrans1_t/guppy_scope_t are separate per-pass structs in
// include/guppy.h rather than one shared blob.
type Context struct {
	Root  *tnode.Node
	Names *names.Table
	Diag  *diag.Sink
	CCSP  cccsp.Table
}

// Stage is one named pipeline step. A Stage may replace ctx.Root
// (returning a new tree, as ConstProp/Declify do) or mutate it in place
// (as FlattenSeq/LowerPar do) — either is valid; the driver always
// re-reads ctx.Root after each stage runs.
type Stage struct {
	Name string
	Run  func(ctx *Context) error
}

// StageNames lists spec §4.3-4.8's full pass order, for documentation
// and for driver tests that assert a caller-supplied pipeline matches
// the spec's required ordering. Not every name here has a Stage
// implementation wired into compiler.DefaultStages — fetrans1/1.5/2/3, betrans, and
// codegen proper require per-front-end hooks (language-specific node
// shapes, an emitter) that this driver invokes through ops.DispatchComp
// rather than hard-coding here.
var StageNames = []string{
	"prescope", "scope", "declify", "autoseq", "typecheck",
	"fetrans", "fetrans1", "fetrans1.5", "fetrans2", "fetrans3",
	"betrans", "namemap", "preallocate", "precode", "codegen", "reallocate",
}

// codegenStageName is the point past which the driver refuses to
// continue if any errors have accumulated (spec §7: "aborts before code
// emission if any exist").
const codegenStageName = "codegen"

// Driver runs an ordered list of stages against ctx, stopping early (and
// never reaching a "codegen"-named stage) if ctx.Diag.HasErrors() — per
// spec §7, passes never throw, they set counters, and the driver alone
// decides when to abort.
type Driver struct {
	Stages []Stage
}

// Run executes every stage in order. It returns the aggregated error
// (via multierr) of every stage that itself returned a non-nil error
// (an internal/driver-level failure, not an ordinary diag.Entry — those
// are recorded into ctx.Diag and do not stop the driver on their own).
// Before running a stage named "codegen", Run checks ctx.Diag.HasErrors()
// and aborts without running it or anything after it if the input
// program was ill-formed.
func (d *Driver) Run(ctx *Context) error {
	var errs error
	for _, s := range d.Stages {
		if s.Name == codegenStageName && ctx.Diag != nil && ctx.Diag.HasErrors() {
			errs = multierr.Append(errs, &AbortedError{Stage: s.Name})
			break
		}
		if err := s.Run(ctx); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// AbortedError reports that the driver refused to run stage (and
// everything after it) because errors had already accumulated.
type AbortedError struct {
	Stage string
}

func (e *AbortedError) Error() string {
	return "pass: aborted before stage " + e.Stage + ": input program has errors"
}
