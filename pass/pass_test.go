package pass_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocc-go/nocc/cccsp"
	"github.com/nocc-go/nocc/constant"
	"github.com/nocc-go/nocc/diag"
	"github.com/nocc-go/nocc/guppy"
	"github.com/nocc-go/nocc/names"
	"github.com/nocc-go/nocc/pass"
	"github.com/nocc-go/nocc/tnode"
)

func origin(line int) tnode.Origin { return tnode.Origin{File: "t.gpp", Line: line} }

func TestConstPropStageFoldsWholeTree(t *testing.T) {
	expr := guppy.NewBinOp(guppy.AddTag, origin(1),
		guppy.NewLit(guppy.LitIntTag, origin(1), constant.NewInt(2)),
		guppy.NewLit(guppy.LitIntTag, origin(1), constant.NewInt(3)))
	out := guppy.NewOutput(origin(1), tnode.NewNameNode(origin(1), 1), expr)

	ctx := &pass.Context{Root: out, Names: names.NewTable(), Diag: diag.NewSink()}
	d := &pass.Driver{Stages: []pass.Stage{pass.ConstPropStage()}}
	require.NoError(t, d.Run(ctx))

	require.True(t, ctx.Root.Sub(1).Is(guppy.LitIntTag))
}

func TestFlattenSeqStageSplicesNestedSeq(t *testing.T) {
	innerBody := tnode.NewList(origin(1))
	tnode.ListAdd(innerBody, tnode.Create(guppy.SkipTag, origin(1), nil, nil, nil))
	inner := guppy.NewListProc(guppy.SeqTag, origin(1), innerBody)

	outerBody := tnode.NewList(origin(1))
	tnode.ListAdd(outerBody, inner)
	tnode.ListAdd(outerBody, tnode.Create(guppy.StopTag, origin(2), nil, nil, nil))
	outer := guppy.NewListProc(guppy.SeqTag, origin(1), outerBody)

	ctx := &pass.Context{Root: outer, Names: names.NewTable(), Diag: diag.NewSink()}
	d := &pass.Driver{Stages: []pass.Stage{pass.FlattenSeqStage()}}
	require.NoError(t, d.Run(ctx))

	require.Equal(t, 2, tnode.ListCount(guppy.ProcBody(ctx.Root)))
}

func TestPreallocateStageRunsSFIFixpoint(t *testing.T) {
	tbl := cccsp.NewTable()
	tbl.Add(&cccsp.Entry{Name: "leaf", Children: nil, FrameSize: 10})
	tbl.Add(&cccsp.Entry{Name: "caller", Children: []string{"leaf"}, FrameSize: 4})

	ctx := &pass.Context{Root: tnode.Create(guppy.SkipTag, origin(1), nil, nil, nil), Names: names.NewTable(), Diag: diag.NewSink(), CCSP: tbl}
	d := &pass.Driver{Stages: []pass.Stage{pass.PreallocateStage()}}
	require.NoError(t, d.Run(ctx))

	require.Equal(t, 10, tbl["leaf"].AllocSize)
	require.Equal(t, 14, tbl["caller"].AllocSize)
}

func TestReallocateStageAnnotatesParArmWorkspaceWords(t *testing.T) {
	nameTbl := names.NewTable()
	armA, _ := nameTbl.Declare("armA", nil)
	armA.MakeVisible()
	armB, _ := nameTbl.Declare("armB", nil)
	armB.MakeVisible()

	ccsp := cccsp.NewTable()
	ccsp.Add(&cccsp.Entry{Name: "armA", FrameSize: 48, AllocSize: 48})
	ccsp.Add(&cccsp.Entry{Name: "armB", FrameSize: 80, AllocSize: 80})

	body := tnode.NewList(origin(1))
	tnode.ListAdd(body, guppy.NewPPInstance(origin(1), tnode.NewNameNode(origin(1), tnode.NameID(armA.ID)), tnode.NewList(origin(1))))
	tnode.ListAdd(body, guppy.NewPPInstance(origin(1), tnode.NewNameNode(origin(1), tnode.NameID(armB.ID)), tnode.NewList(origin(1))))
	par := guppy.NewListProc(guppy.ParTag, origin(1), body)

	ctx := &pass.Context{Root: par, Names: nameTbl, Diag: diag.NewSink(), CCSP: ccsp}
	d := &pass.Driver{Stages: []pass.Stage{pass.ReallocateStage()}}
	require.NoError(t, d.Run(ctx))

	require.Equal(t, 12, guppy.PPInstanceWorkspaceWords(tnode.ListNth(body, 0)))
	require.Equal(t, 20, guppy.PPInstanceWorkspaceWords(tnode.ListNth(body, 1)))
}

func TestDriverAbortsBeforeCodegenWhenErrorsAccumulated(t *testing.T) {
	ctx := &pass.Context{Root: tnode.Create(guppy.SkipTag, origin(1), nil, nil, nil), Names: names.NewTable(), Diag: diag.NewSink()}
	ctx.Diag.Errorf("t.gpp", 1, "deliberate failure")

	ran := false
	d := &pass.Driver{Stages: []pass.Stage{
		{Name: "codegen", Run: func(ctx *pass.Context) error { ran = true; return nil }},
	}}
	err := d.Run(ctx)
	require.Error(t, err)
	require.False(t, ran, "codegen must never run once errors have accumulated")
}

func TestDriverRunsStagesInOrderWhenNoErrors(t *testing.T) {
	ctx := &pass.Context{Root: tnode.Create(guppy.SkipTag, origin(1), nil, nil, nil), Names: names.NewTable(), Diag: diag.NewSink()}
	var order []string
	d := &pass.Driver{Stages: []pass.Stage{
		{Name: "a", Run: func(ctx *pass.Context) error { order = append(order, "a"); return nil }},
		{Name: "codegen", Run: func(ctx *pass.Context) error { order = append(order, "codegen"); return nil }},
	}}
	require.NoError(t, d.Run(ctx))
	require.Equal(t, []string{"a", "codegen"}, order)
}
