package guppy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocc-go/nocc/guppy"
	"github.com/nocc-go/nocc/names"
	"github.com/nocc-go/nocc/tnode"
)

// decl[x], decl[y], output(c,x) declifies into
// DECLBLOCK(x, DECLBLOCK(y, output(c,x))).
func TestDeclifyChainsLeadingDeclarations(t *testing.T) {
	tbl := names.NewTable()
	x, _ := tbl.Declare("x", nil)
	y, _ := tbl.Declare("y", nil)
	c, _ := tbl.Declare("c", nil)
	x.MakeVisible()
	y.MakeVisible()
	c.MakeVisible()

	xDecl := guppy.NewVarDecl(origin(1), tnode.NameID(x.ID), guppy.NewPrimType(guppy.IntTypeTag, origin(1), 0), nil)
	yDecl := guppy.NewVarDecl(origin(2), tnode.NameID(y.ID), guppy.NewPrimType(guppy.IntTypeTag, origin(2), 0), nil)
	out := guppy.NewOutput(origin(3), tnode.NewNameNode(origin(3), tnode.NameID(c.ID)), tnode.NewNameNode(origin(3), tnode.NameID(x.ID)))

	list := tnode.NewList(origin(1))
	tnode.ListAdd(list, xDecl)
	tnode.ListAdd(list, yDecl)
	tnode.ListAdd(list, out)

	result := guppy.Declify(list, origin(1))
	require.True(t, result.Is(guppy.DeclBlockTag))
	require.Equal(t, 1, tnode.ListCount(guppy.DeclBlockDecls(result)))
	require.Same(t, xDecl, tnode.ListNth(guppy.DeclBlockDecls(result), 0))

	inner := guppy.DeclBlockBody(result)
	require.True(t, inner.Is(guppy.DeclBlockTag))
	require.Same(t, yDecl, tnode.ListNth(guppy.DeclBlockDecls(inner), 0))
	require.Same(t, out, guppy.DeclBlockBody(inner))
}

func TestDeclifyEmptyListYieldsSkip(t *testing.T) {
	list := tnode.NewList(origin(1))
	result := guppy.Declify(list, origin(1))
	require.True(t, result.Is(guppy.SkipTag))
}

func TestDeclifyTrailingProcessesWrapInSeq(t *testing.T) {
	tbl := names.NewTable()
	x, _ := tbl.Declare("x", nil)
	x.MakeVisible()
	xDecl := guppy.NewVarDecl(origin(1), tnode.NameID(x.ID), guppy.NewPrimType(guppy.IntTypeTag, origin(1), 0), nil)
	skip1 := tnode.Create(guppy.SkipTag, origin(2), nil, nil, nil)
	skip2 := tnode.Create(guppy.StopTag, origin(3), nil, nil, nil)

	list := tnode.NewList(origin(1))
	tnode.ListAdd(list, xDecl)
	tnode.ListAdd(list, skip1)
	tnode.ListAdd(list, skip2)

	result := guppy.Declify(list, origin(1))
	require.True(t, result.Is(guppy.DeclBlockTag))
	body := guppy.DeclBlockBody(result)
	require.True(t, body.Is(guppy.SeqTag))
	require.Equal(t, 2, tnode.ListCount(guppy.ProcBody(body)))
}
