package names_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocc-go/nocc/names"
)

func TestDeclareAndFind(t *testing.T) {
	tbl := names.NewTable()
	n, err := tbl.Declare("x", nil)
	require.NoError(t, err)
	n.MakeVisible()

	got, ok := tbl.Find("x")
	require.True(t, ok)
	require.Same(t, n, got)
}

func TestRedeclarationInSameScopeErrors(t *testing.T) {
	tbl := names.NewTable()
	_, err := tbl.Declare("x", nil)
	require.NoError(t, err)
	_, err = tbl.Declare("x", nil)
	require.Error(t, err)
}

func TestMarkDescopeRemovesInnerDeclarations(t *testing.T) {
	tbl := names.NewTable()
	outer, err := tbl.Declare("x", nil)
	require.NoError(t, err)
	outer.MakeVisible()

	mark := tbl.Mark()
	tbl.AddScope()
	inner, err := tbl.Declare("y", nil)
	require.NoError(t, err)
	inner.MakeVisible()

	_, ok := tbl.Find("y")
	require.True(t, ok)

	require.NoError(t, tbl.MarkDescope(mark))

	_, ok = tbl.Find("y")
	require.False(t, ok, "y should be gone after descoping past its scope")

	got, ok := tbl.Find("x")
	require.True(t, ok)
	require.Same(t, outer, got)
}

func TestShadowingPrefersInnerScope(t *testing.T) {
	tbl := names.NewTable()
	outer, err := tbl.Declare("x", nil)
	require.NoError(t, err)
	outer.MakeVisible()

	tbl.AddScope()
	inner, err := tbl.Declare("x", nil)
	require.NoError(t, err)
	inner.MakeVisible()

	got, ok := tbl.Find("x")
	require.True(t, ok)
	require.Same(t, inner, got)
}

func TestInvisibleDeclarationNotFoundByDefault(t *testing.T) {
	tbl := names.NewTable()
	n, err := tbl.Declare("x", nil)
	require.NoError(t, err)

	_, ok := tbl.Find("x")
	require.False(t, ok)

	got, ok := tbl.FindIncludingInvisible("x")
	require.True(t, ok)
	require.Same(t, n, got)
}

func TestNamespaceChainFallsThroughToNext(t *testing.T) {
	tbl := names.NewTable()
	base := tbl.Namespace("BASE", nil)
	n := &names.Name{ID: 1, Text: "foo"}
	require.NoError(t, base.Declare(n))

	ext := tbl.Namespace("EXT", base)
	got, ok := ext.Lookup("foo")
	require.True(t, ok)
	require.Same(t, n, got)

	_, ok = ext.LookupLocal("foo")
	require.False(t, ok, "foo is only visible via chaining, not locally in EXT")
}

func TestNamespaceDeclareRejectsLocalRedeclaration(t *testing.T) {
	ns := names.NewNamespace("NS", nil)
	require.NoError(t, ns.Declare(&names.Name{ID: 1, Text: "foo"}))
	require.Error(t, ns.Declare(&names.Name{ID: 2, Text: "foo"}))
}

func TestByIDRoundTrip(t *testing.T) {
	tbl := names.NewTable()
	n, err := tbl.Declare("x", nil)
	require.NoError(t, err)
	require.Same(t, n, tbl.ByID(n.ID))
	require.Nil(t, tbl.ByID(0))
	require.Nil(t, tbl.ByID(999))
}

func TestQualifiedName(t *testing.T) {
	ns := names.NewNamespace("MATH", nil)
	n := &names.Name{Text: "sqrt"}
	require.NoError(t, ns.Declare(n))
	require.Equal(t, "MATH.sqrt", n.Qualified())

	bare := &names.Name{Text: "x"}
	require.Equal(t, "x", bare.Qualified())
}
