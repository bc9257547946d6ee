package frontend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocc-go/nocc/frontend"
	"github.com/nocc-go/nocc/names"
	"github.com/nocc-go/nocc/tnode"
)

func TestForExtensionDispatchesOilAndMcsp(t *testing.T) {
	require.Equal(t, "oil", frontend.ForExtension(".oil").Name())
	require.Equal(t, "mcsp", frontend.ForExtension("mcsp").Name())
	require.Equal(t, "mcsp", frontend.ForExtension("csp").Name())
	require.Nil(t, frontend.ForExtension("nosuchext"))
}

func TestForFileParsesOilModule(t *testing.T) {
	tbl := names.NewTable()
	src := []byte("def main():\n    pass\n\nx = 1\n")
	n, err := frontend.ForFile("test.oil", src, tbl)
	require.NoError(t, err)
	require.NotNil(t, n)

	_, ok := tbl.Find("main")
	require.True(t, ok)
	_, ok = tbl.Find("x")
	require.True(t, ok)
}

func TestForFileParsesMcspModule(t *testing.T) {
	tbl := names.NewTable()
	src := []byte("P = foo(bar, baz)\n")
	n, err := frontend.ForFile("test.mcsp", src, tbl)
	require.NoError(t, err)
	require.NotNil(t, n)

	_, ok := tbl.Find("P")
	require.True(t, ok)
}

func TestForFileUnknownExtensionErrors(t *testing.T) {
	tbl := names.NewTable()
	_, err := frontend.ForFile("test.nope", []byte(""), tbl)
	require.Error(t, err)
}

func TestForFileNoExtensionErrors(t *testing.T) {
	tbl := names.NewTable()
	_, err := frontend.ForFile("noext", []byte(""), tbl)
	require.Error(t, err)
}

func TestOilModuleIsWellFormedTree(t *testing.T) {
	tbl := names.NewTable()
	n, err := frontend.ForFile("m.oil", []byte("y = 2\n"), tbl)
	require.NoError(t, err)
	body := n.Hook(0).(*tnode.Node)
	require.True(t, tnode.IsList(body))
	require.Equal(t, 1, tnode.ListCount(body))
}

func TestOilModulePostwalkDescendsIntoBody(t *testing.T) {
	tbl := names.NewTable()
	n, err := frontend.ForFile("m.oil", []byte("def f():\n    pass\n\nx = 1\n"), tbl)
	require.NoError(t, err)

	var tags []string
	err = tnode.Postwalk(n, func(c *tnode.Node, arg any) error {
		tags = append(tags, c.Tag.Name)
		return nil
	}, nil)
	require.NoError(t, err)

	// the module node itself, its body list, and the body's two
	// top-level items (OIL_DEF's own nested list counts too) must all
	// be visited, not just OIL_MODULE.
	require.Contains(t, tags, "OIL_MODULE")
	require.Contains(t, tags, "OIL_DEF")
	require.Contains(t, tags, "OIL_ASSIGN")
	require.Greater(t, len(tags), 1)
}

func TestMcspModulePostwalkDescendsIntoBody(t *testing.T) {
	tbl := names.NewTable()
	n, err := frontend.ForFile("m.mcsp", []byte("P = foo(bar, baz)\n"), tbl)
	require.NoError(t, err)

	var tags []string
	err = tnode.Postwalk(n, func(c *tnode.Node, arg any) error {
		tags = append(tags, c.Tag.Name)
		return nil
	}, nil)
	require.NoError(t, err)

	require.Contains(t, tags, "MCSP_MODULE")
	require.Contains(t, tags, "MCSP_PROCEQN")
	require.Greater(t, len(tags), 1)
}
