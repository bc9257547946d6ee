package tnode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/nocc-go/nocc/tnode"
)

// a tiny two-child node type used only by this test file.
var testBinType = tnode.RegisterType(&tnode.TypeDef{Name: "testbin", NSub: 2})
var testBinTag = tnode.RegisterTag("TESTBIN", testBinType, 0)
var testLeafType = tnode.RegisterType(&tnode.TypeDef{Name: "testleaf", NSub: 0})
var testLeafTag = tnode.RegisterTag("TESTLEAF", testLeafType, 0)

func leaf(line int) *tnode.Node {
	return tnode.New(testLeafTag, tnode.Origin{File: "t.occ", Line: line})
}

func bin(origin tnode.Origin, l, r *tnode.Node) *tnode.Node {
	return tnode.Create(testBinTag, origin, []*tnode.Node{l, r}, nil, nil)
}

// structurally walks a tree into a comparable shape for cmp.Diff, since
// *tnode.Node contains pointers that will never be == across a copy.
type shape struct {
	Tag   string
	File  string
	Line  int
	Items []shape
	Kids  []shape
}

func shapeOf(n *tnode.Node) shape {
	if n == nil {
		return shape{}
	}
	s := shape{Tag: n.Tag.Name, File: n.Origin.File, Line: n.Origin.Line}
	if tnode.IsList(n) {
		for _, it := range tnode.ListItems(n) {
			s.Items = append(s.Items, shapeOf(it))
		}
		return s
	}
	for _, c := range n.Subs {
		s.Kids = append(s.Kids, shapeOf(c))
	}
	return s
}

func TestCopyTreeRoundTrip(t *testing.T) {
	orig := bin(tnode.Origin{File: "t.occ", Line: 1}, leaf(2), leaf(3))
	cp := tnode.CopyTree(orig)

	require.NotSame(t, orig, cp)
	if diff := cmp.Diff(shapeOf(orig), shapeOf(cp), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("copy diverges from original (-orig +copy):\n%s", diff)
	}

	tnode.Free(cp)
	// freeing the copy must not affect the original's shape.
	if diff := cmp.Diff(shapeOf(orig), shape{Tag: "testbin", File: "t.occ", Line: 1,
		Kids: []shape{{Tag: "testleaf", File: "t.occ", Line: 2}, {Tag: "testleaf", File: "t.occ", Line: 3}}}); diff != "" {
		t.Fatalf("original mutated by freeing the copy:\n%s", diff)
	}
}

func TestCopyTreeWithList(t *testing.T) {
	l := tnode.NewList(tnode.Origin{File: "t.occ", Line: 1})
	tnode.ListAdd(l, leaf(2))
	tnode.ListAdd(l, leaf(3))

	cp := tnode.CopyTree(l)
	require.Equal(t, 2, tnode.ListCount(cp))
	require.NotSame(t, tnode.ListNth(l, 0), tnode.ListNth(cp, 0))
}

func TestPostwalkVisitsEveryNodeOnce(t *testing.T) {
	root := bin(tnode.Origin{Line: 1}, bin(tnode.Origin{Line: 2}, leaf(3), leaf(4)), leaf(5))

	var visits []int
	err := tnode.Postwalk(root, func(n *tnode.Node, arg any) error {
		visits = append(visits, n.Origin.Line)
		return nil
	}, nil)
	require.NoError(t, err)
	// post-order: children before parents, left before right.
	require.Equal(t, []int{3, 4, 2, 5, 1}, visits)
}

func TestPrewalkPruneStopsDescent(t *testing.T) {
	root := bin(tnode.Origin{Line: 1}, bin(tnode.Origin{Line: 2}, leaf(3), leaf(4)), leaf(5))

	var visits []int
	err := tnode.Prewalk(root, func(n *tnode.Node, arg any) (bool, error) {
		visits = append(visits, n.Origin.Line)
		return n.Origin.Line != 2, nil
	}, nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 5}, visits)
}

func TestModPrewalkReplacesNode(t *testing.T) {
	root := bin(tnode.Origin{Line: 1}, leaf(2), leaf(3))

	var np *tnode.Node = root
	err := tnode.ModPrewalk(&np, func(np **tnode.Node, arg any) (bool, error) {
		if (*np).Origin.Line == 2 {
			*np = leaf(20)
		}
		return true, nil
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 20, np.Sub(0).Origin.Line)
	require.Equal(t, 3, np.Sub(1).Origin.Line)
}

func TestEnsureListInSlotWrapsSingleton(t *testing.T) {
	root := bin(tnode.Origin{Line: 1}, leaf(2), leaf(3))
	tnode.EnsureListInSlot(root, 0)
	require.True(t, tnode.IsList(root.Sub(0)))
	require.Equal(t, 1, tnode.ListCount(root.Sub(0)))

	// calling it again on an already-list slot is a no-op.
	tnode.EnsureListInSlot(root, 0)
	require.Equal(t, 1, tnode.ListCount(root.Sub(0)))
}
