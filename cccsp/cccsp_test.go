package cccsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocc-go/nocc/cccsp"
	"github.com/nocc-go/nocc/diag"
)

// Property 6: allocsize(v) == framesize(v) + max(allocsize(children)).
func TestCalcAllocFixpoint(t *testing.T) {
	tbl := cccsp.NewTable()
	tbl.Add(&cccsp.Entry{Name: "leaf1", FrameSize: 4})
	tbl.Add(&cccsp.Entry{Name: "leaf2", FrameSize: 6})
	tbl.Add(&cccsp.Entry{Name: "mid", FrameSize: 2, Children: []string{"leaf1", "leaf2"}})
	tbl.Add(&cccsp.Entry{Name: "root", FrameSize: 1, Children: []string{"mid", "leaf1"}})

	sink := diag.NewSink()
	require.NoError(t, tbl.CalcAlloc(sink))
	require.False(t, sink.HasErrors())

	require.Equal(t, 4, tbl["leaf1"].AllocSize)
	require.Equal(t, 6, tbl["leaf2"].AllocSize)
	require.Equal(t, 2+6, tbl["mid"].AllocSize)
	require.Equal(t, 1+8, tbl["root"].AllocSize)
	require.NoError(t, tbl.Verify())
}

func TestCalcAllocDirectRecursionIsOpaqueNotFixpoint(t *testing.T) {
	tbl := cccsp.NewTable()
	tbl.Add(&cccsp.Entry{Name: "fact", FrameSize: 5, Children: []string{"fact"}})

	sink := diag.NewSink()
	require.NoError(t, tbl.CalcAlloc(sink))
	require.False(t, sink.HasErrors(), "recursion is a warning, not a hard error, per Open Question 1")
	require.True(t, tbl["fact"].ParFixup)
	require.Equal(t, 5, tbl["fact"].AllocSize)
}

func TestCalcAllocIndirectRecursionIsOpaque(t *testing.T) {
	tbl := cccsp.NewTable()
	tbl.Add(&cccsp.Entry{Name: "a", FrameSize: 3, Children: []string{"b"}})
	tbl.Add(&cccsp.Entry{Name: "b", FrameSize: 4, Children: []string{"a"}})

	sink := diag.NewSink()
	require.NoError(t, tbl.CalcAlloc(sink))
	require.True(t, len(sink.Entries()) >= 1)
	require.False(t, sink.HasErrors())
}

// Property 7 / Scenario S5: arms of 12 and 20 words sum to 32.
func TestReallocateParScenarioS5(t *testing.T) {
	arms := []cccsp.ParArm{
		{Name: "arm0", AllocSize: 12 * cccsp.WordSize},
		{Name: "arm1", AllocSize: 20 * cccsp.WordSize},
	}
	info := cccsp.ReallocatePar(arms)
	require.Equal(t, 32, info.NWords)
	require.Equal(t, 12, info.Arms[0].Words)
	require.Equal(t, 20, info.Arms[1].Words)

	maxpar := cccsp.MaxPar(10, info)
	require.Equal(t, 32, maxpar)
}

func TestReallocateParPadsToWordBoundary(t *testing.T) {
	arms := []cccsp.ParArm{{Name: "a", AllocSize: 13}} // 13 bytes -> 4 words
	info := cccsp.ReallocatePar(arms)
	require.Equal(t, 4, info.Arms[0].Words)
	require.Equal(t, 4, info.NWords)
}

// Property 8: indirection = default-pointer-level + (result/modifiable ? 1 : 0) + (value-by-ref ? 1 : 0).
func TestIndirectionLevelValueParamScalar(t *testing.T) {
	level := cccsp.IndirectionLevel(cccsp.DefaultPointerLevel(false), cccsp.RoleValue, false)
	require.Equal(t, 0, level)
}

func TestIndirectionLevelResultParamScalar(t *testing.T) {
	level := cccsp.IndirectionLevel(cccsp.DefaultPointerLevel(false), cccsp.RoleResult, false)
	require.Equal(t, 1, level)
}

func TestIndirectionLevelArrayValueByReference(t *testing.T) {
	level := cccsp.IndirectionLevel(cccsp.DefaultPointerLevel(true), cccsp.RoleValue, true)
	require.Equal(t, 2, level)
}

func TestIndirectionLevelModifiableRecord(t *testing.T) {
	level := cccsp.IndirectionLevel(cccsp.DefaultPointerLevel(true), cccsp.RoleModifiable, false)
	require.Equal(t, 2, level)
}

func TestParJoinCallsEV3AddsLightProcFree(t *testing.T) {
	calls := cccsp.ParJoinCalls(cccsp.EV3, 3)
	require.Len(t, calls, 3)
	for _, c := range calls {
		require.Equal(t, cccsp.LIGHT_PROC_FREE, c)
	}
	require.Nil(t, cccsp.ParJoinCalls(cccsp.Default, 3))
}

func TestAPICallWordCost(t *testing.T) {
	require.Equal(t, 0, cccsp.NOAPI.WordCost())
	require.Equal(t, 1, cccsp.CHAN_IN.WordCost())
	require.Equal(t, "CHAN_IN", cccsp.CHAN_IN.String())
}
