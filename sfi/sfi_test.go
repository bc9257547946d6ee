package sfi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocc-go/nocc/sfi"
)

const callsYAML = `
- function: main
  calls: [worker, helper]
- function: worker
  calls: [helper]
- function: helper
  calls: []
`

const framesYAML = `
- function: main
  frame_size: 4
- function: worker
  frame_size: 8
- function: helper
  frame_size: 2
`

func TestLoadCallsAndFrameSizes(t *testing.T) {
	calls, err := sfi.LoadCalls(strings.NewReader(callsYAML))
	require.NoError(t, err)
	require.Len(t, calls, 3)
	require.Equal(t, "main", calls[0].Function)
	require.Equal(t, []string{"worker", "helper"}, calls[0].Calls)

	frames, err := sfi.LoadFrameSizes(strings.NewReader(framesYAML))
	require.NoError(t, err)
	require.Len(t, frames, 3)
	require.Equal(t, 8, frames[1].FrameSize)
}

func TestBuildTableJoinsOnFunctionName(t *testing.T) {
	calls, err := sfi.LoadCalls(strings.NewReader(callsYAML))
	require.NoError(t, err)
	frames, err := sfi.LoadFrameSizes(strings.NewReader(framesYAML))
	require.NoError(t, err)

	tbl := sfi.BuildTable(calls, frames)
	require.Len(t, tbl, 3)
	require.Equal(t, 4, tbl["main"].FrameSize)
	require.Equal(t, []string{"worker", "helper"}, tbl["main"].Children)

	require.NoError(t, tbl.CalcAlloc(nil))
	require.Equal(t, 2, tbl["helper"].AllocSize)
	require.Equal(t, 8+2, tbl["worker"].AllocSize)
	require.Equal(t, 4+10, tbl["main"].AllocSize)
}

func TestBuildTableToleratesMissingFrameSize(t *testing.T) {
	calls, err := sfi.LoadCalls(strings.NewReader(`
- function: orphan
  calls: []
`))
	require.NoError(t, err)
	tbl := sfi.BuildTable(calls, nil)
	require.Equal(t, 0, tbl["orphan"].FrameSize)
}
