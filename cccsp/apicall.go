// Package cccsp implements the CCSP runtime API enumeration, the static
// function index (SFI) fixpoint computation, PAR workspace reallocation,
// and the back-end name-mapping indirection rule (spec §4.8–§4.10).
package cccsp

// APICall enumerates the closed set of CCSP runtime primitive calls
// (spec §4.9), each carrying a fixed stack-word cost (see WordCost).
type APICall int

const (
	NOAPI APICall = iota
	CHAN_IN
	CHAN_OUT
	STOP_PROC
	PROC_PAR
	LIGHT_PROC_INIT
	PROC_PARAM
	GET_PROC_PARAM
	MEM_ALLOC
	MEM_RELEASE
	MEM_RELEASE_CHK
	STR_INIT
	STR_FREE
	STR_ASSIGN
	STR_CONCAT
	STR_CLEAR
	CHAN_INIT
	TIMER_READ
	TIMER_WAIT
	SHUTDOWN
	ALT_START
	ALT_END
	ALT_ENBC
	ALT_DISC
	ALT_WAIT
	PROC_ALT
	LIGHT_PROC_FREE
	ARRAY_INIT
	ARRAY_INIT_ALLOC
	ARRAY_FREE
)

var apiCallNames = [...]string{
	"NOAPI", "CHAN_IN", "CHAN_OUT", "STOP_PROC",
	"PROC_PAR", "LIGHT_PROC_INIT", "PROC_PARAM", "GET_PROC_PARAM",
	"MEM_ALLOC", "MEM_RELEASE", "MEM_RELEASE_CHK",
	"STR_INIT", "STR_FREE", "STR_ASSIGN", "STR_CONCAT", "STR_CLEAR",
	"CHAN_INIT", "TIMER_READ", "TIMER_WAIT", "SHUTDOWN",
	"ALT_START", "ALT_END", "ALT_ENBC", "ALT_DISC", "ALT_WAIT",
	"PROC_ALT", "LIGHT_PROC_FREE",
	"ARRAY_INIT", "ARRAY_INIT_ALLOC", "ARRAY_FREE",
}

func (c APICall) String() string {
	if int(c) < 0 || int(c) >= len(apiCallNames) {
		return "APICall(?)"
	}
	return apiCallNames[c]
}

// apiCallWordCost is the fixed stack-word cost of each primitive. The SFI
// loader (package sfi) does not add these costs to a function's
// framesize; framesize comes from the frame-size side file alone. Costs are
// grounded on cccsp_apicall_t's per-call word counts: simple one-shot
// calls (CHAN_IN/OUT, STOP_PROC) cost a single word of argument
// marshalling; PROC_PAR/PROC_ALT cost one word per tracked child plus a
// fixed header, approximated here by a conservative per-call constant
// since the exact per-arity table lives in the emitter, not the sizer.
var apiCallWordCost = map[APICall]int{
	NOAPI:            0,
	CHAN_IN:          1,
	CHAN_OUT:         1,
	STOP_PROC:        1,
	PROC_PAR:         2,
	LIGHT_PROC_INIT:  2,
	PROC_PARAM:       1,
	GET_PROC_PARAM:   1,
	MEM_ALLOC:        1,
	MEM_RELEASE:      1,
	MEM_RELEASE_CHK:  1,
	STR_INIT:         1,
	STR_FREE:         1,
	STR_ASSIGN:       1,
	STR_CONCAT:       1,
	STR_CLEAR:        1,
	CHAN_INIT:        1,
	TIMER_READ:       1,
	TIMER_WAIT:       1,
	SHUTDOWN:         1,
	ALT_START:        1,
	ALT_END:          1,
	ALT_ENBC:         1,
	ALT_DISC:         1,
	ALT_WAIT:         1,
	PROC_ALT:         2,
	LIGHT_PROC_FREE:  1,
	ARRAY_INIT:       1,
	ARRAY_INIT_ALLOC: 2,
	ARRAY_FREE:       1,
}

// WordCost returns c's fixed stack-word cost.
func (c APICall) WordCost() int { return apiCallWordCost[c] }

// Subtarget selects extra primitive emissions beyond the default set
// (spec §4.9: "a sub-target flag may add extra primitive emissions,
// notably the per-arm LIGHT_PROC_FREE after a PAR on EV3").
type Subtarget int

const (
	Default Subtarget = iota
	EV3
)

// ParJoinCalls returns the API calls emitted after a PAR's arms have all
// joined, for the given subtarget: EV3 additionally frees each arm's
// lightweight process record, DEFAULT does not.
func ParJoinCalls(sub Subtarget, arms int) []APICall {
	if sub != EV3 {
		return nil
	}
	calls := make([]APICall, arms)
	for i := range calls {
		calls[i] = LIGHT_PROC_FREE
	}
	return calls
}
