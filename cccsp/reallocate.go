package cccsp

// WordSize is the workspace word width in bytes: CCSP workspace slots are
// 32-bit pointer-sized (spec §5).
const WordSize = 4

// WordCeil rounds a byte count up to the next whole workspace word.
func WordCeil(bytes int) int {
	if bytes <= 0 {
		return 0
	}
	return (bytes + WordSize - 1) / WordSize
}

// ParArm is one arm of a PAR node as seen by reallocate: its own
// AllocSize (in bytes, as computed by the SFI fixpoint for the function
// it instantiates) and the workspace-word slot reallocate fills in.
type ParArm struct {
	Name      string
	AllocSize int // bytes
	Words     int // filled in by ReallocatePar
}

// ParInfo is the per-PAR-node record reallocate builds (spec §4.7 step
// 2's parinfo_entry list, spec §4.8 step 3): each arm's word-ceiled size
// and the PAR's total workspace-word demand.
type ParInfo struct {
	Arms   []ParArm
	NWords int
}

// ReallocatePar implements spec §4.8 step 3 / §8 property 7: for a PAR
// with arms a1..an, each arm's allocsize (bytes) is padded up to a 4-byte
// boundary and the padded word counts are summed into NWords, which must
// be >= the sum of each arm's word-ceiled allocsize — here it is computed
// as exactly that sum, the minimal workspace that satisfies the bound.
//
// Scenario S5: arms of 12 and 20 words (48 and 80 bytes) word-ceil to 12
// and 20 words and sum to NWords=32.
func ReallocatePar(arms []ParArm) ParInfo {
	info := ParInfo{Arms: make([]ParArm, len(arms))}
	total := 0
	for i, a := range arms {
		words := WordCeil(a.AllocSize)
		info.Arms[i] = ParArm{Name: a.Name, AllocSize: a.AllocSize, Words: words}
		total += words
	}
	info.NWords = total
	return info
}

// MaxPar folds NWords into the running maxpar tally a reallocate pass
// threads through an enclosing function (spec §4.8 step 3: "stores ...
// maxpar (words) in the function's tally").
func MaxPar(currentMax int, info ParInfo) int {
	if info.NWords > currentMax {
		return info.NWords
	}
	return currentMax
}
