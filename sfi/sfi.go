// Package sfi loads the two textual side-files an external gcc pass
// produces for the static-function-index computation (spec §6, §4.8): a
// function-calls listing (the call graph) and a per-function frame-size
// report, both keyed by function name. The teacher's own YAML-AST-diffing
// use of gopkg.in/yaml.v3 is repurposed here as the encoding for both
// side-files (SPEC_FULL.md §2 ambient-stack substitution: the original's
// custom line format is not specified precisely enough in spec.md to
// reverse-engineer byte-for-byte).
package sfi

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nocc-go/nocc/cccsp"
)

// CallsEntry is one row of the function-calls listing: a function and
// every callee reachable from its body (duplicates and self-calls are
// preserved verbatim; CalcAlloc's cycle detection relies on seeing them).
type CallsEntry struct {
	Function string   `yaml:"function"`
	Calls    []string `yaml:"calls"`
}

// FrameSizeEntry is one row of the per-function frame-size report.
type FrameSizeEntry struct {
	Function  string `yaml:"function"`
	FrameSize int    `yaml:"frame_size"`
}

// LoadCalls decodes a function-calls listing.
func LoadCalls(r io.Reader) ([]CallsEntry, error) {
	var entries []CallsEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("sfi: decoding calls listing: %w", err)
	}
	return entries, nil
}

// LoadFrameSizes decodes a per-function frame-size report.
func LoadFrameSizes(r io.Reader) ([]FrameSizeEntry, error) {
	var entries []FrameSizeEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("sfi: decoding frame-size report: %w", err)
	}
	return entries, nil
}

// BuildTable joins a calls listing and a frame-size report, keyed by
// function name, into a cccsp.Table ready for CalcAlloc. A function
// named in the calls listing but missing from the frame-size report gets
// a framesize of 0 (its own body emits no primitive calls); a function
// missing from the calls listing but present in the frame-size report is
// still added, with no children (a leaf in the call graph).
func BuildTable(calls []CallsEntry, frames []FrameSizeEntry) cccsp.Table {
	frameByName := make(map[string]int, len(frames))
	for _, f := range frames {
		frameByName[f.Function] = f.FrameSize
	}
	tbl := cccsp.NewTable()
	for _, c := range calls {
		tbl.Add(&cccsp.Entry{
			Name:      c.Function,
			Children:  c.Calls,
			FrameSize: frameByName[c.Function],
		})
	}
	for _, f := range frames {
		if _, ok := tbl[f.Function]; !ok {
			tbl.Add(&cccsp.Entry{Name: f.Function, FrameSize: f.FrameSize})
		}
	}
	return tbl
}
