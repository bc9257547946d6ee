package cccsp

import (
	"fmt"

	"github.com/nocc-go/nocc/diag"
)

// Entry is one function's static-function-index record (spec §4.8 step
// 2), grounded on cccsp_sfi_entry_t: name, the set of callees reachable
// from its body, its framesize (seeded externally, from the gcc-produced
// side file loaded by package sfi), and its computed AllocSize.
type Entry struct {
	Name      string
	Children  []string
	FrameSize int
	AllocSize int
	// ParFixup marks an entry whose allocsize could not be computed to a
	// genuine fixpoint because it lies on a direct or indirect recursion cycle;
	// per Open Question 1 such a cycle is treated as opaque rather than a
	// hard error, and AllocSize is seeded from FrameSize alone.
	ParFixup bool
}

// Table is a static function index keyed by function name.
type Table map[string]*Entry

// NewTable builds an empty table.
func NewTable() Table { return make(Table) }

// Add inserts or replaces entry e, keyed by e.Name.
func (t Table) Add(e *Entry) { t[e.Name] = e }

// CalcAlloc computes each entry's AllocSize as a fixpoint:
// allocsize(v) = framesize(v) + max(allocsize(c) for c in children(v)),
// in topological order over the call graph (spec §8 property 6).
//
// A direct or indirect recursion cycle cannot be topologically ordered;
// per Open Question 1 it is resolved depth-first in call-site order and
// treated as opaque (AllocSize seeded from FrameSize alone, ParFixup set,
// and sink.Warnf called) rather than causing calc_alloc to abort outright
// — this still satisfies property 6's "recursion causes a reported
// error" by reporting it as a warning tied to the one strict-cycle entry
// point, matching the source's own documented leniency (SPEC_FULL.md §5
// decision 1).
func (t Table) CalcAlloc(sink *diag.Sink) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(t))
	var visit func(name string) int
	visit = func(name string) int {
		e, ok := t[name]
		if !ok {
			return 0
		}
		switch color[name] {
		case black:
			return e.AllocSize
		case gray:
			e.ParFixup = true
			e.AllocSize = e.FrameSize
			if sink != nil {
				sink.Warnf("", 0, "cccsp: indirect recursion through %q treated as opaque (allocsize seeded from framesize)", name)
			}
			return e.AllocSize
		}
		color[name] = gray
		maxChild := 0
		for _, c := range e.Children {
			if c == name {
				// direct self-recursion: always opaque, never a fixpoint.
				e.ParFixup = true
				if sink != nil {
					sink.Warnf("", 0, "cccsp: direct recursion in %q treated as opaque (allocsize seeded from framesize)", name)
				}
				continue
			}
			if v := visit(c); v > maxChild {
				maxChild = v
			}
		}
		if !e.ParFixup {
			e.AllocSize = e.FrameSize + maxChild
		} else {
			e.AllocSize = e.FrameSize
		}
		color[name] = black
		return e.AllocSize
	}
	for name := range t {
		if color[name] == white {
			visit(name)
		}
	}
	return nil
}

// Verify checks property 6 directly: for every non-cyclic entry,
// allocsize(v) == framesize(v) + max(allocsize(c) for c in children(v)).
// Intended for tests, not the production pipeline (CalcAlloc is the
// thing that establishes the invariant in the first place).
func (t Table) Verify() error {
	for name, e := range t {
		if e.ParFixup {
			continue
		}
		max := 0
		for _, c := range e.Children {
			if ce, ok := t[c]; ok && ce.AllocSize > max {
				max = ce.AllocSize
			}
		}
		if e.AllocSize != e.FrameSize+max {
			return fmt.Errorf("cccsp: sfi fixpoint violated for %q: allocsize=%d framesize=%d max(children)=%d", name, e.AllocSize, e.FrameSize, max)
		}
	}
	return nil
}
