// Package diag implements the four-severity diagnostic model of spec §7:
// messages are keyed by (file, line) where available, counted per
// lex-file, and aggregated with go.uber.org/multierr the same way the
// teacher's analyzer.go composes its own per-file error set.
package diag

import (
	"fmt"

	"go.uber.org/multierr"
)

// Severity is one of the four diagnostic levels spec §7 names.
type Severity int

const (
	// Internal marks a violated compiler invariant; the pipeline aborts.
	Internal Severity = iota
	// Error marks ill-formed input; recorded, surfaced, blocks codegen.
	Error
	// Warning marks dubious-but-tolerable input; recorded, does not block.
	Warning
	// Message is informational trace output.
	Message
)

func (s Severity) String() string {
	switch s {
	case Internal:
		return "internal"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Message:
		return "message"
	default:
		return "unknown"
	}
}

// Entry is one recorded diagnostic.
type Entry struct {
	Severity Severity
	File     string
	Line     int
	Text     string
}

func (e Entry) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %s", e.Severity, e.Text)
	}
	return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Severity, e.Text)
}

// FileCounters tracks the error/warning counts for one lex-file, the
// granularity compile-time abort decisions key on (spec §7: "record
// against the lexfile's error counter").
type FileCounters struct {
	Errors   int
	Warnings int
}

// Sink is the per-compilation diagnostic collector the pass driver
// threads through every pass: it accumulates entries, keeps per-file
// counters, and can render the accumulated errors as one multierr chain.
type Sink struct {
	entries []Entry
	files   map[string]*FileCounters
}

// NewSink creates an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{files: make(map[string]*FileCounters)}
}

func (s *Sink) counters(file string) *FileCounters {
	fc, ok := s.files[file]
	if !ok {
		fc = &FileCounters{}
		s.files[file] = fc
	}
	return fc
}

// Report records a diagnostic, bumping the owning file's counters for
// Error/Warning severities. Internal diagnostics are not counted per
// file since they abort the pipeline outright.
func (s *Sink) Report(sev Severity, file string, line int, format string, args ...any) {
	e := Entry{Severity: sev, File: file, Line: line, Text: fmt.Sprintf(format, args...)}
	s.entries = append(s.entries, e)
	switch sev {
	case Error:
		s.counters(file).Errors++
	case Warning:
		s.counters(file).Warnings++
	}
}

// Errorf is shorthand for Report(Error, ...).
func (s *Sink) Errorf(file string, line int, format string, args ...any) {
	s.Report(Error, file, line, format, args...)
}

// Warnf is shorthand for Report(Warning, ...).
func (s *Sink) Warnf(file string, line int, format string, args ...any) {
	s.Report(Warning, file, line, format, args...)
}

// Messagef is shorthand for Report(Message, ...).
func (s *Sink) Messagef(file string, line int, format string, args ...any) {
	s.Report(Message, file, line, format, args...)
}

// Internalf records an internal diagnostic. Callers that can still
// unwind cleanly should follow it by returning Err(); callers inside a
// tree walk with no clean unwind path should instead panic via
// tnode.InternalError, which the compiler package's top-level recover
// funnels back into a Sink as an Internal entry.
func (s *Sink) Internalf(file string, line int, format string, args ...any) {
	s.Report(Internal, file, line, format, args...)
}

// HasErrors reports whether any Error or Internal diagnostic has been
// recorded — the condition the pass driver checks between passes to
// decide whether to abort before code emission (spec §7).
func (s *Sink) HasErrors() bool {
	for _, e := range s.entries {
		if e.Severity == Error || e.Severity == Internal {
			return true
		}
	}
	return false
}

// Counters returns the counters for file (zero value if nothing was
// ever recorded against it).
func (s *Sink) Counters(file string) FileCounters {
	if fc, ok := s.files[file]; ok {
		return *fc
	}
	return FileCounters{}
}

// Entries returns a snapshot of every recorded diagnostic, in report order.
func (s *Sink) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Err renders every Error/Internal entry as one multierr chain, or nil
// if there are none. Warnings and messages never contribute to Err — a
// caller that needs to surface them uses Entries directly.
func (s *Sink) Err() error {
	var merr error
	for _, e := range s.entries {
		if e.Severity == Error || e.Severity == Internal {
			merr = multierr.Append(merr, e)
		}
	}
	return merr
}
