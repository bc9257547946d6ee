package tnode

import "fmt"

// InternalError marks a violated invariant in the tree machinery itself —
// a malformed arity, an out-of-range slot access — as opposed to an
// ill-formed user program. Per spec §7 these abort the pipeline; callers
// at the top of the pipeline (package compiler) recover the panic and
// report it through package diag as a severity-internal diagnostic.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string { return e.msg }

func internalf(format string, args ...any) {
	panic(&InternalError{msg: fmt.Sprintf(format, args...)})
}
