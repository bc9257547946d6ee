package cccsp

// ParamRole distinguishes the parameter-passing convention a formal
// parameter uses, mirrored from guppy.ParamKind without importing guppy
// (cccsp is front-end agnostic; every guppy/occam/etc. front-end maps
// its own parameter-kind notion onto this).
type ParamRole int

const (
	RoleValue ParamRole = iota
	RoleResult
	RoleModifiable
)

// IndirectionLevel implements spec §8 property 8: a formal parameter's
// back-end indirection level equals its type's default-pointer level,
// plus 1 if it is a result or modifiable parameter, plus 1 more if it is
// passed value-by-reference (arrays, or strings longer than one word —
// the caller decides valueByReference since that depends on the front-
// end's type representation, not on anything cccsp itself tracks).
func IndirectionLevel(defaultPointerLevel int, role ParamRole, valueByReference bool) int {
	level := defaultPointerLevel
	if role == RoleResult || role == RoleModifiable {
		level++
	}
	if valueByReference {
		level++
	}
	return level
}

// DefaultPointerLevel reports the indirection level a type carries by
// default, independent of how it's passed: record/string/channel/array
// types are always referenced through one pointer level; everything else
// (scalars) is held directly (spec §4.7 namemap: "default-pointer types
// (records, strings, channels, arrays) add one level").
func DefaultPointerLevel(isRecordStringChanOrArray bool) int {
	if isRecordStringChanOrArray {
		return 1
	}
	return 0
}

// BackendName is the namemap chook's payload (spec §4.7): the back-end
// carrier for a declared name, with explicit sizing and indirection.
type BackendName struct {
	OrigName    string
	SizeBytes   int
	Indirection int
	// InitValueRef is an opaque reference to the initial-value link (kept
	// as `any` the same way names.Name keeps DeclNode opaque, so this
	// package does not need to import tnode).
	InitValueRef any
}
