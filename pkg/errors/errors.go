// Package errors provides structured error types for the mosaic library.
//
// Two failure families exist. Invariant violations are library-contract
// breaches (a fragment reaching the composer, a group composed with no
// children); they are unrecoverable and surface as panics carrying an
// *InvariantError payload. Manifest failures are bad user input; they are
// ordinary errors returned to the caller, wrapped in *Error with
// KindManifest.
package errors

import "fmt"

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvariant indicates a library-contract breach.
	KindInvariant
	// KindManifest indicates a layout manifest that failed to parse or
	// validate.
	KindManifest
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvariant:
		return "invariant"
	case KindManifest:
		return "manifest"
	default:
		return "unknown"
	}
}

// Error is a structured error with an operation name and a category.
type Error struct {
	// Op is the operation that failed (e.g., "manifest.Parse").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvariantError is the panic payload for library-contract breaches. These
// signal a defect in the calling code (or in this library), never bad user
// input, so they are raised as panics rather than returned.
type InvariantError struct {
	// Op is the operation that detected the breach (e.g., "blueprint.Compose").
	Op string
	// Detail describes the breached invariant.
	Detail string
}

func (e *InvariantError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("invariant violated: %s", e.Detail)
}

// Invariant panics with an *InvariantError for the given operation.
func Invariant(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
