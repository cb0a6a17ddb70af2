// Package errs defines the CORE codec's error kinds (§7).
//
// Every error the codec returns names the offending field and the observed
// value, and is comparable against a sentinel Kind via errors.Is so callers
// can branch on error class without string matching.
package errs

import (
	"errors"
	"fmt"
)

// Kind is one of the fatal error classes from spec §7. None are recoverable
// within the codec; the CLI collaborator is the one that decides whether to
// skip to the next file.
type Kind string

const (
	KindHeaderInvalid            Kind = "HeaderInvalid"
	KindSectionOutOfRange         Kind = "SectionOutOfRange"
	KindDecompressionFailed       Kind = "DecompressionFailed"
	KindBlockLayoutInconsistent   Kind = "BlockLayoutInconsistent"
	KindElementSizeConflict       Kind = "ElementSizeConflict"
	KindMetadataInconsistent      Kind = "MetadataInconsistent"
	KindAccessionInvalid          Kind = "AccessionInvalid"
	KindUnsupportedDtype          Kind = "UnsupportedDtype"
)

// Error is the concrete error type returned by every CORE codec failure.
type Error struct {
	Kind  Kind
	Field string
	Got   any
	Want  any
}

func (e *Error) Error() string {
	switch {
	case e.Got == nil && e.Want == nil:
		return fmt.Sprintf("%s: field=%s", e.Kind, e.Field)
	case e.Want == nil:
		return fmt.Sprintf("%s: field=%s got=%v", e.Kind, e.Field, e.Got)
	default:
		return fmt.Sprintf("%s: field=%s got=%v want=%v", e.Kind, e.Field, e.Got, e.Want)
	}
}

// Is implements errors.Is support against a Kind sentinel, e.g.
// errors.Is(err, errs.KindOnly(errs.KindHeaderInvalid)): the target must be
// an *Error with a matching Kind and empty Field — see KindOnly.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind && t.Field == ""
}

// KindOnly builds a sentinel usable with errors.Is(err, errs.KindOnly(k)).
func KindOnly(k Kind) error {
	return &Error{Kind: k}
}

// New constructs a field-level error of the given kind.
func New(kind Kind, field string, got, want any) error {
	return &Error{Kind: kind, Field: field, Got: got, Want: want}
}

// As extracts the *Error wrapped in err, if any.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
