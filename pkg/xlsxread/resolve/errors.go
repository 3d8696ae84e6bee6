// Package resolve turns raw part decodings into the resolved object
// model: shared strings, styles, materialized cells, tables, drawings
// and defined names. Cross-part references are followed here; the
// containing package supplies part loading and caching.
package resolve

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a shared-string index outside the
// table, including an index into an absent table.
var ErrIndexOutOfRange = errors.New("shared string index out of range")

// ErrRelationshipNotFound indicates a relationship id that its
// manifest does not contain, even though the referencing part asserts
// it exists.
var ErrRelationshipNotFound = errors.New("relationship not found")

// ErrStyleIndexOutOfRange indicates a font, border or fill index
// outside its stylesheet table.
var ErrStyleIndexOutOfRange = errors.New("style index out of range")

// ErrMergeOverlap indicates two merged ranges that share cells.
var ErrMergeOverlap = errors.New("merged ranges overlap")

// IntegrityError wraps an integrity failure with the reference that
// triggered it.
type IntegrityError struct {
	// Ref identifies the offending reference: a cell, an id, an index.
	Ref string
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity error at %s: %v", e.Ref, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

func integrityErr(ref string, err error) *IntegrityError {
	return &IntegrityError{Ref: ref, Err: err}
}
