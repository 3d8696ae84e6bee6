package xlsxread

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input is not a readable xlsx package.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrWorkbookEncrypted indicates the input is an OLE compound file
// carrying an encrypted package rather than a plain zip archive.
var ErrWorkbookEncrypted = errors.New("workbook is encrypted")

// ErrPartNotFound indicates a required archive entry is missing.
var ErrPartNotFound = errors.New("part not found")

// ErrSheetNotFound indicates no sheet matches the requested name or id.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNotWorksheet indicates a worksheet query targeted a chartsheet or
// dialogsheet descriptor.
var ErrNotWorksheet = errors.New("sheet is not a worksheet")

// ErrSheetDescriptor indicates a workbook sheet descriptor is missing
// a required attribute or carries an unrecognized one.
var ErrSheetDescriptor = errors.New("invalid sheet descriptor")

// ErrDrawingsDisabled is returned by drawing queries in builds compiled
// with the nodrawings tag.
var ErrDrawingsDisabled = errors.New("drawing support disabled in this build")

// PartError ties a container or decode failure to the archive part it
// occurred in.
type PartError struct {
	// Path is the archive entry path the operation targeted.
	Path string
	// Err is the underlying failure.
	Err error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("part %q: %v", e.Path, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}

func partErr(path string, err error) *PartError {
	return &PartError{Path: path, Err: err}
}
