// Package models defines the resolved domain types produced by the
// resolution engine: typed cells, styles, tables, drawings and sheet
// metadata, all de-referenced from the raw part indices.
package models

import (
	"time"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"
)

// ValueKind tags the resolved cell value variant.
type ValueKind string

const (
	// KindBlank marks a cell with no stored value.
	KindBlank ValueKind = "blank"
	// KindText marks a plain or rich text value.
	KindText ValueKind = "text"
	// KindNumber marks a numeric value.
	KindNumber ValueKind = "number"
	// KindBool marks a boolean value.
	KindBool ValueKind = "bool"
	// KindDate marks a numeric value classified as a date or time by its
	// number format. The underlying serial number is preserved.
	KindDate ValueKind = "date"
	// KindError marks a stored error code such as #DIV/0!.
	KindError ValueKind = "error"
)

// CellValue is the resolved value of a cell as a tagged variant.
type CellValue struct {
	// Kind discriminates which of the remaining fields are meaningful.
	Kind ValueKind `json:"kind"`
	// Text is the resolved text for text values and the error code for
	// error values.
	Text string `json:"text,omitempty"`
	// Number is the numeric value for number and date kinds.
	Number *float64 `json:"number,omitempty"`
	// Bool is the boolean value for bool kinds.
	Bool *bool `json:"bool,omitempty"`
	// Time is the converted date-time for date kinds.
	Time *time.Time `json:"time,omitempty"`
	// Rich carries per-run formatting when the text value is rich text.
	Rich []RichRun `json:"rich,omitempty"`
}

// IsBlank reports whether the value is the blank variant.
func (v CellValue) IsBlank() bool { return v.Kind == KindBlank || v.Kind == "" }

// BlankValue returns the blank variant.
func BlankValue() CellValue { return CellValue{Kind: KindBlank} }

// TextValue returns a plain text variant.
func TextValue(s string) CellValue { return CellValue{Kind: KindText, Text: s} }

// RichTextValue returns a text variant carrying per-run formatting.
func RichTextValue(s RichString) CellValue {
	return CellValue{Kind: KindText, Text: s.Text, Rich: s.Runs}
}

// NumberValue returns a numeric variant.
func NumberValue(f float64) CellValue { return CellValue{Kind: KindNumber, Number: &f} }

// BoolValue returns a boolean variant.
func BoolValue(b bool) CellValue { return CellValue{Kind: KindBool, Bool: &b} }

// ErrorValue returns an error-code variant.
func ErrorValue(code string) CellValue { return CellValue{Kind: KindError, Text: code} }

// DateValue returns a date variant keeping the source serial number.
func DateValue(t time.Time, serial float64) CellValue {
	return CellValue{Kind: KindDate, Time: &t, Number: &serial}
}

// Formula is a cell formula with its cached result, when the file stores one.
type Formula struct {
	// Expr is the formula expression without a leading "=".
	Expr string `json:"expr"`
	// Result is the cached calculated value as stored in the file.
	Result string `json:"result,omitempty"`
}

// Cell is a fully materialized worksheet cell.
type Cell struct {
	// Ref is the cell coordinate (1-based row and column).
	Ref cellref.Coordinate `json:"ref"`
	// Value is the resolved, typed value.
	Value CellValue `json:"value"`
	// Formula is set when the cell stores a formula.
	Formula *Formula `json:"formula,omitempty"`
	// Style is the resolved style record for the cell. Cells sharing a
	// format index share the same Style pointer.
	Style *Style `json:"style,omitempty"`
	// Width is the cell's column width in character units.
	Width float64 `json:"width"`
	// Height is the cell's row height in points.
	Height float64 `json:"height"`
	// Hidden reports whether the cell is hidden by its style protection,
	// row, sheet default, or column, in that precedence order.
	Hidden bool `json:"hidden,omitempty"`
	// ShowPhonetic reports whether phonetic guides display for the cell.
	ShowPhonetic bool `json:"show_phonetic,omitempty"`
	// Hyperlink is the resolved hyperlink for the cell, if any.
	Hyperlink *Hyperlink `json:"hyperlink,omitempty"`
}

// Hyperlink is a resolved cell or shape hyperlink.
type Hyperlink struct {
	// Target is the resolved target: a URL for external links, a package
	// part path for internal ones.
	Target string `json:"target,omitempty"`
	// Location is the in-document location, e.g. "Sheet2!A1".
	Location string `json:"location,omitempty"`
	// Display is the display text stored with the link.
	Display string `json:"display,omitempty"`
	// Tooltip is the hover text stored with the link.
	Tooltip string `json:"tooltip,omitempty"`
	// External reports whether the relationship target is external.
	External bool `json:"external,omitempty"`
}
