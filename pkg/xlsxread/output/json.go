// Package output serializes dumps and resolved models to JSON. It
// wraps json-iterator behind a small handler interface so the encoder
// can be swapped without touching call sites.
package output

import (
	"bytes"
	"encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
)

// Encoder writes JSON values to a stream.
type Encoder interface {
	Encode(v any) error
}

// Decoder reads JSON values from a stream.
type Decoder interface {
	Decode(v any) error
}

// Interface is a JSON handler.
type Interface interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	NewEncoder(writer io.Writer) Encoder
	NewDecoder(reader io.Reader) Decoder
	Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error
}

// iterJSON adapts json-iterator's std-compatible config to Interface.
type iterJSON struct {
	jsoniter.API
}

func (j iterJSON) Marshal(v any) ([]byte, error) {
	return j.API.Marshal(v)
}

func (j iterJSON) Unmarshal(data []byte, v any) error {
	return j.API.Unmarshal(data, v)
}

func (j iterJSON) NewEncoder(writer io.Writer) Encoder {
	return j.API.NewEncoder(writer)
}

func (j iterJSON) NewDecoder(reader io.Reader) Decoder {
	return j.API.NewDecoder(reader)
}

func (j iterJSON) Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error {
	return json.Indent(dst, src, prefix, indent)
}

// DefaultHandler backs the package-level helpers.
var DefaultHandler Interface = iterJSON{jsoniter.ConfigCompatibleWithStandardLibrary}

// Marshal converts a value to JSON bytes.
func Marshal(v any) ([]byte, error) {
	return DefaultHandler.Marshal(v)
}

// Unmarshal decodes a value from JSON bytes.
func Unmarshal(data []byte, v any) error {
	return DefaultHandler.Unmarshal(data, v)
}

// NewEncoder creates an encoder writing to writer.
func NewEncoder(writer io.Writer) Encoder {
	return DefaultHandler.NewEncoder(writer)
}

// NewDecoder creates a decoder reading from reader.
func NewDecoder(reader io.Reader) Decoder {
	return DefaultHandler.NewDecoder(reader)
}

// Indent appends to dst an indented form of the JSON-encoded src.
func Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error {
	return DefaultHandler.Indent(dst, src, prefix, indent)
}

// MarshalIndent marshals v with the given indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSON serializes a value, two-space indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return MarshalIndent(v, "", "  ")
	}
	return Marshal(v)
}

// WorkbookToJSON serializes a workbook dump.
func WorkbookToJSON(d *models.WorkbookDump, pretty bool) ([]byte, error) {
	return ToJSON(d, pretty)
}

// SheetToJSON serializes one sheet dump.
func SheetToJSON(d *models.SheetDump, pretty bool) ([]byte, error) {
	return ToJSON(d, pretty)
}
