// Package raw holds one-to-one structural decodings of the XML parts of
// an OOXML spreadsheet package. Each type mirrors a single part; no
// cross-part references are resolved here.
package raw

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrMissingAttribute reports an element that lacks an attribute the
// format requires.
var ErrMissingAttribute = errors.New("missing required attribute")

func missingAttr(element, name string) error {
	return fmt.Errorf("%w: %q on <%s>", ErrMissingAttribute, name, element)
}

// NewDecoder returns an XML decoder configured for OOXML parts:
// non-UTF-8 encodings are handled through the charset reader.
func NewDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	return d
}

// attr returns the value of the attribute with the given local name.
func attr(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func attrString(se xml.StartElement, name string) string {
	v, _ := attr(se, name)
	return v
}

// attrBool interprets "1"/"true" as true and "0"/"false" as false.
// Absent or unparseable attributes yield the fallback.
func attrBool(se xml.StartElement, name string, fallback bool) bool {
	v, ok := attr(se, name)
	if !ok {
		return fallback
	}
	b, ok := parseBool(v)
	if !ok {
		return fallback
	}
	return b
}

func attrBoolPtr(se xml.StartElement, name string) *bool {
	v, ok := attr(se, name)
	if !ok {
		return nil
	}
	b, ok := parseBool(v)
	if !ok {
		return nil
	}
	return &b
}

func attrUint32(se xml.StartElement, name string) (uint32, bool) {
	v, ok := attr(se, name)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

func attrUint32Ptr(se xml.StartElement, name string) *uint32 {
	n, ok := attrUint32(se, name)
	if !ok {
		return nil
	}
	return &n
}

func attrInt32Ptr(se xml.StartElement, name string) *int32 {
	v, ok := attr(se, name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return nil
	}
	i := int32(n)
	return &i
}

func attrInt64(se xml.StartElement, name string) (int64, bool) {
	v, ok := attr(se, name)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func attrFloat(se xml.StartElement, name string, fallback float64) float64 {
	f := attrFloatPtr(se, name)
	if f == nil {
		return fallback
	}
	return *f
}

func attrFloatPtr(se xml.StartElement, name string) *float64 {
	v, ok := attr(se, name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseBool(s string) (bool, bool) {
	switch strings.TrimSpace(s) {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	}
	return false, false
}

// elementText collects the character data of the element opened by
// start, consuming through its end element. Nested elements are
// skipped; only direct character data is kept.
func elementText(d *xml.Decoder, start xml.StartElement) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 1 {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
