package raw

import (
	"encoding/xml"
	"io"
)

// SharedStrings is the decoded xl/sharedStrings.xml part.
type SharedStrings struct {
	// Count is the advisory total number of string references.
	Count *uint32 `json:"count,omitempty"`
	// UniqueCount is the advisory number of distinct items.
	UniqueCount *uint32 `json:"unique_count,omitempty"`
	// Items holds the string items in table order. Cells reference
	// them by zero-based position.
	Items []StringItem `json:"items"`
}

// StringItem is one si entry: plain text, rich runs, or either form
// combined with phonetic data.
type StringItem struct {
	// Text is the plain text body, nil when the item carries runs only.
	Text *string `json:"text,omitempty"`
	// Runs holds the rich text runs in order.
	Runs []Run `json:"runs,omitempty"`
	// PhoneticRuns holds furigana runs keyed to base-text ranges.
	PhoneticRuns []PhoneticRun `json:"phonetic_runs,omitempty"`
	// Phonetic carries the phonetic display properties.
	Phonetic *PhoneticProperties `json:"phonetic,omitempty"`
}

// Run is one formatted span of a rich text item.
type Run struct {
	// Properties is the run formatting, nil when the run inherits.
	Properties *FontProperties `json:"properties,omitempty"`
	// Text is the run text.
	Text string `json:"text"`
}

// PhoneticRun maps phonetic text onto a range of base-text characters.
type PhoneticRun struct {
	// StartIndex is the first base-text character the run covers.
	StartIndex uint32 `json:"start_index"`
	// EndIndex is one past the last covered base-text character.
	EndIndex uint32 `json:"end_index"`
	// Text is the phonetic text.
	Text string `json:"text"`
}

// PhoneticProperties mirrors the phoneticPr element.
type PhoneticProperties struct {
	// FontID indexes the stylesheet font used for phonetic text.
	FontID *uint32 `json:"font_id,omitempty"`
	// Type is the phonetic text type, for example "fullwidthKatakana".
	Type string `json:"type,omitempty"`
	// Alignment controls phonetic placement, for example "distributed".
	Alignment string `json:"alignment,omitempty"`
}

// DecodeSharedStrings decodes the xl/sharedStrings.xml part.
func DecodeSharedStrings(r io.Reader) (*SharedStrings, error) {
	d := NewDecoder(r)
	sst := &SharedStrings{}
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "sst":
			sst.Count = attrUint32Ptr(se, "count")
			sst.UniqueCount = attrUint32Ptr(se, "uniqueCount")
		case "si":
			item, err := decodeStringItem(d, se)
			if err != nil {
				return nil, err
			}
			sst.Items = append(sst.Items, *item)
		}
	}
	return sst, nil
}

// decodeStringItem consumes an si or is element and its children.
func decodeStringItem(d *xml.Decoder, start xml.StartElement) (*StringItem, error) {
	item := &StringItem{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				text, err := elementText(d, t)
				if err != nil {
					return nil, err
				}
				item.Text = &text
			case "r":
				run, err := decodeRun(d, t)
				if err != nil {
					return nil, err
				}
				item.Runs = append(item.Runs, run)
			case "rPh":
				pr, err := decodePhoneticRun(d, t)
				if err != nil {
					return nil, err
				}
				item.PhoneticRuns = append(item.PhoneticRuns, pr)
			case "phoneticPr":
				item.Phonetic = &PhoneticProperties{
					FontID:    attrUint32Ptr(t, "fontId"),
					Type:      attrString(t, "type"),
					Alignment: attrString(t, "alignment"),
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return item, nil
			}
		}
	}
}

func decodeRun(d *xml.Decoder, start xml.StartElement) (Run, error) {
	var run Run
	for {
		tok, err := d.Token()
		if err != nil {
			return run, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				props, err := decodeFontProperties(d, t)
				if err != nil {
					return run, err
				}
				run.Properties = props
			case "t":
				text, err := elementText(d, t)
				if err != nil {
					return run, err
				}
				run.Text = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return run, nil
			}
		}
	}
}

func decodePhoneticRun(d *xml.Decoder, start xml.StartElement) (PhoneticRun, error) {
	sb, _ := attrUint32(start, "sb")
	eb, _ := attrUint32(start, "eb")
	pr := PhoneticRun{StartIndex: sb, EndIndex: eb}
	for {
		tok, err := d.Token()
		if err != nil {
			return pr, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				text, err := elementText(d, t)
				if err != nil {
					return pr, err
				}
				pr.Text = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return pr, nil
			}
		}
	}
}
