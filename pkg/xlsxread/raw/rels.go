package raw

import (
	"encoding/xml"
	"io"
)

// TargetModeExternal marks a relationship whose target lives outside
// the package (a URL rather than a part path).
const TargetModeExternal = "External"

// Relationship is one entry of a part's relationship manifest.
type Relationship struct {
	// ID is the relationship id referenced by r:id attributes.
	ID string `json:"id"`
	// Type is the relationship type URI.
	Type string `json:"type"`
	// Target is the target as written: a part path (possibly relative)
	// or a literal external target.
	Target string `json:"target"`
	// TargetMode is "External" for external targets, empty otherwise.
	TargetMode string `json:"target_mode,omitempty"`
}

// Relationships is a decoded relationship manifest (.rels part).
type Relationships struct {
	// Items holds the relationships in document order.
	Items []Relationship `json:"items"`
}

// DecodeRelationships decodes a .rels part.
func DecodeRelationships(r io.Reader) (*Relationships, error) {
	d := NewDecoder(r)
	rels := &Relationships{}
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		rels.Items = append(rels.Items, Relationship{
			ID:         attrString(se, "Id"),
			Type:       attrString(se, "Type"),
			Target:     attrString(se, "Target"),
			TargetMode: attrString(se, "TargetMode"),
		})
	}
	return rels, nil
}
