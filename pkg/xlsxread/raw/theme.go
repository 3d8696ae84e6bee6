package raw

import (
	"encoding/xml"
	"io"
)

// Theme is the decoded xl/theme/theme<N>.xml part, reduced to the
// scheme data cell formatting resolves against.
type Theme struct {
	// Colors is the clrScheme of the theme elements, nil when absent.
	Colors *ColorScheme `json:"colors,omitempty"`
	// Fonts is the fontScheme of the theme elements, nil when absent.
	Fonts *FontScheme `json:"fonts,omitempty"`
}

// ColorScheme holds the twelve scheme slots as hex RGB strings, for
// example "4472C4". System colors contribute their lastClr value.
type ColorScheme struct {
	Name              string `json:"name,omitempty"`
	Dark1             string `json:"dark1,omitempty"`
	Light1            string `json:"light1,omitempty"`
	Dark2             string `json:"dark2,omitempty"`
	Light2            string `json:"light2,omitempty"`
	Accent1           string `json:"accent1,omitempty"`
	Accent2           string `json:"accent2,omitempty"`
	Accent3           string `json:"accent3,omitempty"`
	Accent4           string `json:"accent4,omitempty"`
	Accent5           string `json:"accent5,omitempty"`
	Accent6           string `json:"accent6,omitempty"`
	Hyperlink         string `json:"hyperlink,omitempty"`
	FollowedHyperlink string `json:"followed_hyperlink,omitempty"`
}

// FontScheme holds the major and minor latin typefaces.
type FontScheme struct {
	Name       string `json:"name,omitempty"`
	MajorLatin string `json:"major_latin,omitempty"`
	MinorLatin string `json:"minor_latin,omitempty"`
}

// DecodeTheme decodes a theme part. Only the first clrScheme counts;
// extra schemes listed under extraClrSchemeLst are ignored.
func DecodeTheme(r io.Reader) (*Theme, error) {
	d := NewDecoder(r)
	th := &Theme{}
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
		case "clrScheme":
			if th.Colors != nil {
				if err := d.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			cs, err := decodeColorScheme(d, se)
			if err != nil {
				return nil, err
			}
			th.Colors = cs
		case "fontScheme":
			if th.Fonts != nil {
				if err := d.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			fs, err := decodeFontScheme(d, se)
			if err != nil {
				return nil, err
			}
			th.Fonts = fs
		}
	}
	return th, nil
}

func decodeColorScheme(d *xml.Decoder, start xml.StartElement) (*ColorScheme, error) {
	cs := &ColorScheme{Name: attrString(start, "name")}
	var slot *string
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "dk1":
				slot = &cs.Dark1
			case "lt1":
				slot = &cs.Light1
			case "dk2":
				slot = &cs.Dark2
			case "lt2":
				slot = &cs.Light2
			case "accent1":
				slot = &cs.Accent1
			case "accent2":
				slot = &cs.Accent2
			case "accent3":
				slot = &cs.Accent3
			case "accent4":
				slot = &cs.Accent4
			case "accent5":
				slot = &cs.Accent5
			case "accent6":
				slot = &cs.Accent6
			case "hlink":
				slot = &cs.Hyperlink
			case "folHlink":
				slot = &cs.FollowedHyperlink
			case "srgbClr":
				if slot != nil {
					*slot = attrString(t, "val")
				}
			case "sysClr":
				if slot != nil {
					*slot = attrString(t, "lastClr")
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return cs, nil
			}
			switch t.Name.Local {
			case "dk1", "lt1", "dk2", "lt2",
				"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
				"hlink", "folHlink":
				slot = nil
			}
		}
	}
}

func decodeFontScheme(d *xml.Decoder, start xml.StartElement) (*FontScheme, error) {
	fs := &FontScheme{Name: attrString(start, "name")}
	var major bool
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "majorFont":
				major = true
			case "minorFont":
				major = false
			case "latin":
				if major {
					fs.MajorLatin = attrString(t, "typeface")
				} else {
					fs.MinorLatin = attrString(t, "typeface")
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return fs, nil
			}
		}
	}
}
