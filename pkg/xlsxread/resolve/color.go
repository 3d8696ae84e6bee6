package resolve

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

// defaultIndexedPalette is the legacy indexed palette. Entries 0-7
// repeat 8-15, and 64/65 stand in for the system foreground and
// background colors.
var defaultIndexedPalette = [...]models.HexColor{
	"000000ff", "ffffffff", "ff0000ff", "00ff00ff",
	"0000ffff", "ffff00ff", "ff00ffff", "00ffffff",
	"000000ff", "ffffffff", "ff0000ff", "00ff00ff",
	"0000ffff", "ffff00ff", "ff00ffff", "00ffffff",
	"800000ff", "008000ff", "000080ff", "808000ff",
	"800080ff", "008080ff", "c0c0c0ff", "808080ff",
	"9999ffff", "993366ff", "ffffccff", "ccffffff",
	"660066ff", "ff8080ff", "0066ccff", "ccccffff",
	"000080ff", "ff00ffff", "ffff00ff", "00ffffff",
	"800080ff", "800000ff", "008080ff", "0000ffff",
	"00ccffff", "ccffffff", "ccffccff", "ffff99ff",
	"99ccffff", "ff99ccff", "cc99ffff", "ffcc99ff",
	"3366ffff", "33ccccff", "99cc00ff", "ffcc00ff",
	"ff9900ff", "ff6600ff", "666699ff", "969696ff",
	"003366ff", "339966ff", "003300ff", "333300ff",
	"993300ff", "993366ff", "333399ff", "333333ff",
	"000000ff", "ffffffff",
}

// resolveColor resolves a stylesheet color reference to its hex form.
// An unresolvable reference (automatic colors, bad hex, out-of-range
// palette or theme slots) yields the empty string.
func (s *Styles) resolveColor(c *raw.Color) models.HexColor {
	if c == nil {
		return ""
	}
	tint := 0.0
	if c.Tint != nil {
		tint = *c.Tint
	}
	switch {
	case c.Theme != nil:
		base, ok := s.themeSlot(*c.Theme)
		if !ok {
			return ""
		}
		return applyTint(base, tint)
	case c.RGB != "":
		base, ok := normalizeARGB(c.RGB)
		if !ok {
			return ""
		}
		return applyTint(base, tint)
	case c.Indexed != nil:
		idx := int(*c.Indexed)
		palette := defaultIndexedPalette[:]
		if s != nil && len(s.customPalette) > 0 {
			palette = s.customPalette
		}
		if idx < 0 || idx >= len(palette) || palette[idx] == "" {
			return ""
		}
		return applyTint(palette[idx], tint)
	}
	return ""
}

// themeSlot maps a theme color index to the scheme color it denotes.
// The first four slots are pair-swapped relative to the scheme element
// order: 0 is light1 and 1 is dark1, then 2 is light2 and 3 is dark2.
func (s *Styles) themeSlot(idx uint32) (models.HexColor, bool) {
	if s == nil || s.theme == nil || s.theme.Colors == nil {
		return "", false
	}
	cs := s.theme.Colors
	var value string
	switch idx {
	case 0:
		value = cs.Light1
	case 1:
		value = cs.Dark1
	case 2:
		value = cs.Light2
	case 3:
		value = cs.Dark2
	case 4:
		value = cs.Accent1
	case 5:
		value = cs.Accent2
	case 6:
		value = cs.Accent3
	case 7:
		value = cs.Accent4
	case 8:
		value = cs.Accent5
	case 9:
		value = cs.Accent6
	case 10:
		value = cs.Hyperlink
	case 11:
		value = cs.FollowedHyperlink
	default:
		return "", false
	}
	return normalizeARGB(value)
}

// schemeColor resolves a DrawingML scheme color name. The text and
// background aliases map onto the dark and light slots; placeholder
// colors have no resolution here.
func (s *Styles) schemeColor(name string) (models.HexColor, bool) {
	if s == nil || s.theme == nil || s.theme.Colors == nil {
		return "", false
	}
	cs := s.theme.Colors
	var value string
	switch name {
	case "dk1", "tx1":
		value = cs.Dark1
	case "lt1", "bg1":
		value = cs.Light1
	case "dk2", "tx2":
		value = cs.Dark2
	case "lt2", "bg2":
		value = cs.Light2
	case "accent1":
		value = cs.Accent1
	case "accent2":
		value = cs.Accent2
	case "accent3":
		value = cs.Accent3
	case "accent4":
		value = cs.Accent4
	case "accent5":
		value = cs.Accent5
	case "accent6":
		value = cs.Accent6
	case "hlink":
		value = cs.Hyperlink
	case "folHlink":
		value = cs.FollowedHyperlink
	default:
		return "", false
	}
	return normalizeARGB(value)
}

// normalizeARGB converts a color value as written in a part, either
// "rrggbb" or alpha-first "aarrggbb", to the alpha-last lowercase form.
func normalizeARGB(v string) (models.HexColor, bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "#")
	if !isHex(v) {
		return "", false
	}
	switch len(v) {
	case 6:
		return models.HexColor(strings.ToLower(v) + "ff"), true
	case 8:
		lower := strings.ToLower(v)
		return models.HexColor(lower[2:] + lower[:2]), true
	}
	return "", false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// applyTint lightens (tint > 0) or darkens (tint < 0) a color by
// scaling its lightness in HSL space. Tint -1 reaches black and +1
// reaches white; 0 is the identity.
func applyTint(hex models.HexColor, tint float64) models.HexColor {
	if tint == 0 || len(hex) != 8 {
		return hex
	}
	r := hexByte(string(hex[0:2]))
	g := hexByte(string(hex[2:4]))
	b := hexByte(string(hex[4:6]))
	alpha := string(hex[6:8])

	h, sat, l := rgbToHSL(r, g, b)
	if tint < 0 {
		l *= 1 + tint
	} else {
		l = l*(1-tint) + tint
	}
	l = math.Min(1, math.Max(0, l))
	r, g, b = hslToRGB(h, sat, l)

	return models.HexColor(fmt.Sprintf("%02x%02x%02x%s",
		uint8(math.Round(r*255)), uint8(math.Round(g*255)), uint8(math.Round(b*255)), alpha))
}

func hexByte(s string) float64 {
	n, _ := strconv.ParseUint(s, 16, 8)
	return float64(n) / 255
}

func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		// Achromatic: hue and saturation carry no information.
		return 0, 0, l
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6
	return h, s, l
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r = hueToRGB(p, q, h+1.0/3.0)
	g = hueToRGB(p, q, h)
	b = hueToRGB(p, q, h-1.0/3.0)
	return r, g, b
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
