package resolve

import (
	"strings"

	"github.com/xuri/nfp"
)

// builtInNumberFormats maps the reserved number format ids to their
// codes. Ids up to 163 without an entry are locale-defined; they fall
// back to General unless the stylesheet spells them out.
var builtInNumberFormats = map[uint32]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[Red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[Red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

// BuiltInFormatCode returns the format code of a reserved id, or the
// empty string when the id has no fixed mapping.
func BuiltInFormatCode(id uint32) string {
	return builtInNumberFormats[id]
}

// isDateFormatCode reports whether a format code produces date or time
// output. Detection walks the nfp token stream so that quoted literals
// and color sections do not trigger false positives.
func isDateFormatCode(code string) bool {
	if code == "" || strings.EqualFold(code, "General") {
		return false
	}
	p := nfp.NumberFormatParser()
	for _, section := range p.Parse(code) {
		for _, token := range section.Items {
			if token.TType == nfp.TokenTypeDateTimes || token.TType == nfp.TokenTypeElapsedDateTimes {
				return true
			}
		}
	}
	return false
}
