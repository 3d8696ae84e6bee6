package resolve

import (
	"strings"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

// StringTable resolves shared-string references for one session. The
// table is built once; lookups are pure reads and deterministic.
type StringTable struct {
	items []models.RichString
}

// NewStringTable resolves the decoded shared-strings part. A nil part
// yields an empty table, so any cell referencing it fails with
// ErrIndexOutOfRange. Run fonts resolve their colors through styles;
// a nil styles leaves run colors empty.
func NewStringTable(sst *raw.SharedStrings, styles *Styles) *StringTable {
	t := &StringTable{}
	if sst == nil {
		return t
	}
	t.items = make([]models.RichString, 0, len(sst.Items))
	for i := range sst.Items {
		t.items = append(t.items, resolveStringItem(&sst.Items[i], styles))
	}
	return t
}

// Len returns the number of entries in the table.
func (t *StringTable) Len() int { return len(t.items) }

// Get returns the resolved string at the zero-based index.
func (t *StringTable) Get(i int) (models.RichString, error) {
	if i < 0 || i >= len(t.items) {
		return models.RichString{}, ErrIndexOutOfRange
	}
	return t.items[i], nil
}

// resolveStringItem flattens an item into its plain text while keeping
// the run structure for rich-text consumers.
func resolveStringItem(item *raw.StringItem, styles *Styles) models.RichString {
	rs := models.RichString{}
	if item.Text != nil {
		rs.Text = *item.Text
	}
	if len(item.Runs) > 0 {
		var sb strings.Builder
		rs.Runs = make([]models.RichRun, 0, len(item.Runs))
		for i := range item.Runs {
			run := &item.Runs[i]
			sb.WriteString(run.Text)
			rr := models.RichRun{Text: run.Text}
			if run.Properties != nil {
				font := styles.convertFont(run.Properties)
				rr.Font = &font
			}
			rs.Runs = append(rs.Runs, rr)
		}
		if item.Text == nil {
			rs.Text = sb.String()
		}
	}
	for _, pr := range item.PhoneticRuns {
		rs.PhoneticRuns = append(rs.PhoneticRuns, models.PhoneticRun{
			Text:       pr.Text,
			StartIndex: pr.StartIndex,
			EndIndex:   pr.EndIndex,
		})
	}
	if item.Phonetic != nil {
		props := &models.PhoneticProperties{
			Type:      item.Phonetic.Type,
			Alignment: item.Phonetic.Alignment,
		}
		if item.Phonetic.FontID != nil {
			id := *item.Phonetic.FontID
			props.FontID = &id
		}
		rs.Phonetic = props
	}
	return rs
}
