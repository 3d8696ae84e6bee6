package models

// RichString is a resolved shared-string or inline-string entry. Plain
// strings carry only Text; rich strings also expose their runs.
type RichString struct {
	// Text is the concatenation of all run texts (or the plain text).
	Text string `json:"text"`
	// Runs is the per-run formatting list; empty for plain strings.
	Runs []RichRun `json:"runs,omitempty"`
	// PhoneticRuns carries furigana runs, when present.
	PhoneticRuns []PhoneticRun `json:"phonetic_runs,omitempty"`
	// Phonetic carries the phonetic display properties, when present.
	Phonetic *PhoneticProperties `json:"phonetic,omitempty"`
}

// RichRun is one formatted run of a rich text value.
type RichRun struct {
	// Text is the run's text content.
	Text string `json:"text"`
	// Font is the run's character formatting, nil when the run inherits
	// the cell font.
	Font *Font `json:"font,omitempty"`
}

// PhoneticRun maps a phonetic text run onto a span of base-text runs.
type PhoneticRun struct {
	// Text is the phonetic text.
	Text string `json:"text"`
	// StartIndex is the 0-based index of the first base-text character
	// the run annotates.
	StartIndex uint32 `json:"start_index"`
	// EndIndex is the 0-based index one past the last annotated character.
	EndIndex uint32 `json:"end_index"`
}

// PhoneticProperties controls how phonetic runs display.
type PhoneticProperties struct {
	// FontID is the stylesheet font index used for phonetic text.
	FontID *uint32 `json:"font_id,omitempty"`
	// Type is the phonetic character type (e.g. "fullwidthKatakana").
	Type string `json:"type,omitempty"`
	// Alignment is the phonetic alignment ("left", "center", ...).
	Alignment string `json:"alignment,omitempty"`
}
