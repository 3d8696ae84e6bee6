package xlsxread

// Mode selects how much of the workbook an export walks.
type Mode string

const (
	// ModeLight exports sheet descriptors and typed cells only.
	ModeLight Mode = "light"
	// ModeStandard adds merged ranges, tables, hyperlinks, defined
	// names and print areas.
	ModeStandard Mode = "standard"
	// ModeVerbose adds per-cell styles and drawings.
	ModeVerbose Mode = "verbose"
)

// Options configures an export.
type Options struct {
	// Mode specifies the export mode (light, standard, verbose).
	Mode Mode
	// IncludeStyles specifies whether exported cells keep their
	// resolved styles. If nil, defaults to true for verbose mode.
	IncludeStyles *bool
	// IncludeDrawings specifies whether sheet drawings are exported.
	// If nil, defaults to true for verbose mode.
	IncludeDrawings *bool
	// IncludePrintAreas specifies whether print areas are exported.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePrintAreas *bool
	// Sheet restricts the export to one sheet by name. Empty exports
	// every sheet.
	Sheet string
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeStyles returns whether exported cells keep styles.
func (o Options) ShouldIncludeStyles() bool {
	if o.IncludeStyles != nil {
		return *o.IncludeStyles
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludeDrawings returns whether sheet drawings are exported.
func (o Options) ShouldIncludeDrawings() bool {
	if o.IncludeDrawings != nil {
		return *o.IncludeDrawings
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludePrintAreas returns whether print areas are exported.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode != ModeLight
}
