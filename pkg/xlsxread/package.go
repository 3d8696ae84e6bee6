// Package xlsxread reads xlsx workbooks directly from their OOXML
// parts: cells with resolved values and styles, merged ranges, tables,
// drawings, defined names. All part access goes through a session that
// parses each part at most once; a Package and the handles derived
// from it are not safe for concurrent use, but independent packages
// share no state.
package xlsxread

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/richardlehane/mscfb"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/resolve"
)

// Canonical part paths. The workbook part anchors the package; the
// other singletons are located through the workbook manifest with
// these as fallbacks.
const (
	workbookPath       = "xl/workbook.xml"
	defaultStylesPath  = "xl/styles.xml"
	defaultThemePath   = "xl/theme/theme1.xml"
	defaultStringsPath = "xl/sharedStrings.xml"
	relFragmentStyles  = "/styles"
	relFragmentTheme   = "/theme"
	relFragmentStrings = "/sharedStrings"
	relFragmentImage   = "/image"
)

var cfbSignature = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}

// Package is a read session over one xlsx archive. Parts are parsed
// lazily and cached for the session's lifetime; the workbook manifest
// is the one part loaded at open, since every sheet lookup needs it.
type Package struct {
	reader  *zip.Reader
	closer  io.Closer
	name    string
	entries map[string]*zip.File

	workbookRels *raw.Relationships

	workbook      *raw.Workbook
	info          *resolve.WorkbookInfo
	stylesheet    *raw.Stylesheet
	stylesLoaded  bool
	theme         *raw.Theme
	themeLoaded   bool
	sharedStrings *raw.SharedStrings
	stringsLoaded bool

	styles      *resolve.Styles
	stringTable *resolve.StringTable

	worksheets map[string]*raw.Worksheet
	rels       map[string]*raw.Relationships
	tables     map[string]*raw.Table
	drawings   map[string]*raw.Drawing
	media      map[string][]byte
}

// Open opens the xlsx file at path.
func Open(path string) (*Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	p, err := OpenReader(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	p.closer = f
	p.name = filepath.Base(path)
	return p, nil
}

// Name returns the workbook file name the package was opened from,
// empty for reader-backed packages.
func (p *Package) Name() string {
	return p.name
}

// OpenReader opens an xlsx archive from an in-memory or mapped source.
// The reader must stay valid for the package's lifetime.
func OpenReader(r io.ReaderAt, size int64) (*Package, error) {
	if err := sniffContainer(r); err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	p := &Package{
		reader:     zr,
		entries:    make(map[string]*zip.File, len(zr.File)),
		worksheets: make(map[string]*raw.Worksheet),
		rels:       make(map[string]*raw.Relationships),
		tables:     make(map[string]*raw.Table),
		drawings:   make(map[string]*raw.Drawing),
		media:      make(map[string][]byte),
	}
	for _, f := range zr.File {
		key := strings.ToLower(f.Name)
		if _, ok := p.entries[key]; !ok {
			p.entries[key] = f
		}
	}

	rels, err := p.relsFor(workbookPath)
	if err != nil {
		return nil, err
	}
	if rels == nil {
		return nil, partErr(resolve.ManifestPath(workbookPath), ErrPartNotFound)
	}
	p.workbookRels = rels
	return p, nil
}

// sniffContainer classifies the leading bytes. A compound-file
// signature is inspected for the encryption streams so callers can
// tell an encrypted workbook from arbitrary non-zip input.
func sniffContainer(r io.ReaderAt) error {
	head := make([]byte, len(cfbSignature))
	if _, err := r.ReadAt(head, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if head[0] == 'P' && head[1] == 'K' {
		return nil
	}
	if bytes.Equal(head, cfbSignature) {
		return sniffCompoundFile(r)
	}
	return ErrInvalidFormat
}

func sniffCompoundFile(r io.ReaderAt) error {
	doc, err := mscfb.New(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "EncryptionInfo", "EncryptedPackage":
			return ErrWorkbookEncrypted
		}
	}
	return ErrInvalidFormat
}

// Close releases the underlying file when the package was opened from
// a path. Packages opened from a reader hold nothing to release.
func (p *Package) Close() error {
	if p.closer == nil {
		return nil
	}
	err := p.closer.Close()
	p.closer = nil
	return err
}

// hasEntry reports whether the archive holds the named part, matched
// case-insensitively.
func (p *Package) hasEntry(name string) bool {
	_, ok := p.entries[strings.ToLower(name)]
	return ok
}

// open returns a reader over one archive entry.
func (p *Package) open(name string) (io.ReadCloser, error) {
	f, ok := p.entries[strings.ToLower(name)]
	if !ok {
		return nil, partErr(name, ErrPartNotFound)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, partErr(name, err)
	}
	return rc, nil
}

// readEntry reads one archive entry in full.
func (p *Package) readEntry(name string) ([]byte, error) {
	rc, err := p.open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, partErr(name, err)
	}
	return data, nil
}

// partPath locates a workbook-level singleton through the workbook
// manifest, falling back to its conventional path.
func (p *Package) partPath(typeFragment, fallback string) string {
	if target, ok := resolve.TargetPathByType(p.workbookRels, workbookPath, typeFragment); ok {
		return target
	}
	return fallback
}

// rawWorkbookPart returns the parsed workbook part, loading it on
// first use. The part is required.
func (p *Package) rawWorkbookPart() (*raw.Workbook, error) {
	if p.workbook != nil {
		return p.workbook, nil
	}
	rc, err := p.open(workbookPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	wb, err := raw.DecodeWorkbook(rc)
	if err != nil {
		return nil, partErr(workbookPath, err)
	}
	p.workbook = wb
	return wb, nil
}

// rawStylesheetPart returns the parsed styles part, nil when the
// package has none.
func (p *Package) rawStylesheetPart() (*raw.Stylesheet, error) {
	if p.stylesLoaded {
		return p.stylesheet, nil
	}
	path := p.partPath(relFragmentStyles, defaultStylesPath)
	if !p.hasEntry(path) {
		p.stylesLoaded = true
		return nil, nil
	}
	rc, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	ss, err := raw.DecodeStylesheet(rc)
	if err != nil {
		return nil, partErr(path, err)
	}
	p.stylesheet = ss
	p.stylesLoaded = true
	return ss, nil
}

// rawThemePart returns the parsed theme part, nil when the package has
// none.
func (p *Package) rawThemePart() (*raw.Theme, error) {
	if p.themeLoaded {
		return p.theme, nil
	}
	path := p.partPath(relFragmentTheme, defaultThemePath)
	if !p.hasEntry(path) {
		p.themeLoaded = true
		return nil, nil
	}
	rc, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	th, err := raw.DecodeTheme(rc)
	if err != nil {
		return nil, partErr(path, err)
	}
	p.theme = th
	p.themeLoaded = true
	return th, nil
}

// rawSharedStringsPart returns the parsed shared string part, nil when
// the package has none.
func (p *Package) rawSharedStringsPart() (*raw.SharedStrings, error) {
	if p.stringsLoaded {
		return p.sharedStrings, nil
	}
	path := p.partPath(relFragmentStrings, defaultStringsPath)
	if !p.hasEntry(path) {
		p.stringsLoaded = true
		return nil, nil
	}
	rc, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	sst, err := raw.DecodeSharedStrings(rc)
	if err != nil {
		return nil, partErr(path, err)
	}
	p.sharedStrings = sst
	p.stringsLoaded = true
	return sst, nil
}

// relsFor returns the relationship manifest of a part, nil when the
// part carries none. Manifests are cached by their own path.
func (p *Package) relsFor(partPath string) (*raw.Relationships, error) {
	manifest := resolve.ManifestPath(partPath)
	key := strings.ToLower(manifest)
	if rels, ok := p.rels[key]; ok {
		return rels, nil
	}
	if !p.hasEntry(manifest) {
		p.rels[key] = nil
		return nil, nil
	}
	rc, err := p.open(manifest)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	rels, err := raw.DecodeRelationships(rc)
	if err != nil {
		return nil, partErr(manifest, err)
	}
	p.rels[key] = rels
	return rels, nil
}

// rawWorksheetPart returns the parsed worksheet part at path. The part
// is required once a descriptor points at it.
func (p *Package) rawWorksheetPart(path string) (*raw.Worksheet, error) {
	key := strings.ToLower(path)
	if ws, ok := p.worksheets[key]; ok {
		return ws, nil
	}
	rc, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	ws, err := raw.DecodeWorksheet(rc)
	if err != nil {
		return nil, partErr(path, err)
	}
	p.worksheets[key] = ws
	return ws, nil
}

// rawTablePart returns the parsed table part at path.
func (p *Package) rawTablePart(path string) (*raw.Table, error) {
	key := strings.ToLower(path)
	if t, ok := p.tables[key]; ok {
		return t, nil
	}
	rc, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	t, err := raw.DecodeTable(rc)
	if err != nil {
		return nil, partErr(path, err)
	}
	p.tables[key] = t
	return t, nil
}

// rawDrawingPart returns the parsed drawing part at path.
func (p *Package) rawDrawingPart(path string) (*raw.Drawing, error) {
	key := strings.ToLower(path)
	if d, ok := p.drawings[key]; ok {
		return d, nil
	}
	rc, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	d, err := raw.DecodeDrawing(rc)
	if err != nil {
		return nil, partErr(path, err)
	}
	p.drawings[key] = d
	return d, nil
}

// mediaBytes returns the raw bytes of a media part. Callers receive a
// copy so the cache stays pristine.
func (p *Package) mediaBytes(path string) ([]byte, error) {
	key := strings.ToLower(path)
	data, ok := p.media[key]
	if !ok {
		read, err := p.readEntry(path)
		if err != nil {
			return nil, err
		}
		p.media[key] = read
		data = read
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// styleEngine returns the session's style resolution engine, built on
// first use from the styles and theme parts.
func (p *Package) styleEngine() (*resolve.Styles, error) {
	if p.styles != nil {
		return p.styles, nil
	}
	sheet, err := p.rawStylesheetPart()
	if err != nil {
		return nil, err
	}
	theme, err := p.rawThemePart()
	if err != nil {
		return nil, err
	}
	p.styles = resolve.NewStyles(sheet, theme)
	return p.styles, nil
}

// sharedStringTable returns the session's resolved shared string
// table, built on first use.
func (p *Package) sharedStringTable() (*resolve.StringTable, error) {
	if p.stringTable != nil {
		return p.stringTable, nil
	}
	sst, err := p.rawSharedStringsPart()
	if err != nil {
		return nil, err
	}
	styles, err := p.styleEngine()
	if err != nil {
		return nil, err
	}
	p.stringTable = resolve.NewStringTable(sst, styles)
	return p.stringTable, nil
}

// workbookInfo returns the resolved workbook descriptor set, validated
// and cached. Descriptors missing their name, relationship id or sheet
// id fail, as do unrecognized visibility states and part paths outside
// the known sheet families.
func (p *Package) workbookInfo() (*resolve.WorkbookInfo, error) {
	if p.info != nil {
		return p.info, nil
	}
	wb, err := p.rawWorkbookPart()
	if err != nil {
		return nil, err
	}
	if err := validateDescriptors(wb); err != nil {
		return nil, err
	}
	info, err := resolve.ResolveWorkbook(wb, p.workbookRels, workbookPath)
	if err != nil {
		return nil, err
	}
	for i := range info.Sheets {
		if !knownSheetPath(info.Sheets[i].Path) {
			return nil, descriptorErr(info.Sheets[i].Name, "part path %q outside the sheet families", info.Sheets[i].Path)
		}
	}
	p.info = info
	return info, nil
}
