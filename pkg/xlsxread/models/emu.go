package models

// EMU (English Metric Unit) conversion factors. Drawing geometry is
// stored in EMU: 914400 per inch.
const (
	// EMUPerInch is the number of EMUs per inch.
	EMUPerInch = 914400
	// EMUPerPixel is the number of EMUs per pixel at 96 DPI.
	EMUPerPixel = 9525
	// EMUPerPoint is the number of EMUs per typographic point.
	EMUPerPoint = 12700
)

// EMUToPixels converts EMU to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// EMUToPoints converts EMU to typographic points.
func EMUToPoints(emu int64) float64 {
	return float64(emu) / EMUPerPoint
}

// EMUPoint is a position in EMU.
type EMUPoint struct {
	// X is the horizontal offset in EMU.
	X int64 `json:"x"`
	// Y is the vertical offset in EMU.
	Y int64 `json:"y"`
}

// EMUExtent is a size in EMU.
type EMUExtent struct {
	// Width is the horizontal extent in EMU.
	Width int64 `json:"width"`
	// Height is the vertical extent in EMU.
	Height int64 `json:"height"`
}
