package paper

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default option values.
const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultGridSize = 50
)

// Options configures a Paper.
type Options struct {
	// Width and Height are the canvas size in pixels.
	Width, Height float64
	// GridSize is the snapping step for pointer coordinates. Zero or less
	// disables snapping.
	GridSize float64
	// PerpendicularLinks makes the default link view route with an elbow.
	PerpendicularLinks bool
	// Interactive is passed to every view constructor.
	Interactive bool
	// Background fills the canvas before views are drawn.
	Background Color
	// ViewTypes resolves cells to views. Nil uses NewViewTypes().
	ViewTypes *ViewTypes
}

// DefaultOptions returns an 800x600 interactive paper with a 50px grid.
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		GridSize:    DefaultGridSize,
		Interactive: true,
		Background:  Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// optionsFile is the TOML layout of a paper config file. Pointer fields
// distinguish "absent" from a zero value.
type optionsFile struct {
	Width              *float64  `toml:"width"`
	Height             *float64  `toml:"height"`
	GridSize           *float64  `toml:"grid_size"`
	PerpendicularLinks *bool     `toml:"perpendicular_links"`
	Interactive        *bool     `toml:"interactive"`
	Background         []float64 `toml:"background"`
}

// ParseOptions parses TOML config data. Absent keys keep their defaults;
// non-positive sizes are replaced by the defaults. background takes three or
// four components in [0, 1].
//
//	width = 1024
//	height = 768
//	grid_size = 10
//	perpendicular_links = true
//	interactive = false
//	background = [0.95, 0.95, 0.95, 1.0]
func ParseOptions(data []byte) (Options, error) {
	var f optionsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return DefaultOptions(), fmt.Errorf("parse paper config: %w", err)
	}
	return normalizeOptions(f), nil
}

// LoadOptions reads and parses a TOML config file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("read paper config: %w", err)
	}
	return ParseOptions(data)
}

func normalizeOptions(f optionsFile) Options {
	out := DefaultOptions()
	if f.Width != nil && *f.Width > 0 {
		out.Width = *f.Width
	}
	if f.Height != nil && *f.Height > 0 {
		out.Height = *f.Height
	}
	if f.GridSize != nil && *f.GridSize > 0 {
		out.GridSize = *f.GridSize
	}
	if f.PerpendicularLinks != nil {
		out.PerpendicularLinks = *f.PerpendicularLinks
	}
	if f.Interactive != nil {
		out.Interactive = *f.Interactive
	}
	if b := f.Background; len(b) == 3 || len(b) == 4 {
		out.Background = Color{R: clamp01(b[0]), G: clamp01(b[1]), B: clamp01(b[2]), A: 1}
		if len(b) == 4 {
			out.Background.A = clamp01(b[3])
		}
	}
	return out
}
