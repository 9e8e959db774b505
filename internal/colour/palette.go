package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// RGB represents a colour in 8-bit RGB format. It is the canonical
// internal representation; every other space is derived from it.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HexUpper returns the hex string in the display form used at the API
// boundary (e.g. "#1A2B3C").
func (rgb RGB) HexUpper() string {
	return strings.ToUpper(rgb.Hex())
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBToColor converts an RGB value to a color.Color (RGBA).
func RGBToColor(rgb RGB) color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Palette represents a set of dominant colours extracted from an image,
// together with how much of the image each colour covers.
type Palette struct {
	Colors []color.Color
	// Counts holds the number of source pixels attributed to each
	// colour. May be nil for palettes without occupancy data.
	Counts []int
	// TotalPixels is the number of pixels the counts were taken over.
	TotalPixels int
}

// NewPalette creates a Palette without occupancy information.
func NewPalette(colors []color.Color) *Palette {
	return &Palette{Colors: colors}
}

// NewPaletteWithCounts creates a Palette with per-colour pixel counts.
func NewPaletteWithCounts(colors []color.Color, counts []int, total int) *Palette {
	return &Palette{Colors: colors, Counts: counts, TotalPixels: total}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Entry is one reported palette colour with its share of the image.
type Entry struct {
	Hex        string  `json:"hex"`
	RGB        RGB     `json:"rgb"`
	Percentage float64 `json:"percentage"`
	Pixels     int     `json:"pixels"`
}

// Entries returns the palette as reporting entries sorted by descending
// percentage. Percentages are rounded to one decimal place; palettes
// without occupancy data report zero percentages in colour order.
func (p *Palette) Entries() []Entry {
	entries := make([]Entry, len(p.Colors))
	for i, c := range p.Colors {
		rgb := ToRGB(c)
		entries[i] = Entry{
			Hex: rgb.HexUpper(),
			RGB: rgb,
		}
		if p.Counts != nil && i < len(p.Counts) && p.TotalPixels > 0 {
			entries[i].Pixels = p.Counts[i]
			entries[i].Percentage = round1(float64(p.Counts[i]) / float64(p.TotalPixels) * 100)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percentage > entries[j].Percentage
	})
	return entries
}

// ToHex converts the palette colours to lowercase hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = ToRGB(c).Hex()
	}
	return hexColors
}

// ToRGBSlice converts the palette colours to RGB structs.
func (p *Palette) ToRGBSlice() []RGB {
	rgbColors := make([]RGB, len(p.Colors))
	for i, c := range p.Colors {
		rgbColors[i] = ToRGB(c)
	}
	return rgbColors
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count       int     `json:"count"`
	TotalPixels int     `json:"total_pixels,omitempty"`
	Colors      []Entry `json:"colors"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(PaletteJSON{
		Count:       p.Len(),
		TotalPixels: p.TotalPixels,
		Colors:      p.Entries(),
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colours:\n", p.Len())
	for i, e := range p.Entries() {
		if p.Counts != nil {
			fmt.Fprintf(&sb, "  %2d: %s (%s) %.1f%%\n", i+1, e.Hex, e.RGB.String(), e.Percentage)
		} else {
			fmt.Fprintf(&sb, "  %2d: %s (%s)\n", i+1, e.Hex, e.RGB.String())
		}
	}
	return sb.String()
}
