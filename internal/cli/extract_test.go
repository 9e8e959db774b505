package cli

import (
	"encoding/json"
	"image/color"
	"strings"
	"testing"

	"github.com/huecraft/huecraft/internal/colour"
)

func testPalette() *colour.Palette {
	colors := []color.Color{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
	}
	return colour.NewPaletteWithCounts(colors, []int{75, 25}, 100)
}

func TestFormatPaletteHex(t *testing.T) {
	out, err := formatPalette(testPalette(), "hex", false)
	if err != nil {
		t.Fatalf("formatPalette returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out)
	}
	if lines[0] != "#FF0000" {
		t.Errorf("first line = %q, want #FF0000", lines[0])
	}
}

func TestFormatPaletteRGB(t *testing.T) {
	out, err := formatPalette(testPalette(), "rgb", false)
	if err != nil {
		t.Fatalf("formatPalette returned error: %v", err)
	}
	if !strings.Contains(out, "rgb(255, 0, 0)") {
		t.Errorf("output missing rgb triple: %q", out)
	}
}

func TestFormatPaletteJSON(t *testing.T) {
	out, err := formatPalette(testPalette(), "json", false)
	if err != nil {
		t.Fatalf("formatPalette returned error: %v", err)
	}

	var decoded colour.PaletteJSON
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("count = %d, want 2", decoded.Count)
	}
	if decoded.Colors[0].Percentage != 75 {
		t.Errorf("first percentage = %v, want 75", decoded.Colors[0].Percentage)
	}
}

func TestFormatPaletteUnsupported(t *testing.T) {
	if _, err := formatPalette(testPalette(), "yaml", false); err == nil {
		t.Error("expected error for unsupported format")
	}
}
