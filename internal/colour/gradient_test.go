package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestInterpolate(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	blue := RGB{R: 0, G: 0, B: 255}

	for _, space := range []Space{SpaceRGB, SpaceHSL, SpaceHSV} {
		t.Run(string(space), func(t *testing.T) {
			stops := Interpolate(red, blue, 10, space)
			if len(stops) != 10 {
				t.Fatalf("got %d stops, want 10", len(stops))
			}
			if stops[0].RGB != red {
				t.Errorf("first stop = %v, want %v", stops[0].RGB, red)
			}
			if stops[len(stops)-1].RGB != blue {
				t.Errorf("last stop = %v, want %v", stops[len(stops)-1].RGB, blue)
			}
			if stops[0].Position != 0 || stops[len(stops)-1].Position != 100 {
				t.Errorf("positions = %v..%v, want 0..100", stops[0].Position, stops[len(stops)-1].Position)
			}
		})
	}
}

func TestInterpolateRGBMidpoint(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	stops := Interpolate(black, white, 3, SpaceRGB)
	mid := stops[1].RGB
	if delta(mid.R, 127) > 1 || delta(mid.G, 127) > 1 || delta(mid.B, 127) > 1 {
		t.Errorf("midpoint = %v, want ~(127, 127, 127)", mid)
	}
}

func TestGenerate(t *testing.T) {
	anchors := []RGB{
		{R: 255, G: 107, B: 107},
		{R: 255, G: 217, B: 61},
		{R: 107, G: 207, B: 127},
	}

	stops, err := Generate(anchors, 20, SpaceRGB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stops) < 2 {
		t.Fatalf("got %d stops", len(stops))
	}

	if stops[0].Position != 0 {
		t.Errorf("first position = %v, want 0", stops[0].Position)
	}
	if stops[len(stops)-1].Position != 100 {
		t.Errorf("last position = %v, want 100", stops[len(stops)-1].Position)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Position < stops[i-1].Position {
			t.Fatalf("positions not monotonic at %d: %v < %v", i, stops[i].Position, stops[i-1].Position)
		}
	}

	if stops[0].RGB != anchors[0] {
		t.Errorf("first stop = %v, want %v", stops[0].RGB, anchors[0])
	}
	if stops[len(stops)-1].RGB != anchors[len(anchors)-1] {
		t.Errorf("last stop = %v, want %v", stops[len(stops)-1].RGB, anchors[len(anchors)-1])
	}
}

func TestGenerateTooFewColors(t *testing.T) {
	_, err := Generate([]RGB{{R: 255}}, 10, SpaceRGB)
	if !errors.Is(err, ErrInsufficientColors) {
		t.Errorf("error = %v, want ErrInsufficientColors", err)
	}
}

func TestGenerateStopHexUppercase(t *testing.T) {
	stops, err := Generate([]RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}}, 5, SpaceRGB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range stops {
		if s.Hex != strings.ToUpper(s.Hex) {
			t.Errorf("stop hex %q not uppercase", s.Hex)
		}
	}
}

func TestCSSForms(t *testing.T) {
	stops := []Stop{
		{Hex: "#FF0000", Position: 0},
		{Hex: "#0000FF", Position: 100},
	}

	tests := []struct {
		name   string
		typ    GradientType
		prefix string
	}{
		{name: "linear", typ: GradientLinear, prefix: "linear-gradient(90deg, "},
		{name: "radial", typ: GradientRadial, prefix: "radial-gradient(circle at 50% 50%, "},
		{name: "conic", typ: GradientConic, prefix: "conic-gradient(from 90deg at 50% 50%, "},
		{name: "unknown falls back to linear", typ: GradientType("bogus"), prefix: "linear-gradient(90deg, "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CSS(stops, tt.typ, 90, 50, 50)
			if !strings.HasPrefix(got.Background, tt.prefix) {
				t.Errorf("Background = %q, want prefix %q", got.Background, tt.prefix)
			}
			if !strings.HasPrefix(got.FullCSS, "background: ") || !strings.HasSuffix(got.FullCSS, ";") {
				t.Errorf("FullCSS = %q", got.FullCSS)
			}
			if !strings.Contains(got.Background, "#FF0000 0%") {
				t.Errorf("Background missing first stop: %q", got.Background)
			}
		})
	}
}

func TestParseSpace(t *testing.T) {
	tests := []struct {
		in   string
		want Space
	}{
		{"rgb", SpaceRGB},
		{"HSL", SpaceHSL},
		{"hsv", SpaceHSV},
		{"", SpaceRGB},
		{"lab", SpaceRGB},
	}
	for _, tt := range tests {
		if got := ParseSpace(tt.in); got != tt.want {
			t.Errorf("ParseSpace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPresets(t *testing.T) {
	presets := Presets()
	if len(presets) != 10 {
		t.Fatalf("got %d presets, want 10", len(presets))
	}
	for _, p := range presets {
		if p.Name == "" || len(p.Colors) < 2 {
			t.Errorf("malformed preset %+v", p)
		}
		for _, hex := range p.Colors {
			if _, err := ParseHex(hex); err != nil {
				t.Errorf("preset %q has invalid colour %q", p.Name, hex)
			}
		}
	}
}

func TestRenderPresets(t *testing.T) {
	rendered := RenderPresets()
	if len(rendered) != 10 {
		t.Fatalf("got %d rendered presets, want 10", len(rendered))
	}
	for _, pg := range rendered {
		if len(pg.Stops) < 2 {
			t.Errorf("preset %q has %d stops", pg.Name, len(pg.Stops))
		}
		if pg.CSS.Type != GradientLinear {
			t.Errorf("preset %q CSS type = %q", pg.Name, pg.CSS.Type)
		}
	}
}
