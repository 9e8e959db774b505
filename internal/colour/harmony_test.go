package colour

import "testing"

func TestComplementaryInvolution(t *testing.T) {
	colors := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 58, G: 110, B: 165},
		{R: 218, G: 165, B: 32},
	}

	for _, rgb := range colors {
		back := Complementary(Complementary(rgb))
		if delta(back.R, rgb.R) > 2 || delta(back.G, rgb.G) > 2 || delta(back.B, rgb.B) > 2 {
			t.Errorf("Complementary(Complementary(%v)) = %v", rgb, back)
		}
	}
}

func TestComplementaryRed(t *testing.T) {
	got := Complementary(RGB{R: 255, G: 0, B: 0})
	// Red's complement is cyan.
	if got.R > 5 || got.G < 250 || got.B < 250 {
		t.Errorf("Complementary(red) = %v, want cyan", got)
	}
}

func TestAnalogousCount(t *testing.T) {
	rgb := RGB{R: 58, G: 110, B: 165}
	for _, count := range []int{1, 2, 3} {
		got := Analogous(rgb, count)
		if len(got) != 2*count {
			t.Errorf("Analogous(count=%d) returned %d colours, want %d", count, len(got), 2*count)
		}
	}
}

func TestTriadic(t *testing.T) {
	got := Triadic(RGB{R: 255, G: 0, B: 0})
	if len(got) != 2 {
		t.Fatalf("Triadic returned %d colours, want 2", len(got))
	}
	// Red rotated 120 and 240 degrees gives green and blue.
	if got[0].G < 250 || got[1].B < 250 {
		t.Errorf("Triadic(red) = %v", got)
	}
}

func TestTetradic(t *testing.T) {
	if got := Tetradic(RGB{R: 255, G: 0, B: 0}); len(got) != 3 {
		t.Errorf("Tetradic returned %d colours, want 3", len(got))
	}
}

func TestSplitComplementary(t *testing.T) {
	if got := SplitComplementary(RGB{R: 255, G: 0, B: 0}); len(got) != 2 {
		t.Errorf("SplitComplementary returned %d colours, want 2", len(got))
	}
}

func TestMonochromatic(t *testing.T) {
	rgb := RGB{R: 58, G: 110, B: 165}
	got := Monochromatic(rgb, 5)
	if len(got) != 5 {
		t.Fatalf("Monochromatic returned %d colours, want 5", len(got))
	}

	base := rgb.ToHSL()
	for i, c := range got {
		hsl := c.ToHSL()
		if deltaFloat(hsl.H, base.H) > 2 {
			t.Errorf("colour %d hue drifted: %f vs %f", i, hsl.H, base.H)
		}
	}
}

func TestShadesAndTints(t *testing.T) {
	rgb := RGB{R: 58, G: 110, B: 165}
	shades, tints := ShadesAndTints(rgb, 3)
	if len(shades) != 3 || len(tints) != 3 {
		t.Fatalf("got %d shades, %d tints, want 3 each", len(shades), len(tints))
	}

	baseL := rgb.ToHSL().L
	for i, s := range shades {
		if s.ToHSL().L > baseL+0.5 {
			t.Errorf("shade %d lighter than base", i)
		}
	}
	for i, ti := range tints {
		if ti.ToHSL().L < baseL-0.5 {
			t.Errorf("tint %d darker than base", i)
		}
	}
}

func TestSchemeColors(t *testing.T) {
	rgb := RGB{R: 58, G: 110, B: 165}

	tests := []struct {
		scheme Scheme
		want   int
	}{
		{SchemeComplementary, 1},
		{SchemeAnalogous, 4},
		{SchemeTriadic, 2},
		{SchemeTetradic, 3},
		{SchemeSplitComplementary, 2},
		{SchemeMonochromatic, 2},
		{SchemeShades, 2},
		{SchemeTints, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			got, err := SchemeColors(rgb, tt.scheme, 2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("SchemeColors(%s, 2) returned %d colours, want %d", tt.scheme, len(got), tt.want)
			}
		})
	}
}

func TestSchemeColorsUnknown(t *testing.T) {
	if _, err := SchemeColors(RGB{}, Scheme("bogus"), 2); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestValidSchemes(t *testing.T) {
	if got := ValidSchemes(); len(got) != 8 {
		t.Errorf("ValidSchemes returned %d schemes, want 8", len(got))
	}
}

func deltaFloat(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
