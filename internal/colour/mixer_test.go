package colour

import (
	"errors"
	"testing"
)

func TestMixIdentity(t *testing.T) {
	c := RGB{R: 58, G: 110, B: 165}

	for _, method := range ValidMethods() {
		t.Run(string(method), func(t *testing.T) {
			got, err := Mix([]RGB{c, c}, nil, method)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if delta(got.R, c.R) > 1 || delta(got.G, c.G) > 1 || delta(got.B, c.B) > 1 {
				t.Errorf("Mix(%v, %v) = %v, want input colour", c, c, got)
			}
		})
	}
}

func TestMixRGBAverage(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}

	got, err := MixRGB([]RGB{black, white}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta(got.R, 127) > 1 || delta(got.G, 127) > 1 || delta(got.B, 127) > 1 {
		t.Errorf("MixRGB(black, white) = %v, want mid gray", got)
	}
}

func TestMixRGBWeighted(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}

	got, err := MixRGB([]RGB{black, white}, []float64{3, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta(got.R, 63) > 1 {
		t.Errorf("MixRGB 3:1 = %v, want ~(63, 63, 63)", got)
	}
}

func TestMixMethodsDiffer(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	navy := RGB{R: 0, G: 0, B: 128}

	rgbMix, err := Mix([]RGB{red, navy}, nil, MethodRGB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmykMix, err := Mix([]RGB{red, navy}, nil, MethodCMYK)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rgbMix == cmykMix {
		t.Errorf("RGB and CMYK mixes of red+navy are identical: %v", rgbMix)
	}
}

func TestMixEmpty(t *testing.T) {
	for _, method := range ValidMethods() {
		if _, err := Mix(nil, nil, method); !errors.Is(err, ErrEmptyColorList) {
			t.Errorf("Mix(nil, %s) error = %v, want ErrEmptyColorList", method, err)
		}
	}
}

func TestMixUnknownMethodDefaultsToCMYK(t *testing.T) {
	colors := []RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}}

	got, err := Mix(colors, nil, Method("bogus"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := MixCMYK(colors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("Mix(bogus) = %v, want CMYK result %v", got, want)
	}
}

func TestMixRatioNormalization(t *testing.T) {
	colors := []RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}}

	uniform, err := MixRGB(colors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mismatched ratio count falls back to uniform weights.
	mismatched, err := MixRGB(colors, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uniform != mismatched {
		t.Errorf("mismatched ratios = %v, want uniform %v", mismatched, uniform)
	}

	// Zero-total ratios fall back to uniform weights.
	zeroed, err := MixRGB(colors, []float64{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uniform != zeroed {
		t.Errorf("zero ratios = %v, want uniform %v", zeroed, uniform)
	}

	// Unnormalised ratios are scaled, not truncated.
	scaled, err := MixRGB(colors, []float64{50, 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uniform != scaled {
		t.Errorf("scaled ratios = %v, want uniform %v", scaled, uniform)
	}
}

func TestMixSubtractiveDarkens(t *testing.T) {
	yellow := RGB{R: 255, G: 255, B: 0}
	cyan := RGB{R: 0, G: 255, B: 255}

	got, err := MixSubtractive([]RGB{yellow, cyan}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Subtractive mixing of yellow and cyan keeps green strong while
	// damping red and blue.
	if got.G <= got.R || got.G <= got.B {
		t.Errorf("MixSubtractive(yellow, cyan) = %v, want green dominant", got)
	}
}

func TestMixTwo(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	blue := RGB{R: 0, G: 0, B: 255}

	mix := MixTwo(red, blue, 0.5)
	if mix.Ratio != 0.5 {
		t.Errorf("Ratio = %f, want 0.5", mix.Ratio)
	}
	if mix.A != red.HexUpper() || mix.B != blue.HexUpper() {
		t.Errorf("A, B = %q, %q", mix.A, mix.B)
	}
	if delta(mix.RGBMix.R, 127) > 1 || delta(mix.RGBMix.B, 127) > 1 {
		t.Errorf("RGBMix = %v, want ~(127, 0, 127)", mix.RGBMix)
	}
	if mix.Recommendation == "" {
		t.Error("missing recommendation")
	}
}

func TestMixTwoRatioClamped(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	blue := RGB{R: 0, G: 0, B: 255}

	full := MixTwo(red, blue, 5)
	if full.Ratio != 1 {
		t.Errorf("Ratio = %f, want clamped to 1", full.Ratio)
	}
	none := MixTwo(red, blue, -1)
	if none.Ratio != 0 {
		t.Errorf("Ratio = %f, want clamped to 0", none.Ratio)
	}
}
