package colour

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// solidImage returns a uniformly coloured test image.
func solidImage(c color.RGBA, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// stripeImage returns an image with vertical stripes of the given colours.
func stripeImage(colors []color.RGBA, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, colors[x*len(colors)/w])
		}
	}
	return img
}

func TestExtractSolidImage(t *testing.T) {
	for _, alg := range ValidAlgorithms() {
		t.Run(string(alg), func(t *testing.T) {
			extractor, err := NewExtractor(alg)
			if err != nil {
				t.Fatalf("NewExtractor(%s): %v", alg, err)
			}

			img := solidImage(color.RGBA{R: 120, G: 60, B: 200, A: 255}, 40, 40)
			palette, err := extractor.Extract(img, 5)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}

			// A solid image has one unique colour no matter how many
			// clusters were requested.
			if palette.Len() != 1 {
				t.Fatalf("palette has %d colours, want 1", palette.Len())
			}

			entries := palette.Entries()
			if entries[0].Percentage < 99.9 {
				t.Errorf("dominant percentage = %f, want ~100", entries[0].Percentage)
			}
			if entries[0].RGB != (RGB{R: 120, G: 60, B: 200}) {
				t.Errorf("dominant colour = %v", entries[0].RGB)
			}
		})
	}
}

func TestExtractStripes(t *testing.T) {
	stripes := []color.RGBA{
		{R: 200, G: 30, B: 30, A: 255},
		{R: 30, G: 200, B: 30, A: 255},
		{R: 30, G: 30, B: 200, A: 255},
	}

	for _, alg := range ValidAlgorithms() {
		t.Run(string(alg), func(t *testing.T) {
			extractor, err := NewExtractor(alg)
			if err != nil {
				t.Fatalf("NewExtractor(%s): %v", alg, err)
			}

			palette, err := extractor.Extract(stripeImage(stripes, 60, 30), 3)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if palette.Len() != 3 {
				t.Fatalf("palette has %d colours, want 3", palette.Len())
			}

			total := 0.0
			for _, e := range palette.Entries() {
				total += e.Percentage
			}
			if total < 99 || total > 101 {
				t.Errorf("percentages sum to %f", total)
			}
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	img := stripeImage([]color.RGBA{
		{R: 200, G: 30, B: 30, A: 255},
		{R: 30, G: 200, B: 30, A: 255},
		{R: 30, G: 30, B: 200, A: 255},
		{R: 200, G: 200, B: 30, A: 255},
	}, 80, 40)

	extractor := NewKMeansExtractor()
	first, err := extractor.Extract(img, 3)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	second, err := extractor.Extract(img, 3)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	a, b := first.ToHex(), second.ToHex()
	if len(a) != len(b) {
		t.Fatalf("palette sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("palettes differ at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestExtractInvalidInput(t *testing.T) {
	extractor := NewKMeansExtractor()

	if _, err := extractor.Extract(nil, 5); !errors.Is(err, ErrExtraction) {
		t.Errorf("nil image error = %v, want ErrExtraction", err)
	}

	img := solidImage(color.RGBA{R: 1, G: 2, B: 3, A: 255}, 4, 4)
	if _, err := extractor.Extract(img, 0); !errors.Is(err, ErrExtraction) {
		t.Errorf("count 0 error = %v, want ErrExtraction", err)
	}
	if _, err := extractor.Extract(img, 500); !errors.Is(err, ErrExtraction) {
		t.Errorf("count 500 error = %v, want ErrExtraction", err)
	}

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := extractor.Extract(empty, 3); !errors.Is(err, ErrExtraction) {
		t.Errorf("empty image error = %v, want ErrExtraction", err)
	}
}

func TestNewExtractor(t *testing.T) {
	if _, err := NewExtractor(AlgorithmKMeans); err != nil {
		t.Errorf("kmeans: %v", err)
	}
	if _, err := NewExtractor(AlgorithmMedianCut); err != nil {
		t.Errorf("mediancut: %v", err)
	}
	if _, err := NewExtractor(Algorithm("bogus")); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestExtractorConfigValidate(t *testing.T) {
	cfg := DefaultExtractorConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg.ColorCount = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for count 0")
	}

	cfg.ColorCount = 300
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for count 300")
	}

	cfg = ExtractorConfig{Algorithm: "bogus", ColorCount: 5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestMedianCutMoreColorsThanUnique(t *testing.T) {
	img := stripeImage([]color.RGBA{
		{R: 200, G: 30, B: 30, A: 255},
		{R: 30, G: 30, B: 200, A: 255},
	}, 20, 10)

	palette, err := NewMedianCutExtractor().Extract(img, 10)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if palette.Len() != 2 {
		t.Errorf("palette has %d colours, want 2", palette.Len())
	}
}
