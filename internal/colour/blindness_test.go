package colour

import (
	"errors"
	"testing"
)

func TestSimulateProtanopia(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	got, err := Simulate(red, Protanopia)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Protanopia collapses red toward a dull yellow; the result must
	// differ from the input.
	if got == red {
		t.Errorf("Simulate(red, protanopia) = %v, expected a shifted colour", got)
	}
	if got.R < got.B {
		t.Errorf("Simulate(red, protanopia) = %v, red channel should dominate blue", got)
	}
}

func TestSimulateAchromatopsia(t *testing.T) {
	got, err := Simulate(RGB{R: 200, G: 50, B: 120}, Achromatopsia)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Total colour blindness produces grayscale.
	if delta(got.R, got.G) > 1 || delta(got.G, got.B) > 1 {
		t.Errorf("Simulate(achromatopsia) = %v, want grayscale", got)
	}
}

func TestSimulateUnknownDeficiency(t *testing.T) {
	_, err := Simulate(RGB{}, Deficiency("bogus"))
	if !errors.Is(err, ErrUnknownDeficiency) {
		t.Errorf("error = %v, want ErrUnknownDeficiency", err)
	}
}

func TestSimulateAll(t *testing.T) {
	sims := SimulateAll(RGB{R: 255, G: 0, B: 0})
	if len(sims) != 8 {
		t.Fatalf("got %d simulations, want 8", len(sims))
	}
	for i, kind := range AllDeficiencies() {
		if sims[i].Kind != kind {
			t.Errorf("simulation %d kind = %q, want %q", i, sims[i].Kind, kind)
		}
		if sims[i].Info.Name == "" {
			t.Errorf("simulation %q missing info", sims[i].Kind)
		}
	}
}

func TestInfoFor(t *testing.T) {
	info, ok := InfoFor(Deuteranopia)
	if !ok {
		t.Fatal("no info for deuteranopia")
	}
	if info.Name == "" || info.Description == "" {
		t.Errorf("incomplete info: %+v", info)
	}

	if _, ok := InfoFor(Deficiency("bogus")); ok {
		t.Error("expected lookup miss for unknown deficiency")
	}
}

func TestCheckPairAccessibility(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}

	report := CheckPairAccessibility(black, white, 0)
	if report.Total != 8 {
		t.Fatalf("Total = %d, want 8", report.Total)
	}
	// Black and white stay maximally separated under every deficiency.
	if report.Passed != 8 {
		t.Errorf("Passed = %d, want 8", report.Passed)
	}
	if report.Score != 100 {
		t.Errorf("Score = %f, want 100", report.Score)
	}
}

func TestCheckPairAccessibilitySameColor(t *testing.T) {
	c := RGB{R: 120, G: 60, B: 200}
	report := CheckPairAccessibility(c, c, 0)
	if report.Passed != 0 {
		t.Errorf("Passed = %d, want 0 for identical colours", report.Passed)
	}
	if report.Score != 0 {
		t.Errorf("Score = %f, want 0", report.Score)
	}
}

func TestCheckPairAccessibilityThreshold(t *testing.T) {
	a := RGB{R: 100, G: 100, B: 100}
	b := RGB{R: 110, G: 110, B: 110}

	strict := CheckPairAccessibility(a, b, 500)
	if strict.Passed != 0 {
		t.Errorf("Passed = %d with unreachable threshold, want 0", strict.Passed)
	}

	lenient := CheckPairAccessibility(a, b, 0.001)
	if lenient.Passed != 8 {
		t.Errorf("Passed = %d with tiny threshold, want 8", lenient.Passed)
	}
}

func TestAllDeficienciesOrder(t *testing.T) {
	kinds := AllDeficiencies()
	want := []Deficiency{
		Protanopia, Protanomaly,
		Deuteranopia, Deuteranomaly,
		Tritanopia, Tritanomaly,
		Achromatopsia, Achromatomaly,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d deficiencies, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("deficiency %d = %q, want %q", i, kinds[i], want[i])
		}
	}
}
