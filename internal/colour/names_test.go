package colour

import (
	"strings"
	"testing"
)

func TestNearestName(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "pure red", rgb: RGB{R: 255, G: 0, B: 0}, want: "Red"},
		{name: "near red", rgb: RGB{R: 250, G: 5, B: 5}, want: "Red"},
		{name: "pure white", rgb: RGB{R: 255, G: 255, B: 255}, want: "White"},
		{name: "pure black", rgb: RGB{R: 0, G: 0, B: 0}, want: "Black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, hex, ok := NearestName(tt.rgb)
			if !ok {
				t.Fatal("NearestName reported empty registry")
			}
			if name != tt.want {
				t.Errorf("NearestName(%v) = %q (%s), want %q", tt.rgb, name, hex, tt.want)
			}
		})
	}
}

func TestFindClosestNameExact(t *testing.T) {
	match, err := FindClosestName("#FF0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !match.ExactMatch {
		t.Error("expected exact match for #FF0000")
	}
	if match.Name != "Red" {
		t.Errorf("Name = %q, want %q", match.Name, "Red")
	}
	if match.Similarity != 100 {
		t.Errorf("Similarity = %f, want 100", match.Similarity)
	}
	if match.Distance != 0 {
		t.Errorf("Distance = %f, want 0", match.Distance)
	}
}

func TestFindClosestNameApproximate(t *testing.T) {
	match, err := FindClosestName("#FE0101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.ExactMatch {
		t.Error("did not expect exact match for #FE0101")
	}
	if match.Name != "Red" {
		t.Errorf("Name = %q, want %q", match.Name, "Red")
	}
	if match.Similarity <= 90 || match.Similarity > 100 {
		t.Errorf("Similarity = %f, want just below 100", match.Similarity)
	}
}

func TestFindClosestNameInvalidHex(t *testing.T) {
	if _, err := FindClosestName("zzz"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestSearchByName(t *testing.T) {
	results := SearchByName("red", 10)
	if len(results) == 0 {
		t.Fatal("no results for 'red'")
	}
	if results[0].MatchType != "exact" || results[0].Name != "Red" {
		t.Errorf("first result = %+v, want exact Red", results[0])
	}
	for _, r := range results[1:] {
		if r.MatchType != "partial" {
			t.Errorf("result %q has MatchType %q, want partial", r.Name, r.MatchType)
		}
		if !strings.Contains(strings.ToLower(r.Name), "red") {
			t.Errorf("result %q does not contain query", r.Name)
		}
	}
}

func TestSearchByNameLimit(t *testing.T) {
	results := SearchByName("a", 3)
	if len(results) > 3 {
		t.Errorf("got %d results, limit was 3", len(results))
	}
}

func TestSearchByNameNoMatch(t *testing.T) {
	if results := SearchByName("notacolourname", 10); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestColorByName(t *testing.T) {
	result, ok := ColorByName("Teal")
	if !ok {
		t.Fatal("teal not found")
	}
	if result.Hex != "#008080" {
		t.Errorf("teal hex = %q, want #008080", result.Hex)
	}

	if _, ok := ColorByName("no such colour"); ok {
		t.Error("expected lookup miss")
	}
}

func TestAllNamesSorted(t *testing.T) {
	names := AllNames()
	if len(names) != len(wellKnownNames) {
		t.Fatalf("got %d names, want %d", len(names), len(wellKnownNames))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1].Name > names[i].Name {
			t.Fatalf("names not sorted at %d: %q > %q", i, names[i-1].Name, names[i].Name)
		}
	}
}

func TestByHueRange(t *testing.T) {
	reds := ByHueRange(0, 10)
	if len(reds) == 0 {
		t.Fatal("no colours in hue range [0, 10]")
	}
	for _, e := range reds {
		if e.Hue < 0 || e.Hue > 10 {
			t.Errorf("%q has hue %d outside [0, 10]", e.Name, e.Hue)
		}
	}
	for i := 1; i < len(reds); i++ {
		if reds[i-1].Hue > reds[i].Hue {
			t.Fatalf("results not sorted by hue at %d", i)
		}
	}
}

func TestRegistrySize(t *testing.T) {
	if got := RegistrySize(); got != len(registry) {
		t.Errorf("RegistrySize() = %d, want %d", got, len(registry))
	}
	if RegistrySize() == 0 {
		t.Error("registry is empty")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"red", "Red"},
		{"skyblue", "Skyblue"},
		{"sky blue", "Sky Blue"},
		{"REBECCAPURPLE", "Rebeccapurple"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
