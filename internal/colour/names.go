package colour

import (
	"math"
	"sort"
	"strings"
)

// maxRGBDistance is the Euclidean distance between black and white in
// RGB space (sqrt(3*255^2) ≈ 441.67). Similarity scores scale against
// distance/4.41 so that the farthest possible match lands near zero.
const similarityScale = 4.41

// hexByLowerName and nameByHex are derived lookup tables over
// wellKnownNames, built once at init and read-only afterwards.
var (
	hexByLowerName = make(map[string]string, len(wellKnownNames))
	nameByHex      = make(map[string]string, len(wellKnownNames))
)

func init() {
	for _, nc := range wellKnownNames {
		lower := strings.ToLower(nc.Name)
		hexByLowerName[lower] = nc.Hex
		// First writer wins so duplicate hexes (aqua/cyan) resolve
		// deterministically by table order.
		upper := strings.ToUpper(nc.Hex)
		if _, ok := nameByHex[upper]; !ok {
			nameByHex[upper] = nc.Name
		}
	}
}

// NearestName scans the display registry and returns the named colour
// with the smallest squared Euclidean RGB distance. Ties resolve to the
// first entry in registry order. ok is false only for an empty registry.
func NearestName(rgb RGB) (name, hex string, ok bool) {
	best := -1
	bestDist := 0
	for i, nc := range registry {
		dist := squaredDistance(rgb, MustParseHex(nc.Hex))
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best == -1 {
		return "", "", false
	}
	return registry[best].Name, registry[best].Hex, true
}

// ClosestMatch describes the result of a well-known-name lookup.
type ClosestMatch struct {
	Name       string  `json:"name"`
	Hex        string  `json:"hex"`
	Distance   float64 `json:"distance"`
	ExactMatch bool    `json:"exact_match"`
	Similarity float64 `json:"similarity"`
}

// FindClosestName finds the closest well-known colour name for a hex
// value. An exact hex match reports distance 0 and similarity 100;
// otherwise the nearest entry by Euclidean RGB distance is returned
// with a similarity score scaled to [0, 100].
func FindClosestName(hex string) (ClosestMatch, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return ClosestMatch{}, err
	}

	if name, ok := nameByHex[rgb.HexUpper()]; ok {
		return ClosestMatch{
			Name:       titleCase(name),
			Hex:        rgb.HexUpper(),
			Distance:   0,
			ExactMatch: true,
			Similarity: 100,
		}, nil
	}

	best := ClosestMatch{Distance: -1}
	for _, nc := range wellKnownNames {
		dist := rgb.Distance(MustParseHex(nc.Hex))
		if best.Distance < 0 || dist < best.Distance {
			best = ClosestMatch{
				Name:     titleCase(nc.Name),
				Hex:      strings.ToUpper(nc.Hex),
				Distance: dist,
			}
		}
	}

	best.Distance = round2(best.Distance)
	best.Similarity = round2(math.Max(0, 100-best.Distance/similarityScale))
	return best, nil
}

// SearchResult is one hit from a name search.
type SearchResult struct {
	Name      string `json:"name"`
	Hex       string `json:"hex"`
	RGB       RGB    `json:"rgb"`
	MatchType string `json:"match_type"`
}

// SearchByName searches well-known colours by name, case-insensitive.
// An exact match sorts first, followed by substring matches in table
// order; the result is truncated to limit entries.
func SearchByName(query string, limit int) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]SearchResult, 0, limit)

	if hex, ok := hexByLowerName[q]; ok {
		results = append(results, SearchResult{
			Name:      titleCase(q),
			Hex:       strings.ToUpper(hex),
			RGB:       MustParseHex(hex),
			MatchType: "exact",
		})
	}

	for _, nc := range wellKnownNames {
		lower := strings.ToLower(nc.Name)
		if lower != q && strings.Contains(lower, q) {
			results = append(results, SearchResult{
				Name:      titleCase(nc.Name),
				Hex:       strings.ToUpper(nc.Hex),
				RGB:       MustParseHex(nc.Hex),
				MatchType: "partial",
			})
		}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// ColorByName returns the well-known colour with the given name, if any.
func ColorByName(name string) (SearchResult, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	hex, ok := hexByLowerName[lower]
	if !ok {
		return SearchResult{}, false
	}
	return SearchResult{
		Name:      titleCase(lower),
		Hex:       strings.ToUpper(hex),
		RGB:       MustParseHex(hex),
		MatchType: "exact",
	}, true
}

// AllNames returns every well-known colour sorted by name.
func AllNames() []SearchResult {
	results := make([]SearchResult, 0, len(wellKnownNames))
	for _, nc := range wellKnownNames {
		results = append(results, SearchResult{
			Name: titleCase(nc.Name),
			Hex:  strings.ToUpper(nc.Hex),
			RGB:  MustParseHex(nc.Hex),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results
}

// HueEntry is a named colour annotated with its HSV components.
type HueEntry struct {
	Name       string  `json:"name"`
	Hex        string  `json:"hex"`
	Hue        int     `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// ByHueRange filters well-known colours to those whose HSV hue falls
// within [minHue, maxHue], sorted ascending by hue.
func ByHueRange(minHue, maxHue int) []HueEntry {
	var results []HueEntry
	for _, nc := range wellKnownNames {
		rgb := MustParseHex(nc.Hex)
		h, s, v := rgbToHSV(rgb)
		hue := int(h)
		if hue >= minHue && hue <= maxHue {
			results = append(results, HueEntry{
				Name:       titleCase(nc.Name),
				Hex:        strings.ToUpper(nc.Hex),
				Hue:        hue,
				Saturation: round1(s * 100),
				Value:      round1(v * 100),
			})
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Hue < results[j].Hue })
	return results
}

// titleCase capitalises the first letter of each space-separated word,
// lowering the rest ("skyblue" -> "Skyblue", "sky blue" -> "Sky Blue").
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return s
	}
	return strings.Join(words, " ")
}

// RegistrySize reports the number of display-registry entries; used for
// sanity checks and the API's registry listing.
func RegistrySize() int { return len(registry) }
