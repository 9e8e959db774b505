package colour

import "fmt"

// Deficiency identifies a colour-vision deficiency type.
type Deficiency string

const (
	Protanopia    Deficiency = "protanopia"
	Protanomaly   Deficiency = "protanomaly"
	Deuteranopia  Deficiency = "deuteranopia"
	Deuteranomaly Deficiency = "deuteranomaly"
	Tritanopia    Deficiency = "tritanopia"
	Tritanomaly   Deficiency = "tritanomaly"
	Achromatopsia Deficiency = "achromatopsia"
	Achromatomaly Deficiency = "achromatomaly"
)

// AllDeficiencies returns every deficiency type in reporting order.
func AllDeficiencies() []Deficiency {
	return []Deficiency{
		Protanopia,
		Protanomaly,
		Deuteranopia,
		Deuteranomaly,
		Tritanopia,
		Tritanomaly,
		Achromatopsia,
		Achromatomaly,
	}
}

// deficiencyMatrix is a 3x3 linear transform applied to normalised
// [0, 1] RGB, approximating cone response under the deficiency.
// Coefficients follow the Brettel/Viénot/Mollon-derived matrices.
type deficiencyMatrix [3][3]float64

var deficiencyMatrices = map[Deficiency]deficiencyMatrix{
	Protanopia: {
		{0.56667, 0.43333, 0.00000},
		{0.55833, 0.44167, 0.00000},
		{0.00000, 0.24167, 0.75833},
	},
	Protanomaly: {
		{0.81667, 0.18333, 0.00000},
		{0.33333, 0.66667, 0.00000},
		{0.00000, 0.12500, 0.87500},
	},
	Deuteranopia: {
		{0.62500, 0.37500, 0.00000},
		{0.70000, 0.30000, 0.00000},
		{0.00000, 0.30000, 0.70000},
	},
	Deuteranomaly: {
		{0.80000, 0.20000, 0.00000},
		{0.25833, 0.74167, 0.00000},
		{0.00000, 0.14167, 0.85833},
	},
	Tritanopia: {
		{0.95000, 0.05000, 0.00000},
		{0.00000, 0.43333, 0.56667},
		{0.00000, 0.47500, 0.52500},
	},
	Tritanomaly: {
		{0.96667, 0.03333, 0.00000},
		{0.00000, 0.73333, 0.26667},
		{0.00000, 0.18333, 0.81667},
	},
	Achromatopsia: {
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	},
	Achromatomaly: {
		{0.618, 0.320, 0.062},
		{0.163, 0.775, 0.062},
		{0.163, 0.320, 0.516},
	},
}

// DeficiencyInfo describes one deficiency type for reporting.
type DeficiencyInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Affected    string `json:"affected"`
	Difficulty  string `json:"difficulty"`
}

var deficiencyInfo = map[Deficiency]DeficiencyInfo{
	Protanopia: {
		Name:        "Protanopia",
		Type:        "Red-Blind",
		Description: "Complete absence of red cone cells. Cannot perceive red wavelengths.",
		Severity:    "Total",
		Affected:    "~1% of males",
		Difficulty:  "Reds appear dark, red/green confusion",
	},
	Protanomaly: {
		Name:        "Protanomaly",
		Type:        "Red-Weak",
		Description: "Reduced sensitivity to red light due to anomalous red cones.",
		Severity:    "Partial",
		Affected:    "~1% of males",
		Difficulty:  "Difficulty distinguishing red from green",
	},
	Deuteranopia: {
		Name:        "Deuteranopia",
		Type:        "Green-Blind",
		Description: "Complete absence of green cone cells. Cannot perceive green wavelengths.",
		Severity:    "Total",
		Affected:    "~1% of males",
		Difficulty:  "Green appears beige, red/green confusion",
	},
	Deuteranomaly: {
		Name:        "Deuteranomaly",
		Type:        "Green-Weak",
		Description: "Most common form. Reduced sensitivity to green light.",
		Severity:    "Partial",
		Affected:    "~5% of males",
		Difficulty:  "Mild red/green confusion",
	},
	Tritanopia: {
		Name:        "Tritanopia",
		Type:        "Blue-Blind",
		Description: "Rare. Complete absence of blue cone cells.",
		Severity:    "Total",
		Affected:    "~0.001% of people",
		Difficulty:  "Blue/green and yellow/red confusion",
	},
	Tritanomaly: {
		Name:        "Tritanomaly",
		Type:        "Blue-Weak",
		Description: "Rare. Reduced sensitivity to blue light.",
		Severity:    "Partial",
		Affected:    "~0.01% of people",
		Difficulty:  "Difficulty with blue/yellow distinction",
	},
	Achromatopsia: {
		Name:        "Achromatopsia",
		Type:        "Complete Color Blindness",
		Description: "Total absence of color vision. See only in grayscale.",
		Severity:    "Total",
		Affected:    "~0.003% of people",
		Difficulty:  "No color perception at all",
	},
	Achromatomaly: {
		Name:        "Achromatomaly",
		Type:        "Partial Color Blindness",
		Description: "Severe reduction in color vision.",
		Severity:    "Partial",
		Affected:    "Very rare",
		Difficulty:  "Very limited color perception",
	},
}

// InfoFor returns the reporting metadata for a deficiency type.
func InfoFor(kind Deficiency) (DeficiencyInfo, bool) {
	info, ok := deficiencyInfo[kind]
	return info, ok
}

// Simulate applies the deficiency transform to a colour: channels are
// normalised to [0, 1], matrix-multiplied, rescaled to [0, 255] and
// clamped. Unknown types fail with ErrUnknownDeficiency.
func Simulate(rgb RGB, kind Deficiency) (RGB, error) {
	m, ok := deficiencyMatrices[kind]
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrUnknownDeficiency, kind)
	}

	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	return RGB{
		R: uint8(clamp((m[0][0]*r+m[0][1]*g+m[0][2]*b)*255, 0, 255)),
		G: uint8(clamp((m[1][0]*r+m[1][1]*g+m[1][2]*b)*255, 0, 255)),
		B: uint8(clamp((m[2][0]*r+m[2][1]*g+m[2][2]*b)*255, 0, 255)),
	}, nil
}

// Simulation pairs a deficiency type with its simulated colour.
type Simulation struct {
	Kind      Deficiency     `json:"deficiency"`
	Simulated RGB            `json:"simulated"`
	Info      DeficiencyInfo `json:"info"`
}

// SimulateAll runs the simulation for every deficiency type, in
// AllDeficiencies order.
func SimulateAll(rgb RGB) []Simulation {
	results := make([]Simulation, 0, len(deficiencyMatrices))
	for _, kind := range AllDeficiencies() {
		sim, err := Simulate(rgb, kind)
		if err != nil {
			continue
		}
		results = append(results, Simulation{
			Kind:      kind,
			Simulated: sim,
			Info:      deficiencyInfo[kind],
		})
	}
	return results
}

// DefaultDistinguishableDistance is the Euclidean RGB distance above
// which a simulated colour pair counts as distinguishable. This is a
// tuning constant, not a WCAG-derived figure; callers may override it
// per check.
const DefaultDistinguishableDistance = 50.0

// PairResult reports distinguishability of a colour pair under one
// deficiency type.
type PairResult struct {
	Kind            Deficiency     `json:"deficiency"`
	Distinguishable bool           `json:"distinguishable"`
	Difference      float64        `json:"difference"`
	SimulatedA      string         `json:"color1_simulated"`
	SimulatedB      string         `json:"color2_simulated"`
	Recommendation  string         `json:"recommendation"`
	Info            DeficiencyInfo `json:"info"`
}

// PairReport aggregates pair distinguishability across all deficiency
// types.
type PairReport struct {
	Results []PairResult `json:"results"`
	Score   float64      `json:"accessibility_score"`
	Passed  int          `json:"passed"`
	Total   int          `json:"total"`
}

// CheckPairAccessibility simulates both colours under every deficiency
// type and checks whether the simulated pair stays distinguishable
// (Euclidean RGB distance above threshold; pass threshold <= 0 to use
// the default). The score is the percentage of types that pass.
func CheckPairAccessibility(a, b RGB, threshold float64) PairReport {
	if threshold <= 0 {
		threshold = DefaultDistinguishableDistance
	}

	report := PairReport{}
	for _, kind := range AllDeficiencies() {
		simA, errA := Simulate(a, kind)
		simB, errB := Simulate(b, kind)
		if errA != nil || errB != nil {
			continue
		}

		diff := simA.Distance(simB)
		distinguishable := diff > threshold

		rec := "Poor"
		if distinguishable {
			rec = "Good"
		}

		report.Results = append(report.Results, PairResult{
			Kind:            kind,
			Distinguishable: distinguishable,
			Difference:      round2(diff),
			SimulatedA:      simA.HexUpper(),
			SimulatedB:      simB.HexUpper(),
			Recommendation:  rec,
			Info:            deficiencyInfo[kind],
		})
		report.Total++
		if distinguishable {
			report.Passed++
		}
	}

	if report.Total > 0 {
		report.Score = round1(float64(report.Passed) / float64(report.Total) * 100)
	}
	return report
}
