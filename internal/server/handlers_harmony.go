package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/huecraft/huecraft/internal/colour"
)

type harmonyRequest struct {
	colorRequest
	Count int `json:"count"`
}

// harmonyScheme computes the palette for a single harmony scheme named
// in the URL.
func (app *Application) harmonyScheme(w http.ResponseWriter, r *http.Request) {
	var req harmonyRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	rgb, err := req.parse()
	if err != nil {
		app.badRequest(w, err)
		return
	}

	scheme := colour.Scheme(r.PathValue("scheme"))
	count := req.Count
	if count <= 0 {
		count = 5
	}

	colors, err := colour.SchemeColors(rgb, scheme, count)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	app.respondOK(w, envelope{
		"base":   rgb.HexUpper(),
		"scheme": scheme,
		"colors": namedColors(colors),
	})
}

type analyzeRequest struct {
	Colors []string `json:"colors"`
}

func parseHexList(hexes []string) ([]colour.RGB, error) {
	if len(hexes) == 0 {
		return nil, errors.New("colors required")
	}
	out := make([]colour.RGB, 0, len(hexes))
	for _, h := range hexes {
		rgb, err := colour.ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", h, err)
		}
		out = append(out, rgb)
	}
	return out, nil
}

// analyzeHarmony scores how well a set of colours works together.
func (app *Application) analyzeHarmony(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	colors, err := parseHexList(req.Colors)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	report, err := colour.AnalyzeHarmony(colors)
	if err != nil {
		app.badRequest(w, err)
		return
	}
	app.respondOK(w, envelope{"analysis": report})
}
