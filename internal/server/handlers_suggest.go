package server

import (
	"net/http"

	"github.com/huecraft/huecraft/internal/colour"
)

func (app *Application) listMoods(w http.ResponseWriter, r *http.Request) {
	app.respondOK(w, envelope{
		"moods": colour.MoodNames(),
		"count": len(colour.MoodNames()),
	})
}

func (app *Application) listIndustries(w http.ResponseWriter, r *http.Request) {
	app.respondOK(w, envelope{
		"industries": colour.IndustryNames(),
		"count":      len(colour.IndustryNames()),
	})
}

func (app *Application) suggestMood(w http.ResponseWriter, r *http.Request) {
	mood := r.PathValue("mood")
	palette, ok := colour.MoodPalette(mood)
	if !ok {
		app.respondError(w, http.StatusNotFound, "unknown mood: "+mood)
		return
	}
	app.respondOK(w, envelope{"palette": palette})
}

func (app *Application) suggestIndustry(w http.ResponseWriter, r *http.Request) {
	industry := r.PathValue("industry")
	palette, ok := colour.IndustryPalette(industry)
	if !ok {
		app.respondError(w, http.StatusNotFound, "unknown industry: "+industry)
		return
	}
	app.respondOK(w, envelope{"palette": palette})
}

type relatedRequest struct {
	colorRequest
	Count int `json:"count"`
}

// suggestRelated proposes complement, analogous, tint and shade
// companions for a base colour.
func (app *Application) suggestRelated(w http.ResponseWriter, r *http.Request) {
	var req relatedRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	rgb, err := req.parse()
	if err != nil {
		app.badRequest(w, err)
		return
	}

	count := req.Count
	if count <= 0 {
		count = 5
	}

	suggestions := colour.SuggestRelated(rgb, count)
	app.respondOK(w, envelope{
		"base":        rgb.HexUpper(),
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

type smartPaletteRequest struct {
	colorRequest
	Style string `json:"style"`
}

// suggestSmart builds a themed five-colour palette around a base colour.
func (app *Application) suggestSmart(w http.ResponseWriter, r *http.Request) {
	var req smartPaletteRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	rgb, err := req.parse()
	if err != nil {
		app.badRequest(w, err)
		return
	}

	style := colour.PaletteStyle(req.Style)
	if req.Style == "" {
		style = colour.StyleBalanced
	}

	palette := colour.SmartPalette(rgb, style)
	app.respondOK(w, envelope{
		"base":    rgb.HexUpper(),
		"style":   style,
		"palette": palette,
	})
}

// suggestTextColor recommends a readable text colour for a background.
func (app *Application) suggestTextColor(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	rgb, err := req.parse()
	if err != nil {
		app.badRequest(w, err)
		return
	}

	app.respondOK(w, envelope{
		"background": rgb.HexUpper(),
		"suggestion": colour.SuggestTextColor(rgb),
	})
}
