package server

import (
	"net/http"

	"github.com/huecraft/huecraft/internal/colour"
	"github.com/huecraft/huecraft/internal/models"
)

type mixRequest struct {
	Colors []string  `json:"colors"`
	Ratios []float64 `json:"ratios"`
	Method string    `json:"method"`
}

// mixColors blends a list of colours with optional ratios.
func (app *Application) mixColors(w http.ResponseWriter, r *http.Request) {
	var req mixRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	colors, err := parseHexList(req.Colors)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	method := colour.Method(req.Method)
	if req.Method == "" {
		method = colour.MethodCMYK
	}

	mixed, err := colour.Mix(colors, req.Ratios, method)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	name, _, _ := colour.NearestName(mixed)
	app.recordAnalytics(sessionID(r), mixed.HexUpper(), models.ActionMix, map[string]string{
		"method": string(method),
	})

	app.respondOK(w, envelope{
		"result": envelope{
			"hex":  mixed.HexUpper(),
			"rgb":  mixed,
			"name": name,
		},
		"method": method,
		"inputs": req.Colors,
	})
}

type mixTwoRequest struct {
	Color1 string   `json:"color1"`
	Color2 string   `json:"color2"`
	Ratio  *float64 `json:"ratio"`
}

// mixTwoColors compares every mixing method for a colour pair.
func (app *Application) mixTwoColors(w http.ResponseWriter, r *http.Request) {
	var req mixTwoRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	a, err := colour.ParseHex(req.Color1)
	if err != nil {
		app.badRequest(w, err)
		return
	}
	b, err := colour.ParseHex(req.Color2)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	ratio := 0.5
	if req.Ratio != nil {
		ratio = *req.Ratio
	}

	app.respondOK(w, envelope{"mix": colour.MixTwo(a, b, ratio)})
}
