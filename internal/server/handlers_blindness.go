package server

import (
	"net/http"

	"github.com/huecraft/huecraft/internal/colour"
)

type simulateRequest struct {
	colorRequest
	Type string `json:"type"`
}

// simulateBlindness simulates one deficiency type for a colour.
func (app *Application) simulateBlindness(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	rgb, err := req.parse()
	if err != nil {
		app.badRequest(w, err)
		return
	}

	kind := colour.Deficiency(req.Type)
	if req.Type == "" {
		kind = colour.Protanopia
	}

	simulated, err := colour.Simulate(rgb, kind)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	info, _ := colour.InfoFor(kind)
	app.respondOK(w, envelope{
		"original":   rgb.HexUpper(),
		"simulated":  simulated.HexUpper(),
		"deficiency": kind,
		"info":       info,
	})
}

// simulateAllBlindness simulates every deficiency type for a colour.
func (app *Application) simulateAllBlindness(w http.ResponseWriter, r *http.Request) {
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
		"original":    rgb.HexUpper(),
		"simulations": colour.SimulateAll(rgb),
	})
}

type checkPairRequest struct {
	Color1    string  `json:"color1"`
	Color2    string  `json:"color2"`
	Threshold float64 `json:"threshold"`
}

// checkPairBlindness checks whether two colours stay distinguishable
// under every deficiency type.
func (app *Application) checkPairBlindness(w http.ResponseWriter, r *http.Request) {
	var req checkPairRequest
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

	report := colour.CheckPairAccessibility(a, b, req.Threshold)
	app.respondOK(w, envelope{
		"color1": a.HexUpper(),
		"color2": b.HexUpper(),
		"report": report,
	})
}

func (app *Application) blindnessInfo(w http.ResponseWriter, r *http.Request) {
	kinds := colour.AllDeficiencies()
	infos := make([]colour.DeficiencyInfo, 0, len(kinds))
	for _, kind := range kinds {
		if info, ok := colour.InfoFor(kind); ok {
			infos = append(infos, info)
		}
	}
	app.respondOK(w, envelope{
		"types": infos,
		"count": len(infos),
	})
}
