package server

import (
	"net/http"

	"github.com/huecraft/huecraft/internal/colour"
)

type gradientRequest struct {
	StartColor string `json:"start_color"`
	EndColor   string `json:"end_color"`
	Steps      int    `json:"steps"`
	Space      string `json:"space"`
}

// generateGradient interpolates between two colours.
func (app *Application) generateGradient(w http.ResponseWriter, r *http.Request) {
	var req gradientRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	start, err := colour.ParseHex(req.StartColor)
	if err != nil {
		app.badRequest(w, err)
		return
	}
	end, err := colour.ParseHex(req.EndColor)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	steps := req.Steps
	if steps <= 0 {
		steps = 10
	}
	if steps > 100 {
		steps = 100
	}
	space := colour.ParseSpace(req.Space)

	stops := colour.Interpolate(start, end, steps, space)
	app.respondOK(w, envelope{
		"gradient": stops,
		"space":    space,
		"count":    len(stops),
	})
}

func (app *Application) gradientPresets(w http.ResponseWriter, r *http.Request) {
	rendered := colour.RenderPresets()
	app.respondOK(w, envelope{
		"presets": rendered,
		"count":   len(rendered),
	})
}

type customGradientRequest struct {
	Colors       []string `json:"colors"`
	Steps        int      `json:"steps"`
	Space        string   `json:"space"`
	GradientType string   `json:"gradient_type"`
	Angle        int      `json:"angle"`
	CenterX      int      `json:"center_x"`
	CenterY      int      `json:"center_y"`
}

// customGradient builds a multi-stop gradient and its CSS descriptor.
func (app *Application) customGradient(w http.ResponseWriter, r *http.Request) {
	var req customGradientRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	colors, err := parseHexList(req.Colors)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	steps := req.Steps
	if steps <= 0 {
		steps = 10
	}
	if steps > 100 {
		steps = 100
	}

	stops, err := colour.Generate(colors, steps, colour.ParseSpace(req.Space))
	if err != nil {
		app.badRequest(w, err)
		return
	}

	angle := req.Angle
	if angle == 0 {
		angle = 90
	}
	centerX, centerY := req.CenterX, req.CenterY
	if centerX == 0 && centerY == 0 {
		centerX, centerY = 50, 50
	}

	css := colour.CSS(stops, colour.GradientType(req.GradientType), angle, centerX, centerY)
	app.respondOK(w, envelope{
		"gradient": stops,
		"css":      css,
		"count":    len(stops),
	})
}
