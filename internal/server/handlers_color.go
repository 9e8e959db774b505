package server

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/huecraft/huecraft/internal/colour"
	"github.com/huecraft/huecraft/internal/models"
)

// colorRequest accepts a colour as either a hex string or explicit RGB
// components. Hex wins when both are present.
type colorRequest struct {
	Color string `json:"color"`
	R     *int   `json:"r"`
	G     *int   `json:"g"`
	B     *int   `json:"b"`
}

var errMissingColor = errors.New("color required: pass hex in \"color\" or components in \"r\", \"g\", \"b\"")

func (req colorRequest) parse() (colour.RGB, error) {
	if req.Color != "" {
		return colour.ParseHex(req.Color)
	}
	if req.R != nil && req.G != nil && req.B != nil {
		for _, v := range []int{*req.R, *req.G, *req.B} {
			if v < 0 || v > 255 {
				return colour.RGB{}, errors.New("rgb components must be in range 0-255")
			}
		}
		return colour.RGB{R: uint8(*req.R), G: uint8(*req.G), B: uint8(*req.B)}, nil
	}
	return colour.RGB{}, errMissingColor
}

// colorReport gathers everything the service knows about one colour.
func colorReport(rgb colour.RGB) envelope {
	name, _, _ := colour.NearestName(rgb)
	return envelope{
		"hex":           rgb.HexUpper(),
		"name":          name,
		"rgb":           rgb,
		"hsl":           rgb.ToHSL().Rounded(),
		"hsv":           rgb.ToHSV().Rounded(),
		"cmyk":          rgb.ToCMYK().Rounded(),
		"temperature":   colour.ColorTemperature(rgb),
		"accessibility": colour.Accessibility(rgb),
	}
}

type schemeEntry struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

func namedColors(colors []colour.RGB) []schemeEntry {
	out := make([]schemeEntry, len(colors))
	for i, c := range colors {
		name, _, _ := colour.NearestName(c)
		out[i] = schemeEntry{Hex: c.HexUpper(), Name: name}
	}
	return out
}

func allSchemes(rgb colour.RGB) map[string][]schemeEntry {
	shades, tints := colour.ShadesAndTints(rgb, 5)
	return map[string][]schemeEntry{
		"complementary":       namedColors([]colour.RGB{colour.Complementary(rgb)}),
		"analogous":           namedColors(colour.Analogous(rgb, 2)),
		"triadic":             namedColors(colour.Triadic(rgb)),
		"tetradic":            namedColors(colour.Tetradic(rgb)),
		"split_complementary": namedColors(colour.SplitComplementary(rgb)),
		"monochromatic":       namedColors(colour.Monochromatic(rgb, 5)),
		"shades":              namedColors(shades),
		"tints":               namedColors(tints),
	}
}

// detectColor reports everything about a colour and records it in the
// session history.
func (app *Application) detectColor(w http.ResponseWriter, r *http.Request) {
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

	name, _, _ := colour.NearestName(rgb)
	session := sessionID(r)
	if session != "" {
		entry := models.NewColorHistory(session, rgb.HexUpper(), name, rgb.R, rgb.G, rgb.B)
		if _, err := app.HistoryRepo.Create(entry); err != nil {
			app.Logger.Error("saving history", "error", err)
		}
		app.recordAnalytics(session, rgb.HexUpper(), models.ActionDetect, nil)
	}

	app.respondOK(w, envelope{
		"color":   colorReport(rgb),
		"schemes": allSchemes(rgb),
	})
}

// convertColor reports format conversions without touching history.
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
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
		"hex":  rgb.HexUpper(),
		"rgb":  rgb,
		"hsl":  rgb.ToHSL().Rounded(),
		"hsv":  rgb.ToHSV().Rounded(),
		"cmyk": rgb.ToCMYK().Rounded(),
	})
}

// randomColor returns five random colours with good saturation and
// brightness.
func (app *Application) randomColor(w http.ResponseWriter, r *http.Request) {
	colors := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		h := rand.Float64() * 360
		s := 0.5 + rand.Float64()*0.5
		v := 0.5 + rand.Float64()*0.5
		colors = append(colors, colour.HSVToRGB(h, s, v).HexUpper())
	}
	app.respondOK(w, envelope{
		"colors": colors,
		"count":  len(colors),
	})
}

func (app *Application) searchColors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		app.badRequest(w, errors.New("query parameter q required"))
		return
	}
	limit := queryInt(r, "limit", 10)
	if limit > 50 {
		limit = 50
	}

	results := colour.SearchByName(query, limit)
	app.respondOK(w, envelope{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}

func (app *Application) colorName(w http.ResponseWriter, r *http.Request) {
	match, err := colour.FindClosestName(r.PathValue("hex"))
	if err != nil {
		app.badRequest(w, err)
		return
	}
	app.respondOK(w, envelope{"match": match})
}

func (app *Application) colorsByHue(w http.ResponseWriter, r *http.Request) {
	minHue := queryInt(r, "min_hue", 0)
	maxHue := queryInt(r, "max_hue", 360)
	if minHue < 0 || maxHue > 360 || minHue > maxHue {
		app.badRequest(w, errors.New("hue range must satisfy 0 <= min_hue <= max_hue <= 360"))
		return
	}

	entries := colour.ByHueRange(minHue, maxHue)
	app.respondOK(w, envelope{
		"colors": entries,
		"count":  len(entries),
		"total":  colour.RegistrySize(),
	})
}

func (app *Application) recordAnalytics(session, hex, action string, metadata map[string]string) {
	if session == "" {
		return
	}
	entry := models.NewColorAnalytics(session, hex, action, metadata)
	if err := app.AnalyticsRepo.Record(entry); err != nil {
		app.Logger.Error("recording analytics", "action", action, "error", err)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
