package server

import "net/http"

// BuildRoutes wires every API endpoint onto a mux and wraps it with the
// shared middleware chain.
func (app *Application) BuildRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", app.healthz)

	// Colour detection and conversion.
	mux.HandleFunc("POST /api/detect", app.detectColor)
	mux.HandleFunc("POST /api/convert", app.convertColor)
	mux.HandleFunc("GET /api/random", app.randomColor)

	// Named colour registry.
	mux.HandleFunc("GET /api/colors/search", app.searchColors)
	mux.HandleFunc("GET /api/colors/name/{hex}", app.colorName)
	mux.HandleFunc("GET /api/colors", app.colorsByHue)

	// Harmony schemes.
	mux.HandleFunc("POST /api/harmony/analyze", app.analyzeHarmony)
	mux.HandleFunc("POST /api/harmony/{scheme}", app.harmonyScheme)

	// Gradients.
	mux.HandleFunc("POST /api/gradient", app.generateGradient)
	mux.HandleFunc("GET /api/gradient/presets", app.gradientPresets)
	mux.HandleFunc("POST /api/gradient/custom", app.customGradient)

	// Colour-blindness simulation.
	mux.HandleFunc("POST /api/colorblind/simulate", app.simulateBlindness)
	mux.HandleFunc("POST /api/colorblind/simulate-all", app.simulateAllBlindness)
	mux.HandleFunc("POST /api/colorblind/check-pair", app.checkPairBlindness)
	mux.HandleFunc("GET /api/colorblind/info", app.blindnessInfo)

	// Mixing.
	mux.HandleFunc("POST /api/mix", app.mixColors)
	mux.HandleFunc("POST /api/mix/two", app.mixTwoColors)

	// Palette extraction from images.
	mux.HandleFunc("POST /api/extract", app.extractPalette)

	// Suggestions.
	mux.HandleFunc("GET /api/suggest/moods", app.listMoods)
	mux.HandleFunc("GET /api/suggest/industries", app.listIndustries)
	mux.HandleFunc("GET /api/suggest/mood/{mood}", app.suggestMood)
	mux.HandleFunc("GET /api/suggest/industry/{industry}", app.suggestIndustry)
	mux.HandleFunc("POST /api/suggest/related", app.suggestRelated)
	mux.HandleFunc("POST /api/suggest/smart", app.suggestSmart)
	mux.HandleFunc("POST /api/suggest/text-color", app.suggestTextColor)

	// History.
	mux.HandleFunc("GET /api/history", app.listHistory)
	mux.HandleFunc("DELETE /api/history", app.clearHistory)
	mux.HandleFunc("DELETE /api/history/{id}", app.deleteHistory)

	// Palettes.
	mux.HandleFunc("GET /api/palettes", app.listPalettes)
	mux.HandleFunc("POST /api/palettes", app.createPalette)
	mux.HandleFunc("GET /api/palettes/{id}", app.getPalette)
	mux.HandleFunc("PUT /api/palettes/{id}", app.updatePalette)
	mux.HandleFunc("DELETE /api/palettes/{id}", app.deletePalette)
	mux.HandleFunc("POST /api/palettes/{id}/share", app.sharePalette)
	mux.HandleFunc("GET /api/shared/{token}", app.getSharedPalette)

	// Brand collections.
	mux.HandleFunc("GET /api/brands", app.listBrands)
	mux.HandleFunc("POST /api/brands", app.createBrand)
	mux.HandleFunc("GET /api/brands/{id}", app.getBrand)
	mux.HandleFunc("PUT /api/brands/{id}", app.updateBrand)
	mux.HandleFunc("DELETE /api/brands/{id}", app.deleteBrand)

	// Favourites.
	mux.HandleFunc("GET /api/favorites", app.listFavorites)
	mux.HandleFunc("POST /api/favorites", app.createFavorite)
	mux.HandleFunc("DELETE /api/favorites/{id}", app.deleteFavorite)

	// Analytics.
	mux.HandleFunc("GET /api/analytics", app.sessionAnalytics)

	rl := newRateLimiter(app.Config.RateLimitRPS)

	var handler http.Handler = mux
	handler = app.withSession(handler)
	handler = app.withRateLimit(rl, handler)
	handler = app.withCORS(handler)
	handler = app.withSecurityHeaders(handler)
	handler = app.withRequestLogging(handler)
	return handler
}

func (app *Application) healthz(w http.ResponseWriter, r *http.Request) {
	app.respondOK(w, envelope{"status": "ok"})
}
