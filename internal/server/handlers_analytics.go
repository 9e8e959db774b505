package server

import "net/http"

// sessionAnalytics summarises the session's recorded colour actions.
func (app *Application) sessionAnalytics(w http.ResponseWriter, r *http.Request) {
	topColors := queryInt(r, "top_colors", 10)
	if topColors > 50 {
		topColors = 50
	}

	summary, err := app.AnalyticsRepo.SummarizeSession(sessionID(r), topColors)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"usage": summary})
}
