package server

import (
	"net/http"

	"github.com/huecraft/huecraft/internal/datastore"
)

func (app *Application) listHistory(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	entries, err := app.HistoryRepo.ListBySession(sessionID(r), limit)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{
		"history": entries,
		"count":   len(entries),
	})
}

func (app *Application) deleteHistory(w http.ResponseWriter, r *http.Request) {
	err := app.HistoryRepo.Delete(sessionID(r), r.PathValue("id"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "history entry")
			return
		}
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"message": "history entry deleted"})
}

func (app *Application) clearHistory(w http.ResponseWriter, r *http.Request) {
	deleted, err := app.HistoryRepo.ClearSession(sessionID(r))
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"deleted": deleted})
}
