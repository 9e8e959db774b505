package server

import (
	"net/http"

	"github.com/huecraft/huecraft/internal/colour"
	"github.com/huecraft/huecraft/internal/datastore"
	"github.com/huecraft/huecraft/internal/models"
)

func (app *Application) listFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := app.FavoriteRepo.ListBySession(sessionID(r))
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{
		"favorites": favorites,
		"count":     len(favorites),
	})
}

func (app *Application) createFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.FavoriteCreateRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	rgb, err := colour.ParseHex(req.HexCode)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	req.HexCode = rgb.HexUpper()
	if req.ColorName == "" {
		req.ColorName, _, _ = colour.NearestName(rgb)
	}

	created, err := app.FavoriteRepo.Create(models.NewFavoriteColor(sessionID(r), req))
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondCreated(w, envelope{"favorite": created})
}

func (app *Application) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	err := app.FavoriteRepo.Delete(sessionID(r), r.PathValue("id"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "favorite")
			return
		}
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"message": "favorite deleted"})
}
