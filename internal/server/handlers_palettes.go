package server

import (
	"errors"
	"net/http"

	"github.com/huecraft/huecraft/internal/datastore"
	"github.com/huecraft/huecraft/internal/models"
)

func (app *Application) listPalettes(w http.ResponseWriter, r *http.Request) {
	palettes, err := app.PaletteRepo.ListBySession(sessionID(r))
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{
		"palettes": palettes,
		"count":    len(palettes),
	})
}

func (app *Application) createPalette(w http.ResponseWriter, r *http.Request) {
	var req models.PaletteCreateRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	if req.Name == "" {
		app.badRequest(w, errors.New("name required"))
		return
	}
	if _, err := parseHexList(req.Colors); err != nil {
		app.badRequest(w, err)
		return
	}

	palette := models.NewColorPalette(sessionID(r), req)
	created, err := app.PaletteRepo.Create(palette)
	if err != nil {
		app.serverError(w, err)
		return
	}

	app.recordAnalytics(sessionID(r), firstOrEmpty(created.Colors), models.ActionSave, map[string]string{
		"palette_id": created.ID,
	})
	app.respondCreated(w, envelope{"palette": created})
}

func (app *Application) getPalette(w http.ResponseWriter, r *http.Request) {
	palette, err := app.PaletteRepo.Get(sessionID(r), r.PathValue("id"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "palette")
			return
		}
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"palette": palette})
}

func (app *Application) updatePalette(w http.ResponseWriter, r *http.Request) {
	var req models.PaletteUpdateRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	if req.Colors != nil {
		if _, err := parseHexList(*req.Colors); err != nil {
			app.badRequest(w, err)
			return
		}
	}

	palette, err := app.PaletteRepo.Get(sessionID(r), r.PathValue("id"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "palette")
			return
		}
		app.serverError(w, err)
		return
	}

	palette.ApplyUpdate(req)
	updated, err := app.PaletteRepo.Update(palette)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"palette": updated})
}

func (app *Application) deletePalette(w http.ResponseWriter, r *http.Request) {
	err := app.PaletteRepo.Delete(sessionID(r), r.PathValue("id"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "palette")
			return
		}
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"message": "palette deleted"})
}

// sharePalette issues a share token for one of the session's palettes.
func (app *Application) sharePalette(w http.ResponseWriter, r *http.Request) {
	var req models.ShareCreateRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}

	session := sessionID(r)
	palette, err := app.PaletteRepo.Get(session, r.PathValue("id"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "palette")
			return
		}
		app.serverError(w, err)
		return
	}

	share := models.NewSharedPalette(session, palette.ID, req)
	created, err := app.ShareRepo.Create(share)
	if err != nil {
		app.serverError(w, err)
		return
	}

	app.respondCreated(w, envelope{
		"share":     created,
		"share_url": "/api/shared/" + created.ShareToken,
	})
}

// getSharedPalette resolves a share token, enforcing expiry and
// counting the view.
func (app *Application) getSharedPalette(w http.ResponseWriter, r *http.Request) {
	share, err := app.ShareRepo.GetByToken(r.PathValue("token"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "shared palette")
			return
		}
		app.serverError(w, err)
		return
	}
	if share.Expired() {
		app.respondError(w, http.StatusGone, "share link has expired")
		return
	}

	palette, err := app.PaletteRepo.GetByID(share.PaletteID)
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "shared palette")
			return
		}
		app.serverError(w, err)
		return
	}

	if err := app.ShareRepo.IncrementViewCount(share.ID); err != nil {
		app.Logger.Error("incrementing view count", "share_id", share.ID, "error", err)
	}
	share.ViewCount++

	app.respondOK(w, envelope{
		"palette": palette,
		"share":   share,
	})
}

func firstOrEmpty(colors []string) string {
	if len(colors) > 0 {
		return colors[0]
	}
	return ""
}
