package server

import (
	"errors"
	"net/http"

	"github.com/huecraft/huecraft/internal/datastore"
	"github.com/huecraft/huecraft/internal/models"
)

func (app *Application) listBrands(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("include_archived") == "true"

	brands, err := app.BrandRepo.ListBySession(sessionID(r), includeArchived)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{
		"brands": brands,
		"count":  len(brands),
	})
}

func (app *Application) createBrand(w http.ResponseWriter, r *http.Request) {
	var req models.BrandCreateRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	if req.Name == "" {
		app.badRequest(w, errors.New("name required"))
		return
	}
	if _, err := parseHexList(req.PrimaryColors); err != nil {
		app.badRequest(w, err)
		return
	}
	if len(req.SecondaryColors) > 0 {
		if _, err := parseHexList(req.SecondaryColors); err != nil {
			app.badRequest(w, err)
			return
		}
	}
	if req.ProjectType == "" {
		req.ProjectType = "personal"
	}

	created, err := app.BrandRepo.Create(models.NewBrandCollection(sessionID(r), req))
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondCreated(w, envelope{"brand": created})
}

func (app *Application) getBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := app.BrandRepo.Get(sessionID(r), r.PathValue("id"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "brand collection")
			return
		}
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"brand": brand})
}

func (app *Application) updateBrand(w http.ResponseWriter, r *http.Request) {
	var req models.BrandUpdateRequest
	if err := app.decodeJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	if req.PrimaryColors != nil {
		if _, err := parseHexList(*req.PrimaryColors); err != nil {
			app.badRequest(w, err)
			return
		}
	}

	brand, err := app.BrandRepo.Get(sessionID(r), r.PathValue("id"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "brand collection")
			return
		}
		app.serverError(w, err)
		return
	}

	brand.ApplyUpdate(req)
	updated, err := app.BrandRepo.Update(brand)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"brand": updated})
}

func (app *Application) deleteBrand(w http.ResponseWriter, r *http.Request) {
	err := app.BrandRepo.Delete(sessionID(r), r.PathValue("id"))
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, "brand collection")
			return
		}
		app.serverError(w, err)
		return
	}
	app.respondOK(w, envelope{"message": "brand collection deleted"})
}
