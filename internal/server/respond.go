package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// envelope is the standard response shape: handlers add their payload
// keys next to "success".
type envelope map[string]any

func (app *Application) writeJSON(w http.ResponseWriter, status int, data envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		app.Logger.Error("encoding response", "error", err)
	}
}

func (app *Application) respondOK(w http.ResponseWriter, data envelope) {
	if data == nil {
		data = envelope{}
	}
	data["success"] = true
	app.writeJSON(w, http.StatusOK, data)
}

func (app *Application) respondCreated(w http.ResponseWriter, data envelope) {
	if data == nil {
		data = envelope{}
	}
	data["success"] = true
	app.writeJSON(w, http.StatusCreated, data)
}

func (app *Application) respondError(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, envelope{
		"success": false,
		"error":   message,
	})
}

func (app *Application) badRequest(w http.ResponseWriter, err error) {
	app.respondError(w, http.StatusBadRequest, err.Error())
}

func (app *Application) notFound(w http.ResponseWriter, entity string) {
	app.respondError(w, http.StatusNotFound, entity+" not found")
}

func (app *Application) serverError(w http.ResponseWriter, err error) {
	app.Logger.Error("handler failure", "error", err)
	app.respondError(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads a request body into dst, rejecting oversized or
// malformed payloads with a descriptive error.
func (app *Application) decodeJSON(r *http.Request, dst any) error {
	limit := app.Config.MaxUploadBytes
	if limit <= 0 {
		limit = 1 << 20
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, limit))
	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
		default:
			return fmt.Errorf("invalid request body: %w", err)
		}
	}
	return nil
}
