package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	goimage "image"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/huecraft/huecraft/internal/colour"
	imageutil "github.com/huecraft/huecraft/internal/image"
	"github.com/huecraft/huecraft/internal/models"
)

type extractRequest struct {
	Image   string `json:"image"`
	NColors int    `json:"n_colors"`
	Method  string `json:"method"`
}

// extractPalette pulls dominant colours out of an uploaded image. The
// image arrives as a multipart file field or a base64 data URL in JSON.
func (app *Application) extractPalette(w http.ResponseWriter, r *http.Request) {
	img, nColors, method, err := app.readExtractInput(r)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	if nColors <= 0 {
		nColors = 5
	}
	alg := colour.Algorithm(method)
	if method == "" {
		alg = colour.AlgorithmKMeans
	}

	extractor, err := colour.NewExtractor(alg)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	img = imageutil.Downscale(img, imageutil.DefaultMaxDimension)

	palette, err := extractor.Extract(img, nColors)
	if err != nil {
		if errors.Is(err, colour.ErrExtraction) {
			app.badRequest(w, err)
			return
		}
		app.serverError(w, err)
		return
	}

	entries := palette.Entries()
	if len(entries) > 0 {
		app.recordAnalytics(sessionID(r), entries[0].Hex, models.ActionExtract, map[string]string{
			"method":   string(alg),
			"n_colors": strconv.Itoa(len(entries)),
		})
	}

	app.respondOK(w, envelope{
		"palette": entries,
		"count":   len(entries),
		"method":  alg,
	})
}

func (app *Application) readExtractInput(r *http.Request) (img goimage.Image, nColors int, method string, err error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		return app.readMultipartImage(r)
	}

	var req extractRequest
	if err := app.decodeJSON(r, &req); err != nil {
		return nil, 0, "", err
	}

	if req.Image == "" {
		return nil, 0, "", errors.New("image required: upload a file or pass base64 data in \"image\"")
	}

	data, err := decodeBase64Image(req.Image)
	if err != nil {
		return nil, 0, "", err
	}
	decoded, err := imageutil.Decode(data)
	if err != nil {
		return nil, 0, "", err
	}
	return decoded, req.NColors, req.Method, nil
}

func (app *Application) readMultipartImage(r *http.Request) (goimage.Image, int, string, error) {
	if err := r.ParseMultipartForm(app.Config.MaxUploadBytes); err != nil {
		return nil, 0, "", fmt.Errorf("parsing upload: %w", err)
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		return nil, 0, "", errors.New("multipart field \"image\" required")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, app.Config.MaxUploadBytes))
	if err != nil {
		return nil, 0, "", fmt.Errorf("reading upload: %w", err)
	}

	img, err := imageutil.Decode(data)
	if err != nil {
		return nil, 0, "", err
	}

	nColors, _ := strconv.Atoi(r.FormValue("n_colors"))
	return img, nColors, r.FormValue("method"), nil
}

// decodeBase64Image accepts raw base64 or a data URL prefix.
func decodeBase64Image(s string) ([]byte, error) {
	if idx := strings.Index(s, ","); idx != -1 && strings.HasPrefix(s, "data:") {
		s = s[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}
	return data, nil
}
