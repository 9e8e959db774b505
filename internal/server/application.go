// Package server implements the huecraft HTTP API.
package server

import (
	"github.com/hashicorp/go-hclog"

	"github.com/huecraft/huecraft/internal/config"
	"github.com/huecraft/huecraft/internal/datastore"
)

// Application carries the configuration and repositories shared by all
// request handlers.
type Application struct {
	Config config.Config
	Logger hclog.Logger

	HistoryRepo   datastore.HistoryRepository
	PaletteRepo   datastore.PaletteRepository
	BrandRepo     datastore.BrandRepository
	FavoriteRepo  datastore.FavoriteRepository
	AnalyticsRepo datastore.AnalyticsRepository
	ShareRepo     datastore.ShareRepository
}

// New constructs an Application with repositories backed by the given
// database connection.
func New(cfg config.Config, logger hclog.Logger, repos Repositories) *Application {
	return &Application{
		Config:        cfg,
		Logger:        logger,
		HistoryRepo:   repos.History,
		PaletteRepo:   repos.Palette,
		BrandRepo:     repos.Brand,
		FavoriteRepo:  repos.Favorite,
		AnalyticsRepo: repos.Analytics,
		ShareRepo:     repos.Share,
	}
}

// Repositories bundles the persistence interfaces an Application needs.
type Repositories struct {
	History   datastore.HistoryRepository
	Palette   datastore.PaletteRepository
	Brand     datastore.BrandRepository
	Favorite  datastore.FavoriteRepository
	Analytics datastore.AnalyticsRepository
	Share     datastore.ShareRepository
}
