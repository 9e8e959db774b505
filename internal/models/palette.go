package models

import (
	"time"

	"github.com/google/uuid"
)

// ColorPalette is a saved, named list of hex colours.
type ColorPalette struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Colors      []string  `json:"colors" db:"colors"`
	SessionID   string    `json:"-" db:"session_id"`
	IsFavorite  bool      `json:"is_favorite" db:"is_favorite"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PaletteCreateRequest is the body for creating a palette.
type PaletteCreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
	IsFavorite  bool     `json:"is_favorite"`
}

// PaletteUpdateRequest is the body for updating a palette. Nil fields
// are left unchanged.
type PaletteUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Colors      *[]string `json:"colors"`
	IsFavorite  *bool     `json:"is_favorite"`
}

// NewColorPalette builds a palette row from a create request.
func NewColorPalette(sessionID string, req PaletteCreateRequest) ColorPalette {
	now := time.Now().UTC()
	return ColorPalette{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Colors:      req.Colors,
		SessionID:   sessionID,
		IsFavorite:  req.IsFavorite,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyUpdate copies the non-nil request fields onto the palette and
// bumps UpdatedAt.
func (p *ColorPalette) ApplyUpdate(req PaletteUpdateRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Colors != nil {
		p.Colors = *req.Colors
	}
	if req.IsFavorite != nil {
		p.IsFavorite = *req.IsFavorite
	}
	p.UpdatedAt = time.Now().UTC()
}
