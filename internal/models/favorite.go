package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteColor is a single colour starred by a session, with optional
// notes and tags.
type FavoriteColor struct {
	ID        string    `json:"id" db:"id"`
	HexCode   string    `json:"hex_code" db:"hex_code"`
	ColorName string    `json:"color_name" db:"color_name"`
	Notes     string    `json:"notes" db:"notes"`
	Tags      []string  `json:"tags" db:"tags"`
	SessionID string    `json:"-" db:"session_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FavoriteCreateRequest is the body for saving a favourite colour.
type FavoriteCreateRequest struct {
	HexCode   string   `json:"hex_code"`
	ColorName string   `json:"color_name"`
	Notes     string   `json:"notes"`
	Tags      []string `json:"tags"`
}

// NewFavoriteColor builds a favourite row from a create request.
func NewFavoriteColor(sessionID string, req FavoriteCreateRequest) FavoriteColor {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return FavoriteColor{
		ID:        uuid.New().String(),
		HexCode:   req.HexCode,
		ColorName: req.ColorName,
		Notes:     req.Notes,
		Tags:      tags,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
}
