// Package models defines the persisted entities and request shapes for
// the HTTP API.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ColorHistory is one recorded colour detection for a session.
type ColorHistory struct {
	ID        string    `json:"id" db:"id"`
	HexCode   string    `json:"hex_code" db:"hex_code"`
	ColorName string    `json:"color_name" db:"color_name"`
	R         int       `json:"r" db:"rgb_r"`
	G         int       `json:"g" db:"rgb_g"`
	B         int       `json:"b" db:"rgb_b"`
	SessionID string    `json:"-" db:"session_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewColorHistory builds a history row for a detected colour.
func NewColorHistory(sessionID, hexCode, colorName string, r, g, b uint8) ColorHistory {
	return ColorHistory{
		ID:        uuid.New().String(),
		HexCode:   hexCode,
		ColorName: colorName,
		R:         int(r),
		G:         int(g),
		B:         int(b),
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
}
