package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SharedPalette exposes a saved palette through an unguessable token.
type SharedPalette struct {
	ID             string     `json:"id" db:"id"`
	PaletteID      string     `json:"palette_id" db:"palette_id"`
	ShareToken     string     `json:"share_token" db:"share_token"`
	OwnerSessionID string     `json:"-" db:"owner_session_id"`
	CanEdit        bool       `json:"can_edit" db:"can_edit"`
	ViewCount      int        `json:"view_count" db:"view_count"`
	ExpiresAt      *time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// ShareCreateRequest is the body for sharing a palette.
type ShareCreateRequest struct {
	CanEdit   bool `json:"can_edit"`
	ExpiresIn int  `json:"expires_in_hours"`
}

// NewSharedPalette builds a share row with a fresh token. ExpiresIn of
// zero or less means the share never expires.
func NewSharedPalette(ownerSessionID, paletteID string, req ShareCreateRequest) SharedPalette {
	share := SharedPalette{
		ID:             uuid.New().String(),
		PaletteID:      paletteID,
		ShareToken:     newShareToken(),
		OwnerSessionID: ownerSessionID,
		CanEdit:        req.CanEdit,
		CreatedAt:      time.Now().UTC(),
	}
	if req.ExpiresIn > 0 {
		expiry := share.CreatedAt.Add(time.Duration(req.ExpiresIn) * time.Hour)
		share.ExpiresAt = &expiry
	}
	return share
}

// Expired reports whether the share is past its expiry.
func (s SharedPalette) Expired() bool {
	return s.ExpiresAt != nil && time.Now().UTC().After(*s.ExpiresAt)
}

// newShareToken produces a URL-safe token from two UUIDs.
func newShareToken() string {
	return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}
