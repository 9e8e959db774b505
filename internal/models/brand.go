package models

import (
	"time"

	"github.com/google/uuid"
)

// BrandCollection groups a client or project's brand colours.
type BrandCollection struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	LogoURL         string    `json:"logo_url" db:"logo_url"`
	PrimaryColors   []string  `json:"primary_colors" db:"primary_colors"`
	SecondaryColors []string  `json:"secondary_colors" db:"secondary_colors"`
	ProjectType     string    `json:"project_type" db:"project_type"`
	ClientName      string    `json:"client_name" db:"client_name"`
	SessionID       string    `json:"-" db:"session_id"`
	IsArchived      bool      `json:"is_archived" db:"is_archived"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// BrandCreateRequest is the body for creating a brand collection.
type BrandCreateRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LogoURL         string   `json:"logo_url"`
	PrimaryColors   []string `json:"primary_colors"`
	SecondaryColors []string `json:"secondary_colors"`
	ProjectType     string   `json:"project_type"`
	ClientName      string   `json:"client_name"`
}

// BrandUpdateRequest is the body for updating a brand collection. Nil
// fields are left unchanged.
type BrandUpdateRequest struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	LogoURL         *string   `json:"logo_url"`
	PrimaryColors   *[]string `json:"primary_colors"`
	SecondaryColors *[]string `json:"secondary_colors"`
	ProjectType     *string   `json:"project_type"`
	ClientName      *string   `json:"client_name"`
	IsArchived      *bool     `json:"is_archived"`
}

// NewBrandCollection builds a brand row from a create request.
func NewBrandCollection(sessionID string, req BrandCreateRequest) BrandCollection {
	now := time.Now().UTC()
	return BrandCollection{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		PrimaryColors:   req.PrimaryColors,
		SecondaryColors: req.SecondaryColors,
		ProjectType:     req.ProjectType,
		ClientName:      req.ClientName,
		SessionID:       sessionID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ApplyUpdate copies the non-nil request fields onto the brand and
// bumps UpdatedAt.
func (b *BrandCollection) ApplyUpdate(req BrandUpdateRequest) {
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.LogoURL != nil {
		b.LogoURL = *req.LogoURL
	}
	if req.PrimaryColors != nil {
		b.PrimaryColors = *req.PrimaryColors
	}
	if req.SecondaryColors != nil {
		b.SecondaryColors = *req.SecondaryColors
	}
	if req.ProjectType != nil {
		b.ProjectType = *req.ProjectType
	}
	if req.ClientName != nil {
		b.ClientName = *req.ClientName
	}
	if req.IsArchived != nil {
		b.IsArchived = *req.IsArchived
	}
	b.UpdatedAt = time.Now().UTC()
}
