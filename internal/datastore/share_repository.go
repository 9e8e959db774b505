package datastore

import (
	"database/sql"

	"github.com/huecraft/huecraft/internal/models"
)

// ShareRepository stores and retrieves palette shares.
type ShareRepository interface {
	Create(share models.SharedPalette) (models.SharedPalette, error)
	GetByToken(token string) (models.SharedPalette, error)
	IncrementViewCount(id string) error
}

// ShareDatabase is the Postgres ShareRepository.
type ShareDatabase struct {
	database *sql.DB
}

// NewShareDatabase wraps a database handle in a ShareDatabase.
func NewShareDatabase(db *sql.DB) ShareDatabase {
	return ShareDatabase{database: db}
}

func (pgdb ShareDatabase) Create(share models.SharedPalette) (models.SharedPalette, error) {
	db := pgdb.database

	_, insertErr := db.Exec(`
		INSERT INTO shared_palettes (
			id,
			palette_id,
			share_token,
			owner_session_id,
			can_edit,
			view_count,
			expires_at,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		share.ID,
		share.PaletteID,
		share.ShareToken,
		share.OwnerSessionID,
		share.CanEdit,
		share.ViewCount,
		share.ExpiresAt,
		share.CreatedAt,
	)

	if insertErr != nil {
		return share, insertErr
	}

	return share, nil
}

func (pgdb ShareDatabase) GetByToken(token string) (models.SharedPalette, error) {
	db := pgdb.database

	row := db.QueryRow(`
		SELECT id, palette_id, share_token, owner_session_id, can_edit, view_count, expires_at, created_at
		FROM shared_palettes
		WHERE share_token = $1`,
		token,
	)

	var s models.SharedPalette
	scanErr := row.Scan(&s.ID, &s.PaletteID, &s.ShareToken, &s.OwnerSessionID, &s.CanEdit, &s.ViewCount, &s.ExpiresAt, &s.CreatedAt)
	if scanErr != nil {
		if scanErr == sql.ErrNoRows {
			return s, NoRowsError{Entity: "shared_palettes", Err: scanErr}
		}
		return s, scanErr
	}

	return s, nil
}

func (pgdb ShareDatabase) IncrementViewCount(id string) error {
	db := pgdb.database

	_, err := db.Exec(`
		UPDATE shared_palettes
		SET view_count = view_count + 1
		WHERE id = $1`,
		id,
	)

	return err
}
