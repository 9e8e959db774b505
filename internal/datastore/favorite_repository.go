package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/huecraft/huecraft/internal/models"
)

// FavoriteRepository stores and retrieves favourite colours.
type FavoriteRepository interface {
	Create(fav models.FavoriteColor) (models.FavoriteColor, error)
	ListBySession(sessionID string) ([]models.FavoriteColor, error)
	Delete(sessionID, id string) error
}

// FavoriteDatabase is the Postgres FavoriteRepository.
type FavoriteDatabase struct {
	database *sql.DB
}

// NewFavoriteDatabase wraps a database handle in a FavoriteDatabase.
func NewFavoriteDatabase(db *sql.DB) FavoriteDatabase {
	return FavoriteDatabase{database: db}
}

func (pgdb FavoriteDatabase) Create(fav models.FavoriteColor) (models.FavoriteColor, error) {
	db := pgdb.database

	tags, err := json.Marshal(fav.Tags)
	if err != nil {
		return fav, fmt.Errorf("error encoding favorite tags %v", err)
	}

	_, insertErr := db.Exec(`
		INSERT INTO favorite_colors (
			id,
			hex_code,
			color_name,
			notes,
			tags,
			session_id,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		fav.ID,
		fav.HexCode,
		fav.ColorName,
		fav.Notes,
		tags,
		fav.SessionID,
		fav.CreatedAt,
	)

	if insertErr != nil {
		return fav, insertErr
	}

	return fav, nil
}

func (pgdb FavoriteDatabase) ListBySession(sessionID string) ([]models.FavoriteColor, error) {
	db := pgdb.database

	rows, err := db.Query(`
		SELECT id, hex_code, color_name, notes, tags, session_id, created_at
		FROM favorite_colors
		WHERE session_id = $1
		ORDER BY created_at DESC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []models.FavoriteColor{}
	for rows.Next() {
		var f models.FavoriteColor
		var tags []byte
		if err := rows.Scan(&f.ID, &f.HexCode, &f.ColorName, &f.Notes, &tags, &f.SessionID, &f.CreatedAt); err != nil {
			return nil, err
		}
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &f.Tags); err != nil {
				return nil, fmt.Errorf("error decoding favorite tags %v", err)
			}
		}
		if f.Tags == nil {
			f.Tags = []string{}
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

func (pgdb FavoriteDatabase) Delete(sessionID, id string) error {
	db := pgdb.database

	result, err := db.Exec(`
		DELETE FROM favorite_colors
		WHERE id = $1 AND session_id = $2`,
		id, sessionID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NoRowsError{Entity: "favorite_colors", Err: sql.ErrNoRows}
	}

	return nil
}
