package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/huecraft/huecraft/internal/models"
)

// PaletteRepository stores and retrieves saved palettes.
type PaletteRepository interface {
	Create(palette models.ColorPalette) (models.ColorPalette, error)
	Get(sessionID, id string) (models.ColorPalette, error)
	GetByID(id string) (models.ColorPalette, error)
	ListBySession(sessionID string) ([]models.ColorPalette, error)
	Update(palette models.ColorPalette) (models.ColorPalette, error)
	Delete(sessionID, id string) error
}

// PaletteDatabase is the Postgres PaletteRepository.
type PaletteDatabase struct {
	database *sql.DB
}

// NewPaletteDatabase wraps a database handle in a PaletteDatabase.
func NewPaletteDatabase(db *sql.DB) PaletteDatabase {
	return PaletteDatabase{database: db}
}

func (pgdb PaletteDatabase) Create(palette models.ColorPalette) (models.ColorPalette, error) {
	db := pgdb.database

	colors, err := json.Marshal(palette.Colors)
	if err != nil {
		return palette, fmt.Errorf("error encoding palette colors %v", err)
	}

	_, insertErr := db.Exec(`
		INSERT INTO color_palettes (
			id,
			name,
			description,
			colors,
			session_id,
			is_favorite,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		palette.ID,
		palette.Name,
		palette.Description,
		colors,
		palette.SessionID,
		palette.IsFavorite,
		palette.CreatedAt,
		palette.UpdatedAt,
	)

	if insertErr != nil {
		return palette, insertErr
	}

	return palette, nil
}

func (pgdb PaletteDatabase) Get(sessionID, id string) (models.ColorPalette, error) {
	row := pgdb.database.QueryRow(`
		SELECT id, name, description, colors, session_id, is_favorite, created_at, updated_at
		FROM color_palettes
		WHERE id = $1 AND session_id = $2`,
		id, sessionID,
	)
	return scanPalette(row)
}

func (pgdb PaletteDatabase) GetByID(id string) (models.ColorPalette, error) {
	row := pgdb.database.QueryRow(`
		SELECT id, name, description, colors, session_id, is_favorite, created_at, updated_at
		FROM color_palettes
		WHERE id = $1`,
		id,
	)
	return scanPalette(row)
}

func scanPalette(row *sql.Row) (models.ColorPalette, error) {
	var p models.ColorPalette
	var colors []byte

	scanErr := row.Scan(&p.ID, &p.Name, &p.Description, &colors, &p.SessionID, &p.IsFavorite, &p.CreatedAt, &p.UpdatedAt)
	if scanErr != nil {
		if scanErr == sql.ErrNoRows {
			return p, NoRowsError{Entity: "color_palettes", Err: scanErr}
		}
		return p, scanErr
	}

	if err := json.Unmarshal(colors, &p.Colors); err != nil {
		return p, fmt.Errorf("error decoding palette colors %v", err)
	}

	return p, nil
}

func (pgdb PaletteDatabase) ListBySession(sessionID string) ([]models.ColorPalette, error) {
	db := pgdb.database

	rows, err := db.Query(`
		SELECT id, name, description, colors, session_id, is_favorite, created_at, updated_at
		FROM color_palettes
		WHERE session_id = $1
		ORDER BY created_at DESC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	palettes := []models.ColorPalette{}
	for rows.Next() {
		var p models.ColorPalette
		var colors []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &colors, &p.SessionID, &p.IsFavorite, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(colors, &p.Colors); err != nil {
			return nil, fmt.Errorf("error decoding palette colors %v", err)
		}
		palettes = append(palettes, p)
	}

	return palettes, rows.Err()
}

func (pgdb PaletteDatabase) Update(palette models.ColorPalette) (models.ColorPalette, error) {
	db := pgdb.database

	colors, err := json.Marshal(palette.Colors)
	if err != nil {
		return palette, fmt.Errorf("error encoding palette colors %v", err)
	}

	result, updateErr := db.Exec(`
		UPDATE color_palettes
		SET name = $1, description = $2, colors = $3, is_favorite = $4, updated_at = $5
		WHERE id = $6 AND session_id = $7`,
		palette.Name,
		palette.Description,
		colors,
		palette.IsFavorite,
		palette.UpdatedAt,
		palette.ID,
		palette.SessionID,
	)
	if updateErr != nil {
		return palette, updateErr
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return palette, err
	}
	if affected == 0 {
		return palette, NoRowsError{Entity: "color_palettes", Err: sql.ErrNoRows}
	}

	return palette, nil
}

func (pgdb PaletteDatabase) Delete(sessionID, id string) error {
	db := pgdb.database

	result, err := db.Exec(`
		DELETE FROM color_palettes
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
		return NoRowsError{Entity: "color_palettes", Err: sql.ErrNoRows}
	}

	return nil
}
