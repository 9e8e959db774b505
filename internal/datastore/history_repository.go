package datastore

import (
	"database/sql"

	"github.com/huecraft/huecraft/internal/models"
)

// HistoryRepository stores and retrieves colour detection history.
type HistoryRepository interface {
	Create(entry models.ColorHistory) (models.ColorHistory, error)
	ListBySession(sessionID string, limit int) ([]models.ColorHistory, error)
	Delete(sessionID, id string) error
	ClearSession(sessionID string) (int64, error)
}

// HistoryDatabase is the Postgres HistoryRepository.
type HistoryDatabase struct {
	database *sql.DB
}

// NewHistoryDatabase wraps a database handle in a HistoryDatabase.
func NewHistoryDatabase(db *sql.DB) HistoryDatabase {
	return HistoryDatabase{database: db}
}

func (pgdb HistoryDatabase) Create(entry models.ColorHistory) (models.ColorHistory, error) {
	db := pgdb.database

	_, insertErr := db.Exec(`
		INSERT INTO color_history (
			id,
			hex_code,
			color_name,
			rgb_r,
			rgb_g,
			rgb_b,
			session_id,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID,
		entry.HexCode,
		entry.ColorName,
		entry.R,
		entry.G,
		entry.B,
		entry.SessionID,
		entry.CreatedAt,
	)

	if insertErr != nil {
		return entry, insertErr
	}

	return entry, nil
}

func (pgdb HistoryDatabase) ListBySession(sessionID string, limit int) ([]models.ColorHistory, error) {
	db := pgdb.database

	if limit <= 0 {
		limit = 50
	}

	rows, err := db.Query(`
		SELECT id, hex_code, color_name, rgb_r, rgb_g, rgb_b, session_id, created_at
		FROM color_history
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.ColorHistory{}
	for rows.Next() {
		var e models.ColorHistory
		if err := rows.Scan(&e.ID, &e.HexCode, &e.ColorName, &e.R, &e.G, &e.B, &e.SessionID, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (pgdb HistoryDatabase) Delete(sessionID, id string) error {
	db := pgdb.database

	result, err := db.Exec(`
		DELETE FROM color_history
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
		return NoRowsError{Entity: "color_history", Err: sql.ErrNoRows}
	}

	return nil
}

func (pgdb HistoryDatabase) ClearSession(sessionID string) (int64, error) {
	db := pgdb.database

	result, err := db.Exec(`DELETE FROM color_history WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
