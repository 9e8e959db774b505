package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/huecraft/huecraft/internal/models"
)

// AnalyticsRepository records colour actions and aggregates usage.
type AnalyticsRepository interface {
	Record(entry models.ColorAnalytics) error
	SummarizeSession(sessionID string, topColors int) (models.UsageSummary, error)
}

// AnalyticsDatabase is the Postgres AnalyticsRepository.
type AnalyticsDatabase struct {
	database *sql.DB
}

// NewAnalyticsDatabase wraps a database handle in an AnalyticsDatabase.
func NewAnalyticsDatabase(db *sql.DB) AnalyticsDatabase {
	return AnalyticsDatabase{database: db}
}

func (pgdb AnalyticsDatabase) Record(entry models.ColorAnalytics) error {
	db := pgdb.database

	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("error encoding analytics metadata %v", err)
	}

	_, insertErr := db.Exec(`
		INSERT INTO color_analytics (
			id,
			hex_code,
			action_type,
			session_id,
			analytics_data,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID,
		entry.HexCode,
		entry.ActionType,
		entry.SessionID,
		metadata,
		entry.CreatedAt,
	)

	return insertErr
}

func (pgdb AnalyticsDatabase) SummarizeSession(sessionID string, topColors int) (models.UsageSummary, error) {
	db := pgdb.database

	summary := models.UsageSummary{
		Actions:   []models.ActionCount{},
		TopColors: []models.ColorCount{},
	}

	if topColors <= 0 {
		topColors = 10
	}

	rows, err := db.Query(`
		SELECT action_type, COUNT(*) AS n
		FROM color_analytics
		WHERE session_id = $1
		GROUP BY action_type
		ORDER BY n DESC`,
		sessionID,
	)
	if err != nil {
		return summary, err
	}
	defer rows.Close()

	for rows.Next() {
		var ac models.ActionCount
		if err := rows.Scan(&ac.ActionType, &ac.Count); err != nil {
			return summary, err
		}
		summary.Actions = append(summary.Actions, ac)
		summary.TotalActions += ac.Count
	}
	if err := rows.Err(); err != nil {
		return summary, err
	}

	colorRows, err := db.Query(`
		SELECT hex_code, COUNT(*) AS n
		FROM color_analytics
		WHERE session_id = $1
		GROUP BY hex_code
		ORDER BY n DESC
		LIMIT $2`,
		sessionID, topColors,
	)
	if err != nil {
		return summary, err
	}
	defer colorRows.Close()

	for colorRows.Next() {
		var cc models.ColorCount
		if err := colorRows.Scan(&cc.HexCode, &cc.Count); err != nil {
			return summary, err
		}
		summary.TopColors = append(summary.TopColors, cc)
	}

	return summary, colorRows.Err()
}
