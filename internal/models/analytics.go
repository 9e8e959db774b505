package models

import (
	"time"

	"github.com/google/uuid"
)

// Analytics action types recorded against colours.
const (
	ActionDetect  = "detect"
	ActionExtract = "extract"
	ActionMix     = "mix"
	ActionSave    = "save"
)

// ColorAnalytics is one recorded colour action.
type ColorAnalytics struct {
	ID         string            `json:"id" db:"id"`
	HexCode    string            `json:"hex_code" db:"hex_code"`
	ActionType string            `json:"action_type" db:"action_type"`
	SessionID  string            `json:"-" db:"session_id"`
	Metadata   map[string]string `json:"metadata" db:"analytics_data"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
}

// NewColorAnalytics builds an analytics row.
func NewColorAnalytics(sessionID, hexCode, actionType string, metadata map[string]string) ColorAnalytics {
	return ColorAnalytics{
		ID:         uuid.New().String(),
		HexCode:    hexCode,
		ActionType: actionType,
		SessionID:  sessionID,
		Metadata:   metadata,
		CreatedAt:  time.Now().UTC(),
	}
}

// ActionCount is one action type with its occurrence count.
type ActionCount struct {
	ActionType string `json:"action_type"`
	Count      int    `json:"count"`
}

// ColorCount is one colour with its occurrence count.
type ColorCount struct {
	HexCode string `json:"hex_code"`
	Count   int    `json:"count"`
}

// UsageSummary aggregates a session's recorded actions.
type UsageSummary struct {
	TotalActions int           `json:"total_actions"`
	Actions      []ActionCount `json:"actions"`
	TopColors    []ColorCount  `json:"top_colors"`
}
