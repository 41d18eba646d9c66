package models

import "time"

type GridAction string

const (
	ActionSetCell GridAction = "set_cell"
	ActionReset   GridAction = "reset"
)

// GridEditLog is one entry of a session's danger grid journal.
type GridEditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SessionID string     `gorm:"size:36;index;not null" json:"session_id"`
	Action    GridAction `gorm:"size:20;not null" json:"action"`

	// Row/Col are nil for resets.
	Row       *int   `json:"row,omitempty"`
	Col       *int   `json:"col,omitempty"`
	FromLevel string `gorm:"size:20" json:"from_level,omitempty"`
	ToLevel   string `gorm:"size:20" json:"to_level,omitempty"`
}
