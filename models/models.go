package models

import "time"

// Timestamps is embedded by every table that carries created_at/updated_at.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
