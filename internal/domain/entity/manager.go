// Package entity contains the core business objects of the project.
package entity

import "time"

// Manager is a persisted sales manager. Managers are unique by their
// canonical name ("First L."); re-importing a known name updates the city
// instead of creating a new row.
type Manager struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
