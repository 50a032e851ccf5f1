// Package models defines the Todo entity.
package models

import "time"

// Todo is a single task record. The store assigns ID and CreatedAt on
// insert; neither changes afterwards.
type Todo struct {
	// ID: primary key, assigned by the database.
	ID int `json:"id"`

	// Title: task title, never blank once stored.
	Title string `json:"title"`

	// Description: optional free text. A nil pointer round-trips as SQL NULL
	// and JSON null; an omitted description is stored as null, not "".
	Description *string `json:"description"`

	// Completed: completion flag, false at creation.
	Completed bool `json:"completed"`

	// CreatedAt: set once by the database at insert time.
	CreatedAt time.Time `json:"created_at"`
}
