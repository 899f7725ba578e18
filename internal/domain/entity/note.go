// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is a titled text record owned by exactly one user. A note never
// exists without its owner and is never shared across users.
type Note struct {
	ID        uuid.UUID `json:"id"`      // The unique identifier for this note.
	UserID    uuid.UUID `json:"-"`       // Links the note to the User that owns it.
	Title     string    `json:"title"`   // The note's title.
	Content   string    `json:"content"` // The note's body text.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
