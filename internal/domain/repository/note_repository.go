// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNoteNotFound is returned when a note does not exist for the given owner.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the standard operations for note persistence.
// Update and Delete are conditional single-row statements keyed by
// (owner id, note id), so concurrent note operations on the same user
// cannot overwrite each other.
type NoteRepository interface {
	// Create persists a new note for the given owner.
	Create(ctx context.Context, note *entity.Note) error

	// ListByUser returns every note owned by the user, in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Note, error)

	// Update overwrites the title and content of the note identified by
	// (userID, noteID). Returns ErrNoteNotFound if no such note exists.
	Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) error

	// Delete removes the note identified by (userID, noteID).
	// Returns ErrNoteNotFound if no such note exists.
	Delete(ctx context.Context, userID, noteID uuid.UUID) error

	// Search returns every note owned by the user whose title or content
	// contains the keyword as a literal, case-sensitive substring.
	// An empty keyword matches every note.
	Search(ctx context.Context, userID uuid.UUID, keyword string) ([]entity.Note, error)
}
