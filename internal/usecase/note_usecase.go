// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddNoteInput defines the data required to create a note.
type AddNoteInput struct {
	Username string `json:"username" validate:"required"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// UpdateNoteInput defines the data required to update a note.
// Both fields are required; the operation overwrites title and content.
// Username and NoteID come from the request path, never from the body.
type UpdateNoteInput struct {
	Username string    `json:"-"`
	NoteID   uuid.UUID `json:"-"`
	Title    string    `json:"title" validate:"required"`
	Content  string    `json:"content" validate:"required"`
}

// --- Output DTOs ---

// AddNoteOutput returns the server-generated id of the created note.
type AddNoteOutput struct {
	NoteID uuid.UUID
}

// NoteUsecase defines the interface for note operations. Every operation
// resolves the owning user by username first and fails with the user
// not-found error if absent.
type NoteUsecase interface {
	AddNote(ctx context.Context, input *AddNoteInput) (*AddNoteOutput, error)
	ListNotes(ctx context.Context, username string) ([]entity.Note, error)
	UpdateNote(ctx context.Context, input *UpdateNoteInput) error
	DeleteNote(ctx context.Context, username string, noteID uuid.UUID) error
	SearchNotes(ctx context.Context, username, keyword string) ([]entity.Note, error)
}
