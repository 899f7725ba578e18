// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. The username is the login identifier and
// is immutable after registration.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // The unique login name chosen at registration.
	PasswordHash string    // The bcrypt hash of the user's password. Never exposed outside the domain.
	Notes        []Note    // The user's notes in creation order. Populated only when explicitly loaded.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
