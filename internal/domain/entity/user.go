// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash lives here so the
// credential store stays a single collection, but it must never cross the
// usecase boundary; response DTOs are built without it.
type User struct {
	ID           uuid.UUID // Opaque unique identifier for the user.
	FirstName    string    // The user's first name.
	LastName     string    // The user's last name.
	Username     string    // Login identifier, unique and case-sensitive as stored.
	PasswordHash string    // Irreversible bcrypt hash of the login password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
