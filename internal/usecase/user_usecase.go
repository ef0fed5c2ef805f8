// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// UserOutput is the outward-facing projection of a user. It deliberately
// has no password hash field; credentials never leave the usecase boundary.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"fname"`
	LastName  string    `json:"lname"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *UserOutput `json:"user"`
}

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	Token string      `json:"token"`
	User  *UserOutput `json:"user"`
}

// NewUserOutput maps a domain user to its outward-facing projection.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
