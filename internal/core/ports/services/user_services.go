package services

import (
	"context"

	"github.com/casherapp/casher_backend/internal/core/domain"
	"github.com/casherapp/casher_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves every user; admin only.
	ListUsers(ctx context.Context, requestingUserID string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// ChangeRole updates a user's role; admin only.
	ChangeRole(ctx context.Context, username string, role string, requestingUserID string) (*domain.User, error)

	// ChangePassword updates the caller's own password after verifying the
	// old one.
	ChangePassword(ctx context.Context, username string, req dto.ChangePasswordRequest, requestingUserID string) error

	// ResetPassword sets a generated password for a user and returns it;
	// admin only.
	ResetPassword(ctx context.Context, username string, requestingUserID string) (string, error)

	// SetUserImage stores a profile image for the caller and records its URL,
	// replacing any previous image.
	SetUserImage(ctx context.Context, userID string, filename string, data []byte) (string, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes a non-admin user and, by cascade, their records;
	// admin only, and never the admin's own account.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates by username or email plus password.
	AuthenticateUser(ctx context.Context, usernameOrEmail, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
