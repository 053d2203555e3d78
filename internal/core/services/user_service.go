package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/casherapp/casher_backend/internal/apperrors"
	"github.com/casherapp/casher_backend/internal/core/domain"
	portsrepo "github.com/casherapp/casher_backend/internal/core/ports/repositories"
	portssvc "github.com/casherapp/casher_backend/internal/core/ports/services"
	"github.com/casherapp/casher_backend/internal/dto"
	"github.com/casherapp/casher_backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// allowedImageTypes is the profile image extension allowlist.
var allowedImageTypes = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "webm": {}, "gif": {}, "svg": {},
}

type userService struct {
	userRepo   portsrepo.UserRepository
	imageStore portsrepo.ArtifactStore
	validate   *validator.Validate
}

// NewUserService creates the user service backed by the given repository and
// image store.
func NewUserService(userRepo portsrepo.UserRepository, imageStore portsrepo.ArtifactStore) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		imageStore: imageStore,
		validate:   validator.New(),
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if len(req.FirstName) < 3 || len(req.LastName) < 3 {
		return nil, fmt.Errorf("%w: your name must have at least 3 characters", apperrors.ErrValidation)
	}
	if containsDigit(req.FirstName) || containsDigit(req.LastName) {
		return nil, fmt.Errorf("%w: names must not have digits", apperrors.ErrValidation)
	}
	if len(req.Username) < 6 {
		return nil, fmt.Errorf("%w: username must have at least 6 characters", apperrors.ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: password must have at least 6 characters", apperrors.ErrValidation)
	}
	if strings.HasPrefix(req.Password, req.Username[0:3]) {
		return nil, fmt.Errorf("%w: password must not start with your username characters", apperrors.ErrValidation)
	}

	email := strings.ToLower(req.Email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", apperrors.ErrValidation)
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.UserRole(strings.ToLower(req.Role))
		if role != domain.RoleAdmin && role != domain.RoleUser {
			return nil, fmt.Errorf("%w: role must be either admin or user", apperrors.ErrValidation)
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		FirstName:    capitalize(req.FirstName),
		LastName:     capitalize(req.LastName),
		Username:     req.Username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// Most likely a username/email uniqueness violation.
		return nil, fmt.Errorf("%w: user with username %q or email %q may already exist",
			apperrors.ErrConflict, req.Username, email)
	}

	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, requestingUserID string) ([]domain.User, error) {
	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, usernameOrEmail, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, usernameOrEmail)
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.userRepo.FindUserByEmail(ctx, strings.ToLower(usernameOrEmail))
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: incorrect password", apperrors.ErrForbidden)
	}
	return user, nil
}

func (s *userService) ChangeRole(ctx context.Context, username string, role string, requestingUserID string) (*domain.User, error) {
	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	newRole := domain.UserRole(strings.ToLower(role))
	if newRole != domain.RoleAdmin && newRole != domain.RoleUser {
		return nil, fmt.Errorf("%w: role must be either admin or user", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	user.Role = newRole
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("%w: could not update role", apperrors.ErrConflict)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, username string, req dto.ChangePasswordRequest, requestingUserID string) error {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.UserID != requestingUserID {
		return fmt.Errorf("%w: you can only change your own password", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: incorrect password", apperrors.ErrForbidden)
	}
	if len(req.NewPassword) < 6 {
		return fmt.Errorf("%w: password must have at least 6 characters", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("%w: could not update password", apperrors.ErrConflict)
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, username string, requestingUserID string) (string, error) {
	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	password, err := utils.GeneratePassword(5)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return "", fmt.Errorf("%w: could not reset password", apperrors.ErrConflict)
	}
	return password, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return err
	}

	target, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if target.UserID == requestingUserID {
		return fmt.Errorf("%w: you cannot delete your own account, ask another admin", apperrors.ErrForbidden)
	}
	if target.IsAdmin() {
		return fmt.Errorf("%w: an admin account cannot be deleted", apperrors.ErrForbidden)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *userService) SetUserImage(ctx context.Context, userID string, filename string, data []byte) (string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if _, ok := allowedImageTypes[ext]; !ok {
		return "", fmt.Errorf("%w: image format not supported, use jpg, jpeg, png, webm, gif or svg", apperrors.ErrValidation)
	}

	// Drop any previous image stored under this username, whatever its
	// extension was.
	names, err := s.imageStore.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list images: %w", err)
	}
	for _, name := range names {
		if strings.TrimSuffix(name, path.Ext(name)) == user.Username {
			if err := s.imageStore.Remove(ctx, name); err != nil {
				return "", fmt.Errorf("failed to remove previous image: %w", err)
			}
		}
	}

	storedPath, err := s.imageStore.Save(ctx, user.Username+"."+ext, data)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	user.ImageURL = storedPath
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return "", fmt.Errorf("%w: could not record image", apperrors.ErrConflict)
	}
	return storedPath, nil
}

// requireAdmin resolves the requesting user and checks the admin role.
func (s *userService) requireAdmin(ctx context.Context, requestingUserID string) error {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() {
		return fmt.Errorf("%w: you are not authorized for this operation, contact an admin", apperrors.ErrForbidden)
	}
	return nil
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
