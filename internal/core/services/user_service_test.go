package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/casherapp/casher_backend/internal/apperrors"
	"github.com/casherapp/casher_backend/internal/core/domain"
	portssvc "github.com/casherapp/casher_backend/internal/core/ports/services"
	"github.com/casherapp/casher_backend/internal/core/services"
	"github.com/casherapp/casher_backend/internal/dto"
	"github.com/casherapp/casher_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockUserRepository
	mockStore *MockArtifactStore
	service   portssvc.UserSvcFacade
	ctx       context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.mockStore = new(MockArtifactStore)
	s.service = services.NewUserService(s.mockRepo, s.mockStore)
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func validRegistration() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		FirstName: "jane",
		LastName:  "mwangi",
		Username:  "janemw01",
		Email:     "Jane@Example.com",
		Password:  "s3cret99",
	}
}

func (s *UserServiceTestSuite) TestCreateUser_Success() {
	var saved domain.User
	s.mockRepo.SaveUserFn = func(_ context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user, err := s.service.CreateUser(s.ctx, validRegistration())

	s.Require().NoError(err)
	s.Equal("Jane", user.FirstName)
	s.Equal("Mwangi", user.LastName)
	s.Equal("jane@example.com", user.Email)
	s.Equal(domain.RoleUser, user.Role)
	s.NotEmpty(user.PasswordHash)
	s.NotEqual("s3cret99", user.PasswordHash)
	s.Equal(saved.UserID, user.UserID)
}

func (s *UserServiceTestSuite) TestCreateUser_ShortName() {
	req := validRegistration()
	req.FirstName = "jo"

	_, err := s.service.CreateUser(s.ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestCreateUser_DigitsInName() {
	req := validRegistration()
	req.LastName = "mwangi2"

	_, err := s.service.CreateUser(s.ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestCreateUser_ShortUsername() {
	req := validRegistration()
	req.Username = "jane"

	_, err := s.service.CreateUser(s.ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestCreateUser_PasswordStartsWithUsername() {
	req := validRegistration()
	req.Password = "jan12345"

	_, err := s.service.CreateUser(s.ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestCreateUser_InvalidEmail() {
	req := validRegistration()
	req.Email = "not-an-email"

	_, err := s.service.CreateUser(s.ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestCreateUser_DuplicateIsConflict() {
	s.mockRepo.SaveUserFn = func(_ context.Context, _ domain.User) error {
		return errRepoDown
	}

	_, err := s.service.CreateUser(s.ctx, validRegistration())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_ByUsername() {
	hash, err := utils.HashPassword("s3cret99")
	s.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "janemw01", PasswordHash: hash}
	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, _ string) (*domain.User, error) {
		return stored, nil
	}

	user, err := s.service.AuthenticateUser(s.ctx, "janemw01", "s3cret99")

	s.Require().NoError(err)
	s.Equal(stored.UserID, user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_FallsBackToEmail() {
	hash, err := utils.HashPassword("s3cret99")
	s.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", PasswordHash: hash}
	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}
	var emailQueried string
	s.mockRepo.FindUserByEmailFn = func(_ context.Context, email string) (*domain.User, error) {
		emailQueried = email
		return stored, nil
	}

	user, err := s.service.AuthenticateUser(s.ctx, "Jane@Example.com", "s3cret99")

	s.Require().NoError(err)
	s.Equal("jane@example.com", emailQueried)
	s.Equal(stored.UserID, user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}
	s.mockRepo.FindUserByEmailFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	_, err := s.service.AuthenticateUser(s.ctx, "nobody", "whatever")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("s3cret99")
	s.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "janemw01", PasswordHash: hash}
	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, _ string) (*domain.User, error) {
		return stored, nil
	}

	_, err = s.service.AuthenticateUser(s.ctx, "janemw01", "wrong")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestListUsers_RequiresAdmin() {
	requester := &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}
	s.mockRepo.FindUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		return requester, nil
	}

	_, err := s.service.ListUsers(s.ctx, requester.UserID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestDeleteUser_AdminCannotDeleteSelf() {
	admin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	s.mockRepo.FindUserByIDFn = func(_ context.Context, userID string) (*domain.User, error) {
		if userID == admin.UserID {
			return admin, nil
		}
		return nil, apperrors.ErrNotFound
	}

	err := s.service.DeleteUser(s.ctx, admin.UserID, admin.UserID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestDeleteUser_AdminTargetRefused() {
	admin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	otherAdmin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	s.mockRepo.FindUserByIDFn = func(_ context.Context, userID string) (*domain.User, error) {
		if userID == admin.UserID {
			return admin, nil
		}
		return otherAdmin, nil
	}

	err := s.service.DeleteUser(s.ctx, otherAdmin.UserID, admin.UserID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "DeleteUser")
}

func (s *UserServiceTestSuite) TestDeleteUser_Success() {
	admin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	target := &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}
	s.mockRepo.FindUserByIDFn = func(_ context.Context, userID string) (*domain.User, error) {
		if userID == admin.UserID {
			return admin, nil
		}
		return target, nil
	}
	s.mockRepo.DeleteUserFn = func(_ context.Context, userID string) error {
		s.Equal(target.UserID, userID)
		return nil
	}

	err := s.service.DeleteUser(s.ctx, target.UserID, admin.UserID)

	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestChangePassword_OnlyOwn() {
	stored := &domain.User{UserID: uuid.NewString(), Username: "janemw01"}
	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, _ string) (*domain.User, error) {
		return stored, nil
	}

	err := s.service.ChangePassword(s.ctx, "janemw01", dto.ChangePasswordRequest{
		OldPassword: "whatever",
		NewPassword: "newpass1",
	}, uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestResetPassword_ReturnsNewPassword() {
	admin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin, CreatedAt: time.Now()}
	target := &domain.User{UserID: uuid.NewString(), Username: "janemw01"}
	s.mockRepo.FindUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		return admin, nil
	}
	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, _ string) (*domain.User, error) {
		return target, nil
	}
	var updated domain.User
	s.mockRepo.UpdateUserFn = func(_ context.Context, user domain.User) error {
		updated = user
		return nil
	}

	password, err := s.service.ResetPassword(s.ctx, "janemw01", admin.UserID)

	s.Require().NoError(err)
	s.NotEmpty(password)
	s.True(utils.CheckPasswordHash(password, updated.PasswordHash))
}

func (s *UserServiceTestSuite) TestSetUserImage_RejectsUnknownExtension() {
	stored := &domain.User{UserID: uuid.NewString(), Username: "janemw01"}
	s.mockRepo.FindUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		return stored, nil
	}

	_, err := s.service.SetUserImage(s.ctx, stored.UserID, "avatar.exe", []byte{1})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestSetUserImage_ReplacesPreviousImage() {
	stored := &domain.User{UserID: uuid.NewString(), Username: "janemw01"}
	s.mockRepo.FindUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		return stored, nil
	}
	var updated domain.User
	s.mockRepo.UpdateUserFn = func(_ context.Context, user domain.User) error {
		updated = user
		return nil
	}
	s.mockStore.On("List", s.ctx).Return([]string{"janemw01.jpg", "otheruser.png"}, nil)
	s.mockStore.On("Remove", s.ctx, "janemw01.jpg").Return(nil)
	s.mockStore.SaveFn = func(_ context.Context, name string, _ []byte) (string, error) {
		s.Equal("janemw01.png", name)
		return "images/" + name, nil
	}

	path, err := s.service.SetUserImage(s.ctx, stored.UserID, "selfie.PNG", []byte{1, 2})

	s.Require().NoError(err)
	s.Equal("images/janemw01.png", path)
	s.Equal(path, updated.ImageURL)
	s.mockStore.AssertExpectations(s.T())
	s.mockStore.AssertNotCalled(s.T(), "Remove", s.ctx, "otheruser.png")
}
