package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/casherapp/casher_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// errRepoDown simulates a storage failure in tests.
var errRepoDown = errors.New("repository unavailable")

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	SaveUserFn           func(ctx context.Context, user domain.User) error
	UpdateUserFn         func(ctx context.Context, user domain.User) error
	DeleteUserFn         func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock ExpenditureRepository ---

type MockExpenditureRepository struct {
	mock.Mock
	FindExpenditureByIDFn    func(ctx context.Context, expenditureID string) (*domain.Expenditure, error)
	FindExpendituresByUserFn func(ctx context.Context, userID string) ([]domain.Expenditure, error)
	SaveExpenditureFn        func(ctx context.Context, expenditure domain.Expenditure) error
}

func (m *MockExpenditureRepository) FindExpenditureByID(ctx context.Context, expenditureID string) (*domain.Expenditure, error) {
	if m.FindExpenditureByIDFn != nil {
		return m.FindExpenditureByIDFn(ctx, expenditureID)
	}
	args := m.Called(ctx, expenditureID)
	var expenditure *domain.Expenditure
	if args.Get(0) != nil {
		expenditure = args.Get(0).(*domain.Expenditure)
	}
	return expenditure, args.Error(1)
}

func (m *MockExpenditureRepository) FindExpendituresByUser(ctx context.Context, userID string) ([]domain.Expenditure, error) {
	if m.FindExpendituresByUserFn != nil {
		return m.FindExpendituresByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var expenditures []domain.Expenditure
	if args.Get(0) != nil {
		expenditures = args.Get(0).([]domain.Expenditure)
	}
	return expenditures, args.Error(1)
}

func (m *MockExpenditureRepository) SaveExpenditure(ctx context.Context, expenditure domain.Expenditure) error {
	if m.SaveExpenditureFn != nil {
		return m.SaveExpenditureFn(ctx, expenditure)
	}
	args := m.Called(ctx, expenditure)
	return args.Error(0)
}

func (m *MockExpenditureRepository) UpdateExpenditure(ctx context.Context, expenditure domain.Expenditure) error {
	args := m.Called(ctx, expenditure)
	return args.Error(0)
}

func (m *MockExpenditureRepository) DeleteExpenditure(ctx context.Context, expenditureID string) error {
	args := m.Called(ctx, expenditureID)
	return args.Error(0)
}

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
	FindSalesByUserAndDateFn func(ctx context.Context, userID string, soldOn string) ([]domain.Sale, error)
	FindSalesByUserInRangeFn func(ctx context.Context, userID string, from, to time.Time) ([]domain.Sale, error)
	SaveSaleFn               func(ctx context.Context, sale domain.Sale) error
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	var sale *domain.Sale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.Sale)
	}
	return sale, args.Error(1)
}

func (m *MockSaleRepository) FindSalesByUser(ctx context.Context, userID string) ([]domain.Sale, error) {
	args := m.Called(ctx, userID)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) FindSalesByUserAndDate(ctx context.Context, userID string, soldOn string) ([]domain.Sale, error) {
	if m.FindSalesByUserAndDateFn != nil {
		return m.FindSalesByUserAndDateFn(ctx, userID, soldOn)
	}
	args := m.Called(ctx, userID, soldOn)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) FindSalesByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Sale, error) {
	if m.FindSalesByUserInRangeFn != nil {
		return m.FindSalesByUserInRangeFn(ctx, userID, from, to)
	}
	args := m.Called(ctx, userID, from, to)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) FindSalesByUserWithBalance(ctx context.Context, userID string) ([]domain.Sale, error) {
	args := m.Called(ctx, userID)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	if m.SaveSaleFn != nil {
		return m.SaveSaleFn(ctx, sale)
	}
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

// --- Mock ArtifactStore ---

type MockArtifactStore struct {
	mock.Mock
	SaveFn func(ctx context.Context, name string, data []byte) (string, error)
}

func (m *MockArtifactStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, name, data)
	}
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var names []string
	if args.Get(0) != nil {
		names = args.Get(0).([]string)
	}
	return names, args.Error(1)
}

func (m *MockArtifactStore) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
