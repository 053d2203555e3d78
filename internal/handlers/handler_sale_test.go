package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/casherapp/casher_backend/internal/apperrors"
	"github.com/casherapp/casher_backend/internal/core/domain"
	portssvc "github.com/casherapp/casher_backend/internal/core/ports/services"
	"github.com/casherapp/casher_backend/internal/dto"
	"github.com/casherapp/casher_backend/internal/handlers"
	"github.com/casherapp/casher_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateSale(ctx context.Context, userID string, req dto.CreateSaleRequest) (*domain.Sale, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, userID string) ([]domain.Sale, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSalesOnDate(ctx context.Context, userID string, dateRaw string) ([]domain.Sale, error) {
	args := m.Called(ctx, userID, dateRaw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}
func (m *MockSaleService) DailyTransactions(ctx context.Context, userID string, dateRaw string) (domain.SaleSummary, error) {
	args := m.Called(ctx, userID, dateRaw)
	return args.Get(0).(domain.SaleSummary), args.Error(1)
}
func (m *MockSaleService) TransactionHistory(ctx context.Context, userID string) (domain.SalesHistory, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.SalesHistory), args.Error(1)
}
func (m *MockSaleService) ListSalesWithBalance(ctx context.Context, userID string) ([]domain.Sale, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}
func (m *MockSaleService) DeleteSale(ctx context.Context, userID string, saleID string) error {
	args := m.Called(ctx, userID, saleID)
	return args.Error(0)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSaleService *MockSaleService
	jwtSecret       string
	userID          string
}

func (suite *SaleHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "casher-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockSaleService = new(MockSaleService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, JWTExpiryDuration: time.Hour, JWTIssuer: "casher-test"}
	services := &portssvc.ServiceContainer{Sale: suite.mockSaleService}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func TestSaleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

func (suite *SaleHandlerTestSuite) doRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SaleHandlerTestSuite) TestCreateSale_Success() {
	req := dto.CreateSaleRequest{
		Item:         "sugar",
		BoughtAmount: decimal.NewFromInt(50),
		SellAmount:   decimal.NewFromInt(80),
		PaymentMode:  "cash",
		Balance:      decimal.NewFromInt(0),
		SoldOn:       "14-06-2023",
	}
	created := &domain.Sale{
		SaleID:       uuid.NewString(),
		UserID:       suite.userID,
		Item:         "sugar",
		BoughtAmount: decimal.NewFromInt(50),
		SellAmount:   decimal.NewFromInt(80),
		PaymentMode:  domain.ModeCash,
		Profit:       decimal.NewFromInt(30),
		SoldOn:       "2023-06-14",
		CreatedAt:    time.Now(),
	}
	suite.mockSaleService.On("CreateSale", mock.Anything, suite.userID, req).Return(created, nil)

	w := suite.doRequest(http.MethodPost, "/api/v1/sales", req, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.SaleID, resp.SaleID)
	suite.Equal("2023-06-14", resp.SoldOn)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateSale_MissingTokenIsUnauthorized() {
	w := suite.doRequest(http.MethodPost, "/api/v1/sales", dto.CreateSaleRequest{}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *SaleHandlerTestSuite) TestCreateSale_ValidationErrorIsBadRequest() {
	req := dto.CreateSaleRequest{
		Item:         "sugar",
		BoughtAmount: decimal.NewFromInt(50),
		SellAmount:   decimal.NewFromInt(80),
		PaymentMode:  "cheque",
		Balance:      decimal.NewFromInt(0),
		SoldOn:       "14-06-2023",
	}
	suite.mockSaleService.On("CreateSale", mock.Anything, suite.userID, req).
		Return(nil, fmt.Errorf("%w: mode of payment not supported", apperrors.ErrValidation))

	w := suite.doRequest(http.MethodPost, "/api/v1/sales", req, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SaleHandlerTestSuite) TestDailyTransactions_EmptyDateIsNotFound() {
	suite.mockSaleService.On("DailyTransactions", mock.Anything, suite.userID, "14-06-2023").
		Return(domain.SaleSummary{}, fmt.Errorf("%w: you have no sales recorded on this date", apperrors.ErrNotFound))

	w := suite.doRequest(http.MethodGet, "/api/v1/sales/transactions/14-06-2023", nil, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SaleHandlerTestSuite) TestTransactionHistory_Success() {
	history := domain.SalesHistory{
		Today: domain.SaleSummary{TotalSales: decimal.NewFromInt(80), TotalProfit: decimal.NewFromInt(20)},
	}
	suite.mockSaleService.On("TransactionHistory", mock.Anything, suite.userID).Return(history, nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/sales/history", nil, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SalesHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("80.00", resp.Today.TotalSales)
	suite.Equal("20.00", resp.Today.TotalProfit)
	suite.Equal("0.00", resp.Week.TotalSales)
}

func (suite *SaleHandlerTestSuite) TestDeleteSale_ForbiddenForOtherOwner() {
	saleID := uuid.NewString()
	suite.mockSaleService.On("DeleteSale", mock.Anything, suite.userID, saleID).
		Return(fmt.Errorf("%w: you can only delete your own sales", apperrors.ErrForbidden))

	w := suite.doRequest(http.MethodDelete, "/api/v1/sales/"+saleID, nil, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *SaleHandlerTestSuite) TestDeleteSale_Success() {
	saleID := uuid.NewString()
	suite.mockSaleService.On("DeleteSale", mock.Anything, suite.userID, saleID).Return(nil)

	w := suite.doRequest(http.MethodDelete, "/api/v1/sales/"+saleID, nil, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusNoContent, w.Code)
}
