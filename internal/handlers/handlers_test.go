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

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/core/services"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/SscSPs/receipts_ledger/internal/handlers"
	"github.com/SscSPs/receipts_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		next = &tokenVal
	}
	return args.Get(0).([]domain.Invoice), next, args.Error(2)
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), nil, args.Error(2)
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, idempotencyKey string) (*domain.RecordedPayment, error) {
	args := m.Called(ctx, req, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordedPayment), args.Error(1)
}

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

var _ portssvc.StatementSvc = (*MockStatementService)(nil)

func (m *MockStatementService) GetStatement(ctx context.Context, customerID string, from, to *time.Time) (*domain.StatementOfAccount, error) {
	args := m.Called(ctx, customerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementOfAccount), args.Error(1)
}

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockInvoiceService   *MockInvoiceService
	mockPaymentService   *MockPaymentService
	mockStatementService *MockStatementService
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	v, ok := binding.Validator.Engine().(*validator.Validate)
	suite.Require().True(ok)
	suite.Require().NoError(dto.RegisterValidators(v))
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.mockInvoiceService = new(MockInvoiceService)
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockStatementService = new(MockStatementService)

	container := &portssvc.ServiceContainer{
		Invoice:   suite.mockInvoiceService,
		Payment:   suite.mockPaymentService,
		Statement: suite.mockStatementService,
		Engine:    services.NewEngineService(),
	}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container)
}

func (suite *HandlersTestSuite) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			suite.Require().NoError(json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateInvoice_Created() {
	customerID := uuid.NewString()
	invoice := &domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "INV-000001",
		CustomerID:    customerID,
		TotalAmount:   decimal.RequireFromString("100"),
		CashDebt:      decimal.RequireFromString("33.33"),
		ChequeDebt:    decimal.RequireFromString("66.67"),
		Status:        domain.StatusUnpaid,
	}
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
		return req.CustomerID == customerID && req.TotalAmount.Equal(decimal.RequireFromString("100"))
	})).Return(invoice, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices", fmt.Sprintf(`{"customerID":%q,"totalAmount":"100"}`, customerID), nil)

	suite.Equal(http.StatusCreated, w.Code)
	res := decodeBody[dto.InvoiceResponse](suite.T(), w)
	suite.Equal("INV-000001", res.InvoiceNumber)
	suite.True(res.CashDebt.Equal(decimal.RequireFromString("33.33")))
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateInvoice_RejectsBadAmounts() {
	customerID := uuid.NewString()
	for _, total := range []string{`"-5"`, `"1.005"`, `"abc"`} {
		w := suite.do(http.MethodPost, "/api/v1/invoices", fmt.Sprintf(`{"customerID":%q,"totalAmount":%s}`, customerID, total), nil)
		suite.Equal(http.StatusBadRequest, w.Code, "total %s", total)
	}
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateInvoice_CustomerNotFound() {
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices", fmt.Sprintf(`{"customerID":%q,"totalAmount":10}`, uuid.NewString()), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestGetInvoice_InconsistentStateIsGeneric500() {
	id := uuid.NewString()
	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, id).
		Return(nil, fmt.Errorf("invoice %s: %w", id, apperrors.ErrInconsistentState)).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices/"+id, nil, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := decodeBody[map[string]string](suite.T(), w)
	suite.Equal("Failed to retrieve invoice", body["error"])
	suite.NotContains(w.Body.String(), id)
}

func (suite *HandlersTestSuite) TestListInvoices_PassesQuery() {
	customerID := uuid.NewString()
	suite.mockInvoiceService.On("ListInvoices", mock.Anything, mock.MatchedBy(func(p dto.ListInvoicesParams) bool {
		return p.CustomerID != nil && *p.CustomerID == customerID && p.Limit == 5
	})).Return([]domain.Invoice{}, "tok", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices?customerID="+customerID+"&limit=5", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	res := decodeBody[dto.ListInvoicesResponse](suite.T(), w)
	suite.Require().NotNil(res.NextToken)
	suite.Equal("tok", *res.NextToken)
}

func (suite *HandlersTestSuite) TestRecordPayment_ForwardsIdempotencyKey() {
	customerID := uuid.NewString()
	recorded := &domain.RecordedPayment{
		Payment:  domain.Payment{PaymentID: uuid.NewString(), CustomerID: customerID, Amount: decimal.RequireFromString("5"), Method: domain.MethodCash},
		Replayed: true,
	}
	suite.mockPaymentService.On("RecordPayment", mock.Anything, mock.AnythingOfType("dto.RecordPaymentRequest"), "abc-123").
		Return(recorded, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments",
		fmt.Sprintf(`{"customerID":%q,"amount":"5","method":"CASH"}`, customerID),
		map[string]string{dto.IdempotencyKeyHeader: "abc-123"})

	suite.Equal(http.StatusOK, w.Code)
	res := decodeBody[dto.RecordPaymentResponse](suite.T(), w)
	suite.True(res.Replayed)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestRecordPayment_ValidationAndConflict() {
	customerID := uuid.NewString()

	w := suite.do(http.MethodPost, "/api/v1/payments", fmt.Sprintf(`{"customerID":%q,"amount":"0","method":"CASH"}`, customerID), nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/payments", fmt.Sprintf(`{"customerID":%q,"amount":"5","method":"CARD"}`, customerID), nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockPaymentService.On("RecordPayment", mock.Anything, mock.Anything, "dup").
		Return(nil, apperrors.NewAppError(409, "a payment with this idempotency key is still being processed", apperrors.ErrConflict)).Once()
	w = suite.do(http.MethodPost, "/api/v1/payments",
		fmt.Sprintf(`{"customerID":%q,"amount":"5","method":"CHEQUE"}`, customerID),
		map[string]string{dto.IdempotencyKeyHeader: "dup"})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestGetStatement_WidensUpperBound() {
	customerID := uuid.NewString()
	wantFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 1, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	suite.mockStatementService.On("GetStatement", mock.Anything, customerID,
		mock.MatchedBy(func(from *time.Time) bool { return from != nil && from.Equal(wantFrom) }),
		mock.MatchedBy(func(to *time.Time) bool { return to != nil && to.Equal(wantTo) }),
	).Return(&domain.StatementOfAccount{Customer: domain.Customer{CustomerID: customerID}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/customers/"+customerID+"/statement?from=2024-01-01&to=2024-01-31", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetStatement_ValidationFromService() {
	customerID := uuid.NewString()
	suite.mockStatementService.On("GetStatement", mock.Anything, customerID, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(400, "from must not be after to", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/customers/"+customerID+"/statement?from=2024-02-01&to=2024-01-01", nil, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("from must not be after to", decodeBody[map[string]string](suite.T(), w)["error"])
}

func (suite *HandlersTestSuite) TestMalformedPathIDIsNotFound() {
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/customers/abc"},
		{http.MethodGet, "/api/v1/customers/abc/statement"},
		{http.MethodGet, "/api/v1/invoices/not-a-uuid"},
		{http.MethodDelete, "/api/v1/delegates/42"},
	} {
		w := suite.do(tc.method, tc.path, nil, nil)
		suite.Equal(http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
	}
	suite.mockStatementService.AssertNotCalled(suite.T(), "GetStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "GetInvoiceByID", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestEngineSplit() {
	w := suite.do(http.MethodPost, "/api/v1/engine/split", `{"total":"100"}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	pair := decodeBody[domain.DebtPair](suite.T(), w)
	suite.True(pair.Cash.Equal(decimal.RequireFromString("33.33")))
	suite.True(pair.Cheque.Equal(decimal.RequireFromString("66.67")))
}

func (suite *HandlersTestSuite) TestEngineApply() {
	w := suite.do(http.MethodPost, "/api/v1/engine/apply",
		`{"debts":{"cash":"100","cheque":"200"},"payment":{"amount":"350","method":"CASH"}}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	res := decodeBody[domain.AllocationResult](suite.T(), w)
	suite.True(res.CashCoverage.Equal(decimal.RequireFromString("100")))
	suite.True(res.ChequeCoverage.Equal(decimal.RequireFromString("200")))
	suite.True(res.Surplus.Equal(decimal.RequireFromString("50")))
}

func (suite *HandlersTestSuite) TestEngineResolve() {
	w := suite.do(http.MethodPost, "/api/v1/engine/resolve", `{"total":"300","remaining":"-5"}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(domain.StatusPaid, decodeBody[dto.ResolveResponse](suite.T(), w).Status)
}

func (suite *HandlersTestSuite) TestEngineStatement_DerivesAggregate() {
	body := `{"events":[
		{"type":"PAYMENT","id":"p1","seq":2,"createdAt":"2024-01-01T10:00:00Z","amount":"100","method":"CASH"},
		{"type":"INVOICE","id":"i1","seq":1,"createdAt":"2024-01-01T09:00:00Z","amount":"300"}
	]}`
	w := suite.do(http.MethodPost, "/api/v1/engine/statement", body, nil)

	suite.Equal(http.StatusOK, w.Code)
	stmt := decodeBody[domain.Statement](suite.T(), w)
	suite.Require().Len(stmt.History, 2)
	suite.Equal("i1", stmt.History[0].ID)
	assert.True(suite.T(), stmt.History[1].RunningTotal.Equal(decimal.RequireFromString("200")))
	assert.True(suite.T(), stmt.FinalBalance.Total.Equal(decimal.RequireFromString("200")))
}

func (suite *HandlersTestSuite) TestEngineStatement_UnknownEventType() {
	w := suite.do(http.MethodPost, "/api/v1/engine/statement",
		`{"events":[{"type":"REFUND","id":"r1","createdAt":"2024-01-01T10:00:00Z","amount":"1"}]}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
