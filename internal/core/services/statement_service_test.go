package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockStatementRepo *MockStatementRepository
	mockCustomerRepo  *MockCustomerRepository
	customer          *domain.Customer
	now               time.Time
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockStatementRepo = new(MockStatementRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.customer = &domain.Customer{CustomerID: uuid.NewString(), Name: "Acme"}
	suite.now = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
}

func (suite *StatementServiceTestSuite) newService(options ...services.StatementServiceOption) portssvc.StatementSvc {
	options = append(options, services.WithStatementClock(func() time.Time { return suite.now }))
	return services.NewStatementService(suite.mockStatementRepo, suite.mockCustomerRepo, options...)
}

func (suite *StatementServiceTestSuite) history() []domain.LedgerEvent {
	t0 := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return []domain.LedgerEvent{
		{Type: domain.EventPayment, ID: "p1", Seq: 1, CreatedAt: t0.Add(time.Hour), Amount: dec("150"), Method: domain.MethodCash},
		{Type: domain.EventInvoice, ID: "i1", Seq: 1, CreatedAt: t0, Amount: dec("300")},
	}
}

func (suite *StatementServiceTestSuite) TestGetStatement_FullHistoryReconciles() {
	ctx := context.Background()
	aggregate := domain.AggregateBalance{
		InvoicedCash:   dec("100"),
		InvoicedCheque: dec("200"),
		CashPaid:   dec("150"),
		ChequePaid: dec("0"),
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockStatementRepo.On("ListLedgerEvents", ctx, suite.customer.CustomerID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(suite.history(), nil).Once()
	suite.mockStatementRepo.On("GetAggregateBalance", ctx, suite.customer.CustomerID).Return(aggregate, nil).Once()

	stmt, err := suite.newService().GetStatement(ctx, suite.customer.CustomerID, nil, nil)

	suite.Require().NoError(err)
	suite.Equal("Acme", stmt.Customer.Name)
	suite.Require().Len(stmt.History, 2)
	suite.Equal("i1", stmt.History[0].ID)
	last := stmt.History[1]
	assertDecimal(suite.T(), "0", last.RunningCash)
	assertDecimal(suite.T(), "150", last.RunningCheque)
	assertDecimal(suite.T(), "150", last.RunningTotal)
	assertDecimal(suite.T(), "-50", stmt.FinalBalance.Cash)
	assertDecimal(suite.T(), "200", stmt.FinalBalance.Cheque)
	assertDecimal(suite.T(), "150", stmt.FinalBalance.Total)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestGetStatement_DriftIsInconsistentState() {
	ctx := context.Background()
	aggregate := domain.AggregateBalance{
		InvoicedCash:   dec("100"),
		InvoicedCheque: dec("200"),
		CashPaid:   dec("100"),
		ChequePaid: dec("0"),
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockStatementRepo.On("ListLedgerEvents", ctx, suite.customer.CustomerID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(suite.history(), nil).Once()
	suite.mockStatementRepo.On("GetAggregateBalance", ctx, suite.customer.CustomerID).Return(aggregate, nil).Once()

	stmt, err := suite.newService().GetStatement(ctx, suite.customer.CustomerID, nil, nil)

	suite.Require().Error(err)
	suite.Nil(stmt)
	suite.ErrorIs(err, apperrors.ErrInconsistentState)
}

func (suite *StatementServiceTestSuite) TestGetStatement_WindowedSkipsReconcile() {
	ctx := context.Background()
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	aggregate := domain.AggregateBalance{
		InvoicedCash:   dec("500"),
		InvoicedCheque: dec("1000"),
		CashPaid:   dec("150"),
		ChequePaid: dec("0"),
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockStatementRepo.On("ListLedgerEvents", ctx, suite.customer.CustomerID, &from, &to).Return(suite.history(), nil).Once()
	suite.mockStatementRepo.On("GetAggregateBalance", ctx, suite.customer.CustomerID).Return(aggregate, nil).Once()

	stmt, err := suite.newService().GetStatement(ctx, suite.customer.CustomerID, &from, &to)

	suite.Require().NoError(err)
	assertDecimal(suite.T(), "150", stmt.History[1].RunningTotal)
	assertDecimal(suite.T(), "1350", stmt.FinalBalance.Total)
	suite.Equal(&from, stmt.From)
}

func (suite *StatementServiceTestSuite) TestGetStatement_DefaultWindow() {
	ctx := context.Background()
	wantFrom := suite.now.AddDate(0, 0, -30)

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockStatementRepo.On("ListLedgerEvents", ctx, suite.customer.CustomerID,
		mock.MatchedBy(func(from *time.Time) bool { return from != nil && from.Equal(wantFrom) }),
		(*time.Time)(nil)).Return([]domain.LedgerEvent{}, nil).Once()
	suite.mockStatementRepo.On("GetAggregateBalance", ctx, suite.customer.CustomerID).
		Return(domain.AggregateBalance{InvoicedCash: dec("10")}, nil).Once()

	stmt, err := suite.newService(services.WithDefaultWindowDays(30)).GetStatement(ctx, suite.customer.CustomerID, nil, nil)

	suite.Require().NoError(err)
	suite.Empty(stmt.History)
	suite.Require().NotNil(stmt.From)
	suite.True(stmt.From.Equal(wantFrom))
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestGetStatement_InvertedRange() {
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	stmt, err := suite.newService().GetStatement(context.Background(), suite.customer.CustomerID, &from, &to)

	suite.Require().Error(err)
	suite.Nil(stmt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestGetStatement_UnknownCustomer() {
	ctx := context.Background()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	stmt, err := suite.newService().GetStatement(ctx, "missing", nil, nil)

	suite.Require().Error(err)
	suite.Nil(stmt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestStatementService(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
