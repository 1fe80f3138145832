package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_AttachesRecentPayments() {
	ctx := context.Background()
	totals := domain.DashboardStats{
		TotalCashDebt:      dec("120"),
		TotalChequeDebt:    dec("240"),
		TotalInvoiceVolume: dec("900"),
		CustomerCount:      3,
	}
	recent := []domain.Payment{{PaymentID: "p1"}, {PaymentID: "p2"}}

	suite.mockRepo.On("GetDashboardTotals", ctx).Return(totals, nil).Once()
	suite.mockRepo.On("ListRecentPayments", ctx, 5).Return(recent, nil).Once()

	stats, err := suite.service.GetDashboard(ctx)

	suite.Require().NoError(err)
	suite.Equal(3, stats.CustomerCount)
	suite.Equal(recent, stats.RecentPayments)
	assertDecimal(suite.T(), "240", stats.TotalChequeDebt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_TotalsError() {
	ctx := context.Background()
	suite.mockRepo.On("GetDashboardTotals", ctx).Return(domain.DashboardStats{}, assert.AnError).Once()

	stats, err := suite.service.GetDashboard(ctx)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListRecentPayments", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGetDailyPerformance_SumsAmounts() {
	ctx := context.Background()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Nanosecond)
	invoices := []domain.Invoice{{TotalAmount: dec("100")}, {TotalAmount: dec("50.50")}}
	payments := []domain.Payment{{Amount: dec("20.25")}}

	suite.mockRepo.On("ListInvoicesCreatedBetween", ctx, from, to).Return(invoices, nil).Once()
	suite.mockRepo.On("ListPaymentsCreatedBetween", ctx, from, to).Return(payments, nil).Once()

	report, err := suite.service.GetDailyPerformance(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(2, report.InvoiceCount)
	suite.Equal(1, report.PaymentCount)
	assertDecimal(suite.T(), "150.50", report.InvoiceAmount)
	assertDecimal(suite.T(), "20.25", report.PaymentAmount)
}

func (suite *ReportingServiceTestSuite) TestGetDailyPerformance_InvertedRange() {
	from := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.GetDailyPerformance(context.Background(), from, from.Add(-time.Second))

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestGetDelegateDebts_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("GetDelegateDebts", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(nil, nil).Once()

	debts, err := suite.service.GetDelegateDebts(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.NotNil(debts)
	suite.Empty(debts)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
