package dto

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IdempotencyKeyHeader lets clients retry a payment submission safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// RecordPaymentRequest defines the data needed to record a received payment.
type RecordPaymentRequest struct {
	CustomerID  string               `json:"customerID" binding:"required,uuid"`
	InvoiceID   *string              `json:"invoiceID" binding:"omitempty,uuid"` // Optional
	Amount      decimal.Decimal      `json:"amount" binding:"required,money,positive"`
	Method      domain.PaymentMethod `json:"method" binding:"required,paymethod"`
	IsException bool                 `json:"isException"`
	BankName    string               `json:"bankName" binding:"max=200"`
	Notes       string               `json:"notes"`
}

// Fingerprint identifies the submission behind an Idempotency-Key. Amounts are compared
// to the cent, so "10" and "10.00" are the same request.
func (r RecordPaymentRequest) Fingerprint() string {
	invoiceID := ""
	if r.InvoiceID != nil {
		invoiceID = *r.InvoiceID
	}
	fields := []string{
		strings.ToLower(r.CustomerID),
		strings.ToLower(invoiceID),
		r.Amount.StringFixed(2),
		string(r.Method),
		strconv.FormatBool(r.IsException),
		r.BankName,
		r.Notes,
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, "\x1f")))
	return hex.EncodeToString(sum[:])
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	CustomerID *string    `form:"customerID" binding:"omitempty,uuid"`
	From       *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To         *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Limit      int        `form:"limit,default=20" binding:"min=0,max=100"`
	NextToken  *string    `form:"nextToken"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	CustomerID    string               `json:"customerID"`
	CustomerName  string               `json:"customerName,omitempty"`
	InvoiceID     *string              `json:"invoiceID,omitempty"`
	InvoiceNumber string               `json:"invoiceNumber,omitempty"`
	Amount        decimal.Decimal      `json:"amount"`
	Method        domain.PaymentMethod `json:"method"`
	IsException   bool                 `json:"isException"`
	BankName      string               `json:"bankName,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		CustomerID:    p.CustomerID,
		CustomerName:  p.CustomerName,
		InvoiceID:     p.InvoiceID,
		InvoiceNumber: p.InvoiceNumber,
		Amount:        p.Amount,
		Method:        p.Method,
		IsException:   p.IsException,
		BankName:      p.BankName,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// RecordPaymentResponse is returned after recording a payment. Allocation and Invoice are
// present only for invoice-linked payments.
type RecordPaymentResponse struct {
	Payment    PaymentResponse          `json:"payment"`
	Invoice    *InvoiceResponse         `json:"invoice,omitempty"`
	Allocation *domain.AllocationResult `json:"allocation,omitempty"`
	Replayed   bool                     `json:"replayed,omitempty"`
}

// ToRecordPaymentResponse converts a domain.RecordedPayment to its response DTO.
func ToRecordPaymentResponse(r *domain.RecordedPayment) RecordPaymentResponse {
	res := RecordPaymentResponse{
		Payment:    ToPaymentResponse(&r.Payment),
		Allocation: r.Allocation,
		Replayed:   r.Replayed,
	}
	if r.Invoice != nil {
		inv := ToInvoiceResponse(r.Invoice)
		res.Invoice = &inv
	}
	return res
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}
