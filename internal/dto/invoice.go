package dto

import (
	"time"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to issue an invoice.
type CreateInvoiceRequest struct {
	CustomerID  string          `json:"customerID" binding:"required,uuid"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required,money"`
	InvoiceDate *time.Time      `json:"invoiceDate"` // Optional, defaults to now
	Notes       string          `json:"notes"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	CustomerID *string `form:"customerID" binding:"omitempty,uuid"`
	Limit      int     `form:"limit,default=20" binding:"min=0,max=100"`
	NextToken  *string `form:"nextToken"`
}

// InvoiceURI binds the invoice_id path parameter.
type InvoiceURI struct {
	InvoiceID string `uri:"invoice_id" binding:"required,uuid"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string               `json:"invoiceID"`
	InvoiceNumber string               `json:"invoiceNumber"`
	CustomerID    string               `json:"customerID"`
	CustomerName  string               `json:"customerName,omitempty"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	CashDebt      decimal.Decimal      `json:"cashDebt"`
	ChequeDebt    decimal.Decimal      `json:"chequeDebt"`
	Remaining     *domain.DebtPair     `json:"remaining,omitempty"`
	Status        domain.InvoiceStatus `json:"status"`
	InvoiceDate   time.Time            `json:"invoiceDate"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		TotalAmount:   inv.TotalAmount,
		CashDebt:      inv.CashDebt,
		ChequeDebt:    inv.ChequeDebt,
		Remaining:     inv.Remaining,
		Status:        inv.Status,
		InvoiceDate:   inv.InvoiceDate,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListInvoicesResponse converts a page of invoices to the response wrapper.
func ToListInvoicesResponse(invoices []domain.Invoice, nextToken *string) ListInvoicesResponse {
	res := ListInvoicesResponse{Invoices: make([]InvoiceResponse, len(invoices)), NextToken: nextToken}
	for i := range invoices {
		res.Invoices[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
