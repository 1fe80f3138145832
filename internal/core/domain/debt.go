package domain

import "github.com/shopspring/decimal"

// DebtPair is outstanding debt split into the cash and cheque buckets.
// Both fields are non-negative whenever the pair describes remaining debt.
type DebtPair struct {
	Cash   decimal.Decimal `json:"cash"`
	Cheque decimal.Decimal `json:"cheque"`
}

// Total returns cash + cheque.
func (d DebtPair) Total() decimal.Decimal {
	return d.Cash.Add(d.Cheque)
}

// Rounded returns the pair settled to two places.
func (d DebtPair) Rounded() DebtPair {
	return DebtPair{Cash: Round2(d.Cash), Cheque: Round2(d.Cheque)}
}

// IsNegative reports whether either bucket is below zero.
func (d DebtPair) IsNegative() bool {
	return d.Cash.IsNegative() || d.Cheque.IsNegative()
}

// Add returns the bucket-wise sum.
func (d DebtPair) Add(o DebtPair) DebtPair {
	return DebtPair{Cash: d.Cash.Add(o.Cash), Cheque: d.Cheque.Add(o.Cheque)}
}

// AllocationResult is the outcome of applying one payment to a DebtPair. It is never persisted.
type AllocationResult struct {
	RemainingDebts DebtPair        `json:"remainingDebts"`
	CashCoverage   decimal.Decimal `json:"cashCoverage"`
	ChequeCoverage decimal.Decimal `json:"chequeCoverage"`
	Surplus        decimal.Decimal `json:"surplus"`
}

// Balance is a signed per-bucket balance; negative values are customer credit.
type Balance struct {
	Cash   decimal.Decimal `json:"cash"`
	Cheque decimal.Decimal `json:"cheque"`
	Total  decimal.Decimal `json:"total"`
}
