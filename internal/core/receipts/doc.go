// Package receipts implements the Law of Receipts: how an invoice total splits into cash and
// cheque debt, how a payment retires that debt, how invoice status follows from what is left,
// and how a customer's history replays into a statement of account.
//
// Every function here is pure and safe for concurrent use.
package receipts
