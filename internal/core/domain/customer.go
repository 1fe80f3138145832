package domain

// Customer owes money through invoices and settles it with payments.
type Customer struct {
	CustomerID string  `json:"customerID"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	DelegateID *string `json:"delegateID,omitempty"`
	AuditFields

	DelegateName string   `json:"delegateName,omitempty"`
	Balance      *Balance `json:"balance,omitempty"`
}

// DelegateRole is the job of a delegate.
type DelegateRole string

const DefaultDelegateRole DelegateRole = "SALES"

// Delegate is a sales representative responsible for a set of customers.
type Delegate struct {
	DelegateID string       `json:"delegateID"`
	Name       string       `json:"name"`
	Phone      string       `json:"phone,omitempty"`
	Role       DelegateRole `json:"role"`
	AuditFields
}
