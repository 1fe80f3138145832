package models

import "database/sql"

// Customer is a row of the customers table.
type Customer struct {
	CustomerID string         `db:"customer_id"`
	Name       string         `db:"name"`
	Phone      string         `db:"phone"`
	Notes      string         `db:"notes"`
	DelegateID sql.NullString `db:"delegate_id"`
	AuditFields
}

// Delegate is a row of the delegates table.
type Delegate struct {
	DelegateID string `db:"delegate_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Role       string `db:"role"`
	AuditFields
}
