package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Typed errors let handlers map failures to HTTP status codes with
// errors.As while keeping messages in the operator's language.

// ValidationError rejects a malformed or inconsistent request body.
type ValidationError struct {
	Code    string // stable machine-readable code, e.g. "total-mismatch"
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StateError rejects an operation that conflicts with the current state
// (no active turn, turn already open, invoice gone).
type StateError struct {
	Code    string
	Message string
}

func (e *StateError) Error() string { return e.Message }

// AuthorizationError rejects a privileged operation with a bad secret.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// InsufficientFundsError rejects a withdrawal above the cash on hand.
type InsufficientFundsError struct {
	Disponible decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("fondos insuficientes: el efectivo disponible es %s", e.Disponible.StringFixed(2))
}

// CapacityError rejects opening more concurrent invoices than allowed.
type CapacityError struct {
	Limite int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("límite de facturas abiertas alcanzado (%d)", e.Limite)
}
