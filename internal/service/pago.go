package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

// toleranciaPago absorbs rounding noise when comparing an allocation
// against the charged total. A difference of toleranciaPago or more is
// a mismatch; only strictly smaller differences pass.
var toleranciaPago = decimal.NewFromFloat(0.01)

// ValidarAsignacion checks that a payment allocation is well-formed and
// covers exactly the given total. On success the allocation is returned
// unchanged; the caller derives the payment method from its components.
func ValidarAsignacion(pago model.AsignacionPago, total decimal.Decimal) error {
	for _, comp := range []struct {
		nombre string
		monto  decimal.Decimal
	}{
		{"efectivo", pago.Efectivo},
		{"transferencia", pago.Transferencia},
		{"expensa", pago.Expensa},
	} {
		if comp.monto.IsNegative() {
			return &ValidationError{
				Code:    "negative-amount",
				Message: fmt.Sprintf("el componente %s no puede ser negativo", comp.nombre),
			}
		}
	}

	suma := pago.Suma()
	if suma.IsZero() && total.IsPositive() {
		return &ValidationError{
			Code:    "empty-allocation",
			Message: "la asignación de pago está vacía",
		}
	}

	if suma.Sub(total).Abs().GreaterThanOrEqual(toleranciaPago) {
		return &ValidationError{
			Code: "total-mismatch",
			Message: fmt.Sprintf("la asignación (%s) no coincide con el total (%s)",
				suma.StringFixed(2), total.StringFixed(2)),
		}
	}
	return nil
}
