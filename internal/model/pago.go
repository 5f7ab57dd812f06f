package model

import "github.com/shopspring/decimal"

// MetodoPago classifies how a transaction was settled.
// "combinado" means more than one method was used on the same transaction.
type MetodoPago string

const (
	MetodoEfectivo      MetodoPago = "efectivo"
	MetodoTransferencia MetodoPago = "transferencia"
	MetodoExpensa       MetodoPago = "expensa"
	MetodoCombinado     MetodoPago = "combinado"
)

// AsignacionPago is a proposed (or settled) split of a payment across the
// three accepted methods. Components are always >= 0 for sales and bills;
// withdrawals are represented internally with a negative efectivo component.
type AsignacionPago struct {
	Efectivo      decimal.Decimal `json:"efectivo"`
	Transferencia decimal.Decimal `json:"transferencia"`
	Expensa       decimal.Decimal `json:"expensa"`
}

// Suma returns the arithmetic sum of the three components.
func (a AsignacionPago) Suma() decimal.Decimal {
	return a.Efectivo.Add(a.Transferencia).Add(a.Expensa)
}

// Metodo derives the payment method from the nonzero components.
func (a AsignacionPago) Metodo() MetodoPago {
	usados := 0
	var unico MetodoPago = MetodoEfectivo
	if !a.Efectivo.IsZero() {
		usados++
		unico = MetodoEfectivo
	}
	if !a.Transferencia.IsZero() {
		usados++
		unico = MetodoTransferencia
	}
	if !a.Expensa.IsZero() {
		usados++
		unico = MetodoExpensa
	}
	if usados > 1 {
		return MetodoCombinado
	}
	return unico
}

// AsignacionSimple builds an allocation with the full amount under one method.
func AsignacionSimple(metodo MetodoPago, monto decimal.Decimal) AsignacionPago {
	var a AsignacionPago
	switch metodo {
	case MetodoTransferencia:
		a.Transferencia = monto
	case MetodoExpensa:
		a.Expensa = monto
	default:
		a.Efectivo = monto
	}
	return a
}
