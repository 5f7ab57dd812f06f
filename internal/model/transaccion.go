package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaccion is the closed set of events a turn can absorb:
// Venta | FacturaCancha | Retiro | CajaInicial.
// Every consumer (totals, CSV export, persistence codec) switches
// exhaustively over the four variants, so adding a new kind is a
// compile-visible change, never a silently ignored one.
// A Transaccion is immutable once built by the factory.
type Transaccion interface {
	esTransaccion()
}

// Venta is a kiosk sale settled at the counter.
type Venta struct {
	ID           uuid.UUID       `json:"id"`
	NumeroRecibo string          `json:"numero_recibo"`
	Items        []ItemFactura   `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Pago         AsignacionPago  `json:"pago"`
	Cliente      string          `json:"cliente"`
	CreadaEn     time.Time       `json:"creada_en"`
}

// FacturaCancha is the billing of a finished court session: the consumed
// services plus any kiosk goods, settled in one (possibly combined) payment.
type FacturaCancha struct {
	ID               uuid.UUID       `json:"id"`
	NumeroRecibo     string          `json:"numero_recibo"`
	FacturaAbiertaID uuid.UUID       `json:"factura_abierta_id"`
	Cancha           string          `json:"cancha"`
	Cliente          string          `json:"cliente"`
	NumeroLote       int             `json:"numero_lote"`
	Items            []ItemFactura   `json:"items"`
	Total            decimal.Decimal `json:"total"`
	Pago             AsignacionPago  `json:"pago"`
	CreadaEn         time.Time       `json:"creada_en"`
}

// Retiro is an audited cash withdrawal. Monto is stored positive; its
// contribution to the turn totals is negative and always in efectivo.
type Retiro struct {
	ID           uuid.UUID       `json:"id"`
	NumeroRecibo string          `json:"numero_recibo"`
	RetiroID     string          `json:"retiro_id"`
	Monto        decimal.Decimal `json:"monto"`
	Operador     string          `json:"operador"`
	Motivo       string          `json:"motivo"`
	CreadaEn     time.Time       `json:"creada_en"`
}

// CajaInicial is the opening float placed in the register when a turn opens.
// Always efectivo, always positive.
type CajaInicial struct {
	ID           uuid.UUID       `json:"id"`
	NumeroRecibo string          `json:"numero_recibo"`
	Monto        decimal.Decimal `json:"monto"`
	Operador     string          `json:"operador"`
	CreadaEn     time.Time       `json:"creada_en"`
}

func (*Venta) esTransaccion()         {}
func (*FacturaCancha) esTransaccion() {}
func (*Retiro) esTransaccion()        {}
func (*CajaInicial) esTransaccion()   {}

// ImporteDe returns the signed contribution of t to the turn's total.
func ImporteDe(t Transaccion) decimal.Decimal {
	switch v := t.(type) {
	case *Venta:
		return v.Total
	case *FacturaCancha:
		return v.Total
	case *Retiro:
		return v.Monto.Neg()
	case *CajaInicial:
		return v.Monto
	default:
		panic(fmt.Sprintf("transaccion desconocida: %T", t))
	}
}

// AsignacionDe returns the signed per-method split of t, the shape the
// turn totals accumulate. Withdrawals come back as negative efectivo.
func AsignacionDe(t Transaccion) AsignacionPago {
	switch v := t.(type) {
	case *Venta:
		return v.Pago
	case *FacturaCancha:
		return v.Pago
	case *Retiro:
		return AsignacionSimple(MetodoEfectivo, v.Monto.Neg())
	case *CajaInicial:
		return AsignacionSimple(MetodoEfectivo, v.Monto)
	default:
		panic(fmt.Sprintf("transaccion desconocida: %T", t))
	}
}

// ReciboDe returns the receipt number of t.
func ReciboDe(t Transaccion) string {
	switch v := t.(type) {
	case *Venta:
		return v.NumeroRecibo
	case *FacturaCancha:
		return v.NumeroRecibo
	case *Retiro:
		return v.NumeroRecibo
	case *CajaInicial:
		return v.NumeroRecibo
	default:
		panic(fmt.Sprintf("transaccion desconocida: %T", t))
	}
}

// FechaDe returns the creation time of t.
func FechaDe(t Transaccion) time.Time {
	switch v := t.(type) {
	case *Venta:
		return v.CreadaEn
	case *FacturaCancha:
		return v.CreadaEn
	case *Retiro:
		return v.CreadaEn
	case *CajaInicial:
		return v.CreadaEn
	default:
		panic(fmt.Sprintf("transaccion desconocida: %T", t))
	}
}
