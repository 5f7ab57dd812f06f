package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirTurnoRequest struct {
	Operador string `json:"operador" validate:"required,min=2,max=100"`
	// CajaInicial may be zero: the turn then opens without an opening-float
	// transaction. Negative amounts are rejected by the service.
	CajaInicial decimal.Decimal `json:"caja_inicial"`
}

type RetiroRequest struct {
	Monto    decimal.Decimal `json:"monto"    validate:"required"`
	Operador string          `json:"operador" validate:"required,min=2,max=100"`
	Motivo   string          `json:"motivo"   validate:"required,min=3,max=200"`
	// Clave is the withdrawal authorization secret; compared verbatim.
	Clave string `json:"clave" validate:"required"`
}

type CerrarTurnoRequest struct {
	Operador string `json:"operador" validate:"required,min=2,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TotalesResponse struct {
	Caja          decimal.Decimal `json:"caja"`
	Transferencia decimal.Decimal `json:"transferencia"`
	Expensa       decimal.Decimal `json:"expensa"`
	General       decimal.Decimal `json:"general"`
}

type TransaccionResponse struct {
	ID      string          `json:"id"`
	Tipo    string          `json:"tipo"`
	Recibo  string          `json:"recibo"`
	Importe decimal.Decimal `json:"importe"`
	Fecha   string          `json:"fecha"`
}

type TurnoResponse struct {
	ID            string                `json:"id"`
	Operador      string                `json:"operador"`
	Estado        string                `json:"estado"`
	CajaInicial   decimal.Decimal       `json:"caja_inicial"`
	Totales       TotalesResponse       `json:"totales"`
	AbiertoEn     string                `json:"abierto_en"`
	CerradoEn     *string               `json:"cerrado_en,omitempty"`
	Transacciones []TransaccionResponse `json:"transacciones,omitempty"`
}

type RetiroResponse struct {
	ID       string          `json:"id"`
	RetiroID string          `json:"retiro_id"`
	Recibo   string          `json:"recibo"`
	Monto    decimal.Decimal `json:"monto"`
	Operador string          `json:"operador"`
	Motivo   string          `json:"motivo"`
	Fecha    string          `json:"fecha"`
	Totales  TotalesResponse `json:"totales"`
}
