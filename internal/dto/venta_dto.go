package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type RegistrarVentaRequest struct {
	Items   []ItemVentaRequest `json:"items"   validate:"required,min=1,dive"`
	Pago    PagoRequest        `json:"pago"    validate:"required"`
	Cliente string             `json:"cliente" validate:"omitempty,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID      string          `json:"id"`
	Recibo  string          `json:"recibo"`
	Items   []ItemResponse  `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Metodo  string          `json:"metodo"`
	Cliente string          `json:"cliente,omitempty"`
	Fecha   string          `json:"fecha"`
	Totales TotalesResponse `json:"totales"`
}
