package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirFacturaRequest struct {
	Cancha  string `json:"cancha"  validate:"required,min=1,max=50"`
	Cliente string `json:"cliente" validate:"required,min=1,max=100"`
}

type AgregarKioscoRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type AgregarPersonalizadoRequest struct {
	Descripcion string          `json:"descripcion" validate:"required,min=1,max=200"`
	Precio      decimal.Decimal `json:"precio"      validate:"required"`
	Cantidad    int             `json:"cantidad"    validate:"required,min=1"`
}

type AgregarServicioRequest struct {
	ServicioID string `json:"servicio_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
	// Precio overrides the listed service price when present.
	Precio *decimal.Decimal `json:"precio" validate:"omitempty"`
}

type EditarItemRequest struct {
	Cantidad int              `json:"cantidad" validate:"omitempty,min=1"`
	Precio   *decimal.Decimal `json:"precio"   validate:"omitempty"`
}

type PagoRequest struct {
	Efectivo      decimal.Decimal `json:"efectivo"`
	Transferencia decimal.Decimal `json:"transferencia"`
	Expensa       decimal.Decimal `json:"expensa"`
}

type FinalizarFacturaRequest struct {
	Pago PagoRequest `json:"pago" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID             string          `json:"id"`
	ProductoID     *string         `json:"producto_id,omitempty"`
	Descripcion    string          `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int             `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Origen         string          `json:"origen"`
	PrecioEditable bool            `json:"precio_editable"`
}

type FacturaResponse struct {
	ID         string          `json:"id"`
	Cancha     string          `json:"cancha"`
	Cliente    string          `json:"cliente"`
	NumeroLote int             `json:"numero_lote"`
	Items      []ItemResponse  `json:"items"`
	Total      decimal.Decimal `json:"total"`
	CreadaEn   string          `json:"creada_en"`
}

type FacturaFinalizadaResponse struct {
	Recibo  string          `json:"recibo"`
	Total   decimal.Decimal `json:"total"`
	Metodo  string          `json:"metodo"`
	Totales TotalesResponse `json:"totales"`
}
