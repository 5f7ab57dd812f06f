package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=1,max=100"`
	Categoria   string          `json:"categoria"    validate:"required,min=1,max=50"`
	Precio      decimal.Decimal `json:"precio"       validate:"required"`
	StockActual int             `json:"stock_actual" validate:"min=0"`
	StockMinimo int             `json:"stock_minimo" validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre      string           `json:"nombre"       validate:"omitempty,min=1,max=100"`
	Categoria   string           `json:"categoria"    validate:"omitempty,min=1,max=50"`
	Precio      *decimal.Decimal `json:"precio"       validate:"omitempty"`
	StockMinimo *int             `json:"stock_minimo" validate:"omitempty,min=0"`
	Activo      *bool            `json:"activo"`
}

type AjusteStockRequest struct {
	Cantidad int    `json:"cantidad" validate:"required"`
	Motivo   string `json:"motivo"   validate:"required,min=3,max=200"`
}

type CrearServicioRequest struct {
	Nombre    string          `json:"nombre"    validate:"required,min=1,max=100"`
	Categoria string          `json:"categoria" validate:"required,min=1,max=50"`
	Precio    decimal.Decimal `json:"precio"    validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	StockActual int             `json:"stock_actual"`
	StockMinimo int             `json:"stock_minimo"`
	Nivel       string          `json:"nivel"`
	Activo      bool            `json:"activo"`
}

type ServicioResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Precio    decimal.Decimal `json:"precio"`
	Activo    bool            `json:"activo"`
}

type StockBajoResponse struct {
	Productos []ProductoResponse `json:"productos"`
	Total     int                `json:"total"`
}
