package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrigenItem identifies where a line item came from.
// "kiosco" lines snapshot a catalog price and merge by product;
// "personalizado" lines are ad-hoc and never merge;
// "servicio" lines keep an editable price (negotiated discounts).
type OrigenItem string

const (
	OrigenKiosco        OrigenItem = "kiosco"
	OrigenPersonalizado OrigenItem = "personalizado"
	OrigenServicio      OrigenItem = "servicio"
)

// ItemFactura is one billable line on an open invoice or a finalized
// transaction. Invariant: Subtotal = PrecioUnitario * Cantidad.
type ItemFactura struct {
	ID             uuid.UUID       `json:"id"`
	ProductoID     *uuid.UUID      `json:"producto_id,omitempty"` // set on kiosco lines; merge key and stock reference
	Descripcion    string          `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int             `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Origen         OrigenItem      `json:"origen"`
	PrecioEditable bool            `json:"precio_editable"`
}

// Recalcular restores the subtotal invariant after a quantity or price change.
func (i *ItemFactura) Recalcular() {
	i.Subtotal = i.PrecioUnitario.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// SumaItems adds up the subtotals of a set of lines.
func SumaItems(items []ItemFactura) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}
