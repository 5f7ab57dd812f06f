package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FacturaAbierta es la cuenta corriente de una cancha: acumula ítems
// mientras se juega y se convierte en una FacturaCancha al finalizar.
// Nunca sobreviven más de MaxFacturasAbiertas a la vez.
type FacturaAbierta struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Cancha     string          `gorm:"type:varchar(50);not null" json:"cancha"`
	Cliente    string          `gorm:"type:varchar(100);not null" json:"cliente"`
	NumeroLote int             `gorm:"not null" json:"numero_lote"`
	Items      []ItemFactura   `gorm:"type:jsonb;serializer:json" json:"items"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2)" json:"total"`
	CreadaEn   time.Time       `json:"creada_en"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (FacturaAbierta) TableName() string { return "facturas_abiertas" }

// RecalcularTotal recomputa el total desde los ítems. Se invoca después de
// cada mutación de la lista; el total nunca se ajusta incrementalmente.
func (f *FacturaAbierta) RecalcularTotal() {
	for i := range f.Items {
		f.Items[i].Recalcular()
	}
	f.Total = SumaItems(f.Items)
}
