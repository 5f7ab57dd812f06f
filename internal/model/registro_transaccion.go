package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TipoTransaccion discriminates persisted transaction rows.
type TipoTransaccion string

const (
	TipoVenta         TipoTransaccion = "venta"
	TipoFacturaCancha TipoTransaccion = "factura_cancha"
	TipoRetiro        TipoTransaccion = "retiro"
	TipoCajaInicial   TipoTransaccion = "caja_inicial"
)

// RegistroTransaccion is the persisted form of a Transaccion: one immutable
// row per event, appended in chronological order. Payload holds the JSON
// encoding of the concrete variant; Tipo selects the type on load.
// Rows are never updated or deleted.
type RegistroTransaccion struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TurnoID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"turno_id"`
	Tipo      TipoTransaccion `gorm:"type:varchar(20);not null" json:"tipo"`
	Payload   json.RawMessage `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName overrides GORM's default pluralization.
func (RegistroTransaccion) TableName() string { return "registros_transaccion" }

// CodificarTransaccion builds the persistable row for t.
func CodificarTransaccion(turnoID uuid.UUID, t Transaccion) (*RegistroTransaccion, error) {
	var (
		id   uuid.UUID
		tipo TipoTransaccion
	)
	switch v := t.(type) {
	case *Venta:
		id, tipo = v.ID, TipoVenta
	case *FacturaCancha:
		id, tipo = v.ID, TipoFacturaCancha
	case *Retiro:
		id, tipo = v.ID, TipoRetiro
	case *CajaInicial:
		id, tipo = v.ID, TipoCajaInicial
	default:
		return nil, fmt.Errorf("transaccion desconocida: %T", t)
	}

	payload, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("codificar transaccion %s: %w", id, err)
	}
	return &RegistroTransaccion{
		ID:      id,
		TurnoID: turnoID,
		Tipo:    tipo,
		Payload: payload,
	}, nil
}

// Decodificar rebuilds the concrete Transaccion from a persisted row.
func (r *RegistroTransaccion) Decodificar() (Transaccion, error) {
	var t Transaccion
	switch r.Tipo {
	case TipoVenta:
		t = &Venta{}
	case TipoFacturaCancha:
		t = &FacturaCancha{}
	case TipoRetiro:
		t = &Retiro{}
	case TipoCajaInicial:
		t = &CajaInicial{}
	default:
		return nil, fmt.Errorf("registro %s: tipo desconocido %q", r.ID, r.Tipo)
	}
	if err := json.Unmarshal(r.Payload, t); err != nil {
		return nil, fmt.Errorf("decodificar registro %s: %w", r.ID, err)
	}
	return t, nil
}
