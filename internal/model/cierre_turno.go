package model

import (
	"time"

	"github.com/google/uuid"
)

// CierreTurno es el resumen inmutable de un turno cerrado. Guarda los
// totales recalculados al cierre y referencia al turno para poder volver
// a leer su log de transacciones (exportaciones CSV/PDF).
type CierreTurno struct {
	ID                    uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	TurnoID               uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"turno_id"`
	Operador              string       `gorm:"type:varchar(100);not null" json:"operador"`
	InicioEn              time.Time    `gorm:"not null" json:"inicio_en"`
	FinEn                 time.Time    `gorm:"not null;index" json:"fin_en"`
	Totales               TotalesTurno `gorm:"embedded" json:"totales"`
	CantidadTransacciones int          `gorm:"not null" json:"cantidad_transacciones"`
	CreatedAt             time.Time    `json:"created_at"`
}

func (CierreTurno) TableName() string { return "cierres_turno" }
