package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EstadoTurno indica si un turno sigue recibiendo transacciones.
type EstadoTurno string

const (
	TurnoActivo  EstadoTurno = "activo"
	TurnoCerrado EstadoTurno = "cerrado"
)

// TotalesTurno acumula los montos del turno desglosados por método.
// TotalCaja es el efectivo físico esperado en la caja; TotalGeneral suma
// todos los métodos.
type TotalesTurno struct {
	Caja          decimal.Decimal `gorm:"type:numeric(12,2);column:total_caja" json:"caja"`
	Transferencia decimal.Decimal `gorm:"type:numeric(12,2);column:total_transferencia" json:"transferencia"`
	Expensa       decimal.Decimal `gorm:"type:numeric(12,2);column:total_expensa" json:"expensa"`
	General       decimal.Decimal `gorm:"type:numeric(12,2);column:total_general" json:"general"`
}

// Acumular suma una asignación de pago a los totales. Los componentes
// pueden ser negativos (retiros).
func (t *TotalesTurno) Acumular(p AsignacionPago) {
	t.Caja = t.Caja.Add(p.Efectivo)
	t.Transferencia = t.Transferencia.Add(p.Transferencia)
	t.Expensa = t.Expensa.Add(p.Expensa)
	t.General = t.General.Add(p.Suma())
}

// Turno es la sesión de caja de un operador: se abre con un monto inicial,
// absorbe transacciones y se cierra recalculando los totales desde el log.
type Turno struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Operador    string       `gorm:"type:varchar(100);not null" json:"operador"`
	Estado      EstadoTurno  `gorm:"type:varchar(10);not null;index" json:"estado"`
	CajaInicial decimal.Decimal `gorm:"type:numeric(12,2)" json:"caja_inicial"`
	Totales     TotalesTurno `gorm:"embedded" json:"totales"`
	AbiertoEn   time.Time    `json:"abierto_en"`
	CerradoEn   *time.Time   `json:"cerrado_en,omitempty"`

	// Transacciones se carga desde registro_transaccion; no es una columna.
	Transacciones []Transaccion `gorm:"-" json:"transacciones,omitempty"`
}

func (Turno) TableName() string { return "turnos" }

// Recalcular reconstruye los totales desde cero recorriendo el log completo.
// El resultado es el valor autoritativo al cierre: cualquier total acumulado
// incrementalmente se descarta.
func (t *Turno) Recalcular() {
	t.Totales = TotalesTurno{}
	for _, tx := range t.Transacciones {
		t.Totales.Acumular(AsignacionDe(tx))
	}
}
