package dto

import (
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

// Snapshot is the full portable state of the system: every table plus the
// counters. Exported as JSON for manual download or pushed to the cloud
// backup endpoint; Importar restores it wholesale.
type Snapshot struct {
	Version       int                         `json:"version"`
	GeneradoEn    string                      `json:"generado_en"`
	Productos     []model.Producto            `json:"productos"`
	Servicios     []model.ServicioCancha      `json:"servicios"`
	Turnos        []model.Turno               `json:"turnos"`
	Transacciones []model.RegistroTransaccion `json:"transacciones"`
	Facturas      []model.FacturaAbierta      `json:"facturas_abiertas"`
	Cierres       []model.CierreTurno         `json:"cierres"`
	Movimientos   []model.MovimientoStock     `json:"movimientos_stock"`
	Contadores    map[string]int64            `json:"contadores"`
}

// SnapshotVersion bumps when the Snapshot layout changes incompatibly.
const SnapshotVersion = 1

type BackupStatusResponse struct {
	Habilitado    bool   `json:"habilitado"`
	UltimoBackup  string `json:"ultimo_backup,omitempty"`
	UltimoError   string `json:"ultimo_error,omitempty"`
	IntervaloMins int    `json:"intervalo_minutos"`
}
