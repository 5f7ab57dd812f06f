package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/repository"
)

// ColaBackup is the queue consumed by the backup worker.
const ColaBackup = "jobs:backup"

// NubeBackup pushes snapshots to the remote backup endpoint.
type NubeBackup interface {
	Push(ctx context.Context, snapshot []byte) error
	Habilitado() bool
}

type BackupService interface {
	// Exportar serializes the whole system state into a portable snapshot.
	Exportar(ctx context.Context) (*dto.Snapshot, error)
	// Importar replaces the current state with the snapshot's. Destructive.
	Importar(ctx context.Context, snap *dto.Snapshot) error
	// Programar enqueues a backup job for the worker.
	Programar(ctx context.Context) error
	// Ejecutar builds a snapshot and pushes it to the cloud endpoint.
	// Called by the backup worker, not by handlers.
	Ejecutar(ctx context.Context) error
	Estado() dto.BackupStatusResponse
}

type backupService struct {
	db         *gorm.DB
	turnos     repository.TurnoRepository
	cierres    repository.CierreRepository
	facturas   repository.FacturaRepository
	productos  repository.ProductoRepository
	servicios  repository.ServicioRepository
	contadores repository.ContadorRepository
	nube       NubeBackup
	cola       ColaJobs
	intervalo  int

	mu          sync.Mutex
	ultimoOK    time.Time
	ultimoError string
}

func NewBackupService(
	db *gorm.DB,
	turnos repository.TurnoRepository,
	cierres repository.CierreRepository,
	facturas repository.FacturaRepository,
	productos repository.ProductoRepository,
	servicios repository.ServicioRepository,
	contadores repository.ContadorRepository,
	nube NubeBackup,
	cola ColaJobs,
	intervaloMins int,
) BackupService {
	return &backupService{
		db:         db,
		turnos:     turnos,
		cierres:    cierres,
		facturas:   facturas,
		productos:  productos,
		servicios:  servicios,
		contadores: contadores,
		nube:       nube,
		cola:       cola,
		intervalo:  intervaloMins,
	}
}

func (s *backupService) Exportar(ctx context.Context) (*dto.Snapshot, error) {
	snap := &dto.Snapshot{
		Version:    dto.SnapshotVersion,
		GeneradoEn: time.Now().Format(time.RFC3339),
	}

	var err error
	if snap.Productos, err = s.productos.List(ctx, false); err != nil {
		return nil, fmt.Errorf("exportar productos: %w", err)
	}
	if snap.Servicios, err = s.servicios.List(ctx, false); err != nil {
		return nil, fmt.Errorf("exportar servicios: %w", err)
	}
	if snap.Turnos, err = s.turnos.ListAll(ctx); err != nil {
		return nil, fmt.Errorf("exportar turnos: %w", err)
	}
	for i := range snap.Turnos {
		regs, err := s.turnos.ListTransacciones(ctx, snap.Turnos[i].ID)
		if err != nil {
			return nil, fmt.Errorf("exportar transacciones: %w", err)
		}
		snap.Transacciones = append(snap.Transacciones, regs...)
	}
	if snap.Facturas, err = s.facturas.List(ctx); err != nil {
		return nil, fmt.Errorf("exportar facturas: %w", err)
	}
	if snap.Cierres, err = s.cierres.ListAll(ctx); err != nil {
		return nil, fmt.Errorf("exportar cierres: %w", err)
	}
	if snap.Contadores, err = s.contadores.Valores(ctx); err != nil {
		return nil, fmt.Errorf("exportar contadores: %w", err)
	}
	if err = s.db.WithContext(ctx).Find(&snap.Movimientos).Error; err != nil {
		return nil, fmt.Errorf("exportar movimientos: %w", err)
	}
	return snap, nil
}

// Importar wipes and reloads every table inside one transaction, then
// restores the counters so numbering continues where the snapshot left off.
func (s *backupService) Importar(ctx context.Context, snap *dto.Snapshot) error {
	if snap.Version != dto.SnapshotVersion {
		return &ValidationError{
			Code:    "snapshot-version",
			Message: fmt.Sprintf("versión de snapshot no soportada: %d", snap.Version),
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, tabla := range []string{
			"movimientos_stock", "registros_transaccion", "facturas_abiertas",
			"cierres_turno", "turnos", "servicios_cancha", "productos",
		} {
			if err := tx.Exec("DELETE FROM " + tabla).Error; err != nil {
				return err
			}
		}
		for _, grupo := range []any{
			snap.Productos, snap.Servicios, snap.Turnos,
			snap.Transacciones, snap.Facturas, snap.Cierres, snap.Movimientos,
		} {
			if err := crearLote(tx, grupo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.contadores.Restaurar(ctx, snap.Contadores)
}

func (s *backupService) Programar(ctx context.Context) error {
	return s.cola.Encolar(ctx, ColaBackup, map[string]string{"origen": "cron"})
}

func (s *backupService) Ejecutar(ctx context.Context) error {
	if !s.nube.Habilitado() {
		return nil
	}
	snap, err := s.Exportar(ctx)
	if err != nil {
		s.registrarResultado(err)
		return err
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		s.registrarResultado(err)
		return err
	}
	if err := s.nube.Push(ctx, payload); err != nil {
		s.registrarResultado(err)
		return err
	}
	s.registrarResultado(nil)
	log.Info().Int("bytes", len(payload)).Msg("backup enviado a la nube")
	return nil
}

func (s *backupService) Estado() dto.BackupStatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := dto.BackupStatusResponse{
		Habilitado:    s.nube.Habilitado(),
		UltimoError:   s.ultimoError,
		IntervaloMins: s.intervalo,
	}
	if !s.ultimoOK.IsZero() {
		resp.UltimoBackup = s.ultimoOK.Format(time.RFC3339)
	}
	return resp
}

func (s *backupService) registrarResultado(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.ultimoError = err.Error()
		return
	}
	s.ultimoOK = time.Now()
	s.ultimoError = ""
}

func crearLote(tx *gorm.DB, grupo any) error {
	switch g := grupo.(type) {
	case []model.Producto:
		if len(g) == 0 {
			return nil
		}
		return tx.Create(&g).Error
	case []model.ServicioCancha:
		if len(g) == 0 {
			return nil
		}
		return tx.Create(&g).Error
	case []model.Turno:
		if len(g) == 0 {
			return nil
		}
		return tx.Create(&g).Error
	case []model.RegistroTransaccion:
		if len(g) == 0 {
			return nil
		}
		return tx.Create(&g).Error
	case []model.FacturaAbierta:
		if len(g) == 0 {
			return nil
		}
		return tx.Create(&g).Error
	case []model.CierreTurno:
		if len(g) == 0 {
			return nil
		}
		return tx.Create(&g).Error
	case []model.MovimientoStock:
		if len(g) == 0 {
			return nil
		}
		return tx.Create(&g).Error
	default:
		return fmt.Errorf("grupo desconocido: %T", grupo)
	}
}
