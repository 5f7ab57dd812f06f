package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/repository"
)

type TurnoService interface {
	Abrir(ctx context.Context, req dto.AbrirTurnoRequest) (*model.Turno, error)
	Activo(ctx context.Context) (*model.Turno, error)
	// Absorber appends a transaction to the active turn and accumulates its
	// allocation into the running totals. Called by venta/factura services.
	Absorber(ctx context.Context, t model.Transaccion) (*model.Turno, error)
	Retirar(ctx context.Context, req dto.RetiroRequest) (*model.Retiro, *model.Turno, error)
	Cerrar(ctx context.Context, req dto.CerrarTurnoRequest) (*model.CierreTurno, error)
}

type turnoService struct {
	repo        repository.TurnoRepository
	fabrica     FabricaTransacciones
	cierres     CierreService
	claveRetiro string
	ahora       func() time.Time
}

func NewTurnoService(repo repository.TurnoRepository, fabrica FabricaTransacciones, cierres CierreService, claveRetiro string) TurnoService {
	return &turnoService{
		repo:        repo,
		fabrica:     fabrica,
		cierres:     cierres,
		claveRetiro: claveRetiro,
		ahora:       time.Now,
	}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *turnoService) Abrir(ctx context.Context, req dto.AbrirTurnoRequest) (*model.Turno, error) {
	if req.CajaInicial.IsNegative() {
		return nil, &ValidationError{Code: "negative-amount", Message: "la caja inicial no puede ser negativa"}
	}
	if _, err := s.repo.FindActivo(ctx); err == nil {
		return nil, &StateError{Code: "turn-already-active", Message: "ya existe un turno activo"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ahora := s.ahora()
	turno := &model.Turno{
		ID:          uuid.New(),
		Operador:    req.Operador,
		Estado:      model.TurnoActivo,
		CajaInicial: req.CajaInicial,
		AbiertoEn:   ahora,
	}

	// A zero opening float is a valid open: the turn just starts with an
	// empty log and no receipt is minted for it.
	var apertura *model.CajaInicial
	if req.CajaInicial.IsPositive() {
		recibo, err := s.fabrica.ProximoRecibo(ctx)
		if err != nil {
			return nil, err
		}
		apertura = &model.CajaInicial{
			ID:           uuid.New(),
			NumeroRecibo: recibo,
			Monto:        req.CajaInicial,
			Operador:     req.Operador,
			CreadaEn:     ahora,
		}
		turno.Totales.Acumular(model.AsignacionDe(apertura))
		turno.Transacciones = []model.Transaccion{apertura}
	}

	if err := s.repo.Create(ctx, turno); err != nil {
		return nil, err
	}
	if apertura != nil {
		reg, err := model.CodificarTransaccion(turno.ID, apertura)
		if err != nil {
			return nil, err
		}
		if err := s.repo.AppendTransaccion(ctx, reg); err != nil {
			return nil, err
		}
	}
	return turno, nil
}

// ── Activo ────────────────────────────────────────────────────────────────────

func (s *turnoService) Activo(ctx context.Context) (*model.Turno, error) {
	turno, err := s.repo.FindActivo(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &StateError{Code: "no-active-turn", Message: "no hay un turno activo"}
	}
	if err != nil {
		return nil, err
	}
	if err := s.cargarTransacciones(ctx, turno); err != nil {
		return nil, err
	}
	return turno, nil
}

// ── Absorber ──────────────────────────────────────────────────────────────────

func (s *turnoService) Absorber(ctx context.Context, t model.Transaccion) (*model.Turno, error) {
	turno, err := s.Activo(ctx)
	if err != nil {
		return nil, err
	}

	reg, err := model.CodificarTransaccion(turno.ID, t)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AppendTransaccion(ctx, reg); err != nil {
		return nil, err
	}

	turno.Totales.Acumular(model.AsignacionDe(t))
	turno.Transacciones = append(turno.Transacciones, t)
	if err := s.repo.Update(ctx, turno); err != nil {
		return nil, err
	}
	return turno, nil
}

// ── Retirar ───────────────────────────────────────────────────────────────────
// Cash leaves the register against the withdrawal secret. The withdrawal is
// recorded as a negative cash entry so the log stays the single source of truth.

func (s *turnoService) Retirar(ctx context.Context, req dto.RetiroRequest) (*model.Retiro, *model.Turno, error) {
	if subtle.ConstantTimeCompare([]byte(req.Clave), []byte(s.claveRetiro)) != 1 {
		return nil, nil, &AuthorizationError{Message: "clave de retiro incorrecta"}
	}
	if !req.Monto.IsPositive() {
		return nil, nil, &ValidationError{Code: "non-positive-amount", Message: "el monto del retiro debe ser positivo"}
	}

	turno, err := s.Activo(ctx)
	if err != nil {
		return nil, nil, err
	}
	if req.Monto.GreaterThan(turno.Totales.Caja) {
		return nil, nil, &InsufficientFundsError{Disponible: turno.Totales.Caja}
	}

	retiroID, err := s.fabrica.ProximoRetiro(ctx)
	if err != nil {
		return nil, nil, err
	}
	recibo, err := s.fabrica.ProximoRecibo(ctx)
	if err != nil {
		return nil, nil, err
	}

	retiro := &model.Retiro{
		ID:           uuid.New(),
		NumeroRecibo: recibo,
		RetiroID:     retiroID,
		Monto:        req.Monto,
		Operador:     req.Operador,
		Motivo:       req.Motivo,
		CreadaEn:     s.ahora(),
	}
	turno, err = s.Absorber(ctx, retiro)
	if err != nil {
		return nil, nil, err
	}
	return retiro, turno, nil
}

// ── Cerrar ────────────────────────────────────────────────────────────────────
// Totals are recomputed from the full log at close; the incremental totals
// kept during the turn are discarded. The closure is persisted before the
// turn is marked closed, so a crash in between can only leave an active
// turn with a closure already archived, never a closed turn without one.

func (s *turnoService) Cerrar(ctx context.Context, req dto.CerrarTurnoRequest) (*model.CierreTurno, error) {
	turno, err := s.Activo(ctx)
	if err != nil {
		return nil, err
	}

	turno.Recalcular()
	fin := s.ahora()

	cierre := &model.CierreTurno{
		ID:                    uuid.New(),
		TurnoID:               turno.ID,
		Operador:              req.Operador,
		InicioEn:              turno.AbiertoEn,
		FinEn:                 fin,
		Totales:               turno.Totales,
		CantidadTransacciones: len(turno.Transacciones),
	}
	if err := s.cierres.Registrar(ctx, cierre); err != nil {
		return nil, err
	}

	turno.Estado = model.TurnoCerrado
	turno.CerradoEn = &fin
	if err := s.repo.Update(ctx, turno); err != nil {
		return nil, err
	}
	return cierre, nil
}

func (s *turnoService) cargarTransacciones(ctx context.Context, turno *model.Turno) error {
	regs, err := s.repo.ListTransacciones(ctx, turno.ID)
	if err != nil {
		return err
	}
	turno.Transacciones = make([]model.Transaccion, 0, len(regs))
	for i := range regs {
		t, err := regs[i].Decodificar()
		if err != nil {
			return err
		}
		turno.Transacciones = append(turno.Transacciones, t)
	}
	return nil
}
