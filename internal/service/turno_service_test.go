package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

type turnoFixture struct {
	turnos     *fakeTurnoRepo
	cierres    *fakeCierreRepo
	contadores *fakeContadorRepo
	cola       *fakeCola
	svc        TurnoService
	cierreSv   CierreService
}

func newTurnoFixture(t *testing.T) *turnoFixture {
	t.Helper()
	turnos := newFakeTurnoRepo()
	cierres := newFakeCierreRepo()
	contadores := newFakeContadorRepo()
	cola := newFakeCola()
	fabrica := fabricaFija(contadores)
	cierreSv := NewCierreService(cierres, turnos, fakePDF{}, cola)
	svc := NewTurnoService(turnos, fabrica, cierreSv, "2580")
	return &turnoFixture{
		turnos:     turnos,
		cierres:    cierres,
		contadores: contadores,
		cola:       cola,
		svc:        svc,
		cierreSv:   cierreSv,
	}
}

func abrirTurno(t *testing.T, fx *turnoFixture, inicial string) *model.Turno {
	t.Helper()
	turno, err := fx.svc.Abrir(context.Background(), dto.AbrirTurnoRequest{
		Operador:    "ana",
		CajaInicial: d(inicial),
	})
	require.NoError(t, err)
	return turno
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func TestAbrirTurnoRegistraAperturaEnElLog(t *testing.T) {
	fx := newTurnoFixture(t)
	turno := abrirTurno(t, fx, "5000")

	assert.Equal(t, model.TurnoActivo, turno.Estado)
	assert.Equal(t, "5000", turno.Totales.Caja.String())
	assert.Equal(t, "5000", turno.Totales.General.String())
	require.Len(t, turno.Transacciones, 1)

	apertura, ok := turno.Transacciones[0].(*model.CajaInicial)
	require.True(t, ok)
	assert.Equal(t, "VP-2026-000001", apertura.NumeroRecibo)
}

func TestAbrirTurnoConCajaCero(t *testing.T) {
	fx := newTurnoFixture(t)
	turno := abrirTurno(t, fx, "0")

	assert.Equal(t, model.TurnoActivo, turno.Estado)
	assert.True(t, turno.Totales.Caja.IsZero())
	assert.True(t, turno.Totales.General.IsZero())

	// No opening-float transaction and no receipt number minted for it.
	assert.Empty(t, turno.Transacciones)
	activo, err := fx.svc.Activo(context.Background())
	require.NoError(t, err)
	assert.Empty(t, activo.Transacciones)

	valores, err := fx.contadores.Valores(context.Background())
	require.NoError(t, err)
	assert.Zero(t, valores["recibos"])
}

func TestAbrirTurnoRechazaCajaNegativa(t *testing.T) {
	fx := newTurnoFixture(t)
	_, err := fx.svc.Abrir(context.Background(), dto.AbrirTurnoRequest{
		Operador:    "ana",
		CajaInicial: d("-1"),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "negative-amount", verr.Code)
}

func TestAbrirTurnoConOtroActivo(t *testing.T) {
	fx := newTurnoFixture(t)
	abrirTurno(t, fx, "5000")

	_, err := fx.svc.Abrir(context.Background(), dto.AbrirTurnoRequest{
		Operador:    "beto",
		CajaInicial: d("1000"),
	})

	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "turn-already-active", serr.Code)
}

func TestActivoSinTurno(t *testing.T) {
	fx := newTurnoFixture(t)
	_, err := fx.svc.Activo(context.Background())

	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "no-active-turn", serr.Code)
}

// ── Absorber ──────────────────────────────────────────────────────────────────

func TestAbsorberAcumulaPorMetodo(t *testing.T) {
	fx := newTurnoFixture(t)
	abrirTurno(t, fx, "5000")
	ctx := context.Background()

	// Cash sale, then a combined court invoice.
	_, err := fx.svc.Absorber(ctx, &model.Venta{
		ID:           uuid.New(),
		NumeroRecibo: "VP-2026-000002",
		Total:        d("1200"),
		Pago:         model.AsignacionPago{Efectivo: d("1200")},
		CreadaEn:     time.Now(),
	})
	require.NoError(t, err)

	turno, err := fx.svc.Absorber(ctx, &model.FacturaCancha{
		ID:           uuid.New(),
		NumeroRecibo: "VP-2026-000003",
		Total:        d("20000"),
		Pago:         model.AsignacionPago{Efectivo: d("10000"), Transferencia: d("10000")},
		CreadaEn:     time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, "16200", turno.Totales.Caja.String())
	assert.Equal(t, "10000", turno.Totales.Transferencia.String())
	assert.Equal(t, "26200", turno.Totales.General.String())
	assert.Len(t, turno.Transacciones, 3)
}

// ── Retirar ───────────────────────────────────────────────────────────────────

func TestRetirarDescuentaDeCaja(t *testing.T) {
	fx := newTurnoFixture(t)
	abrirTurno(t, fx, "5000")

	retiro, turno, err := fx.svc.Retirar(context.Background(), dto.RetiroRequest{
		Monto:    d("3000"),
		Operador: "ana",
		Motivo:   "pago proveedor",
		Clave:    "2580",
	})
	require.NoError(t, err)

	assert.Equal(t, "RETIRO-0001", retiro.RetiroID)
	assert.True(t, retiro.Monto.IsPositive())
	assert.Equal(t, "2000", turno.Totales.Caja.String())
	assert.Equal(t, "2000", turno.Totales.General.String())

	// The withdrawal lands in the log as a negative cash entry.
	ultimo := turno.Transacciones[len(turno.Transacciones)-1]
	assert.Equal(t, "-3000", model.ImporteDe(ultimo).String())
}

func TestRetirarClaveIncorrecta(t *testing.T) {
	fx := newTurnoFixture(t)
	abrirTurno(t, fx, "5000")

	_, _, err := fx.svc.Retirar(context.Background(), dto.RetiroRequest{
		Monto:    d("100"),
		Operador: "ana",
		Motivo:   "prueba",
		Clave:    "0000",
	})

	var aerr *AuthorizationError
	assert.ErrorAs(t, err, &aerr)
}

func TestRetirarSinFondos(t *testing.T) {
	fx := newTurnoFixture(t)
	abrirTurno(t, fx, "1000")

	_, _, err := fx.svc.Retirar(context.Background(), dto.RetiroRequest{
		Monto:    d("1500"),
		Operador: "ana",
		Motivo:   "prueba",
		Clave:    "2580",
	})

	var ferr *InsufficientFundsError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "1000", ferr.Disponible.String())
}

func TestRetirarMontoNoPositivo(t *testing.T) {
	fx := newTurnoFixture(t)
	abrirTurno(t, fx, "1000")

	_, _, err := fx.svc.Retirar(context.Background(), dto.RetiroRequest{
		Monto:    decimal.Zero,
		Operador: "ana",
		Motivo:   "prueba",
		Clave:    "2580",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "non-positive-amount", verr.Code)
}

// ── Cerrar ────────────────────────────────────────────────────────────────────

func TestCerrarRecalculaDesdeElLog(t *testing.T) {
	fx := newTurnoFixture(t)
	turno := abrirTurno(t, fx, "5000")
	ctx := context.Background()

	_, err := fx.svc.Absorber(ctx, &model.Venta{
		ID:           uuid.New(),
		NumeroRecibo: "VP-2026-000002",
		Total:        d("1200"),
		Pago:         model.AsignacionPago{Efectivo: d("1200")},
		CreadaEn:     time.Now(),
	})
	require.NoError(t, err)
	_, _, err = fx.svc.Retirar(ctx, dto.RetiroRequest{
		Monto: d("3000"), Operador: "ana", Motivo: "pago proveedor", Clave: "2580",
	})
	require.NoError(t, err)

	cierre, err := fx.svc.Cerrar(ctx, dto.CerrarTurnoRequest{Operador: "ana"})
	require.NoError(t, err)

	assert.Equal(t, turno.ID, cierre.TurnoID)
	assert.Equal(t, "3200", cierre.Totales.Caja.String())
	assert.Equal(t, "3200", cierre.Totales.General.String())
	assert.Equal(t, 3, cierre.CantidadTransacciones)

	// The closure is archived and the turn no longer accepts transactions.
	require.Len(t, fx.cierres.cierres, 1)
	_, err = fx.svc.Activo(ctx)
	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "no-active-turn", serr.Code)

	cerrado, err := fx.turnos.FindByID(ctx, turno.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TurnoCerrado, cerrado.Estado)
	assert.NotNil(t, cerrado.CerradoEn)
}

func TestCerrarPermiteReabrir(t *testing.T) {
	fx := newTurnoFixture(t)
	abrirTurno(t, fx, "5000")
	ctx := context.Background()

	_, err := fx.svc.Cerrar(ctx, dto.CerrarTurnoRequest{Operador: "ana"})
	require.NoError(t, err)

	nuevo, err := fx.svc.Abrir(ctx, dto.AbrirTurnoRequest{Operador: "beto", CajaInicial: d("2000")})
	require.NoError(t, err)
	assert.Equal(t, "2000", nuevo.Totales.Caja.String())
}
