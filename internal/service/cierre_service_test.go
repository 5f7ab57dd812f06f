package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

func leerCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func turnoConLog(t *testing.T, turnos *fakeTurnoRepo, transacciones ...model.Transaccion) uuid.UUID {
	t.Helper()
	turnoID := uuid.New()
	turno := &model.Turno{ID: turnoID, Operador: "ana", Estado: model.TurnoActivo, AbiertoEn: time.Now()}
	require.NoError(t, turnos.Create(context.Background(), turno))
	for _, tx := range transacciones {
		reg, err := model.CodificarTransaccion(turnoID, tx)
		require.NoError(t, err)
		require.NoError(t, turnos.AppendTransaccion(context.Background(), reg))
	}
	return turnoID
}

// ── CSV ───────────────────────────────────────────────────────────────────────

func TestExportarTurnoCSVCabecera(t *testing.T) {
	turnos := newFakeTurnoRepo()
	svc := NewCierreService(newFakeCierreRepo(), turnos, fakePDF{}, newFakeCola())
	turnoID := turnoConLog(t, turnos)

	data, err := svc.ExportarTurnoCSV(context.Background(), turnoID)
	require.NoError(t, err)

	rows := leerCSV(t, data)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"Fecha", "Hora", "Tipo", "Recibo", "Cliente", "Origen",
		"Producto/Servicio", "Cantidad", "PrecioUnitario", "Subtotal",
		"MétodoPago", "MontoMétodo", "TotalTransacción",
	}, rows[0])
}

func TestExportarTurnoCSVDescomponePagoCombinado(t *testing.T) {
	turnos := newFakeTurnoRepo()
	svc := NewCierreService(newFakeCierreRepo(), turnos, fakePDF{}, newFakeCola())

	fecha := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	venta := &model.Venta{
		ID:           uuid.New(),
		NumeroRecibo: "VP-2026-000007",
		Cliente:      "club",
		Items: []model.ItemFactura{
			{Descripcion: "Gatorade", Cantidad: 2, PrecioUnitario: d("1500"), Subtotal: d("3000"), Origen: model.OrigenKiosco},
			{Descripcion: "Agua", Cantidad: 1, PrecioUnitario: d("800"), Subtotal: d("800"), Origen: model.OrigenKiosco},
		},
		Total:    d("3800"),
		Pago:     model.AsignacionPago{Efectivo: d("1800"), Transferencia: d("2000")},
		CreadaEn: fecha,
	}
	turnoID := turnoConLog(t, turnos, venta)

	data, err := svc.ExportarTurnoCSV(context.Background(), turnoID)
	require.NoError(t, err)

	// 2 items × 2 nonzero components = 4 rows plus the header.
	rows := leerCSV(t, data)
	require.Len(t, rows, 5)

	fila := rows[1]
	assert.Equal(t, "15/03/2026", fila[0])
	assert.Equal(t, "18:30", fila[1])
	assert.Equal(t, "Venta Kiosco", fila[2])
	assert.Equal(t, "VP-2026-000007", fila[3])
	assert.Equal(t, "Gatorade", fila[6])
	assert.Equal(t, "efectivo", fila[10])
	assert.Equal(t, "1800.00", fila[11])
	assert.Equal(t, "3800.00", fila[12])

	assert.Equal(t, "transferencia", rows[2][10])
	assert.Equal(t, "2000.00", rows[2][11])
	assert.Equal(t, "Agua", rows[3][6])
}

func TestExportarTurnoCSVRetiroConImporteNegativo(t *testing.T) {
	turnos := newFakeTurnoRepo()
	svc := NewCierreService(newFakeCierreRepo(), turnos, fakePDF{}, newFakeCola())

	retiro := &model.Retiro{
		ID:           uuid.New(),
		NumeroRecibo: "VP-2026-000008",
		RetiroID:     "RETIRO-0002",
		Monto:        d("3000"),
		Operador:     "ana",
		Motivo:       "pago proveedor",
		CreadaEn:     time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC),
	}
	turnoID := turnoConLog(t, turnos, retiro)

	data, err := svc.ExportarTurnoCSV(context.Background(), turnoID)
	require.NoError(t, err)

	rows := leerCSV(t, data)
	require.Len(t, rows, 2)
	fila := rows[1]
	assert.Equal(t, "Retiro", fila[2])
	assert.Equal(t, "pago proveedor", fila[6])
	// The method share is always positive; the transaction total keeps the sign.
	assert.Equal(t, "3000.00", fila[11])
	assert.Equal(t, "-3000.00", fila[12])
}

func TestExportarCSVRecorreTodosLosCierres(t *testing.T) {
	turnos := newFakeTurnoRepo()
	cierres := newFakeCierreRepo()
	svc := NewCierreService(cierres, turnos, fakePDF{}, newFakeCola())
	ctx := context.Background()

	apertura := &model.CajaInicial{
		ID: uuid.New(), NumeroRecibo: "VP-2026-000001", Monto: d("5000"),
		Operador: "ana", CreadaEn: time.Now(),
	}
	turnoID := turnoConLog(t, turnos, apertura)
	require.NoError(t, svc.Registrar(ctx, &model.CierreTurno{
		ID: uuid.New(), TurnoID: turnoID, Operador: "ana",
		InicioEn: time.Now(), FinEn: time.Now(), CantidadTransacciones: 1,
	}))

	data, err := svc.ExportarCSV(ctx)
	require.NoError(t, err)

	rows := leerCSV(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, "Caja Inicial", rows[1][2])
	assert.Equal(t, "Apertura de caja", rows[1][6])
}

// ── PDF / Email ───────────────────────────────────────────────────────────────

func TestGenerarPDFDeCierreInexistente(t *testing.T) {
	svc := NewCierreService(newFakeCierreRepo(), newFakeTurnoRepo(), fakePDF{}, newFakeCola())

	_, err := svc.GenerarPDF(context.Background(), uuid.New())

	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "closure-not-found", serr.Code)
}

func TestEnviarPorEmailEncola(t *testing.T) {
	turnos := newFakeTurnoRepo()
	cierres := newFakeCierreRepo()
	cola := newFakeCola()
	svc := NewCierreService(cierres, turnos, fakePDF{}, cola)
	ctx := context.Background()

	cierreID := uuid.New()
	require.NoError(t, svc.Registrar(ctx, &model.CierreTurno{
		ID: cierreID, TurnoID: uuid.New(), Operador: "ana",
		InicioEn: time.Now(), FinEn: time.Now(),
	}))

	require.NoError(t, svc.EnviarPorEmail(ctx, cierreID, "admin@villanuevapadel.com"))

	require.Len(t, cola.encolado[ColaEmail], 1)
	job := cola.encolado[ColaEmail][0].(EmailCierreJob)
	assert.Equal(t, cierreID, job.CierreID)
	assert.Equal(t, "admin@villanuevapadel.com", job.Email)
}

func TestListarRespetaElFiltro(t *testing.T) {
	cierres := newFakeCierreRepo()
	svc := NewCierreService(cierres, newFakeTurnoRepo(), fakePDF{}, newFakeCola())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Registrar(ctx, &model.CierreTurno{
			ID: uuid.New(), TurnoID: uuid.New(), Operador: "ana",
			InicioEn: time.Now(), FinEn: time.Now().Add(time.Duration(i) * time.Hour),
		}))
	}

	lista, total, err := svc.Listar(ctx, dto.CierreFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, lista, 3)
	// Most recent first.
	assert.True(t, strings.HasPrefix(lista[0].Operador, "ana"))
	assert.True(t, lista[0].FinEn.After(lista[2].FinEn))
}
