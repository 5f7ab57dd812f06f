package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

type ventaFixture struct {
	productos *fakeProductoRepo
	turnos    TurnoService
	svc       VentaService
}

func newVentaFixture(t *testing.T) *ventaFixture {
	t.Helper()
	productos := newFakeProductoRepo()
	turnosRepo := newFakeTurnoRepo()
	fabrica := fabricaFija(newFakeContadorRepo())
	cierreSv := NewCierreService(newFakeCierreRepo(), turnosRepo, fakePDF{}, newFakeCola())
	turnos := NewTurnoService(turnosRepo, fabrica, cierreSv, "2580")
	svc := NewVentaService(productos, turnos, fabrica)
	return &ventaFixture{productos: productos, turnos: turnos, svc: svc}
}

func (fx *ventaFixture) seed(t *testing.T, nombre, precio string, stock int) *model.Producto {
	t.Helper()
	p := &model.Producto{
		ID:          uuid.New(),
		Nombre:      nombre,
		Precio:      d(precio),
		StockActual: stock,
		Activo:      true,
	}
	require.NoError(t, fx.productos.Create(context.Background(), p))
	return p
}

// ── Registrar ─────────────────────────────────────────────────────────────────

func TestRegistrarVentaDescuentaStock(t *testing.T) {
	fx := newVentaFixture(t)
	ctx := context.Background()
	_, err := fx.turnos.Abrir(ctx, dto.AbrirTurnoRequest{Operador: "ana", CajaInicial: d("5000")})
	require.NoError(t, err)

	p := fx.seed(t, "Agua", "800", 5)
	venta, turno, err := fx.svc.Registrar(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: p.ID.String(), Cantidad: 3}},
		Pago:  dto.PagoRequest{Efectivo: d("2400")},
	})
	require.NoError(t, err)

	assert.Equal(t, "2400", venta.Total.String())
	assert.Equal(t, model.MetodoEfectivo, venta.Pago.Metodo())
	assert.Equal(t, "7400", turno.Totales.Caja.String())

	restante, err := fx.productos.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, restante.StockActual)
	require.Len(t, fx.productos.movimientos, 1)
	assert.Equal(t, "venta", fx.productos.movimientos[0].Tipo)
	assert.Equal(t, -3, fx.productos.movimientos[0].Cantidad)
}

func TestRegistrarVentaSinTurno(t *testing.T) {
	fx := newVentaFixture(t)
	p := fx.seed(t, "Agua", "800", 5)

	_, _, err := fx.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: p.ID.String(), Cantidad: 1}},
		Pago:  dto.PagoRequest{Efectivo: d("800")},
	})

	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "no-active-turn", serr.Code)
}

func TestRegistrarVentaStockInsuficiente(t *testing.T) {
	fx := newVentaFixture(t)
	ctx := context.Background()
	_, err := fx.turnos.Abrir(ctx, dto.AbrirTurnoRequest{Operador: "ana", CajaInicial: d("5000")})
	require.NoError(t, err)
	p := fx.seed(t, "Agua", "800", 1)

	_, _, err = fx.svc.Registrar(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: p.ID.String(), Cantidad: 2}},
		Pago:  dto.PagoRequest{Efectivo: d("1600")},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "insufficient-stock", verr.Code)

	// Nothing was charged.
	restante, err := fx.productos.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, restante.StockActual)
	turno, err := fx.turnos.Activo(ctx)
	require.NoError(t, err)
	assert.Len(t, turno.Transacciones, 1)
}

func TestRegistrarVentaProductoInactivo(t *testing.T) {
	fx := newVentaFixture(t)
	ctx := context.Background()
	_, err := fx.turnos.Abrir(ctx, dto.AbrirTurnoRequest{Operador: "ana", CajaInicial: d("5000")})
	require.NoError(t, err)

	p := fx.seed(t, "Agua", "800", 5)
	p.Activo = false
	require.NoError(t, fx.productos.Update(ctx, p))

	_, _, err = fx.svc.Registrar(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: p.ID.String(), Cantidad: 1}},
		Pago:  dto.PagoRequest{Efectivo: d("800")},
	})

	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "product-inactive", serr.Code)
}
