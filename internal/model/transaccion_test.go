package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestImporteDeConservaElSigno(t *testing.T) {
	venta := &Venta{Total: d("3800")}
	assert.Equal(t, "3800", ImporteDe(venta).String())

	retiro := &Retiro{Monto: d("3000")}
	assert.Equal(t, "-3000", ImporteDe(retiro).String())

	apertura := &CajaInicial{Monto: d("5000")}
	assert.Equal(t, "5000", ImporteDe(apertura).String())
}

func TestAsignacionDeRetiroEsEfectivoNegativo(t *testing.T) {
	retiro := &Retiro{Monto: d("3000")}
	a := AsignacionDe(retiro)

	assert.Equal(t, "-3000", a.Efectivo.String())
	assert.True(t, a.Transferencia.IsZero())
	assert.True(t, a.Expensa.IsZero())
	assert.Equal(t, "-3000", a.Suma().String())
}

func TestMetodoCombinado(t *testing.T) {
	a := AsignacionPago{Efectivo: d("100"), Expensa: d("200")}
	assert.Equal(t, MetodoCombinado, a.Metodo())

	solo := AsignacionPago{Transferencia: d("300")}
	assert.Equal(t, MetodoTransferencia, solo.Metodo())
}

func TestRecalcularReconstruyeTotales(t *testing.T) {
	turno := &Turno{
		Totales: TotalesTurno{Caja: d("999999")}, // stale, must be discarded
		Transacciones: []Transaccion{
			&CajaInicial{Monto: d("5000")},
			&Venta{Total: d("1200"), Pago: AsignacionPago{Efectivo: d("1200")}},
			&Retiro{Monto: d("3000")},
		},
	}
	turno.Recalcular()

	assert.Equal(t, "3200", turno.Totales.Caja.String())
	assert.Equal(t, "3200", turno.Totales.General.String())
}

func TestCodificarDecodificarIdaYVuelta(t *testing.T) {
	turnoID := uuid.New()
	fecha := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	casos := []struct {
		tipo TipoTransaccion
		tx   Transaccion
	}{
		{TipoVenta, &Venta{
			ID: uuid.New(), NumeroRecibo: "VP-2026-000001",
			Items:    []ItemFactura{{ID: uuid.New(), Descripcion: "Agua", Cantidad: 1, PrecioUnitario: d("800"), Subtotal: d("800"), Origen: OrigenKiosco}},
			Total:    d("800"),
			Pago:     AsignacionPago{Efectivo: d("800")},
			CreadaEn: fecha,
		}},
		{TipoFacturaCancha, &FacturaCancha{
			ID: uuid.New(), NumeroRecibo: "VP-2026-000002",
			FacturaAbiertaID: uuid.New(), Cancha: "Cancha 1", Cliente: "club", NumeroLote: 7,
			Total: d("15000"), Pago: AsignacionPago{Transferencia: d("15000")}, CreadaEn: fecha,
		}},
		{TipoRetiro, &Retiro{
			ID: uuid.New(), NumeroRecibo: "VP-2026-000003", RetiroID: "RETIRO-0001",
			Monto: d("3000"), Operador: "ana", Motivo: "pago proveedor", CreadaEn: fecha,
		}},
		{TipoCajaInicial, &CajaInicial{
			ID: uuid.New(), NumeroRecibo: "VP-2026-000004",
			Monto: d("5000"), Operador: "ana", CreadaEn: fecha,
		}},
	}

	for _, caso := range casos {
		reg, err := CodificarTransaccion(turnoID, caso.tx)
		require.NoError(t, err)
		assert.Equal(t, caso.tipo, reg.Tipo)
		assert.Equal(t, turnoID, reg.TurnoID)

		vuelta, err := reg.Decodificar()
		require.NoError(t, err)
		assert.Equal(t, ImporteDe(caso.tx).String(), ImporteDe(vuelta).String())
		assert.Equal(t, ReciboDe(caso.tx), ReciboDe(vuelta))
		assert.True(t, FechaDe(vuelta).Equal(fecha))
	}
}

func TestDecodificarTipoDesconocido(t *testing.T) {
	reg := &RegistroTransaccion{ID: uuid.New(), Tipo: "ajuste", Payload: []byte("{}")}
	_, err := reg.Decodificar()
	assert.Error(t, err)
}
