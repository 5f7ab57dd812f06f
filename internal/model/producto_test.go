package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNivelDeStock(t *testing.T) {
	p := &Producto{StockMinimo: 5}

	p.StockActual = 0
	assert.Equal(t, StockVacio, p.Nivel())

	p.StockActual = 5
	assert.Equal(t, StockBajo, p.Nivel())

	p.StockActual = 15
	assert.Equal(t, StockMedio, p.Nivel())

	p.StockActual = 16
	assert.Equal(t, StockAlto, p.Nivel())
}

func TestRecalcularTotalDeFactura(t *testing.T) {
	f := &FacturaAbierta{Items: []ItemFactura{
		{Cantidad: 2, PrecioUnitario: d("1500")},
		{Cantidad: 1, PrecioUnitario: d("12000")},
	}}
	f.RecalcularTotal()

	assert.Equal(t, "3000", f.Items[0].Subtotal.String())
	assert.Equal(t, "15000", f.Total.String())
}
