package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fabricaFija(contadores *fakeContadorRepo) FabricaTransacciones {
	f := NewFabricaTransacciones(contadores, "VP").(*fabricaTransacciones)
	f.ahora = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	return f
}

func TestProximoReciboFormato(t *testing.T) {
	contadores := newFakeContadorRepo()
	fabrica := fabricaFija(contadores)

	recibo, err := fabrica.ProximoRecibo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "VP-2026-000001", recibo)

	recibo, err = fabrica.ProximoRecibo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "VP-2026-000002", recibo)
}

func TestProximoRetiroFormato(t *testing.T) {
	contadores := newFakeContadorRepo()
	fabrica := fabricaFija(contadores)

	id, err := fabrica.ProximoRetiro(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "RETIRO-0001", id)
}

func TestContadoresIndependientes(t *testing.T) {
	contadores := newFakeContadorRepo()
	fabrica := fabricaFija(contadores)
	ctx := context.Background()

	// Minting one kind never advances the others.
	for i := 0; i < 3; i++ {
		_, err := fabrica.ProximoRecibo(ctx)
		require.NoError(t, err)
	}
	retiro, err := fabrica.ProximoRetiro(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RETIRO-0001", retiro)

	lote, err := fabrica.ProximoLote(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, lote)

	valores, err := contadores.Valores(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), valores["recibos"])
	assert.Equal(t, int64(1), valores["retiros"])
	assert.Equal(t, int64(1), valores["lotes"])
}
