package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
)

type fakeNube struct {
	habilitado bool
	pushes     int
}

func (n *fakeNube) Push(context.Context, []byte) error { n.pushes++; return nil }
func (n *fakeNube) Habilitado() bool                   { return n.habilitado }

func newBackupFixture(nube *fakeNube, cola *fakeCola) BackupService {
	return NewBackupService(
		nil,
		newFakeTurnoRepo(),
		newFakeCierreRepo(),
		newFakeFacturaRepo(),
		newFakeProductoRepo(),
		newFakeServicioRepo(),
		newFakeContadorRepo(),
		nube, cola, 30,
	)
}

func TestImportarRechazaVersionDesconocida(t *testing.T) {
	svc := newBackupFixture(&fakeNube{}, newFakeCola())

	err := svc.Importar(context.Background(), &dto.Snapshot{Version: dto.SnapshotVersion + 1})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "snapshot-version", verr.Code)
}

func TestProgramarEncolaUnJob(t *testing.T) {
	cola := newFakeCola()
	svc := newBackupFixture(&fakeNube{}, cola)

	require.NoError(t, svc.Programar(context.Background()))
	assert.Len(t, cola.encolado[ColaBackup], 1)
}

func TestEjecutarSinNubeHabilitadaEsNoOp(t *testing.T) {
	nube := &fakeNube{habilitado: false}
	svc := newBackupFixture(nube, newFakeCola())

	require.NoError(t, svc.Ejecutar(context.Background()))
	assert.Zero(t, nube.pushes)
}

func TestEstadoReportaIntervaloYHabilitacion(t *testing.T) {
	svc := newBackupFixture(&fakeNube{habilitado: true}, newFakeCola())

	estado := svc.Estado()
	assert.True(t, estado.Habilitado)
	assert.Equal(t, 30, estado.IntervaloMins)
	assert.Empty(t, estado.UltimoBackup)
	assert.Empty(t, estado.UltimoError)
}
