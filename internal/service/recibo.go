package service

import (
	"context"
	"fmt"
	"time"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/repository"
)

// Counter keys in the contadores table.
const (
	contadorRecibos = "recibos"
	contadorRetiros = "retiros"
	contadorLotes   = "lotes"
)

// FabricaTransacciones mints receipt and withdrawal identifiers from the
// persisted counters. The counter row is committed before the number is
// returned, so identifiers are unique across restarts even if the caller
// later fails and never uses it.
type FabricaTransacciones interface {
	// ProximoRecibo returns the next receipt number, e.g. "VP-2026-000042".
	ProximoRecibo(ctx context.Context) (string, error)
	// ProximoRetiro returns the next withdrawal id, e.g. "RETIRO-0007".
	ProximoRetiro(ctx context.Context) (string, error)
	// ProximoLote returns the next court invoice batch number.
	ProximoLote(ctx context.Context) (int, error)
}

type fabricaTransacciones struct {
	contadores repository.ContadorRepository
	prefijo    string
	ahora      func() time.Time
}

func NewFabricaTransacciones(contadores repository.ContadorRepository, prefijo string) FabricaTransacciones {
	return &fabricaTransacciones{contadores: contadores, prefijo: prefijo, ahora: time.Now}
}

func (f *fabricaTransacciones) ProximoRecibo(ctx context.Context) (string, error) {
	n, err := f.contadores.Incrementar(ctx, contadorRecibos)
	if err != nil {
		return "", fmt.Errorf("numerar recibo: %w", err)
	}
	return fmt.Sprintf("%s-%d-%06d", f.prefijo, f.ahora().Year(), n), nil
}

func (f *fabricaTransacciones) ProximoRetiro(ctx context.Context) (string, error) {
	n, err := f.contadores.Incrementar(ctx, contadorRetiros)
	if err != nil {
		return "", fmt.Errorf("numerar retiro: %w", err)
	}
	return fmt.Sprintf("RETIRO-%04d", n), nil
}

func (f *fabricaTransacciones) ProximoLote(ctx context.Context) (int, error) {
	n, err := f.contadores.Incrementar(ctx, contadorLotes)
	if err != nil {
		return 0, fmt.Errorf("numerar lote: %w", err)
	}
	return int(n), nil
}
