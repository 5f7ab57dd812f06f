package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

type ContadorRepository interface {
	// Incrementar advances the named counter atomically and returns the new
	// value. The row is created on first use.
	Incrementar(ctx context.Context, clave string) (int64, error)
	Valores(ctx context.Context) (map[string]int64, error)
	Restaurar(ctx context.Context, valores map[string]int64) error
}

type contadorRepo struct{ db *gorm.DB }

func NewContadorRepository(db *gorm.DB) ContadorRepository { return &contadorRepo{db: db} }

func (r *contadorRepo) Incrementar(ctx context.Context, clave string) (int64, error) {
	// Single-statement UPSERT so the counter is committed before the number
	// is handed out; crashing afterwards burns the number instead of
	// reusing it.
	var valor int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contadores (clave, valor) VALUES (?, 1)
		ON CONFLICT (clave) DO UPDATE SET valor = contadores.valor + 1
		RETURNING valor`, clave).Scan(&valor).Error
	return valor, err
}

func (r *contadorRepo) Valores(ctx context.Context) (map[string]int64, error) {
	var rows []model.Contador
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, c := range rows {
		out[c.Clave] = c.Valor
	}
	return out, nil
}

func (r *contadorRepo) Restaurar(ctx context.Context, valores map[string]int64) error {
	for clave, valor := range valores {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO contadores (clave, valor) VALUES (?, ?)
			ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor`, clave, valor).Error
		if err != nil {
			return err
		}
	}
	return nil
}
