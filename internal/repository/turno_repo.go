package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

type TurnoRepository interface {
	Create(ctx context.Context, t *model.Turno) error
	FindActivo(ctx context.Context) (*model.Turno, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Turno, error)
	Update(ctx context.Context, t *model.Turno) error
	AppendTransaccion(ctx context.Context, r *model.RegistroTransaccion) error
	ListTransacciones(ctx context.Context, turnoID uuid.UUID) ([]model.RegistroTransaccion, error)
	ListAll(ctx context.Context) ([]model.Turno, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type turnoRepo struct{ db *gorm.DB }

func NewTurnoRepository(db *gorm.DB) TurnoRepository { return &turnoRepo{db: db} }

func (r *turnoRepo) DB() *gorm.DB { return r.db }

func (r *turnoRepo) Create(ctx context.Context, t *model.Turno) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *turnoRepo) FindActivo(ctx context.Context) (*model.Turno, error) {
	var t model.Turno
	err := r.db.WithContext(ctx).Where("estado = ?", model.TurnoActivo).First(&t).Error
	return &t, err
}

func (r *turnoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Turno, error) {
	var t model.Turno
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *turnoRepo) Update(ctx context.Context, t *model.Turno) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// AppendTransaccion inserts a log row; rows are append-only.
func (r *turnoRepo) AppendTransaccion(ctx context.Context, reg *model.RegistroTransaccion) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *turnoRepo) ListTransacciones(ctx context.Context, turnoID uuid.UUID) ([]model.RegistroTransaccion, error) {
	var regs []model.RegistroTransaccion
	err := r.db.WithContext(ctx).
		Where("turno_id = ?", turnoID).
		Order("created_at ASC").
		Find(&regs).Error
	return regs, err
}

func (r *turnoRepo) ListAll(ctx context.Context) ([]model.Turno, error) {
	var ts []model.Turno
	err := r.db.WithContext(ctx).Order("abierto_en ASC").Find(&ts).Error
	return ts, err
}
