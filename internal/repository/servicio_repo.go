package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

type ServicioRepository interface {
	Create(ctx context.Context, s *model.ServicioCancha) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ServicioCancha, error)
	List(ctx context.Context, soloActivos bool) ([]model.ServicioCancha, error)
	Update(ctx context.Context, s *model.ServicioCancha) error
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Create(ctx context.Context, s *model.ServicioCancha) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ServicioCancha, error) {
	var s model.ServicioCancha
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *servicioRepo) List(ctx context.Context, soloActivos bool) ([]model.ServicioCancha, error) {
	var ss []model.ServicioCancha
	q := r.db.WithContext(ctx).Order("nombre ASC")
	if soloActivos {
		q = q.Where("activo = true")
	}
	err := q.Find(&ss).Error
	return ss, err
}

func (r *servicioRepo) Update(ctx context.Context, s *model.ServicioCancha) error {
	return r.db.WithContext(ctx).Save(s).Error
}
