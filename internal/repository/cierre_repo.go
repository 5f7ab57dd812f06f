package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

type CierreRepository interface {
	Create(ctx context.Context, c *model.CierreTurno) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CierreTurno, error)
	List(ctx context.Context, filter dto.CierreFilter) ([]model.CierreTurno, int64, error)
	ListAll(ctx context.Context) ([]model.CierreTurno, error)
}

type cierreRepo struct{ db *gorm.DB }

func NewCierreRepository(db *gorm.DB) CierreRepository { return &cierreRepo{db: db} }

func (r *cierreRepo) Create(ctx context.Context, c *model.CierreTurno) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cierreRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CierreTurno, error) {
	var c model.CierreTurno
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *cierreRepo) List(ctx context.Context, filter dto.CierreFilter) ([]model.CierreTurno, int64, error) {
	var cierres []model.CierreTurno
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.CierreTurno{})
	if filter.Desde != "" {
		q = q.Where("DATE(fin_en) >= ?", filter.Desde)
	}
	if filter.Hasta != "" {
		q = q.Where("DATE(fin_en) <= ?", filter.Hasta)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("fin_en DESC").Offset(offset).Limit(filter.Limit).Find(&cierres).Error
	return cierres, total, err
}

func (r *cierreRepo) ListAll(ctx context.Context) ([]model.CierreTurno, error) {
	var cs []model.CierreTurno
	err := r.db.WithContext(ctx).Order("fin_en DESC").Find(&cs).Error
	return cs, err
}
