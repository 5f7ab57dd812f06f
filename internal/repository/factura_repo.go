package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

type FacturaRepository interface {
	Create(ctx context.Context, f *model.FacturaAbierta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FacturaAbierta, error)
	List(ctx context.Context) ([]model.FacturaAbierta, error)
	Update(ctx context.Context, f *model.FacturaAbierta) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAbiertas(ctx context.Context) (int64, error)
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) Create(ctx context.Context, f *model.FacturaAbierta) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *facturaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FacturaAbierta, error) {
	var f model.FacturaAbierta
	err := r.db.WithContext(ctx).First(&f, id).Error
	return &f, err
}

func (r *facturaRepo) List(ctx context.Context) ([]model.FacturaAbierta, error) {
	var fs []model.FacturaAbierta
	err := r.db.WithContext(ctx).Order("creada_en ASC").Find(&fs).Error
	return fs, err
}

func (r *facturaRepo) Update(ctx context.Context, f *model.FacturaAbierta) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *facturaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FacturaAbierta{}, id).Error
}

func (r *facturaRepo) CountAbiertas(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.FacturaAbierta{}).Count(&n).Error
	return n, err
}
