package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

// ProductoRepository defines the data access contract for kiosk products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory fakes.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, soloActivos bool) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error

	// AjustarStock incrementa o decrementa stock_actual, sin bajar de cero.
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) error

	CreateMovimiento(ctx context.Context, m *model.MovimientoStock) error
	ListMovimientos(ctx context.Context, productoID uuid.UUID) ([]model.MovimientoStock, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, soloActivos bool) ([]model.Producto, error) {
	var ps []model.Producto
	q := r.db.WithContext(ctx).Order("nombre ASC")
	if soloActivos {
		q = q.Where("activo = true")
	}
	err := q.Find(&ps).Error
	return ps, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) AjustarStock(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).
		Update("stock_actual", gorm.Expr("GREATEST(stock_actual + ?, 0)", delta)).Error
}

func (r *productoRepo) CreateMovimiento(ctx context.Context, m *model.MovimientoStock) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *productoRepo) ListMovimientos(ctx context.Context, productoID uuid.UUID) ([]model.MovimientoStock, error) {
	var ms []model.MovimientoStock
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("created_at DESC").
		Find(&ms).Error
	return ms, err
}
