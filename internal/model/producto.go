package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NivelStock classifies the remaining stock of a product for reporting.
type NivelStock string

const (
	StockVacio NivelStock = "vacio"
	StockBajo  NivelStock = "bajo"
	StockMedio NivelStock = "medio"
	StockAlto  NivelStock = "alto"
)

// Producto is a kiosk catalog item. Stock never goes below zero.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Categoria   string    `gorm:"not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockActual int             `gorm:"not null;default:0"`
	StockMinimo int             `gorm:"not null;default:5"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Nivel buckets StockActual against StockMinimo.
func (p *Producto) Nivel() NivelStock {
	switch {
	case p.StockActual <= 0:
		return StockVacio
	case p.StockActual <= p.StockMinimo:
		return StockBajo
	case p.StockActual <= p.StockMinimo*3:
		return StockMedio
	default:
		return StockAlto
	}
}
