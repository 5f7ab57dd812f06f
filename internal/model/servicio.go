package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServicioCancha is a court service (rental, lights, classes). The listed
// price is a suggestion: the operator may override it per line item.
type ServicioCancha struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"index;not null"`
	Categoria string    `gorm:"not null"`
	Precio    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Activo    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ServicioCancha) TableName() string { return "servicios_cancha" }
