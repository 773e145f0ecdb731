package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor carries no balance field: the payable of a credit purchase lives
// on the Compra row itself.
type Proveedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"index;not null"`
	Cuit      *string   `gorm:"uniqueIndex"`
	Telefono  *string
	Direccion *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Proveedor) TableName() string { return "proveedores" }
