package model

import "github.com/google/uuid"

// Estado is a lookup row for sale/purchase states. The required names are
// seeded at boot and resolved once into catalog.Catalogo — request-time code
// compares ids, never strings.
type Estado struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`
}

func (Estado) TableName() string { return "estados" }

// Required estado names. Matching is case-insensitive at load time.
const (
	EstadoVentaContado    = "venta contado"
	EstadoVentaCredito    = "venta credito"
	EstadoVentaCancelada  = "venta cancelada"
	EstadoCompraContado   = "compra contado"
	EstadoCompraCredito   = "compra credito"
	EstadoCompraCancelada = "compra cancelada"
)
