package dto

import "github.com/shopspring/decimal"

type CrearPrestamoRequest struct {
	Nombre string          `json:"nombre" validate:"required,min=2"`
	Monto  decimal.Decimal `json:"monto" validate:"required"`
}

type PagoPrestamoRequest struct {
	BancoID string          `json:"banco_id" validate:"required,uuid"`
	Monto   decimal.Decimal `json:"monto" validate:"required"`
}

type PrestamoResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Monto     decimal.Decimal `json:"monto"`
	CreatedAt string          `json:"created_at"`
}

// PagoPrestamoResponse reports either the updated loan or its deletion when
// the payment zeroed out the outstanding amount.
type PagoPrestamoResponse struct {
	Eliminado bool              `json:"eliminado"`
	Prestamo  *PrestamoResponse `json:"prestamo,omitempty"`
}
