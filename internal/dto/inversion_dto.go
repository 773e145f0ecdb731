package dto

import "github.com/shopspring/decimal"

type CrearInversionRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=2"`
	Saldo       decimal.Decimal `json:"saldo" validate:"min=0"`
	BancoID     string          `json:"banco_id" validate:"required,uuid"`
	Vencimiento *string         `json:"vencimiento" validate:"omitempty,datetime=2006-01-02"`
}

// AgregarSaldoRequest credits an investment. Tipo "interes" has no bank leg;
// "aporte" moves the money out of the investment's bank.
type AgregarSaldoRequest struct {
	Tipo  string          `json:"tipo" validate:"required,oneof=interes aporte"`
	Monto decimal.Decimal `json:"monto" validate:"required"`
}

type RetirarInversionRequest struct {
	Monto decimal.Decimal `json:"monto" validate:"required"`
}

type InversionResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Saldo       decimal.Decimal `json:"saldo"`
	Banco       string          `json:"banco"`
	Vencimiento *string         `json:"vencimiento"`
	CreatedAt   string          `json:"created_at"`
}

// RetiroInversionResponse reports either the updated investment or its
// deletion when the withdrawal zeroed out the balance.
type RetiroInversionResponse struct {
	Eliminada bool               `json:"eliminada"`
	Inversion *InversionResponse `json:"inversion,omitempty"`
}
