package dto

import "github.com/shopspring/decimal"

type CrearBancoRequest struct {
	Nombre       string          `json:"nombre" validate:"required,min=2"`
	NumeroCuenta *string         `json:"numero_cuenta"`
	Saldo        decimal.Decimal `json:"saldo" validate:"min=0"`
}

type ActualizarBancoRequest struct {
	Nombre       string  `json:"nombre" validate:"omitempty,min=2"`
	NumeroCuenta *string `json:"numero_cuenta"`
}

type BancoResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	NumeroCuenta *string         `json:"numero_cuenta"`
	Saldo        decimal.Decimal `json:"saldo"`
	CreatedAt    string          `json:"created_at"`
}
