package dto

import "github.com/shopspring/decimal"

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type ActualizarClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"omitempty,min=2"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type ClienteResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Telefono  *string         `json:"telefono"`
	Direccion *string         `json:"direccion"`
	Saldo     decimal.Decimal `json:"saldo"`
	CreatedAt string          `json:"created_at"`
}

type CrearProveedorRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2"`
	Cuit      *string `json:"cuit"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type ActualizarProveedorRequest struct {
	Nombre    string  `json:"nombre" validate:"omitempty,min=2"`
	Cuit      *string `json:"cuit"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type ProveedorResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Cuit      *string `json:"cuit"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	CreatedAt string  `json:"created_at"`
}
