package dto

import "github.com/shopspring/decimal"

type CompraFilter struct {
	Fecha       string `form:"fecha"`
	EstadoID    string `form:"estado_id" validate:"omitempty,uuid"`
	ProveedorID string `form:"proveedor_id" validate:"omitempty,uuid"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ItemCompraRequest struct {
	ProductoID     string          `json:"producto_id" validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"    validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

type RegistrarCompraRequest struct {
	ProveedorID string              `json:"proveedor_id" validate:"required,uuid"`
	BancoID     string              `json:"banco_id"     validate:"required,uuid"`
	Credito     bool                `json:"credito"`
	Items       []ItemCompraRequest `json:"items" validate:"required,min=1,dive"`
}

type CrearAbonoCompraRequest struct {
	BancoID string          `json:"banco_id" validate:"required,uuid"`
	Monto   decimal.Decimal `json:"monto"    validate:"required"`
}

type ItemCompraResponse struct {
	Producto       string          `json:"producto"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
}

type AbonoCompraResponse struct {
	ID        string          `json:"id"`
	CompraID  string          `json:"compra_id"`
	BancoID   string          `json:"banco_id"`
	Monto     decimal.Decimal `json:"monto"`
	CreatedAt string          `json:"created_at"`
}

type CompraResponse struct {
	ID        string               `json:"id"`
	Proveedor string               `json:"proveedor"`
	Banco     string               `json:"banco"`
	Estado    string               `json:"estado"`
	Total     decimal.Decimal      `json:"total"`
	Saldo     decimal.Decimal      `json:"saldo"`
	Items     []ItemCompraResponse `json:"items"`
	CreatedAt string               `json:"created_at"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
