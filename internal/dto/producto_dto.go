package dto

import "github.com/shopspring/decimal"

// ProductoFilter is bound from query string of GET /v1/productos.
type ProductoFilter struct {
	Referencia string `form:"referencia"`
	Nombre     string `form:"nombre"`
	Activo     string `form:"activo"` // "false" | "all" | default activos
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CrearProductoRequest struct {
	Referencia   string          `json:"referencia" validate:"required,min=2"`
	Nombre       string          `json:"nombre" validate:"required,min=2"`
	Descripcion  *string         `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra" validate:"required,gt=0"`
	PrecioVenta  decimal.Decimal `json:"precio_venta" validate:"required,gt=0"`
	Cantidad     int             `json:"cantidad" validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre       string          `json:"nombre" validate:"omitempty,min=2"`
	Descripcion  *string         `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra" validate:"omitempty,gt=0"`
	PrecioVenta  decimal.Decimal `json:"precio_venta" validate:"omitempty,gt=0"`
}

type ProductoResponse struct {
	ID           string          `json:"id"`
	Referencia   string          `json:"referencia"`
	Nombre       string          `json:"nombre"`
	Descripcion  *string         `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	Cantidad     int             `json:"cantidad"`
	Activo       bool            `json:"activo"`
	CreatedAt    string          `json:"created_at"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ConsultaPrecioResponse is the public, cacheable price check payload.
type ConsultaPrecioResponse struct {
	Nombre          string          `json:"nombre"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	StockDisponible int             `json:"stock_disponible"`
}
