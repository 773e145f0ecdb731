package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from query string of GET /v1/ventas.
type VentaFilter struct {
	Fecha     string `form:"fecha"` // YYYY-MM-DD; empty = todas
	EstadoID  string `form:"estado_id" validate:"omitempty,uuid"`
	ClienteID string `form:"cliente_id" validate:"omitempty,uuid"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID     string          `json:"producto_id" validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"    validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

// RegistrarVentaRequest registra una venta. Credito true crea una cuenta por
// cobrar sobre el cliente; false registra una venta de contado que entra
// directo al banco.
type RegistrarVentaRequest struct {
	ClienteID string             `json:"cliente_id" validate:"required,uuid"`
	BancoID   string             `json:"banco_id"   validate:"required,uuid"`
	Credito   bool               `json:"credito"`
	Items     []ItemVentaRequest `json:"items" validate:"required,min=1,dive"`
}

type CrearAbonoVentaRequest struct {
	BancoID string          `json:"banco_id" validate:"required,uuid"`
	Monto   decimal.Decimal `json:"monto"    validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	Producto       string          `json:"producto"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
}

type AbonoVentaResponse struct {
	ID        string          `json:"id"`
	VentaID   string          `json:"venta_id"`
	BancoID   string          `json:"banco_id"`
	Monto     decimal.Decimal `json:"monto"`
	CreatedAt string          `json:"created_at"`
}

type VentaResponse struct {
	ID             string              `json:"id"`
	Cliente        string              `json:"cliente"`
	ClienteID      string              `json:"cliente_id"`
	Banco          string              `json:"banco"`
	Estado         string              `json:"estado"`
	Total          decimal.Decimal     `json:"total"`
	SaldoPendiente decimal.Decimal     `json:"saldo_pendiente"`
	Items          []ItemVentaResponse `json:"items"`
	CreatedAt      string              `json:"created_at"`
}

type GananciaItemResponse struct {
	ProductoID       string          `json:"producto_id"`
	Cantidad         int             `json:"cantidad"`
	GananciaUnitaria decimal.Decimal `json:"ganancia_unitaria"`
	Total            decimal.Decimal `json:"total"`
}

type GananciaResponse struct {
	VentaID string                 `json:"venta_id"`
	Monto   decimal.Decimal        `json:"monto"`
	Items   []GananciaItemResponse `json:"items"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
