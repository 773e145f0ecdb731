package dto

import "github.com/shopspring/decimal"

type TransaccionFilter struct {
	BancoID string `form:"banco_id" validate:"omitempty,uuid"`
	TipoID  string `form:"tipo_id"  validate:"omitempty,uuid"`
	Fecha   string `form:"fecha"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// CrearTransaccionManualRequest registers a manual bank movement.
// Tipo "ingreso" adds to the bank; "retiro" withdraws from it;
// "abono_saldo" registers a direct receivable payment from a customer
// (bank grows, customer's saldo shrinks) — ClienteID is required then.
type CrearTransaccionManualRequest struct {
	BancoID     string          `json:"banco_id" validate:"required,uuid"`
	Tipo        string          `json:"tipo" validate:"required,oneof=ingreso retiro abono_saldo"`
	Monto       decimal.Decimal `json:"monto" validate:"required"`
	Descripcion string          `json:"descripcion" validate:"required,min=3"`
	ClienteID   *string         `json:"cliente_id" validate:"omitempty,uuid"`
}

type TransaccionResponse struct {
	ID          string          `json:"id"`
	Banco       string          `json:"banco"`
	BancoID     string          `json:"banco_id"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	EsAuto      bool            `json:"es_auto"`
	OrigenTipo  string          `json:"origen_tipo"`
	OrigenID    *string         `json:"origen_id"`
	CreatedAt   string          `json:"created_at"`
}

type TransaccionListResponse struct {
	Data  []TransaccionResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
