package dto

import "github.com/shopspring/decimal"

type GastoFilter struct {
	CategoriaID string `form:"categoria_id" validate:"omitempty,uuid"`
	Fecha       string `form:"fecha"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CrearGastoRequest struct {
	Descripcion string          `json:"descripcion" validate:"required,min=3"`
	Monto       decimal.Decimal `json:"monto" validate:"required"`
	BancoID     string          `json:"banco_id" validate:"required,uuid"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
}

type GastoResponse struct {
	ID          string          `json:"id"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Banco       string          `json:"banco"`
	Categoria   string          `json:"categoria"`
	CreatedAt   string          `json:"created_at"`
}

type GastoListResponse struct {
	Data  []GastoResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type CrearCategoriaGastoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2"`
}

type CategoriaGastoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
