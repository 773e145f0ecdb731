package repository

import (
	"context"

	"garcolderp/internal/dto"
	"garcolderp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransaccionRepository persists the append-only audit ledger. Rows are never
// updated; deletion happens only as part of a workflow reversal, correlated by
// (origen_tipo, origen_id).
type TransaccionRepository interface {
	CreateTx(tx *gorm.DB, t *model.Transaccion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaccion, error)
	List(ctx context.Context, filter dto.TransaccionFilter) ([]model.Transaccion, int64, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DeleteByOrigenTx(tx *gorm.DB, origenTipo string, origenID uuid.UUID) error

	DB() *gorm.DB
}

type transaccionRepo struct{ db *gorm.DB }

func NewTransaccionRepository(db *gorm.DB) TransaccionRepository { return &transaccionRepo{db: db} }

func (r *transaccionRepo) DB() *gorm.DB { return r.db }

func (r *transaccionRepo) CreateTx(tx *gorm.DB, t *model.Transaccion) error {
	return tx.Create(t).Error
}

func (r *transaccionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaccion, error) {
	var t model.Transaccion
	err := r.db.WithContext(ctx).Preload("Banco").Preload("Tipo").First(&t, "id = ?", id).Error
	return &t, err
}

func (r *transaccionRepo) List(ctx context.Context, filter dto.TransaccionFilter) ([]model.Transaccion, int64, error) {
	var transacciones []model.Transaccion
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Transaccion{})

	if filter.BancoID != "" {
		q = q.Where("banco_id = ?", filter.BancoID)
	}
	if filter.TipoID != "" {
		q = q.Where("tipo_id = ?", filter.TipoID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Banco").Preload("Tipo").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&transacciones).Error

	return transacciones, total, err
}

func (r *transaccionRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Transaccion{}, "id = ?", id).Error
}

func (r *transaccionRepo) DeleteByOrigenTx(tx *gorm.DB, origenTipo string, origenID uuid.UUID) error {
	return tx.Where("origen_tipo = ? AND origen_id = ?", origenTipo, origenID).
		Delete(&model.Transaccion{}).Error
}
