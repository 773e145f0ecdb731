package repository

import (
	"context"

	"garcolderp/internal/dto"
	"garcolderp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompraRepository interface {
	CreateTx(tx *gorm.DB, c *model.Compra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Compra, error)
	SaveTx(tx *gorm.DB, c *model.Compra) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error)

	CreateAbonoTx(tx *gorm.DB, a *model.AbonoCompra) error
	FindAbonoByID(ctx context.Context, id uuid.UUID) (*model.AbonoCompra, error)
	ListAbonos(ctx context.Context, compraID uuid.UUID) ([]model.AbonoCompra, error)
	DeleteAbonoTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) DB() *gorm.DB { return r.db }

func (r *compraRepo) CreateTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Create(c).Error
}

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Abonos").
		Preload("Proveedor").Preload("Banco").Preload("Estado").
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *compraRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "compras"}}).
		First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("compra_id = ?", id).Find(&c.Items).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("compra_id = ?", id).Find(&c.Abonos).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) SaveTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Omit("Items", "Abonos", "Proveedor", "Banco", "Estado").Save(c).Error
}

func (r *compraRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("compra_id = ?", id).Delete(&model.AbonoCompra{}).Error; err != nil {
		return err
	}
	if err := tx.Where("compra_id = ?", id).Delete(&model.CompraItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Compra{}, "id = ?", id).Error
}

func (r *compraRepo) List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	var compras []model.Compra
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Compra{})

	if filter.EstadoID != "" {
		q = q.Where("estado_id = ?", filter.EstadoID)
	}
	if filter.ProveedorID != "" {
		q = q.Where("proveedor_id = ?", filter.ProveedorID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items.Producto").Preload("Abonos").
		Preload("Proveedor").Preload("Banco").Preload("Estado").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&compras).Error

	return compras, total, err
}

func (r *compraRepo) CreateAbonoTx(tx *gorm.DB, a *model.AbonoCompra) error {
	return tx.Create(a).Error
}

func (r *compraRepo) FindAbonoByID(ctx context.Context, id uuid.UUID) (*model.AbonoCompra, error) {
	var a model.AbonoCompra
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *compraRepo) ListAbonos(ctx context.Context, compraID uuid.UUID) ([]model.AbonoCompra, error) {
	var abonos []model.AbonoCompra
	err := r.db.WithContext(ctx).Where("compra_id = ?", compraID).Order("created_at ASC").Find(&abonos).Error
	return abonos, err
}

func (r *compraRepo) DeleteAbonoTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.AbonoCompra{}, "id = ?", id).Error
}
