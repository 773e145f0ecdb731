package repository

import (
	"context"
	"errors"

	"garcolderp/internal/dto"
	"garcolderp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Venta, error)
	SaveTx(tx *gorm.DB, v *model.Venta) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)

	// Abonos
	CreateAbonoTx(tx *gorm.DB, a *model.AbonoVenta) error
	FindAbonoByID(ctx context.Context, id uuid.UUID) (*model.AbonoVenta, error)
	ListAbonos(ctx context.Context, ventaID uuid.UUID) ([]model.AbonoVenta, error)
	DeleteAbonoTx(tx *gorm.DB, id uuid.UUID) error

	// Ganancias — created alongside the sale, deleted alongside it
	CreateGananciaTx(tx *gorm.DB, g *model.Ganancia) error
	FindGananciaByVentaID(ctx context.Context, ventaID uuid.UUID) (*model.Ganancia, error)
	DeleteGananciaByVentaTx(tx *gorm.DB, ventaID uuid.UUID) error

	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Abonos").
		Preload("Cliente").Preload("Banco").Preload("Estado").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	// Lock only the ventas row; associations are loaded without locks.
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "ventas"}}).
		First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("venta_id = ?", id).Find(&v.Items).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("venta_id = ?", id).Find(&v.Abonos).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) SaveTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Omit("Items", "Abonos", "Cliente", "Banco", "Estado").Save(v).Error
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("venta_id = ?", id).Delete(&model.AbonoVenta{}).Error; err != nil {
		return err
	}
	if err := tx.Where("venta_id = ?", id).Delete(&model.VentaItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Venta{}, "id = ?", id).Error
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Venta{})

	if filter.EstadoID != "" {
		q = q.Where("estado_id = ?", filter.EstadoID)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items.Producto").Preload("Abonos").
		Preload("Cliente").Preload("Banco").Preload("Estado").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error

	return ventas, total, err
}

func (r *ventaRepo) CreateAbonoTx(tx *gorm.DB, a *model.AbonoVenta) error {
	return tx.Create(a).Error
}

func (r *ventaRepo) FindAbonoByID(ctx context.Context, id uuid.UUID) (*model.AbonoVenta, error) {
	var a model.AbonoVenta
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *ventaRepo) ListAbonos(ctx context.Context, ventaID uuid.UUID) ([]model.AbonoVenta, error) {
	var abonos []model.AbonoVenta
	err := r.db.WithContext(ctx).Where("venta_id = ?", ventaID).Order("created_at ASC").Find(&abonos).Error
	return abonos, err
}

func (r *ventaRepo) DeleteAbonoTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.AbonoVenta{}, "id = ?", id).Error
}

func (r *ventaRepo) CreateGananciaTx(tx *gorm.DB, g *model.Ganancia) error {
	return tx.Create(g).Error
}

func (r *ventaRepo) FindGananciaByVentaID(ctx context.Context, ventaID uuid.UUID) (*model.Ganancia, error) {
	var g model.Ganancia
	err := r.db.WithContext(ctx).Preload("Items").Where("venta_id = ?", ventaID).First(&g).Error
	return &g, err
}

func (r *ventaRepo) DeleteGananciaByVentaTx(tx *gorm.DB, ventaID uuid.UUID) error {
	var g model.Ganancia
	err := tx.Where("venta_id = ?", ventaID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := tx.Where("ganancia_id = ?", g.ID).Delete(&model.GananciaItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Ganancia{}, "id = ?", g.ID).Error
}
