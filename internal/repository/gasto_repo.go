package repository

import (
	"context"

	"garcolderp/internal/dto"
	"garcolderp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GastoRepository interface {
	CreateTx(tx *gorm.DB, g *model.Gasto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Gasto, error)
	List(ctx context.Context, filter dto.GastoFilter) ([]model.Gasto, int64, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// Categorias
	CreateCategoria(ctx context.Context, c *model.CategoriaGasto) error
	FindCategoriaByID(ctx context.Context, id uuid.UUID) (*model.CategoriaGasto, error)
	ListCategorias(ctx context.Context) ([]model.CategoriaGasto, error)
	DeleteCategoria(ctx context.Context, id uuid.UUID) error

	DB() *gorm.DB
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) DB() *gorm.DB { return r.db }

func (r *gastoRepo) CreateTx(tx *gorm.DB, g *model.Gasto) error {
	return tx.Create(g).Error
}

func (r *gastoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Gasto, error) {
	var g model.Gasto
	err := r.db.WithContext(ctx).Preload("Banco").Preload("Categoria").First(&g, "id = ?", id).Error
	return &g, err
}

func (r *gastoRepo) List(ctx context.Context, filter dto.GastoFilter) ([]model.Gasto, int64, error) {
	var gastos []model.Gasto
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Gasto{})

	if filter.CategoriaID != "" {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Banco").Preload("Categoria").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&gastos).Error

	return gastos, total, err
}

func (r *gastoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Gasto{}, "id = ?", id).Error
}

func (r *gastoRepo) CreateCategoria(ctx context.Context, c *model.CategoriaGasto) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gastoRepo) FindCategoriaByID(ctx context.Context, id uuid.UUID) (*model.CategoriaGasto, error) {
	var c model.CategoriaGasto
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *gastoRepo) ListCategorias(ctx context.Context) ([]model.CategoriaGasto, error) {
	var categorias []model.CategoriaGasto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&categorias).Error
	return categorias, err
}

func (r *gastoRepo) DeleteCategoria(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CategoriaGasto{}, "id = ?", id).Error
}
