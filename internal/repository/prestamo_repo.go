package repository

import (
	"context"

	"garcolderp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PrestamoRepository interface {
	Create(ctx context.Context, p *model.Prestamo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Prestamo, error)
	List(ctx context.Context) ([]model.Prestamo, error)
	Update(ctx context.Context, p *model.Prestamo) error

	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Prestamo, error)
	SaveTx(tx *gorm.DB, p *model.Prestamo) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type prestamoRepo struct{ db *gorm.DB }

func NewPrestamoRepository(db *gorm.DB) PrestamoRepository { return &prestamoRepo{db: db} }

func (r *prestamoRepo) Create(ctx context.Context, p *model.Prestamo) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *prestamoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Prestamo, error) {
	var p model.Prestamo
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *prestamoRepo) List(ctx context.Context) ([]model.Prestamo, error) {
	var prestamos []model.Prestamo
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&prestamos).Error
	return prestamos, err
}

func (r *prestamoRepo) Update(ctx context.Context, p *model.Prestamo) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *prestamoRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Prestamo, error) {
	var p model.Prestamo
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *prestamoRepo) SaveTx(tx *gorm.DB, p *model.Prestamo) error {
	return tx.Save(p).Error
}

func (r *prestamoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Prestamo{}, "id = ?", id).Error
}

func (r *prestamoRepo) DB() *gorm.DB { return r.db }
