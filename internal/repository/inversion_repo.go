package repository

import (
	"context"

	"garcolderp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InversionRepository interface {
	Create(ctx context.Context, i *model.Inversion) error
	CreateTx(tx *gorm.DB, i *model.Inversion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Inversion, error)
	List(ctx context.Context) ([]model.Inversion, error)
	Update(ctx context.Context, i *model.Inversion) error

	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Inversion, error)
	SaveTx(tx *gorm.DB, i *model.Inversion) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type inversionRepo struct{ db *gorm.DB }

func NewInversionRepository(db *gorm.DB) InversionRepository { return &inversionRepo{db: db} }

func (r *inversionRepo) Create(ctx context.Context, i *model.Inversion) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *inversionRepo) CreateTx(tx *gorm.DB, i *model.Inversion) error {
	return tx.Create(i).Error
}

func (r *inversionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Inversion, error) {
	var i model.Inversion
	err := r.db.WithContext(ctx).Preload("Banco").First(&i, "id = ?", id).Error
	return &i, err
}

func (r *inversionRepo) List(ctx context.Context) ([]model.Inversion, error) {
	var inversiones []model.Inversion
	err := r.db.WithContext(ctx).Preload("Banco").Order("created_at DESC").Find(&inversiones).Error
	return inversiones, err
}

func (r *inversionRepo) Update(ctx context.Context, i *model.Inversion) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *inversionRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Inversion, error) {
	var i model.Inversion
	err := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "inversiones"}}).
		First(&i, "id = ?", id).Error
	return &i, err
}

func (r *inversionRepo) SaveTx(tx *gorm.DB, i *model.Inversion) error {
	return tx.Omit("Banco").Save(i).Error
}

func (r *inversionRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Inversion{}, "id = ?", id).Error
}

func (r *inversionRepo) DB() *gorm.DB { return r.db }
