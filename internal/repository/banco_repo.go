package repository

import (
	"context"

	"garcolderp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BancoRepository defines the data access contract for banks.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type BancoRepository interface {
	Create(ctx context.Context, b *model.Banco) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Banco, error)
	List(ctx context.Context) ([]model.Banco, error)
	Update(ctx context.Context, b *model.Banco) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside workflow transactions — callers must pass the tx instance.
	// FindByIDForUpdateTx takes a SELECT ... FOR UPDATE row lock so the
	// read-modify-write on Saldo serializes across concurrent requests.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Banco, error)
	SaveTx(tx *gorm.DB, b *model.Banco) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type bancoRepo struct{ db *gorm.DB }

func NewBancoRepository(db *gorm.DB) BancoRepository { return &bancoRepo{db: db} }

func (r *bancoRepo) Create(ctx context.Context, b *model.Banco) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bancoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Banco, error) {
	var b model.Banco
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *bancoRepo) List(ctx context.Context) ([]model.Banco, error) {
	var bancos []model.Banco
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&bancos).Error
	return bancos, err
}

func (r *bancoRepo) Update(ctx context.Context, b *model.Banco) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *bancoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Banco{}, "id = ?", id).Error
}

func (r *bancoRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Banco, error) {
	var b model.Banco
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *bancoRepo) SaveTx(tx *gorm.DB, b *model.Banco) error {
	return tx.Save(b).Error
}

func (r *bancoRepo) DB() *gorm.DB { return r.db }
