package infra

import (
	"fmt"

	"garcolderp/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// gen_random_uuid() needs pgcrypto on Postgres < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return nil, fmt.Errorf("pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Banco{},
		&model.Cliente{},
		&model.Proveedor{},
		&model.Producto{},
		&model.Estado{},
		&model.TipoTransaccion{},
		&model.Venta{},
		&model.VentaItem{},
		&model.AbonoVenta{},
		&model.Ganancia{},
		&model.GananciaItem{},
		&model.Compra{},
		&model.CompraItem{},
		&model.AbonoCompra{},
		&model.Transaccion{},
		&model.CategoriaGasto{},
		&model.Gasto{},
		&model.Prestamo{},
		&model.Inversion{},
		&model.Usuario{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// Seed inserts the catalog rows every deployment needs (sale / purchase
// estados and the transaction tipos) plus a default admin user when the
// usuarios table is empty. Idempotent: existing rows are left alone.
func Seed(db *gorm.DB) error {
	estados := []string{
		model.EstadoVentaContado,
		model.EstadoVentaCredito,
		model.EstadoVentaCancelada,
		model.EstadoCompraContado,
		model.EstadoCompraCredito,
		model.EstadoCompraCancelada,
	}
	for _, nombre := range estados {
		var count int64
		if err := db.Model(&model.Estado{}).Where("LOWER(nombre) = LOWER(?)", nombre).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&model.Estado{Nombre: nombre}).Error; err != nil {
				return fmt.Errorf("seed estado %q: %w", nombre, err)
			}
		}
	}

	tipos := []string{
		model.TipoIngreso,
		model.TipoRetiro,
		model.TipoPagoVenta,
		model.TipoPagoCompra,
		model.TipoGasto,
		model.TipoAporteInversion,
		model.TipoInteresInversion,
	}
	for _, nombre := range tipos {
		var count int64
		if err := db.Model(&model.TipoTransaccion{}).Where("LOWER(nombre) = LOWER(?)", nombre).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&model.TipoTransaccion{Nombre: nombre}).Error; err != nil {
				return fmt.Errorf("seed tipo %q: %w", nombre, err)
			}
		}
	}

	var usuarios int64
	if err := db.Model(&model.Usuario{}).Count(&usuarios).Error; err != nil {
		return err
	}
	if usuarios == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
		if err != nil {
			return err
		}
		admin := &model.Usuario{
			Username:     "admin",
			Nombre:       "Administrador",
			PasswordHash: string(hash),
			Rol:          "admin",
			Activo:       true,
		}
		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
	}

	return nil
}
