package infra

import (
	"fmt"

	"tramitesbackend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for the whole schema. TranslateError turns driver unique-violation errors
// into gorm.ErrDuplicatedKey so the services can map them to conflicts.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
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

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}

// RunMigrations is shared with the integration tests, which open their own
// throwaway database.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on Postgres < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.PrecioCliente{},
		&model.Tarjeta{},
		&model.Etiqueta{},
		&model.Proveedor{},
		&model.Cotizador{},
		&model.CotizadorPago{},
		&model.CargoNoRegistrado{},
		&model.Devolucion{},
		&model.RecepcionPago{},
		&model.Gasto{},
		&model.GastoRelacion{},
		&model.AjusteDeSaldo{},
		&model.UtilidadOcasional{},
		&model.Historial{},
	)
}
