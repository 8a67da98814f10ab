package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hoa-be-svc/internal/config"
	"hoa-be-svc/internal/models"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection using the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &Database{DB: db}, nil
}

// AutoMigrate runs schema migration for all models
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.House{},
		&models.User{},
		&models.Vendor{},
		&models.VehiclePass{},
		&models.Alert{},
		&models.CCTVRequest{},
		&models.MonthlyDue{},
		&models.Payment{},
		&models.Complaint{},
	)
}

// Close closes the underlying database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
