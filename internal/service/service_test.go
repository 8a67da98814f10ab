package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hoa-be-svc/internal/config"
	"hoa-be-svc/internal/models"
	"hoa-be-svc/pkg/logger"
)

// setupTestDB opens an isolated in-memory database with foreign key
// enforcement enabled so cascade rules behave like production
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.House{},
		&models.User{},
		&models.Vendor{},
		&models.VehiclePass{},
		&models.Alert{},
		&models.CCTVRequest{},
		&models.MonthlyDue{},
		&models.Payment{},
		&models.Complaint{},
	))
	return db
}

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}
}

func createTestHouse(t *testing.T, db *gorm.DB) *models.House {
	t.Helper()

	house := &models.House{
		HouseNumber: "12",
		BlockLot:    "B4-L7",
		Street:      "Acacia Street",
	}
	require.NoError(t, db.Create(house).Error)
	return house
}

func registerTestUser(t *testing.T, svc AuthService, email, residentID string) *models.User {
	t.Helper()

	user, err := svc.Register(RegisterInput{
		Email:      email,
		Name:       "Test Resident",
		ContactNo:  "09171234567",
		ResidentID: residentID,
		Password:   "s3cret-pass",
		Password2:  "s3cret-pass",
	})
	require.NoError(t, err)
	return user
}
