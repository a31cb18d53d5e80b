package database

import (
	"log"

	"github.com/debaren/debaren-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Venue{},
		&models.GalleryImage{},
		&models.Account{},
		&models.Booking{},
		&models.WifiSpot{},
		&models.SchoolProgram{},
		&models.PopupVenue{},
		&models.About{},
		&models.HeroSection{},
		&models.FooterSocialLink{},
		&models.ContactMessage{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// The unique email index backs the atomic get-or-create used when
	// bookings provision accounts.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_email
		ON accounts (email)
	`)

	return db
}
