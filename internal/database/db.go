package database

import (
	"log"

	"github.com/google/uuid"
	"github.com/jobnest/jobnest/internal/config"
	"github.com/jobnest/jobnest/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection, verifies it, and runs migrations.
// Any failure here terminates the process: the server must not start
// serving without its storage. The returned handle is shared read-only
// across all requests for the lifetime of the process.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initial connectivity check, the equivalent of pinging the deployment.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access underlying connection:", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Database ping failed:", err)
	}
	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.Job{}, &models.Bid{}, &models.Category{}); err != nil {
		log.Fatal("Migration failed:", err)
	}

	seedCategories(db)
	return db
}

// seedCategories populates the category catalog on first boot. The catalog
// is read-only reference data with no mutation path, so seeding is the only
// way rows get in.
func seedCategories(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to inspect categories:", err)
	}
	if count > 0 {
		return
	}

	names := []string{"On Site Job", "Remote Job", "Hybrid", "Part Time Job"}
	for _, name := range names {
		if err := db.Create(&models.Category{ID: uuid.NewString(), Name: name}).Error; err != nil {
			log.Fatal("Failed to seed categories:", err)
		}
	}
	log.Println("Seeded category catalog")
}
