package configuration

import (
	"betteru-backend/models"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// initializing db connection
func ConfigDB() {
	dsn := os.Getenv("DB")
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to the database: ", err)
	}

	Migrate(DB)
}

// Migrate runs AutoMigrate for all models. Kept separate so tests can run it
// against their own database handle.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.DoctorApplication{},
		&models.ExpertProfile{},
		&models.Notification{},
		&models.Appointment{},
		&models.Mood{},
	)
}
