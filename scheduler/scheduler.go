package scheduler

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StartDailyScheduler runs the job-posting sweep every day shortly after
// midnight.
func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:10 AM
	c.AddFunc("10 0 * * *", func() {
		log.Println("Running daily job posting sweep...")
		DeactivateExpiredJobs()
	})

	c.Start()
}

// DeactivateExpiredJobs flips isActive off on postings whose deadline has
// passed.
func DeactivateExpiredJobs() {
	result := configuration.DB.Model(&models.Job{}).
		Where("deadline < ? AND is_active = ?", time.Now(), true).
		Update("is_active", false)
	if result.Error != nil {
		log.Println("Error deactivating expired jobs:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Println("Deactivated expired job postings:", result.RowsAffected)
	}
}
