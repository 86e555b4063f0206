package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type applyRequest struct {
	JobID          uint   `json:"job_id" validate:"required"`
	FullName       string `json:"full_name" validate:"required"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization" validate:"required"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	PassingYear    string `json:"passing_year"`
	NationalID     string `json:"national_id"`
}

// Apply submits a doctor application against an active job posting.
func Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	applicantID := c.GetUint("userID")
	if applicantID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var job models.Job
	if err := configuration.DB.First(&job, req.JobID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if !job.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This job posting is no longer active"})
		return
	}

	// One application per applicant per job. The composite unique index backs
	// this check against concurrent submissions.
	var existing models.DoctorApplication
	if err := configuration.DB.Where("applicant_id = ? AND job_id = ?", applicantID, req.JobID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already applied for this job"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing applications"})
		return
	}

	application := models.DoctorApplication{
		ApplicantID:    applicantID,
		JobID:          req.JobID,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Degree:         req.Degree,
		Institution:    req.Institution,
		PassingYear:    req.PassingYear,
		NationalID:     req.NationalID,
		Status:         "pending",
	}

	if err := configuration.DB.Create(&application).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already applied for this job"})
		return
	}

	// Notification delivery is best-effort and never fails the submission.
	notifyAdmins(application)

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Application submitted successfully",
		"data":    application,
	})
}

// View applications, optionally filtered by status
func ViewApplications(c *gin.Context) {
	var applications []models.DoctorApplication

	query := configuration.DB.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching applications list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Applications list fetched successfully",
		"data":    applications,
	})
}

// ApproveApplication promotes the applicant to doctor, creates the expert
// profile and marks the application approved, as one transaction.
func ApproveApplication(c *gin.Context) {
	adminID := c.GetUint("userID")
	applicationID := c.Param("id")

	var application models.DoctorApplication
	if err := configuration.DB.First(&application, applicationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if application.Status == "approved" {
		c.JSON(http.StatusConflict, gin.H{"error": "Application has already been approved"})
		return
	}

	var applicant models.User
	if err := configuration.DB.First(&applicant, application.ApplicantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Applicant account no longer exists"})
		return
	}

	var existingProfile models.ExpertProfile
	if err := configuration.DB.Where("user_id = ?", applicant.ID).First(&existingProfile).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An expert profile already exists for this user"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check expert profile"})
		return
	}

	years := calculateExperience(application.PassingYear)
	profile := models.ExpertProfile{
		UserID:            applicant.ID,
		Specialization:    application.Specialization,
		LicenseNumber:     buildLicenseNumber(application.NationalID),
		YearsOfExperience: years,
		Bio:               buildExpertBio(application, years),
	}

	err := configuration.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		if err := tx.Model(&applicant).Update("role", "doctor").Error; err != nil {
			return err
		}
		if err := tx.Model(&application).Update("status", "approved").Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve application"})
		return
	}

	if err := createNotification(applicant.ID, adminID, models.NotificationApplicationApproved,
		"Congratulations! Your doctor application has been approved.", application.ID); err != nil {
		log.Println("Failed to create approval notification:", err)
	}

	// Promoted doctors change the public expert directory
	if err := configuration.DeleteRedis(expertsCacheKey); err != nil {
		log.Println("Failed to invalidate experts cache:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Application approved successfully",
		"data":    profile,
	})
}

// RejectApplication marks the application rejected and notifies the applicant.
func RejectApplication(c *gin.Context) {
	adminID := c.GetUint("userID")
	applicationID := c.Param("id")

	var application models.DoctorApplication
	if err := configuration.DB.First(&application, applicationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if err := configuration.DB.Model(&application).Update("status", "rejected").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject application"})
		return
	}

	if err := createNotification(application.ApplicantID, adminID, models.NotificationApplicationRejected,
		"Your doctor application has been rejected.", application.ID); err != nil {
		log.Println("Failed to create rejection notification:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Application rejected",
		"data":    application,
	})
}

// notifyAdmins fans out a job_application notification to every admin.
// Failures are logged, never propagated.
func notifyAdmins(application models.DoctorApplication) {
	var admins []models.User
	if err := configuration.DB.Where("role = ?", "admin").Find(&admins).Error; err != nil {
		log.Println("Failed to fetch admins for notification:", err)
		return
	}
	message := fmt.Sprintf("%s submitted a new doctor application.", application.FullName)
	for _, admin := range admins {
		if err := createNotification(admin.ID, application.ApplicantID, models.NotificationJobApplication, message, application.ID); err != nil {
			log.Println("Failed to create admin notification:", err)
		}
	}
}

// calculateExperience derives years of experience from the stated passing
// year. An unparseable year falls back to the current year, yielding zero.
func calculateExperience(passingYear string) int {
	currentYear := time.Now().Year()
	year, err := strconv.Atoi(strings.TrimSpace(passingYear))
	if err != nil {
		year = currentYear
	}
	experience := currentYear - year
	if experience < 0 {
		experience = 0
	}
	return experience
}

// buildLicenseNumber copies the applicant's national id, or falls back to a
// time-based placeholder when none was submitted.
func buildLicenseNumber(nationalID string) string {
	if strings.TrimSpace(nationalID) != "" {
		return nationalID
	}
	return fmt.Sprintf("TEMP-%d", time.Now().UnixNano())
}

func buildExpertBio(application models.DoctorApplication, years int) string {
	return fmt.Sprintf("%s specialist, %s from %s, %d years of experience.",
		application.Specialization, application.Degree, application.Institution, years)
}
