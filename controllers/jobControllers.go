package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type createJobRequest struct {
	Title        string   `json:"title" validate:"required"`
	Designation  string   `json:"designation"`
	Requirements []string `json:"requirements"`
	Description  string   `json:"description"`
	SalaryRange  string   `json:"salary_range"`
	Deadline     string   `json:"deadline" validate:"required"`
}

// Create a new job posting
func CreateJob(c *gin.Context) {
	var req createJobRequest
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

	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline format. Use YYYY-MM-DD"})
		return
	}

	job := models.Job{
		Title:        req.Title,
		Designation:  req.Designation,
		Requirements: strings.Join(req.Requirements, "\n"),
		Description:  req.Description,
		SalaryRange:  req.SalaryRange,
		Deadline:     deadline,
		IsActive:     true,
	}

	if err := configuration.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Job posted successfully",
		"data":    job,
	})
}

// View active job postings
func ViewJobs(c *gin.Context) {
	var jobs []models.Job

	if err := configuration.DB.Where("is_active = ?", true).Order("created_at desc").Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching jobs list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Jobs list fetched successfully",
		"data":    jobs,
	})
}

// Toggle a job posting active/inactive
func ToggleJob(c *gin.Context) {
	var job models.Job
	jobID := c.Param("id")

	if err := configuration.DB.First(&job, jobID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No job with this ID"})
		return
	}

	if err := configuration.DB.Model(&job).Update("is_active", !job.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Job status updated successfully",
		"data":    job,
	})
}

// Delete a job posting
func DeleteJob(c *gin.Context) {
	var job models.Job
	jobID := c.Param("id")

	if err := configuration.DB.First(&job, jobID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No job with this ID"})
		return
	}

	if err := configuration.DB.Delete(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Job deleted successfully",
	})
}
