package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type logMoodRequest struct {
	Mood      string `json:"mood" validate:"required"`
	Score     int    `json:"score" validate:"required,min=1,max=5"`
	TimeOfDay string `json:"time_of_day" validate:"required,oneof=Morning Afternoon Evening"`
	Note      string `json:"note"`
}

// LogMood records one mood entry for the caller.
func LogMood(c *gin.Context) {
	var req logMoodRequest
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

	mood := models.Mood{
		UserID:    c.GetUint("userID"),
		Mood:      req.Mood,
		Score:     req.Score,
		TimeOfDay: req.TimeOfDay,
		Note:      req.Note,
		Date:      time.Now(),
	}

	if err := configuration.DB.Create(&mood).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log mood"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Mood logged successfully",
		"data":    mood,
	})
}

// MoodHistory returns the caller's entries, newest first, with a weekly
// insight derived from the average score of the last seven days.
func MoodHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	var history []models.Mood
	if err := configuration.DB.Where("user_id = ?", userID).Order("date desc").Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching mood history"})
		return
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	var weekEntries []models.Mood
	if err := configuration.DB.Where("user_id = ? AND date >= ?", userID, weekAgo).Find(&weekEntries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching weekly moods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Mood history fetched successfully",
		"insight": weeklyInsight(weekEntries),
		"data":    history,
	})
}

// weeklyInsight maps the weekly average score onto the insight text shown in
// the app. Average >= 4 is a positive week, [3, 4) is balanced, anything
// lower suggests booking a counseling session.
func weeklyInsight(entries []models.Mood) string {
	if len(entries) == 0 {
		return "Not enough mood entries this week to generate an insight."
	}

	total := 0
	for _, entry := range entries {
		total += entry.Score
	}
	average := float64(total) / float64(len(entries))

	switch {
	case average >= 4:
		return "You've had a positive week. Keep doing what works for you!"
	case average >= 3:
		return "Your week has been balanced. A little self-care can tip it upward."
	default:
		return "Your scores suggest a tough week. Consider booking a session with one of our counselors."
	}
}
