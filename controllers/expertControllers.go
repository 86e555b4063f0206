package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const expertsCacheKey = "experts:approved"

// ExpertInfo is the public shape of an approved expert.
type ExpertInfo struct {
	UserID            uint   `json:"user_id"`
	Name              string `json:"name"`
	Specialization    string `json:"specialization"`
	YearsOfExperience int    `json:"years_of_experience"`
	Bio               string `json:"bio"`
}

// View the public directory of approved experts. Served from redis when the
// cache is warm, straight from the database otherwise.
func ViewExperts(c *gin.Context) {
	if cached, err := configuration.GetRedis(expertsCacheKey); err == nil {
		var experts []ExpertInfo
		if err := json.Unmarshal([]byte(cached), &experts); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"status":  "Success",
				"message": "Experts list fetched successfully",
				"data":    experts,
			})
			return
		}
	}

	var profiles []models.ExpertProfile
	if err := configuration.DB.Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching experts list"})
		return
	}

	experts := make([]ExpertInfo, 0, len(profiles))
	for _, profile := range profiles {
		var user models.User
		if err := configuration.DB.First(&user, profile.UserID).Error; err != nil {
			log.Println("Expert profile without user account:", profile.UserID)
			continue
		}
		experts = append(experts, ExpertInfo{
			UserID:            profile.UserID,
			Name:              user.Name,
			Specialization:    profile.Specialization,
			YearsOfExperience: profile.YearsOfExperience,
			Bio:               profile.Bio,
		})
	}

	if encoded, err := json.Marshal(experts); err == nil {
		if err := configuration.SetRedis(expertsCacheKey, encoded, 5*time.Minute); err != nil {
			log.Println("Failed to cache experts list:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Experts list fetched successfully",
		"data":    experts,
	})
}
