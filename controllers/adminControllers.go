package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// View all registered users
func ViewUsers(c *gin.Context) {
	var users []models.User

	if err := configuration.DB.Where("role = ?", "user").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching users list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Users list fetched successfully",
		"data":    users,
	})
}

// View all promoted doctors
func ViewDoctors(c *gin.Context) {
	var doctors []models.User

	if err := configuration.DB.Where("role = ?", "doctor").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching doctors list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Doctors list fetched successfully",
		"data":    doctors,
	})
}

// Delete a user account by id
func DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := configuration.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No user with this ID"})
		return
	}

	if err := configuration.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "User deleted successfully",
	})
}
