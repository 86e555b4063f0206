package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// createNotification writes a notification row addressed to the recipient.
// Callers treat delivery as best-effort: they log the error and move on.
func createNotification(recipientID, senderID uint, notificationType, message string, relatedID uint) error {
	notification := models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        notificationType,
		Message:     message,
		RelatedID:   relatedID,
	}
	return configuration.DB.Create(&notification).Error
}

// View the caller's notifications, newest first
func ViewNotifications(c *gin.Context) {
	userID := c.GetUint("userID")

	var notifications []models.Notification
	if err := configuration.DB.Where("recipient_id = ?", userID).Order("created_at desc").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Notifications fetched successfully",
		"data":    notifications,
	})
}

// Count of the caller's unread notifications
func UnreadCount(c *gin.Context) {
	userID := c.GetUint("userID")

	var count int64
	if err := configuration.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "Success",
		"count":  count,
	})
}

// Mark a single notification as read. Only the recipient may do this.
func MarkNotificationRead(c *gin.Context) {
	userID := c.GetUint("userID")
	notificationID := c.Param("id")

	var notification models.Notification
	if err := configuration.DB.First(&notification, notificationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if notification.RecipientID != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You are not the recipient of this notification"})
		return
	}

	if err := configuration.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Notification marked as read",
		"data":    notification,
	})
}

// Mark all of the caller's notifications as read
func MarkAllNotificationsRead(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := configuration.DB.Model(&models.Notification{}).
		Where("recipient_id = ?", userID).
		Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "All notifications marked as read",
	})
}
