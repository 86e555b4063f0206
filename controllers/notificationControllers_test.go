package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotification(t *testing.T, recipientID uint, message string, createdAt time.Time, isRead bool) models.Notification {
	t.Helper()
	notification := models.Notification{
		RecipientID: recipientID,
		SenderID:    1,
		Type:        models.NotificationJobApplication,
		Message:     message,
		IsRead:      isRead,
		CreatedAt:   createdAt,
	}
	require.NoError(t, configuration.DB.Create(&notification).Error)
	return notification
}

func TestViewNotifications(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")
	other := createTestUser(t, "Karim", "karim@example.com", "secret123", "user")

	now := time.Now()
	createTestNotification(t, user.ID, "oldest", now.Add(-2*time.Hour), false)
	createTestNotification(t, user.ID, "newest", now, false)
	createTestNotification(t, user.ID, "middle", now.Add(-time.Hour), false)
	createTestNotification(t, other.ID, "not yours", now, false)

	c, w := newJSONContext(t, "GET", "/api/notifications", nil)
	c.Set("userID", user.ID)
	ViewNotifications(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]any)
	require.Len(t, data, 3)

	// newest first, scoped to the caller
	assert.Equal(t, "newest", data[0].(map[string]any)["message"])
	assert.Equal(t, "middle", data[1].(map[string]any)["message"])
	assert.Equal(t, "oldest", data[2].(map[string]any)["message"])
}

func TestUnreadCount(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")
	other := createTestUser(t, "Karim", "karim@example.com", "secret123", "user")

	now := time.Now()
	createTestNotification(t, user.ID, "a", now, false)
	createTestNotification(t, user.ID, "b", now, false)
	createTestNotification(t, user.ID, "c", now, true)
	createTestNotification(t, other.ID, "d", now, false)

	c, w := newJSONContext(t, "GET", "/api/notifications/unread-count", nil)
	c.Set("userID", user.ID)
	UnreadCount(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["count"])
}

func TestMarkNotificationRead(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")
	notification := createTestNotification(t, user.ID, "hello", time.Now(), false)

	c, w := newJSONContext(t, "PUT", "/api/notifications/1/read", nil)
	c.Set("userID", user.ID)
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(notification.ID))}}
	MarkNotificationRead(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Notification
	require.NoError(t, configuration.DB.First(&updated, notification.ID).Error)
	assert.True(t, updated.IsRead)
}

func TestMarkNotificationReadWrongRecipient(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")
	intruder := createTestUser(t, "Karim", "karim@example.com", "secret123", "user")
	notification := createTestNotification(t, owner.ID, "private", time.Now(), false)

	c, w := newJSONContext(t, "PUT", "/api/notifications/1/read", nil)
	c.Set("userID", intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(notification.ID))}}
	MarkNotificationRead(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var unchanged models.Notification
	require.NoError(t, configuration.DB.First(&unchanged, notification.ID).Error)
	assert.False(t, unchanged.IsRead)
}

func TestMarkNotificationReadNotFound(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")

	c, w := newJSONContext(t, "PUT", "/api/notifications/999/read", nil)
	c.Set("userID", user.ID)
	c.Params = gin.Params{{Key: "id", Value: "999"}}
	MarkNotificationRead(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")
	other := createTestUser(t, "Karim", "karim@example.com", "secret123", "user")

	now := time.Now()
	createTestNotification(t, user.ID, "a", now, false)
	createTestNotification(t, user.ID, "b", now, false)
	untouched := createTestNotification(t, other.ID, "c", now, false)

	c, w := newJSONContext(t, "PUT", "/api/notifications/read-all", nil)
	c.Set("userID", user.ID)
	MarkAllNotificationsRead(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var unread int64
	configuration.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", user.ID, false).
		Count(&unread)
	assert.EqualValues(t, 0, unread)

	// other users' notifications stay unread
	var still models.Notification
	require.NoError(t, configuration.DB.First(&still, untouched.ID).Error)
	assert.False(t, still.IsRead)
}
