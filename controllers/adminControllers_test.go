package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewUsers(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")
	createTestUser(t, "Karim", "karim@example.com", "secret123", "user")
	createTestUser(t, "Dr. Salma", "salma@example.com", "secret123", "doctor")
	createTestUser(t, "Admin", "admin@betteru.app", "admin123", "admin")

	c, w := newJSONContext(t, "GET", "/api/admin/users", nil)
	ViewUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["data"].([]any), 2)
}

func TestViewDoctors(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")
	createTestUser(t, "Dr. Salma", "salma@example.com", "secret123", "doctor")

	c, w := newJSONContext(t, "GET", "/api/admin/doctors", nil)
	ViewDoctors(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Dr. Salma", data[0].(map[string]any)["name"])
}

func TestDeleteUser(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")

	c, w := newJSONContext(t, "DELETE", "/api/admin/users/1", nil)
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(user.ID))}}
	DeleteUser(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	configuration.DB.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestDeleteUserNotFound(t *testing.T) {
	setupTestDB(t)

	c, w := newJSONContext(t, "DELETE", "/api/admin/users/999", nil)
	c.Params = gin.Params{{Key: "id", Value: "999"}}
	DeleteUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
