package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMood(t *testing.T, userID uint, score int, date time.Time) models.Mood {
	t.Helper()
	mood := models.Mood{
		UserID:    userID,
		Mood:      "Calm",
		Score:     score,
		TimeOfDay: "Morning",
		Date:      date,
	}
	require.NoError(t, configuration.DB.Create(&mood).Error)
	return mood
}

func TestLogMood(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")

	c, w := newJSONContext(t, "POST", "/api/moods", map[string]any{
		"mood":        "Happy",
		"score":       5,
		"time_of_day": "Evening",
		"note":        "Good session today",
	})
	c.Set("userID", user.ID)
	LogMood(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var mood models.Mood
	require.NoError(t, configuration.DB.Where("user_id = ?", user.ID).First(&mood).Error)
	assert.Equal(t, "Happy", mood.Mood)
	assert.Equal(t, 5, mood.Score)
	assert.WithinDuration(t, time.Now(), mood.Date, time.Minute)
}

func TestLogMoodInvalidTimeOfDay(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")

	c, w := newJSONContext(t, "POST", "/api/moods", map[string]any{
		"mood":        "Happy",
		"score":       5,
		"time_of_day": "Midnight",
	})
	c.Set("userID", user.ID)
	LogMood(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogMoodScoreOutOfRange(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")

	c, w := newJSONContext(t, "POST", "/api/moods", map[string]any{
		"mood":        "Happy",
		"score":       7,
		"time_of_day": "Morning",
	})
	c.Set("userID", user.ID)
	LogMood(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMoodHistory(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Rahim", "rahim@example.com", "secret123", "user")

	now := time.Now()
	createTestMood(t, user.ID, 5, now.Add(-time.Hour))
	createTestMood(t, user.ID, 4, now.Add(-24*time.Hour))
	// outside the weekly window, still part of the history
	createTestMood(t, user.ID, 1, now.AddDate(0, 0, -10))

	c, w := newJSONContext(t, "GET", "/api/moods", nil)
	c.Set("userID", user.ID)
	MoodHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	data := body["data"].([]any)
	assert.Len(t, data, 3)

	// weekly average is 4.5, the old low score does not drag it down
	assert.Equal(t, "You've had a positive week. Keep doing what works for you!", body["insight"])
}

func TestWeeklyInsight(t *testing.T) {
	moods := func(scores ...int) []models.Mood {
		entries := make([]models.Mood, 0, len(scores))
		for _, s := range scores {
			entries = append(entries, models.Mood{Score: s})
		}
		return entries
	}

	assert.Contains(t, weeklyInsight(nil), "Not enough mood entries")
	assert.Contains(t, weeklyInsight(moods(5, 5, 4)), "positive week")
	// average exactly 4 still counts as positive
	assert.Contains(t, weeklyInsight(moods(4, 4)), "positive week")
	assert.Contains(t, weeklyInsight(moods(3, 4, 3)), "balanced")
	// average exactly 3 is balanced, not a counseling suggestion
	assert.Contains(t, weeklyInsight(moods(3)), "balanced")
	assert.Contains(t, weeklyInsight(moods(1, 2, 2)), "booking a session")
}
