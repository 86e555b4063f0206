package models

import "time"

type Mood struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Mood      string    `json:"mood"`
	Score     int       `json:"score"`
	TimeOfDay string    `json:"time_of_day"`
	Note      string    `json:"note"`
	Date      time.Time `json:"date"`
}
