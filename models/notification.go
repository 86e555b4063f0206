package models

import "time"

const (
	NotificationJobApplication      = "job_application"
	NotificationApplicationApproved = "application_approved"
	NotificationApplicationRejected = "application_rejected"
)

type Notification struct {
	ID          uint      `gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"index;not null"`
	SenderID    uint      `json:"sender_id"`
	Type        string    `json:"type" gorm:"not null"`
	Message     string    `json:"message" gorm:"type:text"`
	RelatedID   uint      `json:"related_id"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
