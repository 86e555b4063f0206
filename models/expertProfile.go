package models

import "time"

// ExpertProfile is created only by the application approval workflow.
type ExpertProfile struct {
	ID                uint      `gorm:"primaryKey"`
	UserID            uint      `json:"user_id" gorm:"unique;not null"`
	Specialization    string    `json:"specialization"`
	LicenseNumber     string    `json:"license_number" gorm:"unique;not null"`
	YearsOfExperience int       `json:"years_of_experience"`
	Bio               string    `json:"bio"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}
