package models

import "time"

type Job struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Designation  string    `json:"designation"`
	Requirements string    `json:"requirements"`
	Description  string    `json:"description"`
	SalaryRange  string    `json:"salary_range"`
	Deadline     time.Time `json:"deadline" gorm:"not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}
