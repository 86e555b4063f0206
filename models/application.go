package models

import "time"

// DoctorApplication status moves pending -> approved or rejected, exactly once.
type DoctorApplication struct {
	ID             uint      `gorm:"primaryKey"`
	ApplicantID    uint      `json:"applicant_id" gorm:"uniqueIndex:idx_applicant_job;not null"`
	JobID          uint      `json:"job_id" gorm:"uniqueIndex:idx_applicant_job;not null"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Specialization string    `json:"specialization"`
	Degree         string    `json:"degree"`
	Institution    string    `json:"institution"`
	PassingYear    string    `json:"passing_year"`
	NationalID     string    `json:"national_id"`
	Status         string    `json:"status" gorm:"default:pending"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
