package models

import "time"

// Appointment payment status is driven by the gateway callbacks:
// pending -> paid | failed | cancelled.
type Appointment struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `json:"user_id"`
	DoctorID      uint      `json:"doctor_id"`
	PatientName   string    `json:"patient_name"`
	PatientEmail  string    `json:"patient_email"`
	PatientPhone  string    `json:"patient_phone"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentStatus string    `json:"payment_status" gorm:"default:pending"`
	TransactionID string    `json:"transaction_id" gorm:"unique;not null"`
	ItemID        string    `json:"item_id" gorm:"unique;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}
