package models

import "time"

type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CaseID      uint      `gorm:"not null;index" json:"case_id"`
	Title       string    `gorm:"not null" json:"title"`
	ScheduledAt time.Time `gorm:"not null;index" json:"scheduled_at"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
