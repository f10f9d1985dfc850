package models

import "time"

const (
	CaseStatusOpen    = "Open"
	CaseStatusClosed  = "Closed"
	CaseStatusPending = "Pending"
)

// Case is a legal matter, uniquely numbered, optionally linked to a
// client. Appointments and invoices cannot outlive their case.
type Case struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CaseNumber  string    `gorm:"uniqueIndex;not null" json:"case_number"`
	ClientID    *uint     `gorm:"index" json:"client_id"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"not null;default:Open" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Appointments []Appointment `gorm:"foreignKey:CaseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"appointments,omitempty"`
	Invoices     []Invoice     `gorm:"foreignKey:CaseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"invoices,omitempty"`
}
