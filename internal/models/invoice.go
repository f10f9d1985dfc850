package models

import "time"

const (
	InvoiceStatusUnpaid = "Unpaid"
	InvoiceStatusPaid   = "Paid"
)

type Invoice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CaseID    uint      `gorm:"not null;index" json:"case_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`
	Status    string    `gorm:"not null;default:Unpaid" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
