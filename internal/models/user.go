package models

import "time"

// Roles a user account can hold. The role is informational only; the
// application has no privileged operations beyond login.
const (
	RoleAdmin    = "Admin"
	RoleLawyer   = "Lawyer"
	RoleEmployee = "Employee"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:Employee" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
