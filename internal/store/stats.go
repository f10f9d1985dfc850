package store

import (
	"time"

	"github.com/lexdesk-dev/lexdesk/internal/models"
)

// DashboardStats holds the three counters shown on the dashboard.
type DashboardStats struct {
	CasesCount           int64 `json:"cases_count"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
	ActiveClients        int64 `json:"active_clients"`
}

// DashboardStats counts cases, appointments scheduled strictly after
// now, and clients. The time comparison happens at query time.
func (s *Store) DashboardStats() (DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.Case{}).Count(&stats.CasesCount).Error; err != nil {
		return stats, err
	}

	if err := s.db.Model(&models.Appointment{}).
		Where("scheduled_at > ?", time.Now()).
		Count(&stats.UpcomingAppointments).Error; err != nil {
		return stats, err
	}

	if err := s.db.Model(&models.Client{}).Count(&stats.ActiveClients).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
