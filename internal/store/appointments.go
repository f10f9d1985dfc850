package store

import "github.com/lexdesk-dev/lexdesk/internal/models"

// Appointments returns the appointments of one case, earliest first.
func (s *Store) Appointments(caseID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("case_id = ?", caseID).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	return appointments, err
}

func (s *Store) AddAppointment(appointment *models.Appointment) error {
	return s.db.Create(appointment).Error
}

func (s *Store) DeleteAppointment(id uint) error {
	result := s.db.Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
