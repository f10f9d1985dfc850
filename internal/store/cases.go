package store

import "github.com/lexdesk-dev/lexdesk/internal/models"

// UnassignedClient is the marker shown for a case with no client.
const UnassignedClient = "Unassigned"

// CaseSummary is a case row with its client's name resolved.
type CaseSummary struct {
	ID          uint   `json:"id"`
	CaseNumber  string `json:"case_number"`
	ClientID    *uint  `json:"client_id"`
	ClientName  string `json:"client_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Cases returns all cases newest first, resolving client names through
// a left join so unassigned cases still appear.
func (s *Store) Cases() ([]CaseSummary, error) {
	var cases []CaseSummary
	err := s.db.Model(&models.Case{}).
		Select("cases.id, cases.case_number, cases.client_id, cases.description, cases.status, COALESCE(clients.name, ?) AS client_name", UnassignedClient).
		Joins("LEFT JOIN clients ON clients.id = cases.client_id").
		Order("cases.id DESC").
		Scan(&cases).Error
	return cases, err
}

func (s *Store) AddCase(c *models.Case) error {
	if c.Status == "" {
		c.Status = models.CaseStatusOpen
	}
	return s.db.Create(c).Error
}

func (s *Store) UpdateCase(c *models.Case) error {
	if c.Status == "" {
		c.Status = models.CaseStatusOpen
	}
	result := s.db.Model(&models.Case{}).
		Where("id = ?", c.ID).
		Select("CaseNumber", "ClientID", "Description", "Status").
		Updates(c)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCase removes the case row. Dependent appointments and invoices
// go with it through the engine's ON DELETE CASCADE.
func (s *Store) DeleteCase(id uint) error {
	result := s.db.Delete(&models.Case{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
