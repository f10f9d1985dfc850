package store

import "github.com/lexdesk-dev/lexdesk/internal/models"

// Invoices returns the invoices of one case, nearest due date first.
func (s *Store) Invoices(caseID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.Where("case_id = ?", caseID).
		Order("due_date ASC").
		Find(&invoices).Error
	return invoices, err
}

func (s *Store) AddInvoice(invoice *models.Invoice) error {
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusUnpaid
	}
	return s.db.Create(invoice).Error
}

func (s *Store) UpdateInvoiceStatus(id uint, status string) error {
	result := s.db.Model(&models.Invoice{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteInvoice(id uint) error {
	result := s.db.Delete(&models.Invoice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
