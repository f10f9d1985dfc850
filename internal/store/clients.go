package store

import "github.com/lexdesk-dev/lexdesk/internal/models"

// ClientOption is the id+name pair used by selection widgets.
type ClientOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Clients returns all client records sorted by name.
func (s *Store) Clients() ([]models.Client, error) {
	var clients []models.Client
	err := s.db.Order("name ASC").Find(&clients).Error
	return clients, err
}

// ClientList returns id+name pairs sorted by name, for case forms.
func (s *Store) ClientList() ([]ClientOption, error) {
	var options []ClientOption
	err := s.db.Model(&models.Client{}).
		Select("id, name").
		Order("name ASC").
		Scan(&options).Error
	return options, err
}

func (s *Store) AddClient(client *models.Client) error {
	return s.db.Create(client).Error
}

func (s *Store) UpdateClient(client *models.Client) error {
	result := s.db.Model(&models.Client{}).
		Where("id = ?", client.ID).
		Select("Name", "Phone", "Email", "Address").
		Updates(client)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteClient clears the client reference on any case that points to
// the client, then removes the row. Cases are never deleted with their
// client.
func (s *Store) DeleteClient(id uint) error {
	if err := s.db.Model(&models.Case{}).
		Where("client_id = ?", id).
		Update("client_id", nil).Error; err != nil {
		return err
	}

	result := s.db.Delete(&models.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
