package store

import (
	"errors"

	"github.com/lexdesk-dev/lexdesk/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserInfo is the sanitized user record returned to the UI. It never
// carries the password hash.
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AttemptLogin validates a username/password pair. An unknown username
// and a hash mismatch both return ErrInvalidCredentials.
func (s *Store) AttemptLogin(username, password string) (UserInfo, error) {
	var user models.User

	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserInfo{}, ErrInvalidCredentials
		}
		return UserInfo{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return UserInfo{}, ErrInvalidCredentials
	}

	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
