package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexdesk-dev/lexdesk/internal/config"
	"github.com/lexdesk-dev/lexdesk/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned for both an unknown username and
	// a wrong password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound is returned when an update or delete affected no rows.
	ErrNotFound = errors.New("record not found")
)

// Store owns the application's single database connection. It is
// created at startup, passed by reference to whoever needs it, and
// closed on shutdown.
type Store struct {
	db   *gorm.DB
	path string
}

// Open opens the SQLite database at path, creating the file and schema
// on first run, and seeds the initial admin user if no users exist.
// Foreign keys are enabled so that deleting a case cascades to its
// appointments and invoices.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	firstRun := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		firstRun = true
	}

	db, err := gorm.Open(sqlite.Open(path+"?_fk=1"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, path: path}

	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if firstRun {
		log.Printf("Initialized new database at %s", path)
	}

	if err := s.seedAdmin(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate() error {
	tables := []interface{}{
		&models.User{},
		&models.Client{},
		&models.Case{},
		&models.Appointment{},
		&models.Invoice{},
	}

	migrator := s.db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := s.db.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}

// seedAdmin creates the initial admin account on first run. Credentials
// come from ADMIN_USERNAME / ADMIN_PASSWORD; all other provisioning is
// left to out-of-band tooling.
func (s *Store) seedAdmin() error {
	username := config.GetEnv("ADMIN_USERNAME", "admin")
	password := config.GetEnv("ADMIN_PASSWORD", "admin123")

	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Created admin user '%s'", username)
	return nil
}

// Close releases the underlying connection. Safe to call more than once.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsConstraintViolation reports whether err is a constraint failure
// from the storage engine, such as a duplicate case number or email.
func IsConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
