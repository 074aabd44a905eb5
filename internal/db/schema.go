package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aishwaryaxerox/print_shop/internal/hash"
	"github.com/aishwaryaxerox/print_shop/internal/models"
)

const defaultAdminUsername = "admin"

// InitSchema migrates the three tables and seeds the initial admin account.
// Safe to run on every startup: migrations are create-if-missing and the
// admin is only inserted when absent, never overwritten.
func InitSchema(db *gorm.DB, adminPassword string) error {
	if err := db.AutoMigrate(&models.Order{}, &models.OrderFile{}, &models.AdminUser{}); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	if err := seedAdmin(db, adminPassword); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	return nil
}

func seedAdmin(db *gorm.DB, password string) error {
	var existing models.AdminUser
	err := db.Where("username = ?", defaultAdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin user: %w", err)
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.AdminUser{
		Username:     defaultAdminUsername,
		PasswordHash: hashed,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	return nil
}
