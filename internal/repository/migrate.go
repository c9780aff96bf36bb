package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&appointmentModel{},
		&adminModel{},
	)
}
