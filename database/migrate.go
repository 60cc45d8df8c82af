package database

import (
	"gorm.io/gorm"

	"hireview_backend/internal/models"
)

// Migrate прогоняет AutoMigrate для всех моделей приложения.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobPosting{},
		&models.BaseQuestion{},
		&models.CustomQuestion{},
		&models.Interview{},
		&models.InterviewResponse{},
	)
}
