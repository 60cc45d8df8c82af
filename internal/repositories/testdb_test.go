package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hireview_backend/internal/models"
)

// newTestDB открывает in-memory sqlite и прогоняет миграции.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobPosting{},
		&models.BaseQuestion{},
		&models.CustomQuestion{},
		&models.Interview{},
		&models.InterviewResponse{},
	))
	return db
}

// seedPosting создает компанию и вакансию для тестов.
func seedPosting(t *testing.T, db *gorm.DB) *models.JobPosting {
	t.Helper()

	company := &models.Company{Name: "Acme " + t.Name()}
	require.NoError(t, db.Create(company).Error)

	posting := &models.JobPosting{
		Title:        "Backend Engineer",
		Requirements: "Go, SQL",
		CompanyID:    company.ID,
	}
	require.NoError(t, db.Create(posting).Error)
	return posting
}

// seedInterview создает интервью для вакансии.
func seedInterview(t *testing.T, db *gorm.DB, postingID uint, token string) *models.Interview {
	t.Helper()

	interview := &models.Interview{
		JobPostingID:   postingID,
		CandidateName:  "Taro Yamada",
		CandidateEmail: "taro@example.com",
		InterviewURL:   token,
		Status:         models.InterviewStatusScheduled,
		AvatarType:     models.AvatarTypeHayato,
	}
	require.NoError(t, db.Create(interview).Error)
	return interview
}
