package services

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hireview_backend/internal/ai"
	"hireview_backend/internal/models"
	"hireview_backend/internal/repositories"
)

// testEnv - общий стенд сервисных тестов: in-memory sqlite, репозитории
// и stub-оракул.
type testEnv struct {
	db    *gorm.DB
	repos *repositories.RepositoryContainer
	email *recordingEmailProvider
}

func newTestEnv(t *testing.T) *testEnv {
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

	return &testEnv{
		db:    db,
		repos: repositories.NewRepositoryContainer(db),
		email: &recordingEmailProvider{},
	}
}

func (e *testEnv) seedCompany(t *testing.T, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name}
	require.NoError(t, e.db.Create(company).Error)
	return company
}

func (e *testEnv) seedPosting(t *testing.T, companyID uint) *models.JobPosting {
	t.Helper()
	posting := &models.JobPosting{
		Title:        "Backend Engineer",
		Requirements: "Go, SQL, Docker",
		CompanyID:    companyID,
	}
	require.NoError(t, e.db.Create(posting).Error)
	return posting
}

func (e *testEnv) interviewService() *InterviewService {
	return NewInterviewService(e.repos.InterviewRepo, e.repos.JobPostingRepo, e.email, "http://test.local")
}

func (e *testEnv) questionService(oracle ai.QuestionGenerator) *QuestionService {
	return NewQuestionService(e.repos.QuestionRepo, e.repos.InterviewRepo, e.repos.JobPostingRepo, oracle)
}

func (e *testEnv) responseService() *ResponseService {
	return NewResponseService(e.repos.ResponseRepo, e.repos.InterviewRepo, e.repos.QuestionRepo, e.repos.JobPostingRepo)
}

// recordingEmailProvider запоминает отправленные приглашения.
type recordingEmailProvider struct {
	invitations []string
}

func (p *recordingEmailProvider) Send(to, subject, htmlBody string) error { return nil }

func (p *recordingEmailProvider) SendInterviewInvitation(to, candidateName, jobTitle, interviewLink string) error {
	p.invitations = append(p.invitations, to)
	return nil
}

// failingOracle всегда падает, имитируя недоступный внешний сервис.
type failingOracle struct{}

func (failingOracle) GenerateQuestions(ctx context.Context, input ai.GenerationInput) ([]string, error) {
	return nil, errors.New("upstream unavailable")
}
