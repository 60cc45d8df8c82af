package services

import (
	"hireview_backend/internal/ai"
	"hireview_backend/internal/email"
	"hireview_backend/internal/repositories"
	"hireview_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService       *AuthService
	UserService       *UserService
	CompanyService    *CompanyService
	JobPostingService *JobPostingService
	InterviewService  *InterviewService
	QuestionService   *QuestionService
	ResponseService   *ResponseService
	EvaluationService *EvaluationService
	UploadService     *UploadService
}

// NewServiceContainer собирает сервисы поверх репозиториев и внешних
// провайдеров. Все зависимости передаются явно, глобального состояния нет.
func NewServiceContainer(
	repos *repositories.RepositoryContainer,
	oracle ai.Oracle,
	emailProvider email.Provider,
	store storage.Storage,
	publicURL string,
) *ServiceContainer {
	return &ServiceContainer{
		AuthService:       NewAuthService(repos.UserRepo),
		UserService:       NewUserService(repos.UserRepo, repos.CompanyRepo),
		CompanyService:    NewCompanyService(repos.CompanyRepo),
		JobPostingService: NewJobPostingService(repos.JobPostingRepo),
		InterviewService:  NewInterviewService(repos.InterviewRepo, repos.JobPostingRepo, emailProvider, publicURL),
		QuestionService:   NewQuestionService(repos.QuestionRepo, repos.InterviewRepo, repos.JobPostingRepo, oracle),
		ResponseService:   NewResponseService(repos.ResponseRepo, repos.InterviewRepo, repos.QuestionRepo, repos.JobPostingRepo),
		EvaluationService: NewEvaluationService(repos.InterviewRepo, repos.ResponseRepo, repos.JobPostingRepo, oracle),
		UploadService:     NewUploadService(repos.InterviewRepo, store),
	}
}
