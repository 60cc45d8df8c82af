package repositories

import "gorm.io/gorm"

// RepositoryContainer содержит все репозитории приложения.
type RepositoryContainer struct {
	UserRepo       UserRepository
	CompanyRepo    CompanyRepository
	JobPostingRepo JobPostingRepository
	InterviewRepo  InterviewRepository
	QuestionRepo   QuestionRepository
	ResponseRepo   ResponseRepository
}

// NewRepositoryContainer создает репозитории поверх одного handle БД.
func NewRepositoryContainer(db *gorm.DB) *RepositoryContainer {
	return &RepositoryContainer{
		UserRepo:       NewUserRepository(db),
		CompanyRepo:    NewCompanyRepository(db),
		JobPostingRepo: NewJobPostingRepository(db),
		InterviewRepo:  NewInterviewRepository(db),
		QuestionRepo:   NewQuestionRepository(db),
		ResponseRepo:   NewResponseRepository(db),
	}
}
