package repositories

import (
	"context"

	"hireview_backend/internal/models"

	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(ctx context.Context, response *models.InterviewResponse) error
	ListByInterview(ctx context.Context, interviewID uint) ([]models.InterviewResponse, error)
}

type ResponseRepositoryImpl struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &ResponseRepositoryImpl{db: db}
}

func (r *ResponseRepositoryImpl) Create(ctx context.Context, response *models.InterviewResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

// ListByInterview возвращает ответы в порядке времени записи; id - вторичный
// ключ сортировки для стабильности при равных timestamp.
func (r *ResponseRepositoryImpl) ListByInterview(ctx context.Context, interviewID uint) ([]models.InterviewResponse, error) {
	var responses []models.InterviewResponse
	err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("response_time ASC, id ASC").
		Find(&responses).Error
	return responses, err
}
