package repositories

import (
	"context"
	"errors"

	"hireview_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error
	FindByID(ctx context.Context, id uint) (*models.Interview, error)
	FindByURL(ctx context.Context, url string) (*models.Interview, error)
	FindByJobPosting(ctx context.Context, jobPostingID uint, limit, offset int) ([]models.Interview, error)
	FindByCompany(ctx context.Context, companyID uint, limit, offset int) ([]models.Interview, error)
	Update(ctx context.Context, interview *models.Interview) error
	Delete(ctx context.Context, id uint) error
}

type InterviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &InterviewRepositoryImpl{db: db}
}

func (r *InterviewRepositoryImpl) Create(ctx context.Context, interview *models.Interview) error {
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *InterviewRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.WithContext(ctx).First(&interview, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

// FindByURL - поиск по access-токену, единственный lookup кандидатского
// потока. Неизвестный и невалидный токен неразличимы для вызывающего.
func (r *InterviewRepositoryImpl) FindByURL(ctx context.Context, url string) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.WithContext(ctx).Where("interview_url = ?", url).First(&interview).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) FindByJobPosting(ctx context.Context, jobPostingID uint, limit, offset int) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.WithContext(ctx).
		Where("job_posting_id = ?", jobPostingID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepositoryImpl) FindByCompany(ctx context.Context, companyID uint, limit, offset int) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.WithContext(ctx).
		Joins("JOIN job_postings ON job_postings.id = interviews.job_posting_id").
		Where("job_postings.company_id = ?", companyID).
		Order("interviews.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepositoryImpl) Update(ctx context.Context, interview *models.Interview) error {
	return r.db.WithContext(ctx).Save(interview).Error
}

// Delete удаляет интервью вместе с custom-вопросами и ответами, явным
// каскадом в одной транзакции.
func (r *InterviewRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("interview_id = ?", id).
			Delete(&models.InterviewResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("interview_id = ?", id).
			Delete(&models.CustomQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Interview{}, id).Error
	})
}
