package repositories

import (
	"context"
	"errors"

	"hireview_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobPostingNotFound = errors.New("job posting not found")

type JobPostingRepository interface {
	Create(ctx context.Context, posting *models.JobPosting) error
	FindByID(ctx context.Context, id uint) (*models.JobPosting, error)
	FindByCompany(ctx context.Context, companyID uint, limit, offset int) ([]models.JobPosting, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.JobPosting, error)
	Update(ctx context.Context, posting *models.JobPosting) error
	Delete(ctx context.Context, id uint) error
}

type JobPostingRepositoryImpl struct {
	db *gorm.DB
}

func NewJobPostingRepository(db *gorm.DB) JobPostingRepository {
	return &JobPostingRepositoryImpl{db: db}
}

func (r *JobPostingRepositoryImpl) Create(ctx context.Context, posting *models.JobPosting) error {
	return r.db.WithContext(ctx).Create(posting).Error
}

func (r *JobPostingRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.JobPosting, error) {
	var posting models.JobPosting
	err := r.db.WithContext(ctx).First(&posting, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostingNotFound
		}
		return nil, err
	}
	return &posting, nil
}

func (r *JobPostingRepositoryImpl) FindByCompany(ctx context.Context, companyID uint, limit, offset int) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&postings).Error
	return postings, err
}

func (r *JobPostingRepositoryImpl) FindAll(ctx context.Context, limit, offset int) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&postings).Error
	return postings, err
}

func (r *JobPostingRepositoryImpl) Update(ctx context.Context, posting *models.JobPosting) error {
	return r.db.WithContext(ctx).Save(posting).Error
}

// Delete удаляет вакансию вместе со всем, что она владеет: базовыми
// вопросами, интервью и их custom-вопросами/ответами. Каскад выполняется
// явно, одной транзакцией - схема не полагается на FK ON DELETE.
func (r *JobPostingRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var interviewIDs []uint
		if err := tx.Model(&models.Interview{}).
			Where("job_posting_id = ?", id).
			Pluck("id", &interviewIDs).Error; err != nil {
			return err
		}

		if len(interviewIDs) > 0 {
			if err := tx.Where("interview_id IN ?", interviewIDs).
				Delete(&models.InterviewResponse{}).Error; err != nil {
				return err
			}
			if err := tx.Where("interview_id IN ?", interviewIDs).
				Delete(&models.CustomQuestion{}).Error; err != nil {
				return err
			}
			if err := tx.Where("job_posting_id = ?", id).
				Delete(&models.Interview{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("job_posting_id = ?", id).
			Delete(&models.BaseQuestion{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.JobPosting{}, id).Error
	})
}
