package services

import (
	"context"
	"errors"

	"hireview_backend/internal/models"
	"hireview_backend/internal/repositories"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

// JobPostingService - CRUD вакансий в рамках компании пользователя.
type JobPostingService struct {
	jobPostingRepo repositories.JobPostingRepository
}

func NewJobPostingService(jobPostingRepo repositories.JobPostingRepository) *JobPostingService {
	return &JobPostingService{jobPostingRepo: jobPostingRepo}
}

func (s *JobPostingService) CreateJobPosting(ctx context.Context, companyID uint, req *dto.CreateJobPostingRequest) (*models.JobPosting, error) {
	posting := &models.JobPosting{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		CompanyID:    companyID,
	}
	if err := s.jobPostingRepo.Create(ctx, posting); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}

func (s *JobPostingService) GetJobPosting(ctx context.Context, companyID, id uint) (*models.JobPosting, error) {
	return s.findOwned(ctx, companyID, id)
}

func (s *JobPostingService) ListJobPostings(ctx context.Context, companyID uint, limit, offset int) ([]models.JobPosting, error) {
	postings, err := s.jobPostingRepo.FindByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return postings, nil
}

// ListActiveJobPostings - публичный список без авторизации, для лендинга.
func (s *JobPostingService) ListActiveJobPostings(ctx context.Context, limit, offset int) ([]models.JobPosting, error) {
	postings, err := s.jobPostingRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return postings, nil
}

func (s *JobPostingService) UpdateJobPosting(ctx context.Context, companyID, id uint, req *dto.UpdateJobPostingRequest) (*models.JobPosting, error) {
	posting, err := s.findOwned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.Requirements != nil {
		posting.Requirements = *req.Requirements
	}

	if err := s.jobPostingRepo.Update(ctx, posting); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}

// DeleteJobPosting удаляет вакансию вместе с вопросами, интервью и ответами.
func (s *JobPostingService) DeleteJobPosting(ctx context.Context, companyID, id uint) error {
	if _, err := s.findOwned(ctx, companyID, id); err != nil {
		return err
	}
	if err := s.jobPostingRepo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobPostingService) findOwned(ctx context.Context, companyID, id uint) (*models.JobPosting, error) {
	posting, err := s.jobPostingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrEntityNotFound("job posting", err)
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.CompanyID != companyID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return posting, nil
}
