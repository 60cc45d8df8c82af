package services

import (
	"context"
	"errors"

	"hireview_backend/internal/models"
	"hireview_backend/internal/repositories"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

// CompanyService - CRUD компаний. Создание и удаление доступны только
// суперпользователю, проверка прав лежит на middleware.
type CompanyService struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

func (s *CompanyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if _, err := s.companyRepo.FindByName(ctx, req.Name); err == nil {
		return nil, apperrors.ErrCompanyNameTaken
	} else if !errors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, apperrors.InternalError(err)
	}

	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id uint) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrEntityNotFound("company", err)
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context, limit, offset int) ([]models.Company, error) {
	companies, err := s.companyRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id uint, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrEntityNotFound("company", err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil && *req.Name != company.Name {
		if _, err := s.companyRepo.FindByName(ctx, *req.Name); err == nil {
			return nil, apperrors.ErrCompanyNameTaken
		} else if !errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.InternalError(err)
		}
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id uint) error {
	if _, err := s.companyRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrEntityNotFound("company", err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
