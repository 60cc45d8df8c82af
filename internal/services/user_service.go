package services

import (
	"context"
	"errors"

	"hireview_backend/internal/auth"
	"hireview_backend/internal/models"
	"hireview_backend/internal/repositories"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

// UserService - создание и чтение аккаунтов. Управление пользователями
// доступно только суперпользователю.
type UserService struct {
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
}

func NewUserService(userRepo repositories.UserRepository, companyRepo repositories.CompanyRepository) *UserService {
	return &UserService{userRepo: userRepo, companyRepo: companyRepo}
}

func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if req.CompanyID != nil {
		if _, err := s.companyRepo.FindByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, repositories.ErrCompanyNotFound) {
				return nil, apperrors.ErrEntityNotFound("company", err)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists)
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		IsActive:     true,
		IsSuperuser:  req.IsSuperuser,
		CompanyID:    req.CompanyID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrEntityNotFound("user", err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
