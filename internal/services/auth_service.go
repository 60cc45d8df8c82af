package services

import (
	"context"
	"errors"

	"hireview_backend/internal/auth"
	"hireview_backend/internal/logger"
	"hireview_backend/internal/models"
	"hireview_backend/internal/repositories"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

// AuthService - вход по email/паролю и выдача JWT.
type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login проверяет пароль и возвращает bearer-токен. Неизвестный email и
// неверный пароль дают одинаковый ответ, чтобы не раскрывать существование
// аккаунта.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("account is disabled")
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, user.CompanyID, user.IsSuperuser)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrEntityNotFound("user", err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
