package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireview_backend/internal/config"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

func init() {
	// Тестам не нужен yaml: подсовываем конфиг с тестовым секретом
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Auth Co")
	usvc := NewUserService(env.repos.UserRepo, env.repos.CompanyRepo)
	asvc := NewAuthService(env.repos.UserRepo)
	ctx := context.Background()

	user, err := usvc.CreateUser(ctx, &dto.CreateUserRequest{
		Email:     "hr@example.com",
		Password:  "correct-horse-1",
		FullName:  "HR Manager",
		CompanyID: &company.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	token, err := asvc.Login(ctx, &dto.LoginRequest{Email: "hr@example.com", Password: "correct-horse-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	usvc := NewUserService(env.repos.UserRepo, env.repos.CompanyRepo)
	asvc := NewAuthService(env.repos.UserRepo)
	ctx := context.Background()

	_, err := usvc.CreateUser(ctx, &dto.CreateUserRequest{
		Email:    "hr@example.com",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	// Неверный пароль и несуществующий email дают одинаковый код
	_, err = asvc.Login(ctx, &dto.LoginRequest{Email: "hr@example.com", Password: "wrong"})
	requireAppCode(t, err, apperrors.CodeUnauthorized)

	_, err = asvc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "wrong"})
	requireAppCode(t, err, apperrors.CodeUnauthorized)
}

func TestUserService_DuplicateEmail(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	usvc := NewUserService(env.repos.UserRepo, env.repos.CompanyRepo)
	ctx := context.Background()

	_, err := usvc.CreateUser(ctx, &dto.CreateUserRequest{
		Email:    "dup@example.com",
		Password: "password-123",
	})
	require.NoError(t, err)

	_, err = usvc.CreateUser(ctx, &dto.CreateUserRequest{
		Email:    "dup@example.com",
		Password: "password-456",
	})
	requireAppCode(t, err, apperrors.CodeAlreadyExists)
}
