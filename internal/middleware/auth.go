package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hireview_backend/internal/auth"
	"hireview_backend/pkg/contextkeys"
)

// Ключи gin-контекста, которые выставляет AuthMiddleware.
const (
	CtxUserID      = "userID"
	CtxCompanyID   = "companyID"
	CtxIsSuperuser = "isSuperuser"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		if claims.CompanyID != nil {
			c.Set(CtxCompanyID, *claims.CompanyID)
		}
		c.Set(CtxIsSuperuser, claims.IsSuperuser)

		// Дублируем user id в request context для логов сервисного слоя
		ctx := context.WithValue(c.Request.Context(), contextkeys.UserIDContextKey, claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireSuperuser пропускает только суперпользователей.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsSuperuser(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireCompany пропускает только пользователей, привязанных к компании.
func RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCompanyID(c); !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no company"})
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GetCompanyID извлекает ID компании пользователя из контекста
func GetCompanyID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(CtxCompanyID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func IsSuperuser(c *gin.Context) bool {
	v, exists := c.Get(CtxIsSuperuser)
	if !exists {
		return false
	}
	is, ok := v.(bool)
	return ok && is
}
