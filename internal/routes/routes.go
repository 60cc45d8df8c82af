package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireview_backend/internal/handlers"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.CompanyHandler.RegisterRoutes(api)
		appHandlers.JobPostingHandler.RegisterRoutes(api)
		appHandlers.InterviewHandler.RegisterRoutes(api)
		appHandlers.QuestionHandler.RegisterRoutes(api)
		appHandlers.ResponseHandler.RegisterRoutes(api)
	}
}
