package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireview_backend/internal/middleware"
	"hireview_backend/internal/services"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

type QuestionHandler struct {
	*BaseHandler
	questionService *services.QuestionService
}

func NewQuestionHandler(base *BaseHandler, questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     base,
		questionService: questionService,
	}
}

// RegisterRoutes регистрирует маршруты custom-вопросов и составной список
// вопросов для кандидата.
func (h *QuestionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/interviews/url/:token/questions", h.ComposeByToken)

	managed := rg.Group("/interviews")
	managed.Use(middleware.AuthMiddleware(), middleware.RequireCompany())
	{
		managed.GET("/:id/custom-questions", h.ListCustom)
		managed.POST("/:id/custom-questions", h.CreateCustom)
		managed.PUT("/:id/custom-questions/:qid", h.UpdateCustom)
		managed.DELETE("/:id/custom-questions/:qid", h.DeleteCustom)
	}
}

// ComposeByToken отдает кандидату полный список вопросов: базовые вопросы
// вакансии, затем custom-вопросы интервью.
func (h *QuestionHandler) ComposeByToken(c *gin.Context) {
	token := c.Param("token")

	questions, err := h.questionService.ComposeQuestionsByToken(c.Request.Context(), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) ListCustom(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	questions, err := h.questionService.ListCustomQuestions(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) CreateCustom(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.CreateCustomQuestionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	question, err := h.questionService.CreateCustomQuestion(c.Request.Context(), companyID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateCustom(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	qid, err := ParseParamUint(c, "qid")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.UpdateCustomQuestionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	question, err := h.questionService.UpdateCustomQuestion(c.Request.Context(), companyID, id, qid, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteCustom(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	qid, err := ParseParamUint(c, "qid")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.questionService.DeleteCustomQuestion(c.Request.Context(), companyID, id, qid); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}
