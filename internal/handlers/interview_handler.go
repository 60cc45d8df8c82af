package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireview_backend/internal/middleware"
	"hireview_backend/internal/services"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService  *services.InterviewService
	questionService   *services.QuestionService
	evaluationService *services.EvaluationService
	uploadService     *services.UploadService
}

func NewInterviewHandler(
	base *BaseHandler,
	interviewService *services.InterviewService,
	questionService *services.QuestionService,
	evaluationService *services.EvaluationService,
	uploadService *services.UploadService,
) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:       base,
		interviewService:  interviewService,
		questionService:   questionService,
		evaluationService: evaluationService,
		uploadService:     uploadService,
	}
}

// RegisterRoutes регистрирует маршруты интервью. Кандидатский поток
// публичный: токен в URL сам по себе является credential. Управленческие
// маршруты требуют JWT.
func (h *InterviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Кандидатский поток
	public := rg.Group("/interviews")
	{
		public.GET("/url/:token", h.GetByToken)
		public.PUT("/url/:token/status", h.UpdateStatusByToken)
		public.POST("/:id/documents", h.AttachDocuments)
		public.POST("/:id/upload-document", h.UploadDocument)
		public.POST("/:id/upload-recording", h.UploadRecording)
		public.POST("/:id/generate-questions", h.GenerateQuestions)
		public.POST("/:id/complete", h.Complete)
	}

	// Управление
	managed := rg.Group("/interviews")
	managed.Use(middleware.AuthMiddleware(), middleware.RequireCompany())
	{
		managed.POST("", h.Create)
		managed.GET("", h.List)
		managed.GET("/:id", h.Get)
		managed.DELETE("/:id", h.Delete)
		managed.POST("/:id/evaluate", h.Evaluate)
	}
}

func (h *InterviewHandler) Create(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.CreateInterview(c.Request.Context(), companyID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) Get(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	interview, err := h.interviewService.GetInterview(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) List(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	limit, offset := ParsePagination(c)

	interviews, err := h.interviewService.ListInterviewsByCompany(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interviews)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.interviewService.DeleteInterview(c.Request.Context(), companyID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interview deleted"})
}

// --- Candidate flow ---

func (h *InterviewHandler) GetByToken(c *gin.Context) {
	token := c.Param("token")

	interview, err := h.interviewService.GetInterviewByToken(c.Request.Context(), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) UpdateStatusByToken(c *gin.Context) {
	token := c.Param("token")

	var req dto.UpdateInterviewStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.UpdateStatusByToken(c.Request.Context(), token, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) AttachDocuments(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.AttachDocumentsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.AttachDocuments(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) UploadDocument(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	kind := c.Query("type")
	if kind != services.UploadKindResume && kind != services.UploadKindCV {
		apperrors.HandleError(c, apperrors.NewBadRequestError("type must be resume or cv"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file is required"))
		return
	}

	url, err := h.uploadService.UploadInterviewFile(c.Request.Context(), id, kind, fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *InterviewHandler) UploadRecording(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file is required"))
		return
	}

	url, err := h.uploadService.UploadInterviewFile(c.Request.Context(), id, services.UploadKindRecording, fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *InterviewHandler) GenerateQuestions(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	questions, err := h.questionService.GenerateQuestions(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, questions)
}

func (h *InterviewHandler) Complete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.CompleteInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.CompleteInterview(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) Evaluate(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	evaluation, err := h.evaluationService.Evaluate(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ai_evaluation": evaluation})
}
