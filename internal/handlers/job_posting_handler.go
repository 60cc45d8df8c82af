package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireview_backend/internal/middleware"
	"hireview_backend/internal/services"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

type JobPostingHandler struct {
	*BaseHandler
	jobPostingService *services.JobPostingService
	questionService   *services.QuestionService
	interviewService  *services.InterviewService
}

func NewJobPostingHandler(
	base *BaseHandler,
	jobPostingService *services.JobPostingService,
	questionService *services.QuestionService,
	interviewService *services.InterviewService,
) *JobPostingHandler {
	return &JobPostingHandler{
		BaseHandler:       base,
		jobPostingService: jobPostingService,
		questionService:   questionService,
		interviewService:  interviewService,
	}
}

// RegisterRoutes регистрирует маршруты вакансий. Публичный список active
// регистрируется до :id, иначе gin свяжет "active" как параметр.
func (h *JobPostingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/job-postings/active", h.ListActive)

	postings := rg.Group("/job-postings")
	postings.Use(middleware.AuthMiddleware(), middleware.RequireCompany())
	{
		postings.POST("", h.Create)
		postings.GET("", h.List)
		postings.GET("/:id", h.Get)
		postings.PUT("/:id", h.Update)
		postings.DELETE("/:id", h.Delete)

		postings.GET("/:id/base-questions", h.ListBaseQuestions)
		postings.POST("/:id/base-questions", h.ReplaceBaseQuestions)
		postings.PUT("/:id/base-questions", h.ReplaceBaseQuestions)

		postings.GET("/:id/interviews", h.ListInterviews)
	}
}

func (h *JobPostingHandler) Create(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreateJobPostingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	posting, err := h.jobPostingService.CreateJobPosting(c.Request.Context(), companyID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, posting)
}

func (h *JobPostingHandler) Get(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	posting, err := h.jobPostingService.GetJobPosting(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

func (h *JobPostingHandler) List(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	limit, offset := ParsePagination(c)

	postings, err := h.jobPostingService.ListJobPostings(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, postings)
}

func (h *JobPostingHandler) ListActive(c *gin.Context) {
	limit, offset := ParsePagination(c)

	postings, err := h.jobPostingService.ListActiveJobPostings(c.Request.Context(), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, postings)
}

func (h *JobPostingHandler) Update(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.UpdateJobPostingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	posting, err := h.jobPostingService.UpdateJobPosting(c.Request.Context(), companyID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

func (h *JobPostingHandler) Delete(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.jobPostingService.DeleteJobPosting(c.Request.Context(), companyID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job posting deleted"})
}

// --- Base questions ---

func (h *JobPostingHandler) ListBaseQuestions(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	questions, err := h.questionService.ListBaseQuestions(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *JobPostingHandler) ReplaceBaseQuestions(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.ReplaceBaseQuestionsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	questions, err := h.questionService.ReplaceBaseQuestions(c.Request.Context(), companyID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// --- Interviews of a posting ---

func (h *JobPostingHandler) ListInterviews(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	limit, offset := ParsePagination(c)

	interviews, err := h.interviewService.ListInterviewsByJobPosting(c.Request.Context(), companyID, id, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interviews)
}
