package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireview_backend/internal/middleware"
	"hireview_backend/internal/services"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

type ResponseHandler struct {
	*BaseHandler
	responseService *services.ResponseService
}

func NewResponseHandler(base *BaseHandler, responseService *services.ResponseService) *ResponseHandler {
	return &ResponseHandler{
		BaseHandler:     base,
		responseService: responseService,
	}
}

// RegisterRoutes регистрирует маршруты ответов. Запись публичная
// (кандидатский поток), чтение - управленческое.
func (h *ResponseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interviews/:id/responses", h.Record)

	managed := rg.Group("/interviews")
	managed.Use(middleware.AuthMiddleware(), middleware.RequireCompany())
	{
		managed.GET("/:id/responses", h.List)
	}
}

func (h *ResponseHandler) Record(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.CreateResponseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.responseService.RecordResponse(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *ResponseHandler) List(c *gin.Context) {
	companyID, ok := h.RequireCompanyID(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	responses, err := h.responseService.ListResponses(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}
