package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireview_backend/internal/middleware"
	"hireview_backend/internal/services"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

type CompanyHandler struct {
	*BaseHandler
	companyService *services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

// RegisterRoutes регистрирует маршруты компаний. Создание и удаление
// доступны только суперпользователю.
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", h.Update)
		companies.POST("", middleware.RequireSuperuser(), h.Create)
		companies.DELETE("/:id", middleware.RequireSuperuser(), h.Delete)
	}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	companies, err := h.companyService.ListCompanies(c.Request.Context(), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	// Не-суперпользователь может править только свою компанию
	if !middleware.IsSuperuser(c) {
		companyID, ok := middleware.GetCompanyID(c)
		if !ok || companyID != id {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}
