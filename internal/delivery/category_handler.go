package delivery

import (
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/api/category")
	{
		categories.GET("/", h.ListAll)
		categories.GET("/:catId", h.GetByID)
		categories.POST("/", h.Save)
		categories.POST("/:catId", h.Update)
		categories.DELETE("/:catId", h.Delete)
	}
}

func (h *CategoryHandler) ListAll(c *gin.Context) {
	categories, err := h.useCase.ListAll(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "catId", "category")
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("catId"))
		return
	}

	category, err := h.useCase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %d: %v", *id, err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Save(c *gin.Context) {
	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.useCase.Save(c.Request.Context(), &category); err != nil {
		h.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.Status(http.StatusOK)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "catId", "category")
	if !ok {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("catId"))
		return
	}

	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Errorf("Failed to bind JSON for update category ID %d: %v", *id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.useCase.Update(c.Request.Context(), &category, id); err != nil {
		h.log.Errorf("Failed to update category ID %d: %v", *id, err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.Status(http.StatusOK)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "catId", "category")
	if !ok {
		h.log.Warnf("Invalid category ID parameter for delete: %s", c.Param("catId"))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete category ID %d: %v", *id, err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.Status(http.StatusOK)
}
