package delivery

import (
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/api/product")
	{
		products.GET("/", h.ListAll)
		products.GET("/:prdId", h.GetByID)
		products.POST("/", h.Save)
		products.POST("/:prdId", h.Update)
		products.DELETE("/:prdId", h.Delete)
	}
}

func (h *ProductHandler) ListAll(c *gin.Context) {
	products, err := h.useCase.ListAll(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "prdId", "product")
	if !ok {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("prdId"))
		return
	}

	product, err := h.useCase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", *id, err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Save(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.useCase.Save(c.Request.Context(), &product); err != nil {
		h.log.Warnf("Failed to create product '%s': %v", product.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.Status(http.StatusOK)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "prdId", "product")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("prdId"))
		return
	}

	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", *id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.useCase.Update(c.Request.Context(), &product, id); err != nil {
		h.log.Warnf("Failed to update product ID %d: %v", *id, err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.Status(http.StatusOK)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "prdId", "product")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("prdId"))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete product ID %d: %v", *id, err)
		ErrorResponse(c, mapErrorToStatus(err), clientMessage(err))
		return
	}
	c.Status(http.StatusOK)
}
