// product.go - Handles product CRUD; these routes are public

package handlers

import (
	"net/http" // HTTP status codes

	"go-review-backend/services" // Product service

	"github.com/gin-gonic/gin" // Gin web framework
	"go.uber.org/zap"          // Logging
)

type ProductInput struct { // Struct for create and update input
	ProductName string `json:"product_name"`
	Description string `json:"description"`
}

type ProductHandler struct {
	products *services.ProductService
	logger   *zap.Logger
}

func NewProductHandler(products *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		logFailure(h.logger, c, http.StatusInternalServerError, err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input ProductInput
	if !bindJSON(c, &input) { // Malformed JSON answers 400
		return
	}
	product, err := h.products.Create(c.Request.Context(), input.ProductName, input.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var input ProductInput
	if !bindJSON(c, &input) { // Malformed JSON answers 400
		return
	}
	product, err := h.products.Update(c.Request.Context(), c.Param("id"), input.ProductName, input.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"}) // Success response
}

func (h *ProductHandler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	logFailure(h.logger, c, status, err)
	if status == http.StatusNotFound {
		c.JSON(status, gin.H{"error": "Product not found"}) // Unknown id
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"}) // Validation errors included
}
