// review.go - Handles per-product reviews; these routes are public

package handlers

import (
	"net/http" // HTTP status codes

	"go-review-backend/services" // Review service

	"github.com/gin-gonic/gin" // Gin web framework
	"go.uber.org/zap"          // Logging
)

type CreateReviewInput struct { // Struct for review creation input
	ProductID  string `json:"productId"`
	ReviewText string `json:"reviewText"`
}

type UpdateReviewInput struct { // Only the text can change
	ReviewText string `json:"reviewText"`
}

type ReviewHandler struct {
	reviews *services.ReviewService
	logger  *zap.Logger
}

func NewReviewHandler(reviews *services.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, logger: logger}
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	reviews, err := h.reviews.ListByProduct(c.Request.Context(), c.Param("productId")) // Empty list for unknown products
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var input CreateReviewInput
	if !bindJSON(c, &input) { // Malformed JSON answers 400
		return
	}
	review, err := h.reviews.Create(c.Request.Context(), input.ProductID, input.ReviewText)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var input UpdateReviewInput
	if !bindJSON(c, &input) { // Malformed JSON answers 400
		return
	}
	review, err := h.reviews.Update(c.Request.Context(), c.Param("id"), input.ReviewText)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviews.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"}) // Success response
}

func (h *ReviewHandler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	logFailure(h.logger, c, status, err)
	if status == http.StatusNotFound {
		c.JSON(status, gin.H{"error": "Review not found"}) // Unknown id
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"}) // Validation errors included
}
