package handlers

import (
	"encoding/json"
	"testing"

	"go-review-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postReview(t *testing.T, router *gin.Engine, productID, text string) models.Review {
	t.Helper()
	w := do(router, "POST", "/reviews", CreateReviewInput{ProductID: productID, ReviewText: text}, "")
	require.Equal(t, 200, w.Code, w.Body.String())
	var review models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	return review
}

func listReviews(t *testing.T, router *gin.Engine, productID string) []models.Review {
	t.Helper()
	w := do(router, "GET", "/products/"+productID+"/reviews", nil, "")
	require.Equal(t, 200, w.Code)
	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	return reviews
}

func TestReviewLifecycle(t *testing.T) {
	router, _ := setupRouter(t)

	first := postReview(t, router, "p1", "great")
	postReview(t, router, "p2", "other product")
	second := postReview(t, router, "p1", "still great")
	assert.Equal(t, "p1", first.ProductID)

	assert.Equal(t, []models.Review{first, second}, listReviews(t, router, "p1"))

	w := do(router, "PUT", "/reviews/"+first.ID, UpdateReviewInput{ReviewText: "meh"}, "")
	require.Equal(t, 200, w.Code)
	var updated models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.Review{ID: first.ID, ProductID: "p1", ReviewText: "meh"}, updated)

	w = do(router, "DELETE", "/reviews/"+second.ID, nil, "")
	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"Review deleted successfully"}`, w.Body.String())

	assert.Equal(t, []models.Review{updated}, listReviews(t, router, "p1"))
}

func TestReviewForMissingProductIsAccepted(t *testing.T) {
	router, _ := setupRouter(t)

	review := postReview(t, router, "no-such-product", "orphan")
	assert.NotEmpty(t, review.ID)
	assert.Len(t, listReviews(t, router, "no-such-product"), 1)
}

func TestReviewsOutliveProduct(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, "POST", "/pro/create", ProductInput{ProductName: "Lamp", Description: "Desk lamp"}, "")
	require.Equal(t, 200, w.Code)
	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))

	postReview(t, router, product.ID, "bright")
	w = do(router, "DELETE", "/pro/delete/"+product.ID, nil, "")
	require.Equal(t, 200, w.Code)

	assert.Len(t, listReviews(t, router, product.ID), 1)
}

func TestReviewNotFoundAndEmptyList(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, "GET", "/products/nothing/reviews", nil, "")
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(router, "PUT", "/reviews/missing", UpdateReviewInput{ReviewText: "x"}, "")
	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error":"Review not found"}`, w.Body.String())

	w = do(router, "DELETE", "/reviews/missing", nil, "")
	assert.Equal(t, 404, w.Code)

	w = do(router, "POST", "/reviews", map[string]string{"productId": "p1"}, "")
	assert.Equal(t, 500, w.Code)
}
