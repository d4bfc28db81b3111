// review.go - Per-product reviews

package services

import (
	"context" // Request-scoped cancellation
	"fmt"     // Error wrapping

	"go-review-backend/models" // Records and domain errors

	"go.uber.org/zap" // Logging
)

type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) error
	Find(ctx context.Context, conds ...interface{}) ([]models.Review, error)
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*models.Review, error)
	DeleteByID(ctx context.Context, id string) error
}

type ReviewService struct {
	reviews ReviewStore
	logger  *zap.Logger
}

func NewReviewService(reviews ReviewStore, logger *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, logger: logger}
}

// ListByProduct returns the reviews pointing at productID in insertion order.
// An unknown product and a product without reviews both yield an empty slice.
func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	reviews, err := s.reviews.Find(ctx, "product_id = ?", productID) // No join against products
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.String("productID", productID), zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Create stores a review. productID is not checked against the products collection.
func (s *ReviewService) Create(ctx context.Context, productID, reviewText string) (*models.Review, error) {
	if productID == "" || reviewText == "" {
		return nil, fmt.Errorf("productId and reviewText are required: %w", models.ErrValidation)
	}

	review := &models.Review{ProductID: productID, ReviewText: reviewText}
	if err := s.reviews.Insert(ctx, review); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id, reviewText string) (*models.Review, error) {
	fields := map[string]interface{}{}
	if reviewText != "" { // Empty text keeps the stored one
		fields["review_text"] = reviewText
	}

	review, err := s.reviews.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update review %s: %w", id, err)
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if err := s.reviews.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete review %s: %w", id, err)
	}
	return nil
}
