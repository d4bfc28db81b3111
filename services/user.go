// user.go - Listing and owner-only mutation of user accounts

package services

import (
	"context" // Request-scoped cancellation
	"fmt"     // Error wrapping

	"go-review-backend/models" // Records and domain errors

	"go.uber.org/zap" // Logging
)

type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.Find(ctx) // Insertion order
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update changes username and/or email of targetID. Only the user itself may do so;
// empty values keep the stored ones.
func (s *UserService) Update(ctx context.Context, actorID, targetID, username, email string) (*models.User, error) {
	if actorID != targetID { // Token owner must match the path id
		return nil, models.ErrForbidden
	}

	fields := map[string]interface{}{}
	if username != "" {
		fields["username"] = username
	}
	if email != "" {
		fields["email"] = email
	}

	user, err := s.users.UpdateByID(ctx, targetID, fields)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.logger.Info("User updated", zap.String("userID", targetID))
	return user, nil
}

// Delete removes targetID's account. Only the user itself may do so.
func (s *UserService) Delete(ctx context.Context, actorID, targetID string) error {
	if actorID != targetID {
		return models.ErrForbidden
	}
	if err := s.users.DeleteByID(ctx, targetID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.logger.Info("User deleted", zap.String("userID", targetID))
	return nil
}
