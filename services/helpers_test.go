package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-review-backend/config"
	"go-review-backend/database"
	"go-review-backend/models"
	"go-review-backend/store"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserStore is a mock implementation of the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Insert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Find(ctx context.Context, conds ...interface{}) ([]models.User, error) {
	args := m.Called(append([]interface{}{ctx}, conds...)...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) FindOne(ctx context.Context, conds ...interface{}) (*models.User, error) {
	args := m.Called(append([]interface{}{ctx}, conds...)...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:  "test-secret",
		TokenTTL:   10 * 24 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "services.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func newUserStore(t *testing.T) *store.Collection[models.User] {
	return store.NewCollection[models.User](newTestDB(t), "users")
}

var nopLogger = zap.NewNop()
