package wishlist

import (
	"context"
	"errors"
	"testing"

	"belanja-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Add(ctx context.Context, userID uint, productID string) (*Item, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) GetByUserAndProduct(ctx context.Context, userID uint, productID string) (*Item, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, userID uint, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockRepository) Clear(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRepository) GetLines(ctx context.Context, userID uint) ([]Line, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Line), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, productID string) (*product.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	userID := uint(1)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("GetByID", ctx, "p1").Return(&product.Product{ID: "p1"}, nil).Once()
		mockRepo.On("Add", ctx, userID, "p1").Return(&Item{ID: "w1", ProductID: "p1"}, nil).Once()

		item, err := svc.Add(ctx, userID, "p1")

		assert.NoError(t, err)
		assert.Equal(t, "w1", item.ID)
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Success - Duplicate add returns existing row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		existing := &Item{ID: "w1", ProductID: "p1"}
		mockProducts.On("GetByID", ctx, "p1").Return(&product.Product{ID: "p1"}, nil).Twice()
		mockRepo.On("Add", ctx, userID, "p1").Return(existing, nil).Twice()

		first, err := svc.Add(ctx, userID, "p1")
		assert.NoError(t, err)
		second, err := svc.Add(ctx, userID, "p1")
		assert.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Product not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("GetByID", ctx, "ghost").Return(nil, nil).Once()

		_, err := svc.Add(ctx, userID, "ghost")

		assert.Equal(t, ErrProductNotFound, err)
	})

	t.Run("Error - Catalog failure", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("GetByID", ctx, "p1").Return(nil, errors.New("db error")).Once()

		_, err := svc.Add(ctx, userID, "p1")
		assert.Error(t, err)
	})
}

func TestService_RemoveClearGet(t *testing.T) {
	ctx := context.Background()
	userID := uint(1)

	mockRepo := new(MockRepository)
	svc := &service{repo: mockRepo}

	mockRepo.On("Remove", ctx, userID, "p1").Return(nil).Once()
	mockRepo.On("Clear", ctx, userID).Return(nil).Once()
	mockRepo.On("GetLines", ctx, userID).Return([]Line{{ProductID: "p1"}}, nil).Once()

	assert.NoError(t, svc.Remove(ctx, userID, "p1"))
	assert.NoError(t, svc.Clear(ctx, userID))

	lines, err := svc.Get(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	mockRepo.AssertExpectations(t)
}
