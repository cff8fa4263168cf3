package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p CreateParams, sellerUsername string) (*Product, error) {
	args := m.Called(ctx, p, sellerUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, fields UpdateParams) (*Product, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	input := CreateParams{Name: "Widget", Description: "d", Price: 10}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expected := &Product{ID: 1, Name: "Widget", Description: "d", Price: 10, SellerID: 7}
		mockRepo.On("Create", ctx, input, "pat").Return(expected, nil)

		p, err := svc.Create(ctx, input, "pat")
		assert.NoError(t, err)
		assert.Equal(t, expected, p)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NameRequired", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, CreateParams{Name: "   ", Price: 10}, "pat")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, CreateParams{Name: "Widget", Price: -1}, "pat")
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("ZeroPriceAllowed", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		free := CreateParams{Name: "Widget", Price: 0}
		mockRepo.On("Create", ctx, free, "pat").Return(&Product{ID: 1}, nil)

		_, err := svc.Create(ctx, free, "pat")
		assert.NoError(t, err)
	})

	t.Run("NoSellerContext", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, input, "")
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})

	t.Run("SellerMissing", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, input, "ghost").Return(nil, ErrSellerNotFound)

		_, err := svc.Create(ctx, input, "ghost")
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	name := "Widget v2"
	empty := "  "
	negative := -5

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		fields := UpdateParams{Name: &name}
		expected := &Product{ID: 1, Name: name}
		mockRepo.On("Update", ctx, 1, fields).Return(expected, nil)

		p, err := svc.Update(ctx, 1, fields)
		assert.NoError(t, err)
		assert.Equal(t, expected, p)
	})

	t.Run("NoFields", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Update(ctx, 1, UpdateParams{})
		assert.ErrorIs(t, err, ErrNoFields)
	})

	t.Run("EmptyName", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Update(ctx, 1, UpdateParams{Name: &empty})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Update(ctx, 1, UpdateParams{Price: &negative})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Update", ctx, 99, UpdateParams{Name: &name}).Return(nil, ErrProductNotFound)

		_, err := svc.Update(ctx, 99, UpdateParams{Name: &name})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expected := &Product{ID: 1, Name: "Widget"}
		mockRepo.On("GetByID", ctx, 1).Return(expected, nil)

		p, err := svc.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, expected, p)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, 99).Return(nil, ErrProductNotFound)

		_, err := svc.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_GetAll(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	expected := []Product{{ID: 1, Name: "Widget"}}
	mockRepo.On("GetAll", ctx).Return(expected, nil)

	products, err := svc.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Delete", ctx, 1).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Delete", ctx, 99).Return(ErrProductNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, 99), ErrProductNotFound)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Delete", ctx, 1).Return(errors.New("db error"))

		assert.Error(t, svc.Delete(ctx, 1))
	})
}
