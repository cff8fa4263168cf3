package product

import (
	"context"
	"strings"

	"wisecrackr-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateParams, sellerUsername string) (*Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	GetAll(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id int, fields UpdateParams) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates the input and persists the product under the authenticated
// seller. Ownership always comes from the caller's verified identity, never
// from the request body.
func (s *service) Create(ctx context.Context, input CreateParams, sellerUsername string) (*Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if sellerUsername == "" {
		return nil, ErrSellerNotFound
	}

	created, err := s.repo.Create(ctx, input, sellerUsername)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Int("product_id", created.ID),
		zap.String("seller", sellerUsername),
	)

	return created, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Update(ctx context.Context, id int, fields UpdateParams) (*Product, error) {
	if fields.Name == nil && fields.Description == nil && fields.Price == nil {
		return nil, ErrNoFields
	}
	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		return nil, ErrNameRequired
	}
	if fields.Price != nil && *fields.Price < 0 {
		return nil, ErrInvalidPrice
	}

	return s.repo.Update(ctx, id, fields)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
