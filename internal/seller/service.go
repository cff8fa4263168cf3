package seller

import (
	"context"
	"errors"
	"strings"

	"wisecrackr-be/internal/auth"
	"wisecrackr-be/internal/logger"

	"go.uber.org/zap"
)

// TokenIssuer is the slice of the token service that login needs.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

type Service interface {
	Register(ctx context.Context, username, email, password string) (*Seller, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetByUsername(ctx context.Context, username string) (*Seller, error)
}

type service struct {
	repo   Repository
	tokens TokenIssuer
}

func NewService(repo Repository, tokens TokenIssuer) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*Seller, error) {
	log := logger.FromCtx(ctx)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return nil, errors.New("username is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, username, email, hashed)
	if err != nil {
		log.Error("failed to create seller",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("seller registered",
		zap.Int("seller_id", created.ID),
		zap.String("username", created.Username),
	)

	return created, nil
}

// Login verifies credentials and returns a signed bearer token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromCtx(ctx)

	found, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrSellerNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(password, found.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(found.Username)
	if err != nil {
		log.Error("failed to issue token",
			zap.String("username", found.Username),
			zap.Error(err),
		)
		return "", err
	}

	return token, nil
}

func (s *service) GetByUsername(ctx context.Context, username string) (*Seller, error) {
	return s.repo.FindByUsername(ctx, username)
}
