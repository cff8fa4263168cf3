package seller

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"wisecrackr-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*Seller, error)
	FindByUsername(ctx context.Context, username string) (*Seller, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts a seller and relies on the unique constraints for conflict
// detection; callers never pre-check username or email.
func (r *repository) Create(ctx context.Context, username, email, passwordHash string) (*Seller, error) {
	var s Seller
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO sellers (username, email, password) VALUES ($1, $2, $3) RETURNING id, username, email, password, created_at",
		username, email, passwordHash,
	).Scan(&s.ID, &s.Username, &s.Email, &s.Password, &s.CreatedAt)

	if err != nil {
		if conflict := translateUniqueViolation(err); conflict != nil {
			return nil, conflict
		}
		logger.FromCtx(ctx).Error("db: failed to insert seller",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	return &s, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Seller, error) {
	var s Seller
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, email, password, created_at FROM sellers WHERE username = $1",
		username,
	).Scan(&s.ID, &s.Username, &s.Email, &s.Password, &s.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSellerNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to find seller",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	return &s, nil
}

// translateUniqueViolation maps a postgres 23505 to the conflicting column.
func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != PgUniqueViolation {
		return nil
	}

	switch {
	case strings.Contains(pqErr.Constraint, "username"):
		return ErrUsernameTaken
	case strings.Contains(pqErr.Constraint, "email"):
		return ErrEmailTaken
	default:
		return ErrUsernameTaken
	}
}
