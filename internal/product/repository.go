package product

import (
	"context"
	"database/sql"
	"errors"

	"wisecrackr-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, p CreateParams, sellerUsername string) (*Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	GetAll(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id int, fields UpdateParams) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts a product owned by the named seller in one statement. Zero
// rows returned means the seller does not exist, so the FK can never be left
// dangling.
func (r *repository) Create(ctx context.Context, p CreateParams, sellerUsername string) (*Product, error) {
	query := `
		INSERT INTO products (name, description, price, seller_id)
		SELECT $1, $2, $3, s.id FROM sellers s WHERE s.username = $4
		RETURNING id, name, description, price, seller_id
	`

	var created Product
	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, sellerUsername,
	).Scan(&created.ID, &created.Name, &created.Description, &created.Price, &created.SellerID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSellerNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product",
			zap.String("name", p.Name),
			zap.String("seller", sellerUsername),
			zap.Error(err),
		)
		return nil, err
	}

	created.SellerUsername = sellerUsername
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.seller_id, s.username, s.email
		FROM products p
		JOIN sellers s ON p.seller_id = s.id
		WHERE p.id = $1
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SellerID, &p.SellerUsername, &p.SellerEmail)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.seller_id, s.username, s.email
		FROM products p
		JOIN sellers s ON p.seller_id = s.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SellerID, &p.SellerUsername, &p.SellerEmail); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Update applies the provided fields. RETURNING makes a vanished id visible:
// zero rows back is ErrProductNotFound, never a silent no-op.
func (r *repository) Update(ctx context.Context, id int, fields UpdateParams) (*Product, error) {
	query := `
		UPDATE products
		SET name        = COALESCE($1, name),
		    description = COALESCE($2, description),
		    price       = COALESCE($3, price)
		WHERE id = $4
		RETURNING id, name, description, price, seller_id
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query,
		fields.Name, fields.Description, fields.Price, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SellerID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update product",
			zap.Int("id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return &p, nil
}

// Delete removes a product and reports whether a row was actually removed.
func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete product",
			zap.Int("id", id),
			zap.Error(err),
		)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
