package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

const opTimeout = 5 * time.Second

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) Create(ctx context.Context, data domain.ProductData) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, stock, created_at, updated_at
	`, data.Name, data.Description, data.Price, data.Stock)

	product, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return domain.ReconstituteProduct(product)
}

func (r *productRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}
	return domain.ReconstituteProduct(product)
}

func (r *productRepository) List(ctx context.Context, params domain.ListParams) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `
		SELECT id, name, description, price, stock, created_at, updated_at
		FROM products
		ORDER BY created_at DESC, id DESC
	`
	query, args := applyListParams(query, params)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		product, err = domain.ReconstituteProduct(product)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Product{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Сначала подтверждаем существование: отсутствие записи всегда
	// отдаётся как NotFound, а не как ошибка хранилища.
	current, err := scanProduct(tx.QueryRowContext(ctx, `
		SELECT id, name, description, price, stock, created_at, updated_at
		FROM products
		WHERE id = $1
		FOR UPDATE
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrProductNotFound
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("select product for update: %w", err)
	}

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.Description != nil {
		current.Description = patch.Description
	}
	if patch.Price != nil {
		current.Price = *patch.Price
	}
	if patch.Stock != nil {
		current.Stock = *patch.Stock
	}

	row := tx.QueryRowContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, stock = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, name, description, price, stock, created_at, updated_at
	`, current.Name, current.Description, current.Price, current.Stock, id)

	updated, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}

	// Реконструкция до коммита: патч, нарушающий инварианты товара,
	// откатывается и не фиксируется в таблице.
	updated, err = domain.ReconstituteProduct(updated)
	if err != nil {
		return domain.Product{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Product{}, fmt.Errorf("commit update product: %w", err)
	}

	return updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		DELETE FROM products
		WHERE id = $1
		RETURNING id, name, description, price, stock, created_at, updated_at
	`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("delete product: %w", err)
	}
	return domain.ReconstituteProduct(product)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		product     domain.Product
		description sql.NullString
	)
	if err := row.Scan(
		&product.ID, &product.Name, &description,
		&product.Price, &product.Stock, &product.CreatedAt, &product.UpdatedAt,
	); err != nil {
		return domain.Product{}, err
	}
	if description.Valid {
		product.Description = &description.String
	}
	return product, nil
}

// applyListParams дописывает OFFSET/LIMIT к запросу для положительных
// skip/take; нулевые и отрицательные значения игнорируются.
func applyListParams(query string, params domain.ListParams) (string, []any) {
	args := make([]any, 0, 2)
	if params.Skip > 0 {
		args = append(args, params.Skip)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	if params.Take > 0 {
		args = append(args, params.Take)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return query, args
}

var _ domain.ProductRepository = (*productRepository)(nil)
