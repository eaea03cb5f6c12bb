package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Create(ctx context.Context, data domain.OrderData) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, total_amount, status, items)
		VALUES ($1, $2, $3, $4)
		RETURNING id, customer_name, total_amount, status, items, created_at, updated_at
	`, data.CustomerName, data.TotalAmount, string(data.Status), data.Items)

	order, err := scanOrder(row)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return domain.ReconstituteOrder(order)
}

func (r *orderRepository) Get(ctx context.Context, id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, customer_name, total_amount, status, items, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	return domain.ReconstituteOrder(order)
}

func (r *orderRepository) List(ctx context.Context, params domain.ListParams) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `
		SELECT id, customer_name, total_amount, status, items, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`
	query, args := applyListParams(query, params)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		order, err = domain.ReconstituteOrder(order)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, patch domain.OrderPatch) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Отсутствие записи всегда отдаётся как NotFound до попытки мутации.
	current, err := scanOrder(tx.QueryRowContext(ctx, `
		SELECT id, customer_name, total_amount, status, items, created_at, updated_at
		FROM orders
		WHERE id = $1
		FOR UPDATE
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrOrderNotFound
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("select order for update: %w", err)
	}

	if patch.CustomerName != nil {
		current.CustomerName = *patch.CustomerName
	}
	if patch.TotalAmount != nil {
		current.TotalAmount = *patch.TotalAmount
	}
	if patch.Status != nil {
		current.Status = *patch.Status
	}
	if patch.Items != nil {
		current.Items = *patch.Items
	}

	row := tx.QueryRowContext(ctx, `
		UPDATE orders
		SET customer_name = $1, total_amount = $2, status = $3, items = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, customer_name, total_amount, status, items, created_at, updated_at
	`, current.CustomerName, current.TotalAmount, string(current.Status), current.Items, id)

	updated, err := scanOrder(row)
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order: %w", err)
	}

	// Реконструкция до коммита: патч, нарушающий инварианты заказа,
	// откатывается и не фиксируется в таблице.
	updated, err = domain.ReconstituteOrder(updated)
	if err != nil {
		return domain.Order{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit update order: %w", err)
	}

	return updated, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		DELETE FROM orders
		WHERE id = $1
		RETURNING id, customer_name, total_amount, status, items, created_at, updated_at
	`, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("delete order: %w", err)
	}
	return domain.ReconstituteOrder(order)
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		status string
	)
	if err := row.Scan(
		&order.ID, &order.CustomerName, &order.TotalAmount,
		&status, &order.Items, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)
	return order, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
