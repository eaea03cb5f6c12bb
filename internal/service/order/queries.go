package order

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// GetOrderQuery — запрос заказа по идентификатору.
type GetOrderQuery struct {
	ID string
}

// ListOrdersQuery — запрос списка заказов с опциональной пагинацией.
// Значения <= 0 трактуются как "не задано".
type ListOrdersQuery struct {
	Skip int
	Take int
}

// Queries обрабатывает читающие операции модуля Order.
type Queries struct {
	repo   domain.OrderRepository
	logger *log.Entry
}

// NewQueries конструирует обработчик запросов.
func NewQueries(repo domain.OrderRepository, logger *log.Entry) *Queries {
	if logger == nil {
		logger = log.WithField("component", "order-queries")
	}
	return &Queries{repo: repo, logger: logger}
}

// GetOrder возвращает заказ или ErrOrderNotFound.
func (q *Queries) GetOrder(ctx context.Context, query GetOrderQuery) (Response, error) {
	order, err := q.repo.Get(ctx, query.ID)
	if err != nil {
		return Response{}, err
	}
	return ToResponse(order)
}

// ListOrders возвращает заказы, упорядоченные по created_at DESC.
func (q *Queries) ListOrders(ctx context.Context, query ListOrdersQuery) ([]Response, error) {
	orders, err := q.repo.List(ctx, domain.ListParams{Skip: query.Skip, Take: query.Take})
	if err != nil {
		return nil, err
	}
	return ToResponseList(orders)
}
