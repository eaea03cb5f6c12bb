package product

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// GetProductQuery — запрос товара по идентификатору.
type GetProductQuery struct {
	ID string
}

// ListProductsQuery — запрос списка товаров с опциональной пагинацией.
// Значения <= 0 трактуются как "не задано".
type ListProductsQuery struct {
	Skip int
	Take int
}

// Queries обрабатывает читающие операции модуля Product.
type Queries struct {
	repo   domain.ProductRepository
	logger *log.Entry
}

// NewQueries конструирует обработчик запросов.
func NewQueries(repo domain.ProductRepository, logger *log.Entry) *Queries {
	if logger == nil {
		logger = log.WithField("component", "product-queries")
	}
	return &Queries{repo: repo, logger: logger}
}

// GetProduct возвращает товар или ErrProductNotFound.
func (q *Queries) GetProduct(ctx context.Context, query GetProductQuery) (Response, error) {
	product, err := q.repo.Get(ctx, query.ID)
	if err != nil {
		return Response{}, err
	}
	return ToResponse(product), nil
}

// ListProducts возвращает товары, упорядоченные по created_at DESC.
func (q *Queries) ListProducts(ctx context.Context, query ListProductsQuery) ([]Response, error) {
	products, err := q.repo.List(ctx, domain.ListParams{Skip: query.Skip, Take: query.Take})
	if err != nil {
		return nil, err
	}
	return ToResponseList(products), nil
}
