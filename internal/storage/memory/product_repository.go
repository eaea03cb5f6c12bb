package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

// NewProductRepository возвращает in-memory репозиторий для локальной
// разработки и тестов.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// Create назначает ID и таймстемпы, сохраняет товар и возвращает запись.
func (r *productRepositoryInMemory) Create(_ context.Context, data domain.ProductData) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	product := domain.Product{
		ID:          uuid.NewString(),
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items[product.ID] = product
	return product, nil
}

// Get возвращает товар или ErrProductNotFound.
func (r *productRepositoryInMemory) Get(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// List возвращает товары, упорядоченные по created_at DESC, id DESC,
// с применением опциональных skip/take.
func (r *productRepositoryInMemory) List(_ context.Context, params domain.ListParams) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.items))
	for _, product := range r.items {
		result = append(result, product)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return paginateProducts(result, params), nil
}

// Update проверяет существование записи и применяет частичное обновление.
func (r *productRepositoryInMemory) Update(_ context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	product.UpdatedAt = time.Now().UTC()

	// Патч повторно проходит доменные проверки: невалидная комбинация
	// полей не попадает в хранилище.
	product, err := domain.ReconstituteProduct(product)
	if err != nil {
		return domain.Product{}, err
	}

	r.items[id] = product
	return product, nil
}

// Delete проверяет существование записи, удаляет её и возвращает
// удалённый товар.
func (r *productRepositoryInMemory) Delete(_ context.Context, id string) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	delete(r.items, id)
	return product, nil
}

func paginateProducts(items []domain.Product, params domain.ListParams) []domain.Product {
	if params.Skip > 0 {
		if params.Skip >= len(items) {
			return []domain.Product{}
		}
		items = items[params.Skip:]
	}
	if params.Take > 0 && len(items) > params.Take {
		items = items[:params.Take]
	}
	return items
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
