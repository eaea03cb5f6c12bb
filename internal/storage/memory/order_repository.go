package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной
// разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// Create назначает ID и таймстемпы, сохраняет заказ и возвращает запись.
func (r *orderRepositoryInMemory) Create(_ context.Context, data domain.OrderData) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	order := domain.Order{
		ID:           uuid.NewString(),
		CustomerName: data.CustomerName,
		TotalAmount:  data.TotalAmount,
		Status:       data.Status,
		Items:        data.Items,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.items[order.ID] = order
	return order, nil
}

// Get возвращает заказ или ErrOrderNotFound.
func (r *orderRepositoryInMemory) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// List возвращает заказы, упорядоченные по created_at DESC, id DESC,
// с применением опциональных skip/take.
func (r *orderRepositoryInMemory) List(_ context.Context, params domain.ListParams) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		result = append(result, order)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return paginateOrders(result, params), nil
}

// Update проверяет существование записи и применяет частичное обновление.
func (r *orderRepositoryInMemory) Update(_ context.Context, id string, patch domain.OrderPatch) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	if patch.CustomerName != nil {
		order.CustomerName = *patch.CustomerName
	}
	if patch.TotalAmount != nil {
		order.TotalAmount = *patch.TotalAmount
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.Items != nil {
		order.Items = *patch.Items
	}
	order.UpdatedAt = time.Now().UTC()

	// Патч повторно проходит доменные проверки: невалидная комбинация
	// полей не попадает в хранилище.
	order, err := domain.ReconstituteOrder(order)
	if err != nil {
		return domain.Order{}, err
	}

	r.items[id] = order
	return order, nil
}

// Delete проверяет существование записи, удаляет её и возвращает
// удалённый заказ.
func (r *orderRepositoryInMemory) Delete(_ context.Context, id string) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	delete(r.items, id)
	return order, nil
}

func paginateOrders(items []domain.Order, params domain.ListParams) []domain.Order {
	if params.Skip > 0 {
		if params.Skip >= len(items) {
			return []domain.Order{}
		}
		items = items[params.Skip:]
	}
	if params.Take > 0 && len(items) > params.Take {
		items = items[:params.Take]
	}
	return items
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
