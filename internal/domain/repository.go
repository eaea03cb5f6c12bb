package domain

import "context"

// ListParams задаёт опциональную пагинацию выборки.
// Значения <= 0 трактуются как "не задано".
type ListParams struct {
	Skip int
	Take int
}

// ProductPatch описывает частичное обновление товара.
// nil-поле означает "не менять".
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// OrderPatch описывает частичное обновление заказа.
type OrderPatch struct {
	CustomerName *string
	TotalAmount  *float64
	Status       *OrderStatus
	Items        *string
}

// ProductRepository описывает требования к хранилищу товаров.
// Хранилище назначает ID и таймстемпы; выборка упорядочена по
// created_at DESC (id DESC как детерминированный tiebreak).
type ProductRepository interface {
	// Create сохраняет новый товар и возвращает полную запись.
	Create(ctx context.Context, data ProductData) (Product, error)
	// Get возвращает товар по идентификатору или ErrProductNotFound.
	Get(ctx context.Context, id string) (Product, error)
	// List возвращает товары с опциональными skip/take.
	List(ctx context.Context, params ListParams) ([]Product, error)
	// Update сначала подтверждает существование записи (ErrProductNotFound),
	// затем применяет частичное обновление.
	Update(ctx context.Context, id string, patch ProductPatch) (Product, error)
	// Delete сначала подтверждает существование записи, затем удаляет её
	// и возвращает удалённый товар.
	Delete(ctx context.Context, id string) (Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	Create(ctx context.Context, data OrderData) (Order, error)
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context, params ListParams) ([]Order, error)
	Update(ctx context.Context, id string, patch OrderPatch) (Order, error)
	Delete(ctx context.Context, id string) (Order, error)
}
