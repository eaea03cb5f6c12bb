package order

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/messaging/kafka"
)

// CreateOrderCommand — намерение создать заказ. Quantity >= 1
// гарантируется граничной валидацией.
type CreateOrderCommand struct {
	CustomerName string
	ProductID    string
	Quantity     int
}

// UpdateOrderCommand — смена статуса заказа.
type UpdateOrderCommand struct {
	ID     string
	Status domain.OrderStatus
}

// Commands обрабатывает мутирующие операции модуля Order.
// Зависимость от модуля Product сведена к порту ProductLookup.
type Commands struct {
	repo     domain.OrderRepository
	products domain.ProductLookup
	events   domain.EventPublisher
	logger   *log.Entry
}

// NewCommands конструирует обработчик команд. events может быть nil —
// тогда события не публикуются.
func NewCommands(
	repo domain.OrderRepository,
	products domain.ProductLookup,
	events domain.EventPublisher,
	logger *log.Entry,
) *Commands {
	if logger == nil {
		logger = log.WithField("component", "order-commands")
	}
	return &Commands{repo: repo, products: products, events: events, logger: logger}
}

// CreateOrder реализует сценарий создания заказа: ищет товар через порт
// модуля Product, считает сумму, фиксирует снапшот единственной позиции,
// валидирует заказ доменной фабрикой и сохраняет его. Остаток товара при
// создании заказа не уменьшается.
func (c *Commands) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (Response, error) {
	product, err := c.products.GetProduct(ctx, cmd.ProductID)
	if err != nil {
		return Response{}, err
	}

	totalAmount := product.Price * float64(cmd.Quantity)

	items, err := domain.MarshalItems([]domain.OrderItem{
		{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    cmd.Quantity,
		},
	})
	if err != nil {
		return Response{}, err
	}

	data, err := domain.NewOrder(cmd.CustomerName, totalAmount, domain.OrderStatusPending, items)
	if err != nil {
		return Response{}, err
	}

	created, err := c.repo.Create(ctx, data)
	if err != nil {
		c.logger.WithError(err).Error("failed to create order")
		return Response{}, err
	}

	c.publish(kafka.EventTypeOrderCreated, created)
	return ToResponse(created)
}

// UpdateOrder переводит заказ в новый статус. Переходы не ограничены:
// любой статус может смениться любым из допустимого множества.
func (c *Commands) UpdateOrder(ctx context.Context, cmd UpdateOrderCommand) (Response, error) {
	existing, err := c.repo.Get(ctx, cmd.ID)
	if err != nil {
		return Response{}, err
	}

	// Доменная проверка статуса до обращения к хранилищу: невалидный
	// статус — это ValidationError, а не ошибка стора.
	if _, err := existing.UpdateStatus(cmd.Status); err != nil {
		return Response{}, err
	}

	status := cmd.Status
	updated, err := c.repo.Update(ctx, cmd.ID, domain.OrderPatch{Status: &status})
	if err != nil {
		return Response{}, err
	}

	c.publish(kafka.EventTypeOrderStatusChanged, updated)
	return ToResponse(updated)
}

// publish отправляет событие заказа; ошибка публикации логируется и
// никогда не влияет на результат команды.
func (c *Commands) publish(eventType kafka.EventType, o domain.Order) {
	if c.events == nil {
		return
	}
	event := kafka.NewOrderEvent(eventType, o.ID, o.CustomerName, string(o.Status), o.TotalAmount)
	if err := c.events.PublishEvent(kafka.TopicOrderEvents, o.ID, event); err != nil {
		c.logger.WithError(err).WithField("event_type", eventType).Warn("failed to publish order event")
	}
}
