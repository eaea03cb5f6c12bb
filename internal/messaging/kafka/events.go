package kafka

import "time"

// EventType определяет тип события.
type EventType string

const (
	// События каталога.
	EventTypeProductCreated EventType = "product.created"
	EventTypeProductUpdated EventType = "product.updated"
	EventTypeProductDeleted EventType = "product.deleted"

	// События заказов.
	EventTypeOrderCreated       EventType = "order.created"
	EventTypeOrderStatusChanged EventType = "order.status_changed"
)

// Topics для Kafka.
const (
	TopicProductEvents = "shop.product.events"
	TopicOrderEvents   = "shop.order.events"
)

// ProductEvent представляет событие жизненного цикла товара.
type ProductEvent struct {
	EventType EventType `json:"event_type"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderEvent представляет событие жизненного цикла заказа.
type OrderEvent struct {
	EventType    EventType `json:"event_type"`
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"total_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewProductEvent создает новое событие товара.
func NewProductEvent(eventType EventType, productID, name string, price float64, stock int) *ProductEvent {
	return &ProductEvent{
		EventType: eventType,
		ProductID: productID,
		Name:      name,
		Price:     price,
		Stock:     stock,
		Timestamp: time.Now(),
	}
}

// NewOrderEvent создает новое событие заказа.
func NewOrderEvent(eventType EventType, orderID, customerName, status string, totalAmount float64) *OrderEvent {
	return &OrderEvent{
		EventType:    eventType,
		OrderID:      orderID,
		CustomerName: customerName,
		Status:       status,
		TotalAmount:  totalAmount,
		Timestamp:    time.Now(),
	}
}
