package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан и ожидает обработки.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusCompleted — заказ выполнен.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled — заказ отменён.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid сообщает, входит ли статус в допустимое множество.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// emptyItems — сериализованное представление пустого списка позиций.
const emptyItems = "[]"

// OrderItem — снапшот позиции заказа, зафиксированный в момент создания.
// После создания заказа связь с товаром не поддерживается: снапшот
// авторитетен, даже если товар изменился.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Order агрегирует состояние заказа. Позиции хранятся сериализованным
// JSON-блобом в поле Items — осознанное упрощение (ровно одна позиция
// на заказ), а не нормализованная дочерняя таблица.
type Order struct {
	ID           string
	CustomerName string
	TotalAmount  float64
	Status       OrderStatus
	Items        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderData — валидированный набор атрибутов нового заказа.
type OrderData struct {
	CustomerName string
	TotalAmount  float64
	Status       OrderStatus
	Items        string
}

// NewOrder валидирует атрибуты и возвращает данные для создания заказа.
// Пустой статус трактуется как pending, пустые позиции — как "[]".
func NewOrder(customerName string, totalAmount float64, status OrderStatus, items string) (OrderData, error) {
	if status == "" {
		status = OrderStatusPending
	}
	if items == "" {
		items = emptyItems
	}

	if err := validateCustomerName(customerName); err != nil {
		return OrderData{}, err
	}
	if err := validateTotalAmount(totalAmount); err != nil {
		return OrderData{}, err
	}
	if !status.Valid() {
		return OrderData{}, ErrOrderStatusInvalid
	}

	return OrderData{
		CustomerName: customerName,
		TotalAmount:  totalAmount,
		Status:       status,
		Items:        items,
	}, nil
}

// ReconstituteOrder восстанавливает заказ из сохранённой записи,
// повторно применяя инварианты.
func ReconstituteOrder(record Order) (Order, error) {
	if err := validateCustomerName(record.CustomerName); err != nil {
		return Order{}, err
	}
	if err := validateTotalAmount(record.TotalAmount); err != nil {
		return Order{}, err
	}
	if !record.Status.Valid() {
		return Order{}, ErrOrderStatusInvalid
	}
	return record, nil
}

// UpdateStatus возвращает новый экземпляр заказа с новым статусом и свежим
// UpdatedAt. Ограничений на переходы нет: любой статус может смениться
// любым, включая самого себя.
func (o Order) UpdateStatus(status OrderStatus) (Order, error) {
	if !status.Valid() {
		return Order{}, ErrOrderStatusInvalid
	}

	updated := o
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()
	return updated, nil
}

// MarshalItems сериализует снапшоты позиций в блоб для хранения.
func MarshalItems(items []OrderItem) (string, error) {
	if len(items) == 0 {
		return emptyItems, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal order items: %w", err)
	}
	return string(data), nil
}

// UnmarshalItems разбирает хранимый блоб позиций. Повреждённый JSON —
// жёсткая ошибка, а не пустой список.
func UnmarshalItems(blob string) ([]OrderItem, error) {
	var items []OrderItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return items, nil
}

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerNameEmpty
	}
	if len(name) > maxNameLength {
		return ErrCustomerNameTooLong
	}
	return nil
}

func validateTotalAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrTotalAmountNotFinite
	}
	if amount < 0 {
		return ErrTotalAmountNegative
	}
	return nil
}
