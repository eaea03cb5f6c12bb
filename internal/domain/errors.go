package domain

import (
	"errors"
	"fmt"
)

// ErrValidation — базовая ошибка доменной валидации; все конкретные
// ошибки инвариантов оборачивают её через %w.
var ErrValidation = errors.New("validation error")

var (
	// Ошибка пустого имени товара.
	ErrProductNameEmpty = fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	// Ошибка превышения максимальной длины имени товара.
	ErrProductNameTooLong = fmt.Errorf("%w: product name cannot exceed 255 characters", ErrValidation)
	// Ошибка отрицательной цены товара.
	ErrProductPriceNegative = fmt.Errorf("%w: product price cannot be negative", ErrValidation)
	// Ошибка нечисловой цены (NaN/Inf).
	ErrProductPriceNotFinite = fmt.Errorf("%w: product price must be a valid number", ErrValidation)
	// Ошибка отрицательного остатка товара.
	ErrProductStockNegative = fmt.Errorf("%w: product stock cannot be negative", ErrValidation)
	// Ошибка пустого имени клиента в заказе.
	ErrCustomerNameEmpty = fmt.Errorf("%w: customer name cannot be empty", ErrValidation)
	// Ошибка превышения максимальной длины имени клиента.
	ErrCustomerNameTooLong = fmt.Errorf("%w: customer name cannot exceed 255 characters", ErrValidation)
	// Ошибка отрицательной суммы заказа.
	ErrTotalAmountNegative = fmt.Errorf("%w: order total amount cannot be negative", ErrValidation)
	// Ошибка нечисловой суммы заказа (NaN/Inf).
	ErrTotalAmountNotFinite = fmt.Errorf("%w: order total amount must be a valid number", ErrValidation)
	// Ошибка статуса вне допустимого множества.
	ErrOrderStatusInvalid = fmt.Errorf("%w: order status must be one of: pending, completed, cancelled", ErrValidation)
)

var (
	// ErrProductNotFound возвращается, если товар не найден в репозитории.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
)

// IsValidation проверяет, является ли ошибка нарушением доменного инварианта.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound проверяет, является ли ошибка отсутствием записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrOrderNotFound)
}
