package domain

import (
	"math"
	"strings"
	"time"
)

const maxNameLength = 255

// Product агрегирует состояние товара каталога.
type Product struct {
	ID          string
	Name        string
	Description *string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductData — валидированный набор атрибутов нового товара.
// ID и таймстемпы назначает хранилище при создании записи.
type ProductData struct {
	Name        string
	Description *string
	Price       float64
	Stock       int
}

// NewProduct валидирует атрибуты и возвращает данные для создания товара.
// Отсутствующее описание остаётся nil, отсутствующий stock на границе — ноль.
func NewProduct(name string, description *string, price float64, stock int) (ProductData, error) {
	if err := validateProductName(name); err != nil {
		return ProductData{}, err
	}
	if err := validateProductPrice(price); err != nil {
		return ProductData{}, err
	}
	if err := validateProductStock(stock); err != nil {
		return ProductData{}, err
	}

	return ProductData{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// ReconstituteProduct восстанавливает товар из сохранённой записи,
// повторно применяя все инварианты (защита от повреждённых данных).
func ReconstituteProduct(record Product) (Product, error) {
	if err := validateProductName(record.Name); err != nil {
		return Product{}, err
	}
	if err := validateProductPrice(record.Price); err != nil {
		return Product{}, err
	}
	if err := validateProductStock(record.Stock); err != nil {
		return Product{}, err
	}
	return record, nil
}

// UpdateStock возвращает новый экземпляр с изменённым остатком и свежим
// UpdatedAt. Отрицательный итоговый остаток — ошибка валидации.
func (p Product) UpdateStock(delta int) (Product, error) {
	newStock := p.Stock + delta
	if err := validateProductStock(newStock); err != nil {
		return Product{}, err
	}

	updated := p
	updated.Stock = newStock
	updated.UpdatedAt = time.Now().UTC()
	return updated, nil
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrProductNameEmpty
	}
	if len(name) > maxNameLength {
		return ErrProductNameTooLong
	}
	return nil
}

func validateProductPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrProductPriceNotFinite
	}
	if price < 0 {
		return ErrProductPriceNegative
	}
	return nil
}

func validateProductStock(stock int) error {
	if stock < 0 {
		return ErrProductStockNegative
	}
	return nil
}
