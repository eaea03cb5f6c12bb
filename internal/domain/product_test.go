package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestNewProduct(t *testing.T) {
	description := "портативная колонка"
	data, err := NewProduct("Speaker", &description, 49.99, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Name != "Speaker" {
		t.Errorf("unexpected name: %s", data.Name)
	}
	if data.Description == nil || *data.Description != description {
		t.Errorf("unexpected description: %v", data.Description)
	}
	if data.Price != 49.99 {
		t.Errorf("unexpected price: %f", data.Price)
	}
	if data.Stock != 10 {
		t.Errorf("unexpected stock: %d", data.Stock)
	}
}

func TestNewProduct_NilDescriptionAndZeroStock(t *testing.T) {
	data, err := NewProduct("Speaker", nil, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Description != nil {
		t.Errorf("expected nil description, got %v", data.Description)
	}
	if data.Stock != 0 {
		t.Errorf("expected zero stock, got %d", data.Stock)
	}
}

func TestNewProduct_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		prod    string
		price   float64
		stock   int
		wantErr error
	}{
		{"empty name", "", 1, 1, ErrProductNameEmpty},
		{"whitespace name", "   \t ", 1, 1, ErrProductNameEmpty},
		{"too long name", strings.Repeat("a", 256), 1, 1, ErrProductNameTooLong},
		{"negative price", "ok", -0.01, 1, ErrProductPriceNegative},
		{"nan price", "ok", math.NaN(), 1, ErrProductPriceNotFinite},
		{"inf price", "ok", math.Inf(1), 1, ErrProductPriceNotFinite},
		{"negative stock", "ok", 1, -1, ErrProductStockNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.prod, nil, tt.price, tt.stock)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !IsValidation(err) {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestNewProduct_NameAt255IsValid(t *testing.T) {
	if _, err := NewProduct(strings.Repeat("a", 255), nil, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconstituteProduct(t *testing.T) {
	now := time.Now().UTC()
	record := Product{
		ID:        "p-1",
		Name:      "Speaker",
		Price:     49.99,
		Stock:     10,
		CreatedAt: now,
		UpdatedAt: now,
	}

	restored, err := ReconstituteProduct(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != record {
		t.Errorf("expected record to survive reconstitution unchanged")
	}
}

func TestReconstituteProduct_RejectsCorruptedRecord(t *testing.T) {
	_, err := ReconstituteProduct(Product{ID: "p-1", Name: "Speaker", Price: -5})
	if !errors.Is(err, ErrProductPriceNegative) {
		t.Fatalf("expected price error, got %v", err)
	}
}

func TestUpdateStock(t *testing.T) {
	original := Product{
		ID:        "p-1",
		Name:      "Speaker",
		Price:     49.99,
		Stock:     10,
		UpdatedAt: time.Now().Add(-time.Hour),
	}

	updated, err := original.UpdateStock(-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Stock != 7 {
		t.Errorf("expected stock 7, got %d", updated.Stock)
	}
	if !updated.UpdatedAt.After(original.UpdatedAt) {
		t.Error("expected UpdatedAt to be refreshed")
	}

	// Исходный экземпляр не мутирует
	if original.Stock != 10 {
		t.Errorf("original stock changed: %d", original.Stock)
	}
}

func TestUpdateStock_RejectsNegativeResult(t *testing.T) {
	original := Product{ID: "p-1", Name: "Speaker", Price: 1, Stock: 2}

	_, err := original.UpdateStock(-3)
	if !errors.Is(err, ErrProductStockNegative) {
		t.Fatalf("expected stock error, got %v", err)
	}
}
