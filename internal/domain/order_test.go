package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestNewOrder(t *testing.T) {
	data, err := NewOrder("Ivan Petrov", 99.98, OrderStatusPending, `[{"productId":"p-1","productName":"Speaker","price":49.99,"quantity":2}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.CustomerName != "Ivan Petrov" {
		t.Errorf("unexpected customer name: %s", data.CustomerName)
	}
	if data.TotalAmount != 99.98 {
		t.Errorf("unexpected total: %f", data.TotalAmount)
	}
	if data.Status != OrderStatusPending {
		t.Errorf("unexpected status: %s", data.Status)
	}
}

func TestNewOrder_Defaults(t *testing.T) {
	data, err := NewOrder("Ivan Petrov", 0, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Status != OrderStatusPending {
		t.Errorf("expected pending status by default, got %s", data.Status)
	}
	if data.Items != "[]" {
		t.Errorf("expected empty items blob, got %s", data.Items)
	}
}

func TestNewOrder_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		total    float64
		status   OrderStatus
		wantErr  error
	}{
		{"empty customer", "", 1, OrderStatusPending, ErrCustomerNameEmpty},
		{"whitespace customer", "  ", 1, OrderStatusPending, ErrCustomerNameEmpty},
		{"too long customer", strings.Repeat("x", 256), 1, OrderStatusPending, ErrCustomerNameTooLong},
		{"negative total", "ok", -1, OrderStatusPending, ErrTotalAmountNegative},
		{"nan total", "ok", math.NaN(), OrderStatusPending, ErrTotalAmountNotFinite},
		{"inf total", "ok", math.Inf(-1), OrderStatusPending, ErrTotalAmountNotFinite},
		{"unknown status", "ok", 1, "shipped", ErrOrderStatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrder(tt.customer, tt.total, tt.status, "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !IsValidation(err) {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled} {
		if !status.Valid() {
			t.Errorf("expected %s to be valid", status)
		}
	}

	for _, status := range []OrderStatus{"", "shipped", "PENDING"} {
		if status.Valid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestReconstituteOrder(t *testing.T) {
	now := time.Now().UTC()
	record := Order{
		ID:           "o-1",
		CustomerName: "Ivan Petrov",
		TotalAmount:  10,
		Status:       OrderStatusCompleted,
		Items:        "[]",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	restored, err := ReconstituteOrder(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != record {
		t.Error("expected record to survive reconstitution unchanged")
	}
}

func TestReconstituteOrder_RejectsCorruptedRecord(t *testing.T) {
	_, err := ReconstituteOrder(Order{ID: "o-1", CustomerName: "Ivan", TotalAmount: 1, Status: "shipped"})
	if !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	original := Order{
		ID:           "o-1",
		CustomerName: "Ivan Petrov",
		TotalAmount:  10,
		Status:       OrderStatusPending,
		UpdatedAt:    time.Now().Add(-time.Hour),
	}

	updated, err := original.UpdateStatus(OrderStatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Status != OrderStatusCancelled {
		t.Errorf("expected cancelled, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(original.UpdatedAt) {
		t.Error("expected UpdatedAt to be refreshed")
	}
	if original.Status != OrderStatusPending {
		t.Errorf("original status changed: %s", original.Status)
	}
}

func TestUpdateStatus_SameStatusAllowed(t *testing.T) {
	original := Order{ID: "o-1", CustomerName: "Ivan", TotalAmount: 1, Status: OrderStatusPending}

	updated, err := original.UpdateStatus(OrderStatusPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != OrderStatusPending {
		t.Errorf("unexpected status: %s", updated.Status)
	}
}

func TestUpdateStatus_Invalid(t *testing.T) {
	original := Order{ID: "o-1", CustomerName: "Ivan", TotalAmount: 1, Status: OrderStatusPending}

	if _, err := original.UpdateStatus("shipped"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestMarshalItems(t *testing.T) {
	blob, err := MarshalItems([]OrderItem{{
		ProductID:   "p-1",
		ProductName: "Speaker",
		Price:       49.99,
		Quantity:    2,
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := UnmarshalItems(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ProductID != "p-1" || items[0].Quantity != 2 {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestMarshalItems_Empty(t *testing.T) {
	blob, err := MarshalItems(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blob != "[]" {
		t.Errorf("expected empty blob, got %s", blob)
	}
}

func TestUnmarshalItems_MalformedBlob(t *testing.T) {
	if _, err := UnmarshalItems("{not json"); err == nil {
		t.Fatal("expected error for malformed blob")
	}
}
