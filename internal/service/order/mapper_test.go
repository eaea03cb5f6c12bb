package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

func TestToResponse(t *testing.T) {
	now := time.Now().UTC()
	response, err := ToResponse(domain.Order{
		ID:           "o-1",
		CustomerName: "Ivan Petrov",
		TotalAmount:  99.98,
		Status:       domain.OrderStatusPending,
		Items:        `[{"productId":"p-1","productName":"Speaker","price":49.99,"quantity":2}]`,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	assert.Equal(t, "o-1", response.ID)
	assert.Equal(t, "pending", response.Status)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "Speaker", response.Items[0].ProductName)
	assert.Equal(t, 2, response.Items[0].Quantity)
}

func TestToResponse_EmptyItems(t *testing.T) {
	response, err := ToResponse(domain.Order{
		ID:           "o-1",
		CustomerName: "Ivan",
		Status:       domain.OrderStatusPending,
		Items:        "[]",
	})
	require.NoError(t, err)

	assert.NotNil(t, response.Items)
	assert.Empty(t, response.Items)
}

func TestToResponse_MalformedBlob(t *testing.T) {
	_, err := ToResponse(domain.Order{
		ID:           "o-1",
		CustomerName: "Ivan",
		Status:       domain.OrderStatusPending,
		Items:        "{not json",
	})
	require.Error(t, err)
}

func TestToResponseList_PropagatesMapperError(t *testing.T) {
	orders := []domain.Order{
		{ID: "o-1", CustomerName: "Ivan", Status: domain.OrderStatusPending, Items: "[]"},
		{ID: "o-2", CustomerName: "Ivan", Status: domain.OrderStatusPending, Items: "broken"},
	}

	_, err := ToResponseList(orders)
	require.Error(t, err)
}
