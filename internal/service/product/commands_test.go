package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/shop/internal/storage/memory"
)

// capturingPublisher записывает опубликованные события для проверок.
type capturingPublisher struct {
	topics []string
	keys   []string
	events []interface{}
	err    error
}

func (p *capturingPublisher) PublishEvent(topic string, key string, event interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.keys = append(p.keys, key)
	p.events = append(p.events, event)
	return nil
}

func TestCreateProduct(t *testing.T) {
	repo := memory.NewProductRepository()
	publisher := &capturingPublisher{}
	commands := NewCommands(repo, publisher, nil)

	description := "портативная колонка"
	response, err := commands.CreateProduct(context.Background(), CreateProductCommand{
		Name:        "Speaker",
		Description: &description,
		Price:       49.99,
		Stock:       10,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "Speaker", response.Name)
	assert.Equal(t, 49.99, response.Price)
	assert.Equal(t, 10, response.Stock)
	assert.False(t, response.CreatedAt.IsZero())

	require.Len(t, publisher.events, 1)
	assert.Equal(t, kafka.TopicProductEvents, publisher.topics[0])
	assert.Equal(t, response.ID, publisher.keys[0])

	event, ok := publisher.events[0].(*kafka.ProductEvent)
	require.True(t, ok)
	assert.Equal(t, kafka.EventTypeProductCreated, event.EventType)
	assert.Equal(t, response.ID, event.ProductID)
}

func TestCreateProduct_ValidationError(t *testing.T) {
	repo := memory.NewProductRepository()
	publisher := &capturingPublisher{}
	commands := NewCommands(repo, publisher, nil)

	_, err := commands.CreateProduct(context.Background(), CreateProductCommand{
		Name:  "Speaker",
		Price: -1,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Невалидный товар не сохраняется и событие не публикуется
	products, err := repo.List(context.Background(), domain.ListParams{})
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Empty(t, publisher.events)
}

func TestCreateProduct_PublisherFailureDoesNotFailCommand(t *testing.T) {
	repo := memory.NewProductRepository()
	publisher := &capturingPublisher{err: errors.New("kafka down")}
	commands := NewCommands(repo, publisher, nil)

	response, err := commands.CreateProduct(context.Background(), CreateProductCommand{
		Name:  "Speaker",
		Price: 1,
		Stock: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.ID)
}

func TestCreateProduct_WithoutPublisher(t *testing.T) {
	commands := NewCommands(memory.NewProductRepository(), nil, nil)

	response, err := commands.CreateProduct(context.Background(), CreateProductCommand{
		Name:  "Speaker",
		Price: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.ID)
}

func TestCreateProduct_RepeatedCreatesProduceDistinctRecords(t *testing.T) {
	repo := memory.NewProductRepository()
	commands := NewCommands(repo, nil, nil)

	cmd := CreateProductCommand{Name: "Speaker", Price: 49.99, Stock: 10}

	first, err := commands.CreateProduct(context.Background(), cmd)
	require.NoError(t, err)
	second, err := commands.CreateProduct(context.Background(), cmd)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	products, err := repo.List(context.Background(), domain.ListParams{})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestUpdateProduct(t *testing.T) {
	repo := memory.NewProductRepository()
	publisher := &capturingPublisher{}
	commands := NewCommands(repo, publisher, nil)

	created, err := commands.CreateProduct(context.Background(), CreateProductCommand{
		Name:  "Speaker",
		Price: 49.99,
		Stock: 10,
	})
	require.NoError(t, err)

	newPrice := 39.99
	updated, err := commands.UpdateProduct(context.Background(), UpdateProductCommand{
		ID:    created.ID,
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, 39.99, updated.Price)
	assert.Equal(t, "Speaker", updated.Name)
	assert.Equal(t, 10, updated.Stock)

	require.Len(t, publisher.events, 2)
	event, ok := publisher.events[1].(*kafka.ProductEvent)
	require.True(t, ok)
	assert.Equal(t, kafka.EventTypeProductUpdated, event.EventType)
}

func TestUpdateProduct_ValidationError(t *testing.T) {
	repo := memory.NewProductRepository()
	publisher := &capturingPublisher{}
	commands := NewCommands(repo, publisher, nil)

	created, err := commands.CreateProduct(context.Background(), CreateProductCommand{
		Name:  "Speaker",
		Price: 49.99,
		Stock: 10,
	})
	require.NoError(t, err)

	badPrice := -5.0
	_, err = commands.UpdateProduct(context.Background(), UpdateProductCommand{
		ID:    created.ID,
		Price: &badPrice,
	})
	require.ErrorIs(t, err, domain.ErrProductPriceNegative)
	assert.True(t, domain.IsValidation(err))

	badStock := -1
	_, err = commands.UpdateProduct(context.Background(), UpdateProductCommand{
		ID:    created.ID,
		Stock: &badStock,
	})
	require.ErrorIs(t, err, domain.ErrProductStockNegative)

	// Запись не изменилась, update-событие не публиковалось
	stored, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 49.99, stored.Price)
	assert.Equal(t, 10, stored.Stock)
	require.Len(t, publisher.events, 1)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	commands := NewCommands(memory.NewProductRepository(), nil, nil)

	name := "x"
	_, err := commands.UpdateProduct(context.Background(), UpdateProductCommand{
		ID:   "missing",
		Name: &name,
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteProduct(t *testing.T) {
	repo := memory.NewProductRepository()
	publisher := &capturingPublisher{}
	commands := NewCommands(repo, publisher, nil)

	created, err := commands.CreateProduct(context.Background(), CreateProductCommand{
		Name:  "Speaker",
		Price: 1,
	})
	require.NoError(t, err)

	deleted, err := commands.DeleteProduct(context.Background(), DeleteProductCommand{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = repo.Get(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = commands.DeleteProduct(context.Background(), DeleteProductCommand{ID: created.ID})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}
