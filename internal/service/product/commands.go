package product

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/messaging/kafka"
)

// CreateProductCommand — намерение создать товар. Значения уже прошли
// граничную валидацию типов; доменные инварианты проверяет фабрика.
type CreateProductCommand struct {
	Name        string
	Description *string
	Price       float64
	Stock       int
}

// UpdateProductCommand — частичное обновление товара; nil-поле не меняется.
type UpdateProductCommand struct {
	ID          string
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// DeleteProductCommand — намерение удалить товар.
type DeleteProductCommand struct {
	ID string
}

// Commands обрабатывает мутирующие операции модуля Product.
type Commands struct {
	repo   domain.ProductRepository
	events domain.EventPublisher
	logger *log.Entry
}

// NewCommands конструирует обработчик команд. events может быть nil —
// тогда события не публикуются.
func NewCommands(repo domain.ProductRepository, events domain.EventPublisher, logger *log.Entry) *Commands {
	if logger == nil {
		logger = log.WithField("component", "product-commands")
	}
	return &Commands{repo: repo, events: events, logger: logger}
}

// CreateProduct валидирует атрибуты через доменную фабрику и сохраняет товар.
func (c *Commands) CreateProduct(ctx context.Context, cmd CreateProductCommand) (Response, error) {
	data, err := domain.NewProduct(cmd.Name, cmd.Description, cmd.Price, cmd.Stock)
	if err != nil {
		return Response{}, err
	}

	product, err := c.repo.Create(ctx, data)
	if err != nil {
		c.logger.WithError(err).Error("failed to create product")
		return Response{}, err
	}

	c.publish(kafka.EventTypeProductCreated, product)
	return ToResponse(product), nil
}

// UpdateProduct применяет частичное обновление. Отсутствующий товар —
// ErrProductNotFound, патч с нарушением инвариантов — ошибка валидации;
// и то и другое поднимает репозиторий.
func (c *Commands) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) (Response, error) {
	product, err := c.repo.Update(ctx, cmd.ID, domain.ProductPatch{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Stock:       cmd.Stock,
	})
	if err != nil {
		return Response{}, err
	}

	c.publish(kafka.EventTypeProductUpdated, product)
	return ToResponse(product), nil
}

// DeleteProduct удаляет товар и возвращает удалённую запись.
func (c *Commands) DeleteProduct(ctx context.Context, cmd DeleteProductCommand) (Response, error) {
	product, err := c.repo.Delete(ctx, cmd.ID)
	if err != nil {
		return Response{}, err
	}

	c.publish(kafka.EventTypeProductDeleted, product)
	return ToResponse(product), nil
}

// publish отправляет событие каталога; ошибка публикации логируется
// и никогда не влияет на результат команды.
func (c *Commands) publish(eventType kafka.EventType, product domain.Product) {
	if c.events == nil {
		return
	}
	event := kafka.NewProductEvent(eventType, product.ID, product.Name, product.Price, product.Stock)
	if err := c.events.PublishEvent(kafka.TopicProductEvents, product.ID, event); err != nil {
		c.logger.WithError(err).WithField("event_type", eventType).Warn("failed to publish product event")
	}
}
