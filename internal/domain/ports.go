package domain

import "context"

// ProductLookup — узкий контракт модуля Product, потребляемый модулем
// Order. Сводит межмодульную зависимость к одному методу.
type ProductLookup interface {
	// GetProduct возвращает товар по идентификатору или ErrProductNotFound.
	GetProduct(ctx context.Context, id string) (Product, error)
}

// EventPublisher публикует доменные события наружу (Kafka).
// Реализация может отсутствовать: публикация опциональна и никогда
// не влияет на результат операции.
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}
