package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/storage/memory"
	"github.com/vladislavdragonenkov/shop/internal/storage/postgres"
)

// Dependencies содержит хранилища приложения. Store заполнен только
// для PostgreSQL-драйвера и используется health-проверкой.
type Dependencies struct {
	ProductRepo domain.ProductRepository
	OrderRepo   domain.OrderRepository
	Store       *postgres.Store
	Logger      *log.Entry
}

// NewDependencies создаёт in-memory зависимости для разработки и тестов.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	return &Dependencies{
		ProductRepo: memory.NewProductRepository(),
		OrderRepo:   memory.NewOrderRepository(),
		Logger:      logger,
	}
}
