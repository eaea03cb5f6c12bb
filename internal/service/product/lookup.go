package product

import (
	"context"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// Lookup реализует узкий контракт domain.ProductLookup, через который
// модуль Order обращается к модулю Product. Единственная точка
// межмодульной связности.
type Lookup struct {
	repo domain.ProductRepository
}

// NewLookup конструирует lookup-сервис модуля Product.
func NewLookup(repo domain.ProductRepository) *Lookup {
	return &Lookup{repo: repo}
}

// GetProduct возвращает товар по идентификатору или ErrProductNotFound.
func (l *Lookup) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return l.repo.Get(ctx, id)
}

var _ domain.ProductLookup = (*Lookup)(nil)
