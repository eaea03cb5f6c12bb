package product

import "github.com/vladislavdragonenkov/shop/internal/domain"

// ToResponse — чистое преобразование сущности во внешнее представление.
func ToResponse(p domain.Product) Response {
	return Response{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToResponseList преобразует срез сущностей.
func ToResponseList(products []domain.Product) []Response {
	result := make([]Response, 0, len(products))
	for _, p := range products {
		result = append(result, ToResponse(p))
	}
	return result
}
