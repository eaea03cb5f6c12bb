package order

import "github.com/vladislavdragonenkov/shop/internal/domain"

// ToResponse преобразует сущность во внешнее представление,
// разворачивая хранимый блоб позиций в структурированный список.
// Повреждённый JSON в блобе — жёсткая ошибка, а не пустой список.
func ToResponse(o domain.Order) (Response, error) {
	items, err := domain.UnmarshalItems(o.Items)
	if err != nil {
		return Response{}, err
	}

	itemResponses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, ItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return Response{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		TotalAmount:  o.TotalAmount,
		Status:       string(o.Status),
		Items:        itemResponses,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}, nil
}

// ToResponseList преобразует срез сущностей.
func ToResponseList(orders []domain.Order) ([]Response, error) {
	result := make([]Response, 0, len(orders))
	for _, o := range orders {
		response, err := ToResponse(o)
		if err != nil {
			return nil, err
		}
		result = append(result, response)
	}
	return result, nil
}
