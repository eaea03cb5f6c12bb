package order

import "time"

// ItemResponse — внешнее представление позиции заказа.
type ItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Response — внешнее представление заказа. Позиции отдаются
// структурированным списком, а не хранимым блобом.
type Response struct {
	ID           string         `json:"id"`
	CustomerName string         `json:"customerName"`
	TotalAmount  float64        `json:"totalAmount"`
	Status       string         `json:"status"`
	Items        []ItemResponse `json:"items"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
