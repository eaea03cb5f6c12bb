package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/service/order"
)

// OrderHandler обслуживает HTTP-операции модуля Order.
type OrderHandler struct {
	commands *order.Commands
	queries  *order.Queries
	logger   *log.Entry
}

// NewOrderHandler конструирует обработчик.
func NewOrderHandler(commands *order.Commands, queries *order.Queries, logger *log.Entry) *OrderHandler {
	if logger == nil {
		logger = log.WithField("component", "order-handler")
	}
	return &OrderHandler{commands: commands, queries: queries, logger: logger}
}

// Register подключает маршруты модуля Order. Удаление заказов наружу
// не выставляется.
func (h *OrderHandler) Register(r chi.Router) {
	r.Post("/orders", h.create)
	r.Get("/orders", h.list)
	r.Get("/orders/{id}", h.get)
	r.Patch("/orders/{id}", h.update)
}

type createOrderRequest struct {
	CustomerName *string  `json:"customerName"`
	ProductID    *string  `json:"productId"`
	Quantity     *float64 `json:"quantity"`
}

type updateOrderRequest struct {
	Status *string `json:"status"`
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.CustomerName == nil || strings.TrimSpace(*req.CustomerName) == "" {
		writeErrorMessage(w, http.StatusBadRequest, "customerName is required")
		return
	}
	if req.ProductID == nil {
		writeErrorMessage(w, http.StatusBadRequest, "productId is required")
		return
	}
	if _, err := uuid.Parse(*req.ProductID); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "productId must be a valid UUID")
		return
	}
	if req.Quantity == nil || !isIntegral(*req.Quantity) || *req.Quantity < 1 {
		writeErrorMessage(w, http.StatusBadRequest, "quantity must be an integer >= 1")
		return
	}

	response, err := h.commands.CreateOrder(r.Context(), order.CreateOrderCommand{
		CustomerName: *req.CustomerName,
		ProductID:    *req.ProductID,
		Quantity:     int(*req.Quantity),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request) {
	response, err := h.queries.GetOrder(r.Context(), order.GetOrderQuery{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	skip, take, err := parseListParams(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	responses, err := h.queries.ListOrders(r.Context(), order.ListOrdersQuery{Skip: skip, Take: take})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *OrderHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Status == nil || strings.TrimSpace(*req.Status) == "" {
		writeErrorMessage(w, http.StatusBadRequest, "status is required")
		return
	}

	response, err := h.commands.UpdateOrder(r.Context(), order.UpdateOrderCommand{
		ID:     chi.URLParam(r, "id"),
		Status: domain.OrderStatus(*req.Status),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
