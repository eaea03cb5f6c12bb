package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/service/product"
)

// ProductHandler обслуживает HTTP-операции модуля Product.
type ProductHandler struct {
	commands *product.Commands
	queries  *product.Queries
	logger   *log.Entry
}

// NewProductHandler конструирует обработчик.
func NewProductHandler(commands *product.Commands, queries *product.Queries, logger *log.Entry) *ProductHandler {
	if logger == nil {
		logger = log.WithField("component", "product-handler")
	}
	return &ProductHandler{commands: commands, queries: queries, logger: logger}
}

// Register подключает маршруты модуля Product.
func (h *ProductHandler) Register(r chi.Router) {
	r.Post("/products", h.create)
	r.Get("/products", h.list)
	r.Get("/products/{id}", h.get)
	r.Patch("/products/{id}", h.update)
	r.Delete("/products/{id}", h.delete)
}

type createProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *float64 `json:"stock"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *float64 `json:"stock"`
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	// Явная граничная валидация перед построением команды.
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		writeErrorMessage(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Price == nil {
		writeErrorMessage(w, http.StatusBadRequest, "price is required")
		return
	}
	stock := 0
	if req.Stock != nil {
		if !isIntegral(*req.Stock) {
			writeErrorMessage(w, http.StatusBadRequest, "stock must be an integer")
			return
		}
		stock = int(*req.Stock)
	}

	response, err := h.commands.CreateProduct(r.Context(), product.CreateProductCommand{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       stock,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	response, err := h.queries.GetProduct(r.Context(), product.GetProductQuery{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	skip, take, err := parseListParams(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	responses, err := h.queries.ListProducts(r.Context(), product.ListProductsQuery{Skip: skip, Take: take})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeErrorMessage(w, http.StatusBadRequest, "name cannot be empty")
		return
	}
	var stock *int
	if req.Stock != nil {
		if !isIntegral(*req.Stock) {
			writeErrorMessage(w, http.StatusBadRequest, "stock must be an integer")
			return
		}
		value := int(*req.Stock)
		stock = &value
	}

	response, err := h.commands.UpdateProduct(r.Context(), product.UpdateProductCommand{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       stock,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.commands.DeleteProduct(r.Context(), product.DeleteProductCommand{ID: chi.URLParam(r, "id")}); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
