package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// errorResponse — единый формат тела ошибки на границе API.
type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{
		StatusCode: code,
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// writeError транслирует ошибку ядра в HTTP-статус. Только здесь:
// ValidationError -> 400, NotFound -> 404, всё остальное -> 500.
func writeError(w http.ResponseWriter, logger *log.Entry, err error) {
	switch {
	case domain.IsValidation(err):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	default:
		logger.WithError(err).Error("request failed")
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
