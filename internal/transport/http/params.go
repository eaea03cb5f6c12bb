package httpapi

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// parseListParams разбирает опциональные query-параметры skip/take.
// Отсутствующий параметр остаётся нулём ("не задано").
func parseListParams(r *http.Request) (skip, take int, err error) {
	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, fmt.Errorf("skip must be a non-negative integer")
		}
	}
	if raw := r.URL.Query().Get("take"); raw != "" {
		take, err = strconv.Atoi(raw)
		if err != nil || take < 0 {
			return 0, 0, fmt.Errorf("take must be a non-negative integer")
		}
	}
	return skip, take, nil
}

// isIntegral сообщает, представляет ли число целое значение.
// JSON не различает целые и дробные, поэтому проверка выполняется
// на границе до построения команды.
func isIntegral(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
}
