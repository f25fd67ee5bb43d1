package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/skittree/bewiseai-test/internal/domain"
)

// errorDetail повторяет формат поля detail в ответах об ошибках
type errorDetail struct {
	Statement string `json:"statement"`
	Params    []any  `json:"params,omitempty"`
}

type errorResponse struct {
	Detail errorDetail `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// respondError переводит доменные ошибки в HTTP-статусы.
// Маппинг выполняется только здесь, на границе API
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindLimitExceeded, domain.KindBadRequest:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	case domain.KindConflict:
		status = http.StatusConflict
	}

	var de *domain.Error
	if errors.As(err, &de) {
		respondJSON(w, status, errorResponse{
			Detail: errorDetail{Statement: de.Statement, Params: de.Params},
		})
		return
	}

	log.Printf("[API] Internal error: %v", err)
	respondJSON(w, status, errorResponse{
		Detail: errorDetail{Statement: "internal server error"},
	})
}
