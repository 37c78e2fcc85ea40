package response

import (
	"encoding/json"
	"net/http"

	"launchpizza/internal/generated/dto"
)

// Сообщения об ошибках, которые видит клиент. Детали ошибок хранилища наружу не отдаются.
const (
	MsgInvalidBody      = "invalid request body"
	MsgMissingFields    = "missing required fields"
	MsgInvalidOrderID   = "invalid order id"
	MsgOrderNotFound    = "order not found"
	MsgConstraintFailed = "order violates storage constraints"
	MsgInternal         = "internal server error"
)

func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, dto.ErrorResponse{Error: message})
}
