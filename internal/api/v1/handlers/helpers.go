package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/rs/zerolog/log"
	"net/http"
	"ulascansenturk/travel-info-service/internal/providers"
	"ulascansenturk/travel-info-service/internal/service"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	case http.StatusGatewayTimeout:
		errorCode = "GATEWAY_TIMEOUT"
		title = "Gateway Timeout"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// errorStatus maps an action failure to the status code and the message shown
// to the user.
func errorStatus(err error) (int, string) {
	var validationErr *service.ValidationError
	var connErr *providers.ConnectionError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream request timed out"
	case errors.As(err, &connErr):
		return http.StatusBadGateway, connErr.Error()
	case errors.Is(err, providers.ErrCurrencyNotFound), errors.Is(err, providers.ErrFieldMissing):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
