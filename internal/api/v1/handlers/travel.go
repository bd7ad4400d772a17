package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/travel-info-service/internal/service"
)

const requestIDHeader = "X-Request-ID"

type action func(ctx context.Context, query service.Query) (string, error)

type TravelHandler struct {
	clientService service.ClientService
	timeout       time.Duration
}

func NewTravelHandler(clientService service.ClientService, timeout time.Duration) *TravelHandler {
	return &TravelHandler{
		clientService: clientService,
		timeout:       timeout,
	}
}

func (h *TravelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r = withRequestLogger(w, r)

	switch r.URL.Path {
	case "/":
		h.Index(w, r)
	case "/api/v1/weather":
		h.GetWeather(w, r)
	case "/api/v1/rate":
		h.GetRate(w, r)
	case "/api/v1/nbp-rate":
		h.GetCentralBankRate(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *TravelHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	h.serveAction(w, r, "weather", h.clientService.GetWeather)
}

func (h *TravelHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	h.serveAction(w, r, "rate", h.clientService.GetRate)
}

func (h *TravelHandler) GetCentralBankRate(w http.ResponseWriter, r *http.Request) {
	h.serveAction(w, r, "nbp", h.clientService.GetCentralBankRate)
}

func (h *TravelHandler) serveAction(w http.ResponseWriter, r *http.Request, name string, run action) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	result, err := h.run(r, name, run)
	if err != nil {
		code, message := errorStatus(err)
		respondWithError(w, code, message)
		return
	}

	respondWithJSON(w, http.StatusOK, ResultResponse{Result: result})
}

// run executes one action under the handler timeout and logs its outcome.
func (h *TravelHandler) run(r *http.Request, name string, run action) (string, error) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query := queryFromRequest(r)
	logger := zerolog.Ctx(ctx)

	result, err := run(ctx, query)
	if err != nil {
		code, _ := errorStatus(err)
		event := logger.Error()
		if code == http.StatusBadRequest {
			event = logger.Warn()
		}
		event.Err(err).Str("action", name).Str("country", query.Country).Msg("action failed")
		return "", err
	}

	logger.Info().Str("action", name).Msg("action completed")
	return result, nil
}

func queryFromRequest(r *http.Request) service.Query {
	values := r.URL.Query()
	return service.Query{
		Country:     values.Get("country"),
		City:        values.Get("city"),
		Destination: values.Get("destination"),
	}
}

func withRequestLogger(w http.ResponseWriter, r *http.Request) *http.Request {
	requestID := r.Header.Get(requestIDHeader)
	if _, err := uuid.Parse(requestID); err != nil {
		requestID = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, requestID)

	logger := log.With().Str("request_id", requestID).Logger()
	return r.WithContext(logger.WithContext(r.Context()))
}
