package handlers

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// Index serves the form. When an action button was pressed the result, or the
// error dialog, is rendered into the same page.
func (h *TravelHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	data := pageData{Query: queryFromRequest(r)}
	status := http.StatusOK

	if name := r.URL.Query().Get("action"); name != "" {
		run, ok := h.actions()[name]
		if !ok {
			status = http.StatusBadRequest
			data.Error = "Unknown action " + name
		} else if result, err := h.run(r, name, run); err != nil {
			status, data.Error = errorStatus(err)
		} else {
			data.Result = result
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render page")
	}
}

func (h *TravelHandler) actions() map[string]action {
	return map[string]action{
		"weather": h.clientService.GetWeather,
		"rate":    h.clientService.GetRate,
		"nbp":     h.clientService.GetCentralBankRate,
	}
}
