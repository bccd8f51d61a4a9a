package http

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"propdesk/chart"
	"propdesk/domain"
	"propdesk/service"
)

type LoanHandler struct {
	service  *service.LoanService
	renderer chart.Renderer
}

func NewLoanHandler(service *service.LoanService, renderer chart.Renderer) *LoanHandler {
	return &LoanHandler{service: service, renderer: renderer}
}

func rawInputFromQuery(r *http.Request) domain.RawLoanInput {
	q := r.URL.Query()
	return domain.RawLoanInput{
		Principal: q.Get("principal"),
		Rate:      q.Get("rate"),
		Tenure:    q.Get("tenure"),
	}
}

// CalculateLoan answers with the calculator view. POST takes numeric JSON,
// GET takes the fields as typed. Every calculator outcome is a 200; the
// status field tells the screen what to show.
func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.service.Evaluate(rawInputFromQuery(r)))

	case http.MethodPost:
		contentType := r.Header.Get("Content-Type")
		if contentType != "" && !strings.Contains(contentType, "application/json") {
			writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}

		var input domain.LoanInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			log.Printf("Error decoding request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		writeJSON(w, http.StatusOK, h.service.View(input))

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Chart draws the principal/interest donut for the typed fields.
func (h *LoanHandler) Chart(w http.ResponseWriter, r *http.Request) {
	view := h.service.Evaluate(rawInputFromQuery(r))
	if view.Status != domain.LoanOK {
		writeError(w, http.StatusUnprocessableEntity, view.Message)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view.Chart); err != nil {
		log.Printf("Error rendering chart: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", h.renderer.ContentType())
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing chart: %v", err)
	}
}
