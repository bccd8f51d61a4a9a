package http

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"propdesk/domain"
	"propdesk/service"
)

type CatalogHandler struct {
	service *service.CatalogService
}

func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func parseIntQuery(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func catalogErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownCollection),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrNothingToExport):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDeleteUnsupported):
		return http.StatusMethodNotAllowed
	case errors.Is(err, domain.ErrBackend):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// writeCatalogError keeps upstream detail in the log and out of the body.
func writeCatalogError(w http.ResponseWriter, err error) {
	status := catalogErrorStatus(err)
	switch {
	case status == http.StatusBadGateway:
		log.Printf("Error serving catalogue: %v", err)
		writeError(w, status, "catalogue backend unavailable")
	case status >= http.StatusInternalServerError:
		log.Printf("Error serving catalogue: %v", err)
		writeError(w, status, "internal server error")
	default:
		writeError(w, status, err.Error())
	}
}

// dateRangeFrom reads from/to. Only collections whose rows carry createdAt
// can be narrowed by date.
func dateRangeFrom(r *http.Request, c domain.Collection) (*domain.DateRange, error) {
	q := r.URL.Query()
	rng, ok, err := domain.ParseDateRange(q.Get("from"), q.Get("to"))
	if err != nil || !ok {
		return nil, err
	}
	if c != domain.Customers && c != domain.Leads {
		return nil, fmt.Errorf("%w: %s cannot be filtered by date", domain.ErrInvalidRange, c)
	}
	return &rng, nil
}

// List serves /catalog/{collection}?q=&page=&page_size=.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	c, err := domain.ParseCollection(r.PathValue("collection"))
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	rng, err := dateRangeFrom(r, c)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	var where []func(domain.Record) bool
	if rng != nil {
		where = append(where, rng.Contains)
	}

	result, err := h.service.Search(
		r.Context(),
		c,
		r.URL.Query().Get("q"),
		parseIntQuery(r, "page", 1),
		parseIntQuery(r, "page_size", 0),
		where...,
	)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ExportCustomers serves GET /catalog/customers/export.csv?from=&to=&q=.
func (h *CatalogHandler) ExportCustomers(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRangeFrom(r, domain.Customers)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	customers, err := h.service.Customers(r.Context(), r.URL.Query().Get("q"), rng)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := service.WriteCustomersCSV(&buf, customers); err != nil {
		writeCatalogError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing customer export: %v", err)
	}
}

// Delete serves DELETE /catalog/{collection}/{id}.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, err := domain.ParseCollection(r.PathValue("collection"))
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), c, r.PathValue("id")); err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
