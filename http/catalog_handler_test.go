package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/config"
	"propdesk/domain"
	"propdesk/repository"
	"propdesk/service"
)

type failingRepo struct {
	listErr   error
	deleteErr error
}

func (r failingRepo) List(context.Context, domain.Collection) ([]domain.Record, error) {
	return nil, r.listErr
}

func (r failingRepo) Delete(context.Context, domain.Collection, string) error {
	return r.deleteErr
}

type pageBody struct {
	Items      []map[string]any `json:"items"`
	Pagination domain.PageMeta  `json:"pagination"`
}

func newCatalogRouter(t *testing.T, repo repository.CatalogRepository) http.Handler {
	t.Helper()
	svc := service.NewCatalogService(repo, repository.NewMemoryCache(), time.Minute, 5)
	loanSvc := service.NewLoanService(false)
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	limiter := NewRateLimiter(1000, time.Minute)
	t.Cleanup(limiter.Stop)
	return NewRouter(Handlers{
		Loan:    NewLoanHandler(loanSvc, nil),
		Live:    NewLiveHandler(loanSvc, 0),
		Catalog: NewCatalogHandler(svc),
		Options: NewOptionsHandler(cfg.Options),
	}, limiter)
}

func seededCatalog() *repository.CatalogMemory {
	mem := repository.NewCatalogMemory()
	for i, name := range []string{"Ravi", "Asha", "Ravindra", "Meena", "Ravina", "Kiran", "Ravish", "Rohan", "Ravali"} {
		mem.Put(domain.Agents, domain.Agent{ID: string(rune('a' + i)), Name: name, Location: "Pune", Status: "Active"})
	}
	return mem
}

func TestCatalogHandler_ListSearchesAndPaginates(t *testing.T) {
	router := newCatalogRouter(t, seededCatalog())

	req := httptest.NewRequest(http.MethodGet, "/catalog/agents?q=RAV&page=2&page_size=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body pageBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 5, body.Pagination.Total)
	assert.Equal(t, 2, body.Pagination.TotalPages)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.False(t, body.Pagination.HasNext)
	assert.True(t, body.Pagination.HasPrev)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Ravish", body.Items[0]["name"])
	assert.Equal(t, "Ravali", body.Items[1]["name"])
}

func TestCatalogHandler_ListClampsPage(t *testing.T) {
	router := newCatalogRouter(t, seededCatalog())

	req := httptest.NewRequest(http.MethodGet, "/catalog/agents?page=99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body pageBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Len(t, body.Items, 4)
}

func TestCatalogHandler_ListNoMatches(t *testing.T) {
	router := newCatalogRouter(t, seededCatalog())

	req := httptest.NewRequest(http.MethodGet, "/catalog/agents?q=zzz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body pageBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body.Items)
	assert.Empty(t, body.Items)
	assert.Equal(t, 1, body.Pagination.TotalPages)
	assert.Equal(t, 1, body.Pagination.Page)
}

func TestCatalogHandler_UnknownCollection(t *testing.T) {
	router := newCatalogRouter(t, seededCatalog())

	req := httptest.NewRequest(http.MethodGet, "/catalog/villas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_BackendFailure(t *testing.T) {
	router := newCatalogRouter(t, failingRepo{listErr: domain.ErrBackend})

	req := httptest.NewRequest(http.MethodGet, "/catalog/banks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCatalogHandler_Delete(t *testing.T) {
	mem := seededCatalog()
	router := newCatalogRouter(t, mem)

	req := httptest.NewRequest(http.MethodDelete, "/catalog/agents/a", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	records, err := mem.List(context.Background(), domain.Agents)
	require.NoError(t, err)
	assert.Len(t, records, 8)
}

func TestCatalogHandler_DeleteMissing(t *testing.T) {
	router := newCatalogRouter(t, seededCatalog())

	req := httptest.NewRequest(http.MethodDelete, "/catalog/agents/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_DeleteUnsupported(t *testing.T) {
	router := newCatalogRouter(t, failingRepo{deleteErr: domain.ErrDeleteUnsupported})

	req := httptest.NewRequest(http.MethodDelete, "/catalog/leads/l1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestOptionsHandler(t *testing.T) {
	router := newCatalogRouter(t, seededCatalog())

	req := httptest.NewRequest(http.MethodGet, "/options", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "₹5,000", body["agent_fee_label"])
	assert.NotEmpty(t, body["property_types"])
	assert.NotContains(t, body["construction_years"], float64(2012))
}

func TestHealthz(t *testing.T) {
	router := newCatalogRouter(t, seededCatalog())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func seededCustomers() *repository.CatalogMemory {
	mem := repository.NewCatalogMemory()
	mem.Put(domain.Customers,
		domain.Customer{ID: "c1", Name: "Anil", Email: "anil@mail.in", Status: "Active", CreatedAt: "2025-01-02T10:00:00.000Z"},
		domain.Customer{ID: "c2", Name: "Bina", Email: "bina@mail.in", Status: "Active", CreatedAt: "2025-01-31T23:59:59.999Z"},
		domain.Customer{ID: "c3", Name: "Chetan", Status: "Inactive", CreatedAt: "2025-02-01T00:00:00.000Z"},
	)
	return mem
}

func TestCatalogHandler_ListCustomersByDate(t *testing.T) {
	router := newCatalogRouter(t, seededCustomers())

	req := httptest.NewRequest(http.MethodGet, "/catalog/customers?from=2025-01-01&to=2025-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body pageBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Pagination.Total)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "2025-01-31T23:59:59.999Z", body.Items[1]["createdAt"])
}

func TestCatalogHandler_DateRangeNeedsBothEnds(t *testing.T) {
	router := newCatalogRouter(t, seededCustomers())

	req := httptest.NewRequest(http.MethodGet, "/catalog/customers?to=2025-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_DateRangeOnUndatedCollection(t *testing.T) {
	router := newCatalogRouter(t, seededCatalog())

	req := httptest.NewRequest(http.MethodGet, "/catalog/agents?from=2025-01-01&to=2025-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_ExportCustomers(t *testing.T) {
	router := newCatalogRouter(t, seededCustomers())

	req := httptest.NewRequest(http.MethodGet, "/catalog/customers/export.csv?from=2025-01-01&to=2025-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t,
		"name,email,mobile_no,location,status,createdAt\n"+
			"Anil,anil@mail.in,,,Active,02/01/2025\n"+
			"Bina,bina@mail.in,,,Active,31/01/2025\n",
		w.Body.String())
}

func TestCatalogHandler_ExportNothing(t *testing.T) {
	router := newCatalogRouter(t, seededCustomers())

	req := httptest.NewRequest(http.MethodGet, "/catalog/customers/export.csv?from=2030-01-01&to=2030-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_BackendDetailStaysInLogs(t *testing.T) {
	err := fmt.Errorf("%w: GET http://10.0.0.5:3000/api/admin/banks: 503", domain.ErrBackend)
	router := newCatalogRouter(t, failingRepo{listErr: err})

	req := httptest.NewRequest(http.MethodGet, "/catalog/banks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.JSONEq(t, `{"status": 502, "message": "catalogue backend unavailable"}`, w.Body.String())
}
