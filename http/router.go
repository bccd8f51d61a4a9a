package http

import "net/http"

type Handlers struct {
	Loan    *LoanHandler
	Live    *LiveHandler
	Catalog *CatalogHandler
	Options *OptionsHandler
}

func NewRouter(h Handlers, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/emi/calculate", h.Loan.CalculateLoan)
	mux.HandleFunc("GET /emi/chart.svg", h.Loan.Chart)
	mux.HandleFunc("GET /emi/live", h.Live.Serve)

	mux.HandleFunc("GET /catalog/{collection}", h.Catalog.List)
	mux.HandleFunc("GET /catalog/customers/export.csv", h.Catalog.ExportCustomers)
	mux.HandleFunc("DELETE /catalog/{collection}/{id}", h.Catalog.Delete)

	mux.HandleFunc("GET /options", h.Options.Get)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return Chain(mux, RequestID, Logging, Recover, RateLimit(limiter))
}
