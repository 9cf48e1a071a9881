package http

import "net/http"

// Handlers groups everything the router serves.
type Handlers struct {
	Analysis   *AnalysisHandler
	Mortgage   *MortgageHandler
	Properties *PropertyHandler
}

func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/property/analyze", h.Analysis.Analyze)
	mux.HandleFunc("/property/prefill", h.Analysis.Prefill)
	mux.HandleFunc("/reference/{state}/{county}", h.Analysis.County)
	mux.HandleFunc("/mortgage/schedule", h.Mortgage.Schedule)

	mux.HandleFunc("/properties", h.Properties.Collection)
	mux.HandleFunc("/properties/compare", h.Properties.Compare)
	mux.HandleFunc("/properties/{id}", h.Properties.Item)

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
