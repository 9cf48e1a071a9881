package http

import (
	"net/http"

	"home-assessment/domain"
	"home-assessment/service"
)

type AnalysisHandler struct {
	investments *service.InvestmentService
	prefill     *service.PrefillService
}

func NewAnalysisHandler(investments *service.InvestmentService, prefill *service.PrefillService) *AnalysisHandler {
	return &AnalysisHandler{investments: investments, prefill: prefill}
}

func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var input domain.PropertyAssumptions
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.investments.Analyze(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *AnalysisHandler) Prefill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var input domain.PrefillInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.prefill.Prefill(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// County serves GET /reference/{state}/{county}.
func (h *AnalysisHandler) County(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	profile, err := h.prefill.County(r.PathValue("state"), r.PathValue("county"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
