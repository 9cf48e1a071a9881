package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"home-assessment/domain"
	"home-assessment/reference"
	"home-assessment/repository"
	"home-assessment/service"
)

const analyzeBody = `{
	"purchase_price": 600000,
	"down_payment": 300000,
	"mortgage_rate": 6.59,
	"holding_period": 10,
	"appreciation_rate": 3,
	"selling_costs": 6,
	"square_feet": 2000,
	"property_taxes": 15000,
	"maintenance_cost_per_sqft": 1.5,
	"monthly_rental_income_per_sqft": 1.8,
	"vacancy_rate": 4
}`

func newTestRouter() http.Handler {
	advisor := service.NewAdvisorService(nil, 10, 5)
	investments := service.NewInvestmentService(repository.NewMemoryCache(time.Hour), advisor, 7)
	properties := service.NewPropertyService(repository.NewPropertyRepositoryMemory(), investments)

	return NewRouter(Handlers{
		Analysis:   NewAnalysisHandler(investments, service.NewPrefillService(reference.Default())),
		Mortgage:   NewMortgageHandler(service.NewMortgageService()),
		Properties: NewPropertyHandler(properties),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAnalyzeHandler_OK(t *testing.T) {
	w := doJSON(t, newTestRouter(), http.MethodPost, "/property/analyze", analyzeBody)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var out domain.AnalysisResult
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Result.YearlyCashFlows) != 10 {
		t.Errorf("expected 10 cash flows, got %d", len(out.Result.YearlyCashFlows))
	}
	if out.Recommendation.Rating != domain.RatingPoor {
		t.Errorf("expected poor rating, got %s", out.Recommendation.Rating)
	}
}

func TestAnalyzeHandler_MethodNotAllowed(t *testing.T) {
	w := doJSON(t, newTestRouter(), http.MethodGet, "/property/analyze", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestAnalyzeHandler_UnsupportedMediaType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/property/analyze", strings.NewReader(analyzeBody))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestAnalyzeHandler_BadRequest(t *testing.T) {
	w := doJSON(t, newTestRouter(), http.MethodPost, "/property/analyze", `{invalid-json}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAnalyzeHandler_ValidationFields(t *testing.T) {
	w := doJSON(t, newTestRouter(), http.MethodPost, "/property/analyze", `{"purchase_price": -5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var out errorResponse
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, field := range []string{"purchase_price", "holding_period", "square_feet"} {
		if _, ok := out.Fields[field]; !ok {
			t.Errorf("expected field %q in %v", field, out.Fields)
		}
	}
}

func TestPrefillHandler(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/property/prefill",
		`{"location": {"state": "NJ", "county": "Essex"}, "purchase_price": 500000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var out domain.PrefillResult
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 500000 * 2.76%
	if out.PropertyTaxes != 13800 || out.DownPayment != 100000 {
		t.Errorf("unexpected prefill %+v", out)
	}

	w = doJSON(t, router, http.MethodPost, "/property/prefill",
		`{"location": {"state": "TX", "county": "Travis"}, "purchase_price": 500000}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown county: expected 404, got %d", w.Code)
	}
}

func TestReferenceHandler(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/reference/ny/nassau", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out domain.CountyProfile
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.State != "NY" || out.County != "Nassau" || out.TaxRate != 1.98 {
		t.Errorf("unexpected profile %+v", out)
	}

	if w := doJSON(t, router, http.MethodGet, "/reference/ny/nowhere", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestMortgageHandler(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/mortgage/schedule",
		`{"amount": 300000, "interest_rate": 6.59, "term_years": 30}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out domain.MortgageSchedule
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Years) != 30 {
		t.Errorf("expected 30 years, got %d", len(out.Years))
	}

	w = doJSON(t, router, http.MethodPost, "/mortgage/schedule", `{"amount": 300000, "term_years": 0}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPropertyHandlers_Lifecycle(t *testing.T) {
	router := newTestRouter()

	save := func(name string) domain.SavedProperty {
		t.Helper()
		body := `{"name": "` + name + `", "address": "1 Main St", "assumptions": ` + analyzeBody + `}`
		w := doJSON(t, router, http.MethodPost, "/properties", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("save %s: expected 201, got %d: %s", name, w.Code, w.Body.String())
		}
		var p domain.SavedProperty
		if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return p
	}

	a := save("Alpha")
	b := save("Beta")

	w := doJSON(t, router, http.MethodGet, "/properties", "")
	var list []domain.SavedProperty
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(list))
	}

	w = doJSON(t, router, http.MethodGet, "/properties/"+a.ID, "")
	if w.Code != http.StatusOK {
		t.Errorf("get: expected 200, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/properties/compare", `{"ids": ["`+a.ID+`", "`+b.ID+`"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("compare: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var entries []domain.ComparisonEntry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decode compare: %v", err)
	}
	if len(entries) != 2 || entries[0].Rank != 1 {
		t.Errorf("unexpected comparison %+v", entries)
	}

	if w := doJSON(t, router, http.MethodDelete, "/properties/"+a.ID, ""); w.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/properties/"+a.ID, ""); w.Code != http.StatusNotFound {
		t.Errorf("get deleted: expected 404, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPut, "/properties/"+b.ID, ""); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("put: expected 405, got %d", w.Code)
	}
}

func TestPropertyHandlers_SaveWithoutName(t *testing.T) {
	w := doJSON(t, newTestRouter(), http.MethodPost, "/properties", `{"assumptions": `+analyzeBody+`}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
