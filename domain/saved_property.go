package domain

import "time"

// SavedProperty is an analysis the user chose to keep.
type SavedProperty struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Address        string              `json:"address,omitempty"`
	Location       Location            `json:"location"`
	Assumptions    PropertyAssumptions `json:"assumptions"`
	Result         InvestmentResult    `json:"result"`
	Recommendation Recommendation      `json:"recommendation"`
	SavedAt        time.Time           `json:"saved_at"`
}

type SavePropertyInput struct {
	Name        string              `json:"name"`
	Address     string              `json:"address,omitempty"`
	Location    Location            `json:"location"`
	Assumptions PropertyAssumptions `json:"assumptions"`
}

type ComparisonEntry struct {
	Rank             int     `json:"rank"`
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	PurchasePrice    float64 `json:"purchase_price"`
	IRR              float64 `json:"irr"`
	IRRConverged     bool    `json:"irr_converged"`
	NPV              float64 `json:"npv"`
	CapRate          float64 `json:"cap_rate"`
	CashOnCashReturn float64 `json:"cash_on_cash_return"`
	BreakEvenYear    int     `json:"break_even_year"`
	Rating           Rating  `json:"rating"`
}
