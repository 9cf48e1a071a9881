package domain

// Location identifies the county a property sits in.
type Location struct {
	State  string `json:"state"`
	County string `json:"county"`
}

// PropertyAssumptions is the validated input of one investment analysis.
// Rates are annual percentages (6.59 means 6.59%).
type PropertyAssumptions struct {
	PurchasePrice    float64 `json:"purchase_price" yaml:"purchase_price"`
	DownPayment      float64 `json:"down_payment" yaml:"down_payment"`
	MortgageRate     float64 `json:"mortgage_rate" yaml:"mortgage_rate"`
	RenovationBudget float64 `json:"renovation_budget" yaml:"renovation_budget"`

	HoldingPeriod    int     `json:"holding_period" yaml:"holding_period"`
	AppreciationRate float64 `json:"appreciation_rate" yaml:"appreciation_rate"`
	SellingCosts     float64 `json:"selling_costs" yaml:"selling_costs"`

	SquareFeet                 float64 `json:"square_feet" yaml:"square_feet"`
	PropertyTaxes              float64 `json:"property_taxes" yaml:"property_taxes"`
	HOA                        float64 `json:"hoa" yaml:"hoa"` // monthly
	MaintenanceCostPerSqFt     float64 `json:"maintenance_cost_per_sqft" yaml:"maintenance_cost_per_sqft"`
	MonthlyRentalIncomePerSqFt float64 `json:"monthly_rental_income_per_sqft" yaml:"monthly_rental_income_per_sqft"`
	VacancyRate                float64 `json:"vacancy_rate" yaml:"vacancy_rate"`
}

// LoanAmount is the financed part of the purchase price.
func (a PropertyAssumptions) LoanAmount() float64 {
	return a.PurchasePrice - a.DownPayment
}

// InitialInvestment is the cash put in at closing.
func (a PropertyAssumptions) InitialInvestment() float64 {
	return a.DownPayment + a.RenovationBudget
}

// PrefillInput asks for assumptions derived from county reference data.
type PrefillInput struct {
	Location      Location `json:"location"`
	PurchasePrice float64  `json:"purchase_price"`
	DownPayment   float64  `json:"down_payment,omitempty"`
}

// PrefillResult holds the reference-derived fields of PropertyAssumptions.
type PrefillResult struct {
	Location         Location `json:"location"`
	PurchasePrice    float64  `json:"purchase_price"`
	DownPayment      float64  `json:"down_payment"`
	PropertyTaxes    float64  `json:"property_taxes"`
	AppreciationRate float64  `json:"appreciation_rate"`
	SchoolRanking    float64  `json:"school_ranking"`
}

// CountyProfile is one row of the county reference table.
type CountyProfile struct {
	State            string  `json:"state" yaml:"-"`
	County           string  `json:"county" yaml:"-"`
	TaxRate          float64 `json:"tax_rate" yaml:"tax_rate"`                   // % of price per year
	SchoolRanking    float64 `json:"school_ranking" yaml:"school_ranking"`       // lower is better
	AppreciationRate float64 `json:"appreciation_rate" yaml:"appreciation_rate"` // historical, % per year
}
