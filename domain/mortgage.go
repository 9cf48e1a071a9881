package domain

type MortgageInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	TermYears    int     `json:"term_years"`
}

type MortgageSchedule struct {
	MonthlyPayment float64            `json:"monthly_payment"`
	TotalPayment   float64            `json:"total_payment"`
	TotalInterest  float64            `json:"total_interest"`
	Years          []AmortizationYear `json:"years"`
}
