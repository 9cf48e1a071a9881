package domain

// AmortizationYear is one year of a fixed-rate loan.
type AmortizationYear struct {
	Year          int     `json:"year"`
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	EndingBalance float64 `json:"ending_balance"`
}

// CashFlowProjection is the yearly cash flow over the holding period.
// The last entry of YearlyCashFlows includes NetSaleProceeds.
type CashFlowProjection struct {
	InitialInvestment    float64            `json:"initial_investment"`
	YearlyCashFlows      []float64          `json:"yearly_cash_flows"`
	Amortization         []AmortizationYear `json:"amortization"`
	RemainingLoanBalance float64            `json:"remaining_loan_balance"`
	AppreciatedSaleValue float64            `json:"appreciated_sale_value"`
	SellingCosts         float64            `json:"selling_costs"`
	NetSaleProceeds      float64            `json:"net_sale_proceeds"`
	MonthlyPayment       float64            `json:"monthly_payment"`
	OperatingCashFlow    float64            `json:"operating_cash_flow"`
}

// IRRResult is the outcome of the bisection solver. Converged is false when
// the iteration budget ran out and Rate is only the last midpoint.
type IRRResult struct {
	Rate       float64 `json:"rate"`
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

// InvestmentResult is the full output of one analysis.
type InvestmentResult struct {
	CashFlowProjection

	IRR                     float64 `json:"irr"`
	IRRConverged            bool    `json:"irr_converged"`
	NPV                     float64 `json:"npv"`
	DiscountRate            float64 `json:"discount_rate"`
	TotalReturnDollars      float64 `json:"total_return_dollars"`
	TotalReturnPercent      float64 `json:"total_return_percent"`
	AverageAnnualReturn     float64 `json:"average_annual_return"`
	MonthlyMortgagePayment  float64 `json:"monthly_mortgage_payment"`
	CapRate                 float64 `json:"cap_rate"`
	CashOnCashReturn        float64 `json:"cash_on_cash_return"`
	BreakEvenYear           int     `json:"break_even_year"`
	AnnualRentalIncome      float64 `json:"annual_rental_income"`
	AnnualOperatingExpenses float64 `json:"annual_operating_expenses"`
	NetOperatingIncome      float64 `json:"net_operating_income"`
}

// FinalYearCashFlow returns the last yearly cash flow, sale proceeds included.
func (r InvestmentResult) FinalYearCashFlow() float64 {
	if len(r.YearlyCashFlows) == 0 {
		return 0
	}
	return r.YearlyCashFlows[len(r.YearlyCashFlows)-1]
}
