package finance

import "home-assessment/domain"

// Aggregate derives the investment metrics from a projection, discounting
// at discountRatePercent for NPV.
func Aggregate(a domain.PropertyAssumptions, p domain.CashFlowProjection, discountRatePercent float64) domain.InvestmentResult {
	irr := IRR(p.InitialInvestment, p.YearlyCashFlows)
	npv := NPV(p.InitialInvestment, p.YearlyCashFlows, discountRatePercent)

	total := 0.0
	for _, cf := range p.YearlyCashFlows {
		total += cf
	}
	totalPercent := total / p.InitialInvestment * 100

	monthlyPayment := MonthlyPayment(a.LoanAmount(), a.MortgageRate, LoanTermYears)
	annualMortgage := monthlyPayment * 12

	income := AnnualRentalIncome(a)
	expenses := AnnualOperatingExpenses(a)
	noi := income - expenses

	return domain.InvestmentResult{
		CashFlowProjection:      p,
		IRR:                     irr.Rate,
		IRRConverged:            irr.Converged,
		NPV:                     npv,
		DiscountRate:            discountRatePercent,
		TotalReturnDollars:      total,
		TotalReturnPercent:      totalPercent,
		AverageAnnualReturn:     totalPercent / float64(a.HoldingPeriod),
		MonthlyMortgagePayment:  monthlyPayment,
		CapRate:                 noi / a.PurchasePrice * 100,
		CashOnCashReturn:        (noi - annualMortgage) / p.InitialInvestment * 100,
		BreakEvenYear:           BreakEvenYear(p.InitialInvestment, p.YearlyCashFlows, annualMortgage, a.HoldingPeriod),
		AnnualRentalIncome:      income,
		AnnualOperatingExpenses: expenses,
		NetOperatingIncome:      noi,
	}
}

// BreakEvenYear returns the first year (1-based) at which the cumulative of
// each yearly cash flow less annualMortgage, starting from -initialInvestment,
// is non-negative. It falls back to holdingPeriod.
func BreakEvenYear(initialInvestment float64, cashFlows []float64, annualMortgage float64, holdingPeriod int) int {
	cumulative := -initialInvestment
	for i, cf := range cashFlows {
		cumulative += cf - annualMortgage
		if cumulative >= 0 {
			return i + 1
		}
	}
	return holdingPeriod
}

// Analyze runs the projection and metrics for a at the given discount rate.
func Analyze(a domain.PropertyAssumptions, discountRatePercent float64) domain.InvestmentResult {
	return Aggregate(a, Project(a), discountRatePercent)
}
