package finance

import (
	"math"

	"home-assessment/domain"
)

// AnnualRentalIncome is the yearly rent net of vacancy.
func AnnualRentalIncome(a domain.PropertyAssumptions) float64 {
	monthly := a.SquareFeet * a.MonthlyRentalIncomePerSqFt
	return monthly * 12 * (1 - a.VacancyRate/100)
}

// AnnualOperatingExpenses sums taxes, HOA, maintenance and insurance.
func AnnualOperatingExpenses(a domain.PropertyAssumptions) float64 {
	hoa := a.HOA * 12
	maintenance := a.SquareFeet * a.MaintenanceCostPerSqFt
	insurance := a.PurchasePrice * InsuranceRate
	return a.PropertyTaxes + hoa + maintenance + insurance
}

// NetOperatingIncome is rent minus operating expenses, before debt service.
// Rent and expenses do not escalate over the holding period.
func NetOperatingIncome(a domain.PropertyAssumptions) float64 {
	return AnnualRentalIncome(a) - AnnualOperatingExpenses(a)
}

// Project builds the yearly cash flows of the holding period and adds the
// net sale proceeds to the final year.
func Project(a domain.PropertyAssumptions) domain.CashFlowProjection {
	loan := a.LoanAmount()
	payment := MonthlyPayment(loan, a.MortgageRate, LoanTermYears)
	rate := MonthlyRate(a.MortgageRate)
	operating := NetOperatingIncome(a)

	cashFlows := make([]float64, a.HoldingPeriod)
	amortization := make([]domain.AmortizationYear, a.HoldingPeriod)

	balance := loan
	for year := 1; year <= a.HoldingPeriod; year++ {
		var principal, interest float64
		principal, interest, balance = AmortizeYear(balance, payment, rate)

		amortization[year-1] = domain.AmortizationYear{
			Year:          year,
			PrincipalPaid: principal,
			InterestPaid:  interest,
			EndingBalance: balance,
		}
		cashFlows[year-1] = operating - interest - principal
	}

	saleValue := a.PurchasePrice * math.Pow(1+a.AppreciationRate/100, float64(a.HoldingPeriod))
	sellingCosts := saleValue * (a.SellingCosts / 100)
	netSale := saleValue - sellingCosts - balance

	if n := len(cashFlows); n > 0 {
		cashFlows[n-1] += netSale
	}

	return domain.CashFlowProjection{
		InitialInvestment:    a.InitialInvestment(),
		YearlyCashFlows:      cashFlows,
		Amortization:         amortization,
		RemainingLoanBalance: balance,
		AppreciatedSaleValue: saleValue,
		SellingCosts:         sellingCosts,
		NetSaleProceeds:      netSale,
		MonthlyPayment:       payment,
		OperatingCashFlow:    operating,
	}
}
