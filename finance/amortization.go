package finance

import (
	"math"

	"home-assessment/domain"
)

// MonthlyRate converts an annual percentage into a monthly fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// MonthlyPayment returns the fixed annuity payment of a loan. A zero rate
// falls back to straight-line repayment.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	r := MonthlyRate(annualRatePercent)
	n := float64(termYears * 12)

	if r == 0 {
		return principal / n
	}

	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}

// AmortizeYear runs twelve monthly steps starting from balance and returns
// the year's principal and interest together with the new balance.
func AmortizeYear(balance, monthlyPayment, monthlyRate float64) (principalPaid, interestPaid, newBalance float64) {
	for month := 0; month < 12; month++ {
		interest := balance * monthlyRate
		principal := monthlyPayment - interest

		interestPaid += interest
		principalPaid += principal
		balance -= principal
	}
	return principalPaid, interestPaid, balance
}

// Schedule amortizes principal for the given number of years, carrying each
// ending balance into the next year.
func Schedule(principal, annualRatePercent float64, termYears, years int) []domain.AmortizationYear {
	payment := MonthlyPayment(principal, annualRatePercent, termYears)
	rate := MonthlyRate(annualRatePercent)

	rows := make([]domain.AmortizationYear, 0, years)
	balance := principal
	for year := 1; year <= years; year++ {
		var p, i float64
		p, i, balance = AmortizeYear(balance, payment, rate)
		rows = append(rows, domain.AmortizationYear{
			Year:          year,
			PrincipalPaid: p,
			InterestPaid:  i,
			EndingBalance: balance,
		})
	}
	return rows
}
