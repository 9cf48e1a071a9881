package finance

import (
	"math"
	"testing"

	"home-assessment/domain"
)

func assertClose(t *testing.T, expected, actual, tolerance float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > tolerance {
		t.Errorf("%s: expected %.6f, got %.6f (diff: %.6f)",
			description, expected, actual, actual-expected)
	}
}

// goldenAssumptions is the default scenario of the assessment form.
func goldenAssumptions() domain.PropertyAssumptions {
	return domain.PropertyAssumptions{
		PurchasePrice:              600000,
		DownPayment:                300000,
		MortgageRate:               6.59,
		RenovationBudget:           0,
		HoldingPeriod:              10,
		AppreciationRate:           3,
		SellingCosts:               6,
		SquareFeet:                 2000,
		PropertyTaxes:              15000,
		HOA:                        0,
		MaintenanceCostPerSqFt:     1.5,
		MonthlyRentalIncomePerSqFt: 1.8,
		VacancyRate:                4,
	}
}
