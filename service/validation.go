package service

import (
	"fmt"
	"math"

	"home-assessment/domain"
)

// ValidateAssumptions rejects assumptions the financial engine cannot
// handle. It reports every invalid field at once.
func ValidateAssumptions(a domain.PropertyAssumptions) error {
	f := fieldErrors{}

	for field, v := range map[string]float64{
		"purchase_price":                 a.PurchasePrice,
		"down_payment":                   a.DownPayment,
		"mortgage_rate":                  a.MortgageRate,
		"renovation_budget":              a.RenovationBudget,
		"appreciation_rate":              a.AppreciationRate,
		"selling_costs":                  a.SellingCosts,
		"square_feet":                    a.SquareFeet,
		"property_taxes":                 a.PropertyTaxes,
		"hoa":                            a.HOA,
		"maintenance_cost_per_sqft":      a.MaintenanceCostPerSqFt,
		"monthly_rental_income_per_sqft": a.MonthlyRentalIncomePerSqFt,
		"vacancy_rate":                   a.VacancyRate,
	} {
		f.check(!math.IsNaN(v) && !math.IsInf(v, 0), field, "Must be a finite number")
	}

	f.check(a.PurchasePrice > 0, "purchase_price", "Purchase price must be greater than 0")
	f.check(a.PurchasePrice <= MaxPurchasePrice, "purchase_price",
		fmt.Sprintf("Purchase price cannot exceed $%.2f", MaxPurchasePrice))
	f.check(a.DownPayment > 0, "down_payment", "Down payment must be greater than 0")
	f.check(a.DownPayment < a.PurchasePrice, "down_payment", "Down payment must be less than purchase price")
	f.check(a.MortgageRate >= 0, "mortgage_rate", "Mortgage rate cannot be negative")
	f.check(a.MortgageRate <= MaxInterestRate, "mortgage_rate",
		fmt.Sprintf("Mortgage rate cannot exceed %.0f%%", MaxInterestRate))
	f.check(a.RenovationBudget >= 0, "renovation_budget", "Renovation budget cannot be negative")

	f.check(a.HoldingPeriod >= 1, "holding_period", "Holding period must be greater than 0")
	f.check(a.HoldingPeriod <= MaxHoldingPeriod, "holding_period",
		fmt.Sprintf("Holding period cannot exceed the %d year loan term", MaxHoldingPeriod))
	f.check(a.AppreciationRate >= 0, "appreciation_rate", "Appreciation rate cannot be negative")
	f.check(a.SellingCosts >= 0 && a.SellingCosts <= 100, "selling_costs", "Selling costs must be between 0 and 100")

	f.check(a.SquareFeet > 0, "square_feet", "Square feet must be greater than 0")
	f.check(a.SquareFeet <= MaxSquareFeet, "square_feet", "Square feet is unrealistically large")
	f.check(a.PropertyTaxes >= 0, "property_taxes", "Property taxes cannot be negative")
	f.check(a.HOA >= 0, "hoa", "HOA cannot be negative")
	f.check(a.MaintenanceCostPerSqFt >= 0, "maintenance_cost_per_sqft", "Maintenance cost cannot be negative")
	f.check(a.MonthlyRentalIncomePerSqFt >= 0, "monthly_rental_income_per_sqft", "Rental income cannot be negative")
	f.check(a.VacancyRate >= 0 && a.VacancyRate <= 100, "vacancy_rate", "Vacancy rate must be between 0 and 100")

	return f.err()
}

func validateMortgage(in domain.MortgageInput) error {
	f := fieldErrors{}
	f.check(in.Amount > 0, "amount", "Loan amount must be greater than 0")
	f.check(in.Amount <= MaxPurchasePrice, "amount",
		fmt.Sprintf("Loan amount cannot exceed $%.2f", MaxPurchasePrice))
	f.check(in.InterestRate >= 0, "interest_rate", "Interest rate cannot be negative")
	f.check(in.InterestRate <= MaxInterestRate, "interest_rate",
		fmt.Sprintf("Interest rate cannot exceed %.0f%%", MaxInterestRate))
	f.check(in.TermYears > 0, "term_years", "Term must be at least 1 year")
	f.check(in.TermYears <= MaxTermYears, "term_years",
		fmt.Sprintf("Term cannot exceed %d years", MaxTermYears))
	return f.err()
}
