package service

import (
	"home-assessment/domain"
	"home-assessment/finance"
)

type MortgageService struct{}

func NewMortgageService() *MortgageService {
	return &MortgageService{}
}

// Schedule computes the payment and the yearly amortization of a loan.
func (s *MortgageService) Schedule(
	input domain.MortgageInput,
) (domain.MortgageSchedule, error) {

	if err := validateMortgage(input); err != nil {
		return domain.MortgageSchedule{}, err
	}

	payment := finance.MonthlyPayment(input.Amount, input.InterestRate, input.TermYears)
	total := payment * float64(input.TermYears*12)

	return domain.MortgageSchedule{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - input.Amount,
		Years:          finance.Schedule(input.Amount, input.InterestRate, input.TermYears, input.TermYears),
	}, nil
}
