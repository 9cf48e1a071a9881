package service

import (
	"errors"
	"math"
	"testing"

	"home-assessment/domain"
)

func TestMortgageService_Schedule(t *testing.T) {
	s := NewMortgageService()

	out, err := s.Schedule(domain.MortgageInput{Amount: 300000, InterestRate: 6.59, TermYears: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(out.MonthlyPayment-1913.995370776419) > 1e-6 {
		t.Errorf("monthly payment: got %f", out.MonthlyPayment)
	}
	if len(out.Years) != 30 {
		t.Fatalf("expected 30 years, got %d", len(out.Years))
	}
	if math.Abs(out.Years[29].EndingBalance) > 1e-4 {
		t.Errorf("loan should be paid off, balance %f", out.Years[29].EndingBalance)
	}
	if math.Abs(out.TotalPayment-out.MonthlyPayment*360) > 1e-6 {
		t.Errorf("total payment: got %f", out.TotalPayment)
	}

	var interest float64
	for _, y := range out.Years {
		interest += y.InterestPaid
	}
	if math.Abs(interest-out.TotalInterest) > 1e-4 {
		t.Errorf("total interest %f does not match schedule %f", out.TotalInterest, interest)
	}
}

func TestMortgageService_ZeroRate(t *testing.T) {
	out, err := NewMortgageService().Schedule(domain.MortgageInput{Amount: 120000, InterestRate: 0, TermYears: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.MonthlyPayment != 1000 {
		t.Errorf("expected 1000, got %f", out.MonthlyPayment)
	}
	if math.Abs(out.TotalInterest) > 1e-9 {
		t.Errorf("expected no interest, got %f", out.TotalInterest)
	}
}

func TestMortgageService_Invalid(t *testing.T) {
	tests := []domain.MortgageInput{
		{Amount: 0, InterestRate: 5, TermYears: 30},
		{Amount: 100000, InterestRate: -1, TermYears: 30},
		{Amount: 100000, InterestRate: 101, TermYears: 30},
		{Amount: 100000, InterestRate: 5, TermYears: 0},
		{Amount: 100000, InterestRate: 5, TermYears: MaxTermYears + 1},
	}
	for _, in := range tests {
		if _, err := NewMortgageService().Schedule(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}
