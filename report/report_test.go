package report

import (
	"strings"
	"testing"

	"home-assessment/domain"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{1913.995370776419, "$1,914"},
		{41472, "$41,472"},
		{0, "$0"},
		{-1895.9444, "-$1,896"},
		{806349.49, "$806,349"},
	}
	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.expected {
			t.Errorf("Currency(%v): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

func TestCents(t *testing.T) {
	if got := Cents(1913.995370776419); got != "$1,914.00" {
		t.Errorf("expected $1,914.00, got %q", got)
	}
	if got := Cents(1055.672); got != "$1,055.67" {
		t.Errorf("expected $1,055.67, got %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(3.512); got != "3.51%" {
		t.Errorf("expected 3.51%%, got %q", got)
	}
	if got := Percent(-0.6319814831056756); got != "-0.63%" {
		t.Errorf("expected -0.63%%, got %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	a := domain.PropertyAssumptions{PurchasePrice: 600000, DownPayment: 300000, MortgageRate: 6.59, HoldingPeriod: 2}
	res := domain.AnalysisResult{
		Result: domain.InvestmentResult{
			CashFlowProjection: domain.CashFlowProjection{
				InitialInvestment: 300000,
				YearlyCashFlows:   []float64{-1895.94, 501172.98},
			},
			IRR:           4.8,
			IRRConverged:  false,
			DiscountRate:  7,
			BreakEvenYear: 2,
		},
		Recommendation: domain.Recommendation{Title: "Poor Investment Opportunity", Summary: "low"},
	}

	md := Markdown("", a, res)
	for _, want := range []string{
		"# Investment Analysis Results",
		"| IRR | 4.80% (estimate) |",
		"| Break-Even | 2 years |",
		"| 2 | $501,173 |",
		"**Poor Investment Opportunity**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}
