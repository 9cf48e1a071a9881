package report

import (
	"fmt"
	"strings"

	"home-assessment/domain"
)

// Markdown renders an analysis as a markdown document.
func Markdown(title string, a domain.PropertyAssumptions, res domain.AnalysisResult) string {
	r := res.Result
	var b strings.Builder

	if title == "" {
		title = "Investment Analysis Results"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Purchase price %s, %s down, %s mortgage, held %d years.\n\n",
		Currency(a.PurchasePrice), Currency(a.DownPayment), Percent(a.MortgageRate), a.HoldingPeriod)

	b.WriteString("## Key Return Metrics\n\n")
	b.WriteString("| Metric | Value |\n|---|---:|\n")
	irr := Percent(r.IRR)
	if !r.IRRConverged {
		irr += " (estimate)"
	}
	fmt.Fprintf(&b, "| IRR | %s |\n", irr)
	fmt.Fprintf(&b, "| NPV @ %s | %s |\n", Percent(r.DiscountRate), Currency(r.NPV))
	fmt.Fprintf(&b, "| Cash-on-Cash Return | %s |\n", Percent(r.CashOnCashReturn))
	fmt.Fprintf(&b, "| Cap Rate | %s |\n", Percent(r.CapRate))
	fmt.Fprintf(&b, "| Total Return | %s |\n", Percent(r.TotalReturnPercent))
	fmt.Fprintf(&b, "| Avg Annual Return | %s |\n", Percent(r.AverageAnnualReturn))
	fmt.Fprintf(&b, "| Break-Even | %d years |\n\n", r.BreakEvenYear)

	b.WriteString("## Cash Flow Summary\n\n")
	b.WriteString("| Item | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Initial Investment | %s |\n", Currency(r.InitialInvestment))
	fmt.Fprintf(&b, "| Monthly Mortgage | %s/mo |\n", Currency(r.MonthlyMortgagePayment))
	fmt.Fprintf(&b, "| Monthly Rental Income | %s/mo |\n", Currency(r.AnnualRentalIncome/12))
	fmt.Fprintf(&b, "| Annual Operating Expenses | %s/yr |\n", Currency(r.AnnualOperatingExpenses))
	fmt.Fprintf(&b, "| Net Operating Income (NOI) | %s/yr |\n", Currency(r.NetOperatingIncome))
	fmt.Fprintf(&b, "| Final Year Cash Flow | %s |\n", Currency(r.FinalYearCashFlow()))
	fmt.Fprintf(&b, "| Appreciated Value | %s |\n", Currency(r.AppreciatedSaleValue))
	fmt.Fprintf(&b, "| Remaining Loan Balance | %s |\n", Currency(r.RemainingLoanBalance))
	fmt.Fprintf(&b, "| Net Sale Proceeds | %s |\n", Currency(r.NetSaleProceeds))
	fmt.Fprintf(&b, "| Total Return | %s |\n\n", Currency(r.TotalReturnDollars))

	b.WriteString("## Yearly Cash Flows\n\n")
	b.WriteString("| Year | Cash Flow | Principal | Interest | Loan Balance |\n|---:|---:|---:|---:|---:|\n")
	for i, cf := range r.YearlyCashFlows {
		row := domain.AmortizationYear{Year: i + 1}
		if i < len(r.Amortization) {
			row = r.Amortization[i]
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", i+1, Currency(cf),
			Currency(row.PrincipalPaid), Currency(row.InterestPaid), Currency(row.EndingBalance))
	}
	b.WriteString("\n")

	rec := res.Recommendation
	b.WriteString("## Investment Recommendation\n\n")
	fmt.Fprintf(&b, "**%s**\n\n%s\n", rec.Title, rec.Summary)
	if rec.Explanation != "" {
		fmt.Fprintf(&b, "\n%s\n", rec.Explanation)
	}

	return b.String()
}

// Schedule renders a mortgage schedule as a markdown table.
func Schedule(in domain.MortgageInput, s domain.MortgageSchedule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Mortgage Schedule\n\n%s at %s over %d years: %s per month, %s total interest.\n\n",
		Currency(in.Amount), Percent(in.InterestRate), in.TermYears, Cents(s.MonthlyPayment), Currency(s.TotalInterest))
	b.WriteString("| Year | Principal | Interest | Balance |\n|---:|---:|---:|---:|\n")
	for _, y := range s.Years {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", y.Year, Currency(y.PrincipalPaid), Currency(y.InterestPaid), Currency(y.EndingBalance))
	}
	return b.String()
}
