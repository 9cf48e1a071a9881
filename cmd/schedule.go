package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"home-assessment/domain"
	"home-assessment/report"
	"home-assessment/service"
)

type scheduleCmd struct {
	amount float64
	rate   float64
	years  int
	asJSON bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print the amortization schedule of a mortgage" }
func (*scheduleCmd) Usage() string {
	return `schedule -amount <loan> -rate <percent> [-years 30] [-json]
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Loan amount")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent")
	f.IntVar(&c.years, "years", 30, "Loan term in years")
	f.BoolVar(&c.asJSON, "json", false, "Print the schedule as JSON")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := domain.MortgageInput{Amount: c.amount, InterestRate: c.rate, TermYears: c.years}
	s, err := service.NewMortgageService().Schedule(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.asJSON {
		if err := json.NewEncoder(os.Stdout).Encode(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(report.Schedule(in, s))
	return subcommands.ExitSuccess
}
