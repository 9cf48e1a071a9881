package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"

	"home-assessment/domain"
	"home-assessment/report"
)

type analyzeCmd struct {
	configPath string
	file       string
	title      string
	state      string
	county     string
	asJSON     bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a rental property investment" }
func (*analyzeCmd) Usage() string {
	return `analyze -f <assumptions.yaml> [-state NJ -county Bergen] [-title <name>] [-json]

  Reads property assumptions from a YAML file ("-" for stdin) and prints
  the investment report. With -state and -county the property taxes and
  appreciation rate come from the county reference data.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	configFlag(f, &c.configPath)
	f.StringVar(&c.file, "f", "", "YAML file with the property assumptions")
	f.StringVar(&c.title, "title", "", "Report title")
	f.StringVar(&c.state, "state", "", "State used to prefill taxes and appreciation")
	f.StringVar(&c.county, "county", "", "County used to prefill taxes and appreciation")
	f.BoolVar(&c.asJSON, "json", false, "Print the raw analysis as JSON")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig(c.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	assumptions, err := loadAssumptions(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if c.state != "" || c.county != "" {
		pre, err := a.prefill.Prefill(domain.PrefillInput{
			Location:      domain.Location{State: c.state, County: c.county},
			PurchasePrice: assumptions.PurchasePrice,
			DownPayment:   assumptions.DownPayment,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		applyPrefill(&assumptions, pre)
	}

	result, err := a.investments.Analyze(ctx, assumptions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(report.Markdown(c.title, assumptions, result))
	return subcommands.ExitSuccess
}

func loadAssumptions(path string) (domain.PropertyAssumptions, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.PropertyAssumptions{}, fmt.Errorf("read assumptions: %w", err)
	}

	var a domain.PropertyAssumptions
	if err := yaml.Unmarshal(data, &a); err != nil {
		return domain.PropertyAssumptions{}, fmt.Errorf("parse assumptions: %w", err)
	}
	return a, nil
}

func applyPrefill(a *domain.PropertyAssumptions, p domain.PrefillResult) {
	a.DownPayment = p.DownPayment
	a.PropertyTaxes = p.PropertyTaxes
	a.AppreciationRate = p.AppreciationRate
}
