package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"home-assessment/reference"
	"home-assessment/report"
)

type countyCmd struct {
	file string
}

func (*countyCmd) Name() string     { return "county" }
func (*countyCmd) Synopsis() string { return "show county reference data" }
func (*countyCmd) Usage() string {
	return `county [-reference <file>] [<state> [<county>]]

  Without arguments lists every state, with a state lists its counties,
  with a state and a county prints the county profile.
`
}

func (c *countyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "reference", os.Getenv("REFERENCE_FILE"), "YAML county reference file (defaults to the built-in table)")
}

func (c *countyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table := reference.Default()
	if c.file != "" {
		t, err := reference.LoadFile(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		table = t
	}

	md, err := countyMarkdown(table, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

func countyMarkdown(table *reference.Table, args []string) (string, error) {
	var b strings.Builder

	switch len(args) {
	case 0:
		b.WriteString("# States\n\n")
		for _, s := range table.States() {
			fmt.Fprintf(&b, "- %s (%d counties)\n", s, len(table.Counties(s)))
		}

	case 1:
		counties := table.Counties(args[0])
		if len(counties) == 0 {
			return "", fmt.Errorf("unknown state %q", args[0])
		}
		fmt.Fprintf(&b, "# Counties of %s\n\n", strings.ToUpper(args[0]))
		b.WriteString("| County | Tax Rate | School Ranking | Appreciation |\n|---|---:|---:|---:|\n")
		for _, name := range counties {
			p, _ := table.Lookup(args[0], name)
			fmt.Fprintf(&b, "| %s | %s | %.1f | %s |\n", p.County, report.Percent(p.TaxRate), p.SchoolRanking, report.Percent(p.AppreciationRate))
		}

	default:
		county := strings.Join(args[1:], " ")
		p, ok := table.Lookup(args[0], county)
		if !ok {
			return "", fmt.Errorf("unknown county %q in %s", county, args[0])
		}
		fmt.Fprintf(&b, "# %s County, %s\n\n", p.County, p.State)
		fmt.Fprintf(&b, "- Property tax rate: %s of price per year\n", report.Percent(p.TaxRate))
		fmt.Fprintf(&b, "- School ranking: %.1f (lower is better)\n", p.SchoolRanking)
		fmt.Fprintf(&b, "- Historical appreciation: %s per year\n", report.Percent(p.AppreciationRate))
	}
	return b.String(), nil
}
