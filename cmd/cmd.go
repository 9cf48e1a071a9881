// Package cmd holds the command line interface of home-assessment.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"home-assessment/config"
)

// Commands lists every top level command.
var Commands = []subcommands.Command{
	&serveCmd{},
	&analyzeCmd{},
	&scheduleCmd{},
	&countyCmd{},
}

const defaultConfigPath = "configs/config.yaml"

func configFlag(f *flag.FlagSet, path *string) {
	def := os.Getenv("CONFIG_PATH")
	if def == "" {
		def = defaultConfigPath
	}
	f.StringVar(path, "config", def, "Path to the YAML configuration file")
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// printMarkdown renders md for the terminal, or prints it as is when it
// cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
