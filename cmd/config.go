package cmd

import (
	"fmt"

	"github.com/JaskiratSingh1/Verto/internal/config"
)

// configCommand prints the effective configuration in config file syntax.
func configCommand(e *env, args []string) error {
	fs := newFlagSet("config", e)
	showSources := fs.Bool("sources", false, "Show where each value came from")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if e.cfg.ConfigFile != "" {
		fmt.Fprintf(e.stdout, "# config file: %s\n", e.cfg.ConfigFile)
	} else {
		fmt.Fprintln(e.stdout, "# no config file found")
	}
	data, err := e.cfg.Encode()
	if err != nil {
		return err
	}
	if _, err := e.stdout.Write(data); err != nil {
		return err
	}

	if *showSources {
		fmt.Fprintln(e.stdout)
		for _, field := range config.Fields() {
			source := e.sources[field]
			if source == "" {
				source = config.SourceDefault
			}
			fmt.Fprintf(e.stdout, "# %-15s %s\n", field, source)
		}
	}
	return nil
}
