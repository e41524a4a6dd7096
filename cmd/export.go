package cmd

import (
	"bytes"
	"fmt"

	"github.com/JaskiratSingh1/Verto/internal/task"
	"github.com/JaskiratSingh1/Verto/internal/utils"
)

func exportCommand(e *env, args []string) error {
	fs := newFlagSet("export", e)
	formatArg := fs.String("format", "json", "Output format (json|yaml|toml)")
	output := fs.String("o", "", "Write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	format, err := task.ParseFormat(*formatArg)
	if err != nil {
		return err
	}

	store := e.openStore()
	if *output == "" {
		return store.Export(e.stdout, format)
	}

	var buf bytes.Buffer
	if err := store.Export(&buf, format); err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(*output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Fprintf(e.stderr, "Exported %d days to %s\n", len(store.Days()), *output)
	return nil
}
