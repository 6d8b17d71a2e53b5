package main

import (
	"encoding/json"
	"fmt"

	"github.com/mstanek/scout"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	report, err := deps.Scanner.Scan(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scout.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return err
	}

	if !report.OK {
		fmt.Fprintf(deps.Stderr, "scan failed: %s\n", report.Error)
	}
	return nil
}
