package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mstanek/scout"
	"github.com/mstanek/scout/scan"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := readURLFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scout.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		return scout.Errorf(scout.EINVALID, "no URLs found in %q", c.File)
	}

	progress := func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Scanning %d URLs\n", event.Total)
		case scan.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", scan.TruncateURL(event.URL, 60), event.Error)
		case scan.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	reports, result, err := deps.Scanner.ScanAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scout.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	for _, report := range reports {
		if err := enc.Encode(report); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stderr, "Scanned %d (%d contactable), %d failed, %d skipped\n",
		result.Scanned, result.Contactable, result.Failed, result.Skipped)
	return nil
}

// readURLFile reads one URL per line, skipping blanks and # comments.
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, scout.Errorf(scout.ENOTFOUND, "cannot open %q: %v", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, scout.Errorf(scout.EINTERNAL, "reading %q: %v", path, err)
	}
	return urls, nil
}
