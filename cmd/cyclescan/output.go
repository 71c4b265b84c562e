// # cmd/cyclescan/output.go
package main

import (
	"fmt"
	"os"

	"cyclescan/internal/app"
	"cyclescan/internal/config"
	"cyclescan/internal/report"
)

// writeOutputs renders the configured output targets. A failing target is
// reported but does not stop the others.
func writeOutputs(cfg *config.Config, result *app.Result) error {
	var firstErr error

	write := func(path, content string) {
		if path == "" {
			return
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("write %s: %w", path, err)
		}
	}

	if cfg.Output.JSON != "" {
		f, err := os.Create(cfg.Output.JSON)
		if err != nil {
			firstErr = fmt.Errorf("create %s: %w", cfg.Output.JSON, err)
		} else {
			if err := result.Report.WriteJSON(f); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("write %s: %w", cfg.Output.JSON, err)
			}
			f.Close()
		}
	}

	write(cfg.Output.Markdown, result.Report.Markdown(result.Root))
	write(cfg.Output.Mermaid, report.Mermaid(result.Root, result.Graph, result.Report))
	write(cfg.Output.DOT, report.DOT(result.Root, result.Graph, result.Report))

	return firstErr
}
