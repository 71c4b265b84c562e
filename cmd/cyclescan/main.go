// # cmd/cyclescan/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cyclescan/internal/app"
	"cyclescan/internal/config"
	"cyclescan/internal/history"
	"cyclescan/internal/observability"
	"cyclescan/internal/watcher"
)

var (
	configPath  = flag.String("config", "./cyclescan.toml", "Path to config file")
	rootFlag    = flag.String("root", "", "Project root to scan (overrides config)")
	includeDeps = flag.Bool("include-deps", false, "Descend into dependency cache directories")
	jsonOut     = flag.Bool("json", false, "Print the report as JSON on stdout")
	outputPath  = flag.String("output", "", "Write the JSON report to this file")
	historyPath = flag.String("history", "", "Persist scan snapshots to this sqlite file")
	watch       = flag.Bool("watch", false, "Keep running and rescan on file changes")
	metricsAddr = flag.String("metrics-addr", "", "Serve prometheus metrics on this address")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

// main delegates to run so deferred cleanup (history store, watcher) runs
// before the process exits.
func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if *version {
		fmt.Printf("cyclescan v%s\n", VERSION)
		return 0
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if *configPath == "./cyclescan.toml" {
			cfg, err = config.Load("./cyclescan.example.toml")
		}
		if err != nil {
			slog.Debug("no config file, using defaults", "error", err)
			cfg = config.Default()
		}
	}

	if *rootFlag != "" {
		cfg.Root = *rootFlag
	} else if flag.NArg() > 0 {
		cfg.Root = flag.Arg(0)
	}
	if *includeDeps {
		cfg.IncludeDependencyDirs = true
	}
	if *outputPath != "" {
		cfg.Output.JSON = *outputPath
	}
	if *historyPath != "" {
		cfg.History.Path = *historyPath
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr)
	}

	var store *history.Store
	if cfg.History.Path != "" {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			slog.Error("failed to open history store", "path", cfg.History.Path, "error", err)
			return 1
		}
		defer store.Close()
	}

	result, err := runScan(cfg, store)
	if err != nil {
		return fatal(err)
	}

	if !*watch {
		return exitCode(result)
	}

	w, err := watcher.New(cfg.Watch.Debounce, cfg.Watch.RescansPerMinute, cfg.Exclude.Dirs, cfg.Exclude.Files, func(paths []string) {
		slog.Info("change detected, rescanning", "changed", len(paths))
		observability.RescansTotal.Inc()
		if _, err := runScan(cfg, store); err != nil {
			slog.Error("rescan failed", "error", err)
		}
	})
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		return 1
	}
	defer w.Close()

	if err := w.Watch(cfg.Root); err != nil {
		slog.Error("failed to start watcher", "error", err)
		return 1
	}
	slog.Info("watching for changes", "root", cfg.Root, "debounce", cfg.Watch.Debounce)
	select {}
}

func runScan(cfg *config.Config, store *history.Store) (*app.Result, error) {
	result, err := app.Analyze(app.Options{
		Root:                  cfg.Root,
		IncludeDependencyDirs: cfg.IncludeDependencyDirs,
		ExcludeDirs:           cfg.Exclude.Dirs,
		ExcludeFiles:          cfg.Exclude.Files,
	})
	if err != nil {
		return nil, err
	}

	if err := writeOutputs(cfg, result); err != nil {
		slog.Error("failed to write outputs", "error", err)
	}

	if store != nil {
		snapshot := history.Snapshot{
			ScanID:        result.ScanID,
			Root:          result.Root,
			Timestamp:     time.Now().UTC(),
			FileCount:     result.FileCount,
			EdgeCount:     result.EdgeCount,
			CycleCount:    result.Report.Count,
			AffectedCount: len(result.Report.AffectedFiles),
			SkippedFiles:  result.SkippedFiles,
			DurationMS:    result.Duration.Milliseconds(),
		}
		if err := store.SaveSnapshot(snapshot); err != nil {
			slog.Warn("failed to persist scan snapshot", "scan_id", result.ScanID, "error", err)
		}
	}

	if *jsonOut {
		if err := result.Report.WriteJSON(os.Stdout); err != nil {
			return nil, err
		}
	} else {
		fmt.Print(renderSummary(result))
	}

	return result, nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	slog.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics server stopped", "error", err)
	}
}

// exitCode maps a one-shot scan onto the process exit code: 2 when cycles
// were found, so CI gates can fail on the code alone.
func exitCode(result *app.Result) int {
	if result.Report.Count > 0 {
		return 2
	}
	return 0
}

// fatal reports a fatal-input error and returns the exit code for it. In
// JSON mode the error payload is a single message string, mirroring the
// success payload channel.
func fatal(err error) int {
	if *jsonOut {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"error": err.Error()})
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	return 1
}
