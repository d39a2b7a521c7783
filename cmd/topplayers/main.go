// Package main provides the topplayers CLI, an administrator report over a
// tbaMUD plrfiles directory: top players by XP and by gold, with class
// distribution summaries.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cory-johannsen/mudreport/internal/config"
	"github.com/cory-johannsen/mudreport/internal/observability"
	"github.com/cory-johannsen/mudreport/internal/player"
	"github.com/cory-johannsen/mudreport/internal/report"
	"github.com/cory-johannsen/mudreport/internal/scan"
)

func main() {
	configPath := flag.String("config", "configs/topplayers.yaml", "path to optional configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}

	code := run(cfg, logger, os.Stdout)
	_ = logger.Sync()
	os.Exit(code)
}

// run produces the full report and returns the process exit code. All report
// text goes to w; the logger carries diagnostics only.
func run(cfg config.Config, logger *zap.Logger, w io.Writer) int {
	start := time.Now()

	root, ok := resolvePlayerDir(cfg.Report)
	if !ok {
		fmt.Fprintln(w, "Error: Could not find plrfiles directory")
		fmt.Fprintf(w, "Looked in: %s\n", absPath(root))
		return 1
	}

	fmt.Fprintf(w, "Reading player files from: %s\n", absPath(root))

	collector := scan.NewCollector(afero.NewOsFs(), logger, cfg.Report.Extension)
	players := collector.Collect(root)
	fmt.Fprintf(w, "Found %d players\n", len(players))

	catalog := player.DefaultCatalog()

	topXP := report.Rank(players, report.FieldExperience, cfg.Report.Limit)
	report.WriteTable(w, "🏆 TOP 10 PLAYERS BY XP", topXP, report.FieldExperience, catalog)
	report.WriteClassSummary(w, report.Rank(players, report.FieldExperience, cfg.Report.SummaryLimit), catalog)

	topGold := report.Rank(players, report.FieldGold, cfg.Report.Limit)
	report.WriteTable(w, "💰 TOP 10 PLAYERS BY GOLD", topGold, report.FieldGold, catalog)
	report.WriteClassSummary(w, report.Rank(players, report.FieldGold, cfg.Report.SummaryLimit), catalog)

	logger.Debug("report complete",
		zap.Int("players", len(players)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return 0
}

// resolvePlayerDir returns the plrfiles root: the configured override when
// set, otherwise lib/plrfiles next to the executable, otherwise lib/plrfiles
// under the working directory. The last candidate is returned even when it
// does not exist so the caller can name it in the diagnostic.
func resolvePlayerDir(cfg config.ReportConfig) (string, bool) {
	if cfg.PlayerDir != "" {
		return cfg.PlayerDir, dirExists(cfg.PlayerDir)
	}

	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "lib", "plrfiles")
		if dirExists(candidate) {
			return candidate, true
		}
	}

	candidate := filepath.Join("lib", "plrfiles")
	return candidate, dirExists(candidate)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// absPath resolves path for display, falling back to the input when the
// working directory is unavailable.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
