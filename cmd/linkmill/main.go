package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/linkmill/linkmill/internal/adapter"
	"github.com/linkmill/linkmill/internal/browser"
	"github.com/linkmill/linkmill/internal/config"
	"github.com/linkmill/linkmill/internal/extractor"
	"github.com/linkmill/linkmill/internal/locator"
	"github.com/linkmill/linkmill/internal/logger"
	"github.com/linkmill/linkmill/internal/models"
	"github.com/linkmill/linkmill/internal/reporter"
	"github.com/linkmill/linkmill/internal/runner"
)

func main() {
	flags := parseFlags()
	if err := flags.validate(); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	cfg, err := config.LoadGlobalConfig(flags.configFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config: %v", err)
	}
	if ids := flags.enabledToolIDs(); len(ids) > 0 {
		cfg.ToolsConfig.Enabled = ids
	}
	if flags.format != "" {
		cfg.ReporterConfig.Format = flags.format
	}
	if err := config.ValidateConfig(cfg); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	targets, err := loadTargets(flags)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not load targets")
	}
	tools := cfg.ToolsConfig.ResolveTools()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := browser.NewManager(cfg.BrowserConfig, zLogger)
	if err := manager.Start(); err != nil {
		zLogger.Fatal().Err(err).Msg("Could not start browser manager")
	}
	defer manager.Stop()

	submitter := adapter.New(
		cfg.RunnerConfig,
		manager,
		locator.New(zLogger),
		extractor.New(cfg.ExtractorConfig, zLogger),
		zLogger,
	)

	report := runner.New(cfg.RunnerConfig, submitter, zLogger).Run(ctx, targets, tools)

	rep := reporter.New(cfg.ReporterConfig, zLogger)
	rep.WriteSummary(os.Stdout, report)
	if !flags.noExport {
		if _, err := rep.Export(report, flags.outputPath); err != nil {
			zLogger.Error().Err(err).Msg("Could not export report")
		}
	}
}

// loadTargets merges -u flags and the -targets file, preserving order.
// Syntactically dubious entries are kept: they are attempted anyway and
// simply fail at navigation.
func loadTargets(flags *cliFlags) ([]models.Target, error) {
	var targets []models.Target

	for _, url := range flags.targetURLs {
		targets = append(targets, models.NewTarget(url, flags.keywords))
	}

	if flags.targetsFile != "" {
		file, err := os.Open(flags.targetsFile)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			targets = append(targets, models.NewTarget(line, flags.keywords))
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	return targets, nil
}
