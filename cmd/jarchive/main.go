package main

import (
	"log"
	"os"

	"quiz-archive-parser/internal/app"
	"quiz-archive-parser/internal/config"
	"quiz-archive-parser/internal/observability"
	"quiz-archive-parser/internal/storage/jsonfile"
)

func main() {
	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.NewLogger(app.LoggerOptions(cfg))
	defer func() { _ = logger.Close() }()

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	repo := jsonfile.NewRepository(cfg.JArchive.OutputDir, cfg.Sporcle.OutputFile, logger)
	orchestrator := app.NewOrchestrator(cfg, logger, repo)

	if err := orchestrator.RunJArchive(ctx); err != nil {
		logger.Error("Run failed", "error", err.Error())
		_ = logger.Close()
		os.Exit(1)
	}
}
