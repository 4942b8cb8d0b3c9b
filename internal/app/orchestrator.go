package app

import (
	"context"
	"errors"
	"fmt"

	"quiz-archive-parser/internal/audit"
	"quiz-archive-parser/internal/browser"
	"quiz-archive-parser/internal/config"
	"quiz-archive-parser/internal/fetcher"
	"quiz-archive-parser/internal/observability"
	"quiz-archive-parser/internal/player"
	"quiz-archive-parser/internal/scraper"
	"quiz-archive-parser/internal/storage"
	"quiz-archive-parser/internal/storage/jsonfile"
)

type Orchestrator struct {
	cfg    *config.Config
	logger *observability.Logger
	repo   storage.Repository
}

func NewOrchestrator(cfg *config.Config, logger *observability.Logger, repo storage.Repository) *Orchestrator {
	return &Orchestrator{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
	}
}

// RunJArchive выполняет статический пайплайн: один GET, парсинг,
// запись артефакта. Не-2xx ответ — жёсткий отказ без файла.
func (o *Orchestrator) RunJArchive(ctx context.Context) error {
	selectors, err := o.cfg.LoadGameSelectors()
	if err != nil {
		return fmt.Errorf("load selectors: %w", err)
	}

	scr, err := scraper.NewScraper(selectors, o.cfg.JArchive.BaseURL, o.logger)
	if err != nil {
		return err
	}

	gameID := o.cfg.JArchive.GameID
	url := fmt.Sprintf(o.cfg.JArchive.GameURLTemplate, gameID)
	o.logger.Info("Scraping game page", "game_id", gameID, "url", url)

	f := fetcher.NewFetcher(o.cfg, o.logger)
	resp, err := f.Fetch(ctx, url)
	if err != nil {
		var statusErr *fetcher.StatusError
		if errors.As(err, &statusErr) {
			o.logger.Error("Failed to retrieve the page",
				"status", statusErr.StatusCode,
				"url", url,
			)
		}
		return err
	}

	records, err := scr.ParseGame(string(resp.Body))
	if err != nil {
		return fmt.Errorf("parse game page: %w", err)
	}

	if len(records) == 0 {
		o.logger.Warn("No questions were extracted, skipping save",
			"game_id", gameID,
			"hint", "check the URL and page structure",
		)
		return nil
	}

	path, err := o.repo.SaveQuestions(ctx, gameID, records)
	if err != nil {
		return err
	}

	o.logger.Info("Game scraped",
		"game_id", gameID,
		"questions", len(records),
		"path", path,
	)
	o.logger.Info("Sample question", "record", jsonfile.Inline(records[0]))
	return nil
}

// RunSporcle выполняет интерактивный пайплайн: прогон плеера в браузере,
// запись артефакта, аудит повторов. Сессию браузера освобождает сам
// пайплайн на любом пути выхода.
func (o *Orchestrator) RunSporcle(ctx context.Context) error {
	selectors, err := o.cfg.LoadQuizSelectors()
	if err != nil {
		return fmt.Errorf("load selectors: %w", err)
	}

	session, err := browser.NewSession(browser.SessionOptions{
		ChromePath:    o.cfg.Rod.ChromePath,
		Headless:      o.cfg.Rod.Headless,
		DisableImages: o.cfg.Rod.DisableImages,
		WindowWidth:   o.cfg.Rod.WindowWidth,
		WindowHeight:  o.cfg.Rod.WindowHeight,
		PageTimeout:   o.cfg.GetRodPageTimeout(),
	}, o.logger)
	if err != nil {
		return fmt.Errorf("open browser session: %w", err)
	}

	opts := player.Options{
		QuizURL:           o.cfg.Sporcle.QuizURL,
		DefaultSlideCount: o.cfg.Sporcle.DefaultSlideCount,
		RewindClicks:      o.cfg.Sporcle.RewindClicks,
		Waits:             playerWaits(o.cfg.Sporcle.Waits),
	}

	records, err := player.New(session, selectors, opts, o.logger).Run(ctx)
	if err != nil {
		return err
	}

	path, err := o.repo.SaveSlides(ctx, records)
	if err != nil {
		return err
	}
	o.logger.Info("Results saved", "path", path, "entries", len(records))

	o.auditAnswers(records)
	return nil
}

func (o *Orchestrator) auditAnswers(records []player.SlideRecord) {
	answers := make([]string, len(records))
	for i, record := range records {
		answers[i] = record.Answer
	}

	duplicates := audit.Duplicates(answers)
	if len(duplicates) == 0 {
		o.logger.Info("All answers are unique", "total", len(answers))
		return
	}

	o.logger.Warn("Duplicate answers detected",
		"distinct", len(answers)-totalExtra(duplicates),
		"total", len(answers),
	)
	for _, d := range duplicates {
		o.logger.Warn("Duplicate answer", "answer", d.Answer, "count", d.Count)
	}
}

func totalExtra(duplicates []audit.Duplicate) int {
	extra := 0
	for _, d := range duplicates {
		extra += d.Count - 1
	}
	return extra
}

// LoggerOptions переводит секцию observability конфига в опции логгера
func LoggerOptions(cfg *config.Config) observability.Options {
	return observability.Options{
		LogPath:    cfg.Observability.LogPath,
		LogLevel:   cfg.Observability.LogLevel,
		MaxSizeMB:  cfg.Observability.LogMaxSizeMB,
		MaxBackups: cfg.Observability.LogMaxBackups,
		MaxAgeDays: cfg.Observability.LogMaxAgeDays,
	}
}

func playerWaits(w config.WaitsConfig) player.Waits {
	return player.Waits{
		Consent:     w.GetConsentTimeout(),
		Start:       w.GetStartTimeout(),
		Reveal:      w.GetRevealTimeout(),
		Confirm:     w.GetConfirmTimeout(),
		Answer:      w.GetAnswerTimeout(),
		PageSettle:  w.GetPageSettle(),
		PostConsent: w.GetPostConsent(),
		PostStart:   w.GetPostStart(),
		PostReveal:  w.GetPostReveal(),
		FirstSlide:  w.GetFirstSlidePause(),
		SlideNav:    w.GetSlideNavPause(),
		RewindClick: w.GetRewindClickPause(),
	}
}
