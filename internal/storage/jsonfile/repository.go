// Package jsonfile пишет артефакты в плоские JSON-файлы:
// pretty-print, стабильный порядок ключей, не-ASCII символы как есть.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"quiz-archive-parser/internal/observability"
	"quiz-archive-parser/internal/player"
	"quiz-archive-parser/internal/scraper"
)

const (
	questionsIndent = "  "
	slidesIndent    = "    "
)

type Repository struct {
	outputDir  string
	slidesFile string
	logger     *observability.Logger
}

func NewRepository(outputDir, slidesFile string, logger *observability.Logger) *Repository {
	return &Repository{
		outputDir:  outputDir,
		slidesFile: slidesFile,
		logger:     logger,
	}
}

func (r *Repository) SaveQuestions(ctx context.Context, gameID int, records []scraper.QuizRecord) (string, error) {
	if records == nil {
		records = []scraper.QuizRecord{}
	}
	path := filepath.Join(r.outputDir, fmt.Sprintf("jeopardy_game_%d.json", gameID))
	if err := r.writeJSON(ctx, path, records, questionsIndent); err != nil {
		return "", err
	}

	r.logger.Info("Saved questions", "path", path, "count", len(records))
	return path, nil
}

func (r *Repository) SaveSlides(ctx context.Context, records []player.SlideRecord) (string, error) {
	if records == nil {
		records = []player.SlideRecord{}
	}
	path := filepath.Join(r.outputDir, r.slidesFile)
	if err := r.writeJSON(ctx, path, records, slidesIndent); err != nil {
		return "", err
	}

	r.logger.Info("Saved slides", "path", path, "count", len(records))
	return path, nil
}

func (r *Repository) writeJSON(ctx context.Context, path string, v interface{}, indent string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)

	if err := encoder.Encode(v); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Inline возвращает компактное pretty-JSON представление одной записи
// для вывода примера в лог
func Inline(v interface{}) string {
	data, err := json.MarshalIndent(v, "", questionsIndent)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return string(data)
}
