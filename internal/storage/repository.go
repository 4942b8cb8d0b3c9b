package storage

import (
	"context"

	"quiz-archive-parser/internal/player"
	"quiz-archive-parser/internal/scraper"
)

// Repository — хранилище готовых артефактов. Обе операции полностью
// перезаписывают артефакт и возвращают путь к нему.
type Repository interface {
	// SaveQuestions сохраняет вопросы игры; имя файла детерминированно
	// выводится из идентификатора игры
	SaveQuestions(ctx context.Context, gameID int, records []scraper.QuizRecord) (string, error)

	// SaveSlides сохраняет записи слайдов под фиксированным именем
	SaveSlides(ctx context.Context, records []player.SlideRecord) (string, error)
}
