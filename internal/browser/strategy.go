package browser

import (
	"fmt"
	"strings"
)

// Strategy — один шаг цепочки "попробуй A, иначе B, иначе C".
// Attempt либо выполняет действие целиком, либо возвращает ошибку,
// после чего очередь переходит к следующей стратегии.
type Strategy struct {
	Name    string
	Attempt func() error
}

// RunFirst выполняет стратегии по порядку и останавливается на первой
// успешной. Возвращает её имя; если не сработала ни одна — ошибку со
// списком всех попыток.
func RunFirst(strategies []Strategy) (string, error) {
	if len(strategies) == 0 {
		return "", fmt.Errorf("no strategies to run")
	}

	var attempts []string
	for _, s := range strategies {
		if err := s.Attempt(); err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", s.Name, err))
			continue
		}
		return s.Name, nil
	}

	return "", fmt.Errorf("all strategies failed: %s", strings.Join(attempts, "; "))
}
