package player

import (
	"context"
	"fmt"
)

// State — стадия прогона интерактивной викторины
type State int

const (
	StateLaunch State = iota
	StateConsentHandled
	StateStarted
	StateRevealed
	StatePrepared
	StateSlides
	StateDone
)

func (s State) String() string {
	switch s {
	case StateLaunch:
		return "launch"
	case StateConsentHandled:
		return "consent_handled"
	case StateStarted:
		return "started"
	case StateRevealed:
		return "revealed"
	case StatePrepared:
		return "prepared"
	case StateSlides:
		return "slides"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// stage — один переход: куда ведёт, фатальна ли ошибка, что выполнить.
// Таблица переходов в Run и есть политика "что роняет прогон".
type stage struct {
	to    State
	fatal bool
	run   func(ctx context.Context) error
}

// StageError — отказ стадии, который останавливает весь прогон
type StageError struct {
	State State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.State, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
