package player

import (
	"fmt"
	"time"
)

// AnswerPlaceholder пишется в запись, когда текст ответа не извлёкся
const AnswerPlaceholder = "Could not extract answer"

type SlideRecord struct {
	QuestionNumber string `json:"question_number"`
	Answer         string `json:"answer"`
	ImageURL       string `json:"image_url"`
	ExtraText      string `json:"extra_text"`
}

// Selectors описывают разметку плеера викторины
type Selectors struct {
	ConsentFrame  string `yaml:"consent_frame"`
	ConsentAccept string `yaml:"consent_accept"`
	StartButton   string `yaml:"start_button"`
	RevealButton  string `yaml:"reveal_button"`
	ConfirmButton string `yaml:"confirm_button"`
	ThumbIDPrefix string `yaml:"thumb_id_prefix"`
	ThumbBar      string `yaml:"thumb_bar"`
	PrevControl   string `yaml:"prev_control"`
	NextControl   string `yaml:"next_control"`
	AnswerText    string `yaml:"answer_text"`
	SlideImage    string `yaml:"slide_image"`
	ExtraText     string `yaml:"extra_text"`
}

// ThumbCountSelector матчит все миниатюры слайдов по префиксу ID
func (s *Selectors) ThumbCountSelector() string {
	return fmt.Sprintf("[id^='%s']", s.ThumbIDPrefix)
}

// Thumb возвращает селектор миниатюры конкретного слайда
func (s *Selectors) Thumb(index int) string {
	return fmt.Sprintf("#%s%d", s.ThumbIDPrefix, index)
}

// Waits — ограничители ожиданий, собираются из конфига в app
type Waits struct {
	Consent     time.Duration
	Start       time.Duration
	Reveal      time.Duration
	Confirm     time.Duration
	Answer      time.Duration
	PageSettle  time.Duration
	PostConsent time.Duration
	PostStart   time.Duration
	PostReveal  time.Duration
	FirstSlide  time.Duration
	SlideNav    time.Duration
	RewindClick time.Duration
}

type Options struct {
	QuizURL           string
	DefaultSlideCount int
	RewindClicks      int
	Waits             Waits
}
