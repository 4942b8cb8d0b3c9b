package player

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"quiz-archive-parser/internal/browser"
	"quiz-archive-parser/internal/normalize"
	"quiz-archive-parser/internal/observability"
)

// hideConsentJS — грубый фолбэк: прячем всё, что похоже на consent-баннер
const hideConsentJS = `() => {
	var elements = document.querySelectorAll('[id*="cookie"], [class*="cookie"], [id*="consent"], [class*="consent"]');
	for (var i = 0; i < elements.length; i++) {
		elements[i].style.display = 'none';
	}
}`

// Pipeline ведёт один прогон викторины от запуска до последнего слайда.
// Сессия браузера принадлежит пайплайну на весь прогон и освобождается
// на любом пути выхода.
type Pipeline struct {
	reader    browser.Reader
	selectors *Selectors
	opts      Options
	logger    *observability.Logger
	sleep     func(time.Duration)
	state     State
	records   []SlideRecord
}

func New(reader browser.Reader, selectors *Selectors, opts Options, logger *observability.Logger) *Pipeline {
	return &Pipeline{
		reader:    reader,
		selectors: selectors,
		opts:      opts,
		logger:    logger,
		sleep:     time.Sleep,
		state:     StateLaunch,
	}
}

// Run выполняет таблицу переходов. Фатальная стадия останавливает
// прогон; нефатальная деградирует с логом и идёт дальше. Отмена
// контекста обрывает прогон между стадиями и между слайдами.
func (p *Pipeline) Run(ctx context.Context) ([]SlideRecord, error) {
	defer func() {
		if err := p.reader.Close(); err != nil {
			p.logger.Warn("Failed to release browser session", "error", err.Error())
		}
	}()

	stages := []stage{
		{to: StateLaunch, fatal: true, run: p.launch},
		{to: StateConsentHandled, fatal: false, run: p.handleConsent},
		{to: StateStarted, fatal: true, run: p.startQuiz},
		{to: StateRevealed, fatal: true, run: p.revealAnswers},
		{to: StatePrepared, fatal: false, run: p.prepareDOM},
		{to: StateSlides, fatal: false, run: p.harvestSlides},
	}

	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("Run cancelled, releasing session", "state", p.state.String())
			return nil, err
		}

		err := st.run(ctx)
		if err == nil {
			p.state = st.to
			p.logger.Debug("Stage complete", "state", p.state.String())
			continue
		}

		if st.fatal {
			p.logger.Error("Stage failed, aborting run",
				"state", st.to.String(),
				"error", err.Error(),
			)
			return nil, &StageError{State: st.to, Err: err}
		}

		if ctx.Err() != nil {
			p.logger.Warn("Run cancelled, releasing session", "state", st.to.String())
			return nil, err
		}

		p.logger.Warn("Stage degraded, continuing",
			"state", st.to.String(),
			"error", err.Error(),
		)
		p.state = st.to
	}

	p.state = StateDone
	p.logger.Info("Quiz run complete", "slides", len(p.records))
	return p.records, nil
}

func (p *Pipeline) launch(ctx context.Context) error {
	if err := p.reader.Navigate(p.opts.QuizURL); err != nil {
		return err
	}
	p.sleep(p.opts.Waits.PageSettle)
	return nil
}

// handleConsent закрывает cookie-диалог. Стадия никогда не фатальна:
// согласие не требуется для извлечения данных.
func (p *Pipeline) handleConsent(ctx context.Context) error {
	winner, err := browser.RunFirst([]browser.Strategy{
		{Name: "consent-iframe", Attempt: func() error {
			frame, err := p.reader.EnterFrame(p.selectors.ConsentFrame, p.opts.Waits.Consent)
			if err != nil {
				return err
			}
			accept, err := frame.WaitElement(p.selectors.ConsentAccept, p.opts.Waits.Consent)
			if err != nil {
				return err
			}
			return accept.Click()
		}},
		{Name: "js-hide", Attempt: func() error {
			return p.reader.Eval(hideConsentJS)
		}},
	})
	if err != nil {
		return err
	}

	p.logger.Info("Consent handled", "strategy", winner)
	p.sleep(p.opts.Waits.PostConsent)
	return nil
}

func (p *Pipeline) startQuiz(ctx context.Context) error {
	start, err := p.reader.WaitElement(p.selectors.StartButton, p.opts.Waits.Start)
	if err != nil {
		return fmt.Errorf("start control never appeared: %w", err)
	}
	if err := start.Click(); err != nil {
		return fmt.Errorf("start click failed: %w", err)
	}

	p.logger.Info("Quiz started")
	p.sleep(p.opts.Waits.PostStart)
	return nil
}

func (p *Pipeline) revealAnswers(ctx context.Context) error {
	reveal, err := p.reader.WaitElement(p.selectors.RevealButton, p.opts.Waits.Reveal)
	if err != nil {
		return fmt.Errorf("reveal control never appeared: %w", err)
	}
	if err := reveal.Click(); err != nil {
		return fmt.Errorf("reveal click failed: %w", err)
	}
	p.logger.Info("Answers revealed")

	// Часть вариантов плеера просит подтверждение, часть — нет
	confirm, err := p.reader.WaitElement(p.selectors.ConfirmButton, p.opts.Waits.Confirm)
	if err != nil {
		p.logger.Debug("No confirm control, assuming auto-confirm")
	} else if err := confirm.Click(); err != nil {
		p.logger.Warn("Confirm click failed", "error", err.Error())
	}

	p.sleep(p.opts.Waits.PostReveal)
	return nil
}

// prepareDOM убирает рекламу и оверлеи и поднимает навигацию,
// чтобы последующие клики не перехватывались
func (p *Pipeline) prepareDOM(ctx context.Context) error {
	cleanupJS := fmt.Sprintf(`() => {
	var obstructions = document.querySelectorAll('[class*="ad"], [id*="ad"], [class*="overlay"], [id*="overlay"], [class*="banner"], [id*="banner"]');
	for (var i = 0; i < obstructions.length; i++) {
		if (obstructions[i]) obstructions[i].remove();
	}
	var navElements = document.querySelectorAll('%s, %s, %s');
	for (var i = 0; i < navElements.length; i++) {
		if (navElements[i]) {
			navElements[i].style.zIndex = '10000';
			navElements[i].style.position = 'relative';
		}
	}
}`, p.selectors.NextControl, p.selectors.PrevControl, p.selectors.ThumbBar)

	return p.reader.Eval(cleanupJS)
}

func (p *Pipeline) discoverSlideCount() int {
	count, err := p.reader.Count(p.selectors.ThumbCountSelector())
	if err != nil {
		p.logger.Warn("Could not count slide thumbnails, using default",
			"default", p.opts.DefaultSlideCount,
			"error", err.Error(),
		)
		return p.opts.DefaultSlideCount
	}

	p.logger.Info("Detected slides", "count", count)
	return count
}

func (p *Pipeline) navigateToFirstSlide() {
	winner, err := browser.RunFirst([]browser.Strategy{
		{Name: "first-thumb", Attempt: func() error {
			thumb, err := p.reader.Element(p.selectors.Thumb(0))
			if err != nil {
				return err
			}
			if err := thumb.Click(); err != nil {
				return err
			}
			p.sleep(p.opts.Waits.FirstSlide)
			return nil
		}},
		{Name: "rewind", Attempt: func() error {
			for i := 0; i < p.opts.RewindClicks; i++ {
				prev, err := p.reader.Element(p.selectors.PrevControl)
				if err != nil {
					return err
				}
				if err := prev.Click(); err != nil {
					return err
				}
				p.sleep(p.opts.Waits.RewindClick)
			}
			return nil
		}},
	})
	if err != nil {
		p.logger.Warn("Could not navigate to first slide", "error", err.Error())
		return
	}
	p.logger.Debug("Navigated to first slide", "strategy", winner)
}

func (p *Pipeline) harvestSlides(ctx context.Context) error {
	total := p.discoverSlideCount()
	p.navigateToFirstSlide()

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		record := p.extractSlide(i)
		p.records = append(p.records, record)

		p.logger.Info("Extracted slide",
			"slide", i+1,
			"answer", record.Answer,
			"extra", record.ExtraText,
		)

		if i < total-1 {
			p.advance(i)
		}
	}
	return nil
}

// extractSlide всегда возвращает ровно одну запись: каждое поле
// деградирует отдельно до плейсхолдера или пустой строки
func (p *Pipeline) extractSlide(index int) SlideRecord {
	answer := AnswerPlaceholder
	if el, err := p.reader.WaitVisible(p.selectors.AnswerText, p.opts.Waits.Answer); err != nil {
		p.logger.Warn("Answer text not visible", "slide", index+1, "error", err.Error())
	} else if text, err := el.Text(); err != nil {
		p.logger.Warn("Answer text read failed", "slide", index+1, "error", err.Error())
	} else {
		answer = normalize.TrimText(text)
	}

	imageURL := ""
	if el, err := p.reader.Element(p.selectors.SlideImage); err == nil {
		if src, err := el.Attribute("src"); err == nil {
			imageURL = src
		}
	}

	extraText := ""
	if el, err := p.reader.Element(p.selectors.ExtraText); err == nil {
		if text, err := el.Text(); err == nil {
			extraText = normalize.TrimText(text)
		}
	}

	return SlideRecord{
		QuestionNumber: strconv.Itoa(index + 1),
		Answer:         answer,
		ImageURL:       imageURL,
		ExtraText:      extraText,
	}
}

// advance переходит к следующему слайду. Отказ всех трёх стратегий
// не прерывает цикл: следующая итерация может прочитать тот же слайд
// ещё раз — известное ограничение.
func (p *Pipeline) advance(index int) {
	winner, err := browser.RunFirst([]browser.Strategy{
		{Name: "next-thumb", Attempt: func() error {
			thumb, err := p.reader.Element(p.selectors.Thumb(index + 1))
			if err != nil {
				return err
			}
			return thumb.Click()
		}},
		{Name: "next-control", Attempt: func() error {
			next, err := p.reader.Element(p.selectors.NextControl)
			if err != nil {
				return err
			}
			return next.Click()
		}},
		{Name: "arrow-key", Attempt: func() error {
			return p.reader.PressKey(browser.KeyArrowRight)
		}},
	})
	if err != nil {
		p.logger.Warn("Slide navigation failed, next read may repeat this slide",
			"slide", index+1,
			"error", err.Error(),
		)
		return
	}

	p.logger.Debug("Advanced to next slide", "slide", index+2, "strategy", winner)
	p.sleep(p.opts.Waits.SlideNav)
}
