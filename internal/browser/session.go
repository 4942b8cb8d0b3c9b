package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"quiz-archive-parser/internal/observability"
)

// SessionOptions — настройки запуска браузера, собираются из конфига
type SessionOptions struct {
	ChromePath    string
	Headless      bool
	DisableImages bool
	WindowWidth   int
	WindowHeight  int
	PageTimeout   time.Duration
}

// Session — rod-реализация Reader поверх одной вкладки Chrome.
// Владелец сессии обязан вызвать Close на любом пути выхода.
type Session struct {
	logger      *observability.Logger
	launcher    *launcher.Launcher
	browser     *rod.Browser
	page        *rod.Page
	pageTimeout time.Duration
	ownsBrowser bool
	closed      bool
}

func NewSession(opts SessionOptions, logger *observability.Logger) (*Session, error) {
	l := launcher.New().
		Headless(opts.Headless).
		Set("disable-notifications")

	if opts.ChromePath != "" {
		l = l.Bin(opts.ChromePath)
	}
	if opts.WindowWidth > 0 && opts.WindowHeight > 0 {
		l = l.Set("window-size", fmt.Sprintf("%d,%d", opts.WindowWidth, opts.WindowHeight))
	}
	if opts.DisableImages {
		// Картинки не нужны для извлечения текста и замедляют загрузку
		l = l.Set("blink-settings", "imagesEnabled=false")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close()
		l.Cleanup()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &Session{
		logger:      logger,
		launcher:    l,
		browser:     b,
		page:        page,
		pageTimeout: opts.PageTimeout,
		ownsBrowser: true,
	}, nil
}

func (s *Session) Navigate(url string) error {
	p := s.page.Timeout(s.pageTimeout)
	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("wait load of %s: %w", url, err)
	}
	return nil
}

func (s *Session) WaitElement(selector string, timeout time.Duration) (Element, error) {
	el, err := s.page.Timeout(timeout).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", selector, err)
	}
	return &rodElement{el: el.CancelTimeout()}, nil
}

func (s *Session) WaitVisible(selector string, timeout time.Duration) (Element, error) {
	el, err := s.page.Timeout(timeout).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", selector, err)
	}
	if err := el.WaitVisible(); err != nil {
		return nil, fmt.Errorf("wait visible %s: %w", selector, err)
	}
	return &rodElement{el: el.CancelTimeout()}, nil
}

func (s *Session) Element(selector string) (Element, error) {
	has, el, err := s.page.Has(selector)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", selector, err)
	}
	if !has {
		return nil, fmt.Errorf("element not found: %s", selector)
	}
	return &rodElement{el: el}, nil
}

func (s *Session) Count(selector string) (int, error) {
	els, err := s.page.Elements(selector)
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", selector, err)
	}
	return len(els), nil
}

func (s *Session) Eval(js string) error {
	if _, err := s.page.Eval(js); err != nil {
		return fmt.Errorf("eval failed: %w", err)
	}
	return nil
}

func (s *Session) PressKey(key Key) error {
	var k input.Key
	switch key {
	case KeyArrowRight:
		k = input.ArrowRight
	default:
		return fmt.Errorf("unsupported key: %s", key)
	}
	if err := s.page.Keyboard.Press(k); err != nil {
		return fmt.Errorf("press %s: %w", key, err)
	}
	return nil
}

func (s *Session) EnterFrame(selector string, timeout time.Duration) (Reader, error) {
	el, err := s.page.Timeout(timeout).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("wait for frame %s: %w", selector, err)
	}
	framePage, err := el.CancelTimeout().Frame()
	if err != nil {
		return nil, fmt.Errorf("enter frame %s: %w", selector, err)
	}

	// Контент фрейма живёт в той же сессии, его Close — no-op
	return &Session{
		logger:      s.logger,
		page:        framePage,
		pageTimeout: s.pageTimeout,
	}, nil
}

func (s *Session) Close() error {
	if !s.ownsBrowser || s.closed {
		return nil
	}
	s.closed = true

	err := s.browser.Close()
	s.launcher.Cleanup()
	if err != nil {
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return nil
}

type rodElement struct {
	el *rod.Element
}

// Click выполняет this.click() в JS — перекрывающие оверлеи не мешают
func (e *rodElement) Click() error {
	if _, err := e.el.Eval(`() => this.click()`); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

func (e *rodElement) Text() (string, error) {
	return e.el.Text()
}

func (e *rodElement) Attribute(name string) (string, error) {
	val, err := e.el.Attribute(name)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", nil
	}
	return *val, nil
}
