package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	JArchive      JArchiveConfig      `yaml:"jarchive"`
	Sporcle       SporcleConfig       `yaml:"sporcle"`
	HTTP          HttpConfig          `yaml:"http"`
	Rod           RodConfig           `yaml:"rod"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type JArchiveConfig struct {
	GameID          int    `yaml:"game_id"`
	BaseURL         string `yaml:"base_url"`
	GameURLTemplate string `yaml:"game_url_template"`
	OutputDir       string `yaml:"output_dir"`
	SelectorsFile   string `yaml:"selectors_file"`
}

type SporcleConfig struct {
	QuizURL           string      `yaml:"quiz_url"`
	OutputFile        string      `yaml:"output_file"`
	DefaultSlideCount int         `yaml:"default_slide_count"`
	RewindClicks      int         `yaml:"rewind_clicks"`
	SelectorsFile     string      `yaml:"selectors_file"`
	Waits             WaitsConfig `yaml:"waits"`
}

// WaitsConfig bounds every UI wait in the interactive pipeline.
// The *_timeout_* values gate element lookups; the settle values are
// fixed pauses after an action while the page reacts.
type WaitsConfig struct {
	ConsentTimeoutS int `yaml:"consent_timeout_s"`
	StartTimeoutS   int `yaml:"start_timeout_s"`
	RevealTimeoutS  int `yaml:"reveal_timeout_s"`
	ConfirmTimeoutS int `yaml:"confirm_timeout_s"`
	AnswerTimeoutS  int `yaml:"answer_timeout_s"`
	PageSettleS     int `yaml:"page_settle_s"`
	PostConsentS    int `yaml:"post_consent_s"`
	PostStartS      int `yaml:"post_start_s"`
	PostRevealS     int `yaml:"post_reveal_s"`
	FirstSlideS     int `yaml:"first_slide_s"`
	SlideNavMS      int `yaml:"slide_nav_ms"`
	RewindClickMS   int `yaml:"rewind_click_ms"`
}

type HttpConfig struct {
	UserAgent                 string `yaml:"user_agent"`
	ConnectTimeoutMS          int    `yaml:"connect_timeout_ms"`
	TotalTimeoutMS            int    `yaml:"total_timeout_ms"`
	MaxIdleConnections        int    `yaml:"max_idle_connections"`
	MaxIdleConnectionsPerHost int    `yaml:"max_idle_connections_per_host"`
	IdleConnectionTimeoutS    int    `yaml:"idle_connection_timeout_s"`
}

type RodConfig struct {
	ChromePath    string `yaml:"chrome_path"`
	Headless      bool   `yaml:"headless"`
	DisableImages bool   `yaml:"disable_images"`
	WindowWidth   int    `yaml:"window_width"`
	WindowHeight  int    `yaml:"window_height"`
	PageTimeoutS  int    `yaml:"page_timeout_s"`
}

type ObservabilityConfig struct {
	LogPath       string `yaml:"log_path"`
	LogLevel      string `yaml:"log_level"`
	LogMaxSizeMB  int    `yaml:"log_max_size_mb"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAgeDays int    `yaml:"log_max_age_days"`
}

// Validation
func (c *Config) Validate() error {
	if c.JArchive.GameID <= 0 {
		return fmt.Errorf("jarchive.game_id must be > 0")
	}
	if c.JArchive.BaseURL == "" {
		return fmt.Errorf("jarchive.base_url is required")
	}
	if c.JArchive.GameURLTemplate == "" {
		return fmt.Errorf("jarchive.game_url_template is required")
	}
	if !strings.Contains(c.JArchive.GameURLTemplate, "%d") {
		return fmt.Errorf("jarchive.game_url_template must contain a %%d placeholder")
	}
	if c.Sporcle.QuizURL == "" {
		return fmt.Errorf("sporcle.quiz_url is required")
	}
	if c.Sporcle.OutputFile == "" {
		return fmt.Errorf("sporcle.output_file is required")
	}
	if c.Sporcle.DefaultSlideCount <= 0 {
		return fmt.Errorf("sporcle.default_slide_count must be > 0")
	}
	if c.Sporcle.RewindClicks < 0 {
		return fmt.Errorf("sporcle.rewind_clicks must be >= 0")
	}
	if c.HTTP.UserAgent == "" {
		return fmt.Errorf("http.user_agent is required")
	}
	if c.HTTP.ConnectTimeoutMS <= 0 {
		return fmt.Errorf("http.connect_timeout_ms must be > 0")
	}
	if c.HTTP.TotalTimeoutMS <= 0 {
		return fmt.Errorf("http.total_timeout_ms must be > 0")
	}
	if c.Rod.PageTimeoutS <= 0 {
		return fmt.Errorf("rod.page_timeout_s must be > 0")
	}
	if c.Observability.LogPath == "" {
		return fmt.Errorf("observability.log_path is required")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("observability.log_level is required")
	}

	w := c.Sporcle.Waits
	if w.ConsentTimeoutS <= 0 || w.StartTimeoutS <= 0 || w.RevealTimeoutS <= 0 ||
		w.ConfirmTimeoutS <= 0 || w.AnswerTimeoutS <= 0 {
		return fmt.Errorf("sporcle.waits timeouts must be > 0")
	}
	if w.PageSettleS < 0 || w.PostConsentS < 0 || w.PostStartS < 0 ||
		w.PostRevealS < 0 || w.FirstSlideS < 0 || w.SlideNavMS < 0 || w.RewindClickMS < 0 {
		return fmt.Errorf("sporcle.waits settle values must be >= 0")
	}
	return nil
}

// Getters
func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.HTTP.ConnectTimeoutMS) * time.Millisecond
}

func (c *Config) GetTotalTimeout() time.Duration {
	return time.Duration(c.HTTP.TotalTimeoutMS) * time.Millisecond
}

func (c *Config) GetIdleConnectionTimeout() time.Duration {
	return time.Duration(c.HTTP.IdleConnectionTimeoutS) * time.Second
}

func (c *Config) GetRodPageTimeout() time.Duration {
	return time.Duration(c.Rod.PageTimeoutS) * time.Second
}

func (w WaitsConfig) GetConsentTimeout() time.Duration {
	return time.Duration(w.ConsentTimeoutS) * time.Second
}

func (w WaitsConfig) GetStartTimeout() time.Duration {
	return time.Duration(w.StartTimeoutS) * time.Second
}

func (w WaitsConfig) GetRevealTimeout() time.Duration {
	return time.Duration(w.RevealTimeoutS) * time.Second
}

func (w WaitsConfig) GetConfirmTimeout() time.Duration {
	return time.Duration(w.ConfirmTimeoutS) * time.Second
}

func (w WaitsConfig) GetAnswerTimeout() time.Duration {
	return time.Duration(w.AnswerTimeoutS) * time.Second
}

func (w WaitsConfig) GetPageSettle() time.Duration {
	return time.Duration(w.PageSettleS) * time.Second
}

func (w WaitsConfig) GetPostConsent() time.Duration {
	return time.Duration(w.PostConsentS) * time.Second
}

func (w WaitsConfig) GetPostStart() time.Duration {
	return time.Duration(w.PostStartS) * time.Second
}

func (w WaitsConfig) GetPostReveal() time.Duration {
	return time.Duration(w.PostRevealS) * time.Second
}

func (w WaitsConfig) GetFirstSlidePause() time.Duration {
	return time.Duration(w.FirstSlideS) * time.Second
}

func (w WaitsConfig) GetSlideNavPause() time.Duration {
	return time.Duration(w.SlideNavMS) * time.Millisecond
}

func (w WaitsConfig) GetRewindClickPause() time.Duration {
	return time.Duration(w.RewindClickMS) * time.Millisecond
}
