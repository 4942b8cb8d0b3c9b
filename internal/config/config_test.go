package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		JArchive: JArchiveConfig{
			GameID:          4972,
			BaseURL:         "https://www.j-archive.com/",
			GameURLTemplate: "https://www.j-archive.com/showgame.php?game_id=%d",
			OutputDir:       ".",
			SelectorsFile:   "jarchive.yaml",
		},
		Sporcle: SporcleConfig{
			QuizURL:           "https://www.sporcle.com/games/x/y",
			OutputFile:        "sporcle_results.json",
			DefaultSlideCount: 20,
			RewindClicks:      5,
			SelectorsFile:     "sporcle.yaml",
			Waits: WaitsConfig{
				ConsentTimeoutS: 10,
				StartTimeoutS:   15,
				RevealTimeoutS:  15,
				ConfirmTimeoutS: 5,
				AnswerTimeoutS:  5,
				PageSettleS:     5,
				PostConsentS:    3,
				PostStartS:      5,
				PostRevealS:     8,
				FirstSlideS:     2,
				SlideNavMS:      1000,
				RewindClickMS:   500,
			},
		},
		HTTP: HttpConfig{
			UserAgent:        "test-agent/1.0",
			ConnectTimeoutMS: 5000,
			TotalTimeoutMS:   30000,
		},
		Rod: RodConfig{
			Headless:     true,
			PageTimeoutS: 60,
		},
		Observability: ObservabilityConfig{
			LogPath:  "logs/test.log",
			LogLevel: "info",
		},
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateRejectsBrokenConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantMsg string
	}{
		{"zero game id", func(c *Config) { c.JArchive.GameID = 0 }, "game_id"},
		{"template without placeholder", func(c *Config) {
			c.JArchive.GameURLTemplate = "https://www.j-archive.com/showgame.php"
		}, "placeholder"},
		{"empty quiz url", func(c *Config) { c.Sporcle.QuizURL = "" }, "quiz_url"},
		{"zero slide count", func(c *Config) { c.Sporcle.DefaultSlideCount = 0 }, "default_slide_count"},
		{"negative rewind clicks", func(c *Config) { c.Sporcle.RewindClicks = -1 }, "rewind_clicks"},
		{"empty user agent", func(c *Config) { c.HTTP.UserAgent = "" }, "user_agent"},
		{"zero consent timeout", func(c *Config) { c.Sporcle.Waits.ConsentTimeoutS = 0 }, "timeouts"},
		{"negative settle", func(c *Config) { c.Sporcle.Waits.SlideNavMS = -1 }, "settle"},
		{"empty log path", func(c *Config) { c.Observability.LogPath = "" }, "log_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestWaitGetters(t *testing.T) {
	w := validConfig().Sporcle.Waits

	if got := w.GetConsentTimeout(); got != 10*time.Second {
		t.Errorf("GetConsentTimeout() = %v, want 10s", got)
	}
	if got := w.GetSlideNavPause(); got != 1000*time.Millisecond {
		t.Errorf("GetSlideNavPause() = %v, want 1s", got)
	}
	if got := w.GetRewindClickPause(); got != 500*time.Millisecond {
		t.Errorf("GetRewindClickPause() = %v, want 500ms", got)
	}
}

func TestGetRodPageTimeout(t *testing.T) {
	cfg := validConfig()
	if got := cfg.GetRodPageTimeout(); got != 60*time.Second {
		t.Errorf("GetRodPageTimeout() = %v, want 60s", got)
	}
}
