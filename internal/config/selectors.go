package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"quiz-archive-parser/internal/player"
	"quiz-archive-parser/internal/scraper"
)

// resolveSelectorsPath makes relative selector paths relative to configs/
func resolveSelectorsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("selectors file path is empty")
	}
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join("configs", filePath)
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("selectors file not found: %s: %w", filePath, err)
	}
	return filePath, nil
}

func decodeSelectors(filePath string, out interface{}) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open selectors file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close selectors file: %v\n", closeErr)
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("failed to parse selectors YAML: %w", err)
	}
	return nil
}

// LoadGameSelectors загружает селекторы статической страницы из YAML файла
func (c *Config) LoadGameSelectors() (*scraper.Selectors, error) {
	filePath, err := resolveSelectorsPath(c.JArchive.SelectorsFile)
	if err != nil {
		return nil, err
	}

	var selectors scraper.Selectors
	if err := decodeSelectors(filePath, &selectors); err != nil {
		return nil, err
	}

	if err := validateGameSelectors(&selectors); err != nil {
		return nil, err
	}
	return &selectors, nil
}

// LoadQuizSelectors загружает селекторы интерактивного плеера из YAML файла
func (c *Config) LoadQuizSelectors() (*player.Selectors, error) {
	filePath, err := resolveSelectorsPath(c.Sporcle.SelectorsFile)
	if err != nil {
		return nil, err
	}

	var selectors player.Selectors
	if err := decodeSelectors(filePath, &selectors); err != nil {
		return nil, err
	}

	if err := validateQuizSelectors(&selectors); err != nil {
		return nil, err
	}
	return &selectors, nil
}

func validateGameSelectors(s *scraper.Selectors) error {
	if s.ClueCells == "" {
		return fmt.Errorf("clue_cells is required")
	}
	if s.ClueText == "" {
		return fmt.Errorf("clue_text is required")
	}
	if s.AnswerIDSuffix == "" {
		return fmt.Errorf("answer_id_suffix is required")
	}
	if s.CorrectResponse == "" {
		return fmt.Errorf("correct_response is required")
	}
	return nil
}

func validateQuizSelectors(s *player.Selectors) error {
	if s.ConsentFrame == "" {
		return fmt.Errorf("consent_frame is required")
	}
	if s.ConsentAccept == "" {
		return fmt.Errorf("consent_accept is required")
	}
	if s.StartButton == "" {
		return fmt.Errorf("start_button is required")
	}
	if s.RevealButton == "" {
		return fmt.Errorf("reveal_button is required")
	}
	if s.ConfirmButton == "" {
		return fmt.Errorf("confirm_button is required")
	}
	if s.ThumbIDPrefix == "" {
		return fmt.Errorf("thumb_id_prefix is required")
	}
	if s.ThumbBar == "" {
		return fmt.Errorf("thumb_bar is required")
	}
	if s.PrevControl == "" {
		return fmt.Errorf("prev_control is required")
	}
	if s.NextControl == "" {
		return fmt.Errorf("next_control is required")
	}
	if s.AnswerText == "" {
		return fmt.Errorf("answer_text is required")
	}
	if s.SlideImage == "" {
		return fmt.Errorf("slide_image is required")
	}
	if s.ExtraText == "" {
		return fmt.Errorf("extra_text is required")
	}
	return nil
}
