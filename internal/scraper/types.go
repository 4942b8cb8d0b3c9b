package scraper

// ImageRef связывает слово в тексте вопроса с абсолютным URL картинки
type ImageRef struct {
	Word string `json:"word"`
	URL  string `json:"url"`
}

type QuizRecord struct {
	QuestionNumber string     `json:"question_number"`
	Answer         string     `json:"answer"`
	Images         []ImageRef `json:"images"`
	QuestionText   string     `json:"question_text"`
}

// Selectors описывают разметку страницы игры.
// Ячейка ответа находится по ID ячейки вопроса плюс фиксированный суффикс.
type Selectors struct {
	ClueCells       string `yaml:"clue_cells"`
	ClueText        string `yaml:"clue_text"`
	AnswerIDSuffix  string `yaml:"answer_id_suffix"`
	CorrectResponse string `yaml:"correct_response"`
}
